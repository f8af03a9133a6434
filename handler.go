// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package endpoints

import (
	"reflect"
	"regexp"
	"runtime"
	"strings"
)

// Handler is the sum type over the two ways a route can carry its callable.
//
// A RawHandler is a ready-to-call Dispatch and needs no binding unless
// conventions attach filter factories. A TypedHandler is an arbitrary
// function whose signature the synthesizer interprets into a Dispatch.
type Handler interface {
	isHandler()
}

// RawHandler wraps a Dispatch registered directly.
type RawHandler struct {
	Fn Dispatch
}

func (RawHandler) isHandler() {}

// TypedHandler wraps a function value whose parameters and results are bound
// by the synthesizer at compile time.
type TypedHandler struct {
	Fn any
}

func (TypedHandler) isHandler() {}

// callable returns the underlying function value of a handler.
func callable(h Handler) any {
	switch h := h.(type) {
	case RawHandler:
		return h.Fn
	case TypedHandler:
		return h.Fn
	default:
		return nil
	}
}

// synthesizedNameSuffix matches trailing symbol parts the compiler invents
// for closures, like ".func1" or ".func2.1".
var synthesizedNameSuffix = regexp.MustCompile(`\.func\d+(\.\d+)*$`)

// handlerName resolves the symbol name of a handler function via the
// runtime, with the package path shortened to its last element.
// Returns "" for nil or non-function handlers.
func handlerName(handler any) string {
	if handler == nil {
		return ""
	}

	v := reflect.ValueOf(handler)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}

	fn := runtime.FuncForPC(v.Pointer())
	if fn == nil {
		return ""
	}

	name := fn.Name()
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}

	return name
}

// declaredName extracts a human-meaningful method name from a handler:
// the final symbol element, with the "-fm" method-value suffix stripped.
// Compiler-synthesized closure names ("func1" and friends) do not count.
func declaredName(handler any) (string, bool) {
	full := handlerName(handler)
	if full == "" {
		return "", false
	}

	full = strings.TrimSuffix(full, "-fm")
	if synthesizedNameSuffix.MatchString(full) {
		return "", false
	}

	if idx := strings.LastIndex(full, "."); idx >= 0 {
		full = full[idx+1:]
	}
	if full == "" {
		return "", false
	}

	return full, true
}
