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

package binding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"slices"

	"rivaas.dev/endpoints"
)

var (
	contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
)

// sourceKind identifies where a tagged request field binds from.
type sourceKind int

const (
	sourcePath sourceKind = iota
	sourceQuery
	sourceHeader
)

// fieldBinding is one precomputed parameter-to-field assignment.
type fieldBinding struct {
	index  []int
	source sourceKind
	name   string
}

// plan is the compiled binding strategy for one typed handler. Everything
// reflection can decide up front is decided at synthesis time; the dispatch
// closure only executes the plan.
type plan struct {
	fn         reflect.Value
	reqType    reflect.Type // struct type of the request model, nil if none
	reqIsPtr   bool
	hasResult  bool
	fields     []fieldBinding
	decodeBody bool
	decoders   map[string]DecodeFunc
	policy     endpoints.MalformedRequestPolicy
}

// bindTyped analyzes a typed handler's signature and builds its dispatch
// function. Unsupported signatures fail synthesis immediately.
func (s *Synthesizer) bindTyped(req endpoints.SynthesisRequest) (endpoints.Dispatch, error) {
	t := reflect.TypeOf(req.Handler)
	if t == nil || t.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: %T is not a function", ErrUnsupportedSignature, req.Handler)
	}
	v := reflect.ValueOf(req.Handler)
	if v.IsNil() {
		return nil, ErrNilHandler
	}
	if t.IsVariadic() {
		return nil, fmt.Errorf("%w: variadic handlers are not supported", ErrUnsupportedSignature)
	}

	if t.NumIn() < 1 || t.NumIn() > 2 || t.In(0) != contextType {
		return nil, fmt.Errorf("%w: %s must take a context.Context first", ErrUnsupportedSignature, t)
	}

	p := &plan{
		fn:       v,
		decoders: s.cfg.decoders,
		policy:   req.MalformedPolicy,
	}

	if t.NumIn() == 2 {
		rt := t.In(1)
		if rt.Kind() == reflect.Pointer {
			p.reqIsPtr = true
			rt = rt.Elem()
		}
		if rt.Kind() != reflect.Struct {
			return nil, fmt.Errorf("%w: request model %s must be a struct", ErrUnsupportedSignature, t.In(1))
		}
		p.reqType = rt
		if err := p.scanFields(rt, req); err != nil {
			return nil, err
		}
	}

	switch t.NumOut() {
	case 1:
	case 2:
		p.hasResult = true
	default:
		return nil, fmt.Errorf("%w: %s must return (result, error) or error", ErrUnsupportedSignature, t)
	}
	if t.Out(t.NumOut()-1) != errorType {
		return nil, fmt.Errorf("%w: %s must return error last", ErrUnsupportedSignature, t)
	}

	return p.dispatch(), nil
}

// scanFields precomputes parameter bindings for the request model's tagged
// fields and decides whether the body is decoded at all.
func (p *plan) scanFields(rt reflect.Type, req endpoints.SynthesisRequest) error {
	bodyCandidates := false
	for i := range rt.NumField() {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}

		var fb fieldBinding
		switch {
		case f.Tag.Get("path") != "":
			name := f.Tag.Get("path")
			if !slices.Contains(req.ParameterNames, name) {
				return fmt.Errorf("%w: %q bound by field %s", ErrUnknownPathParameter, name, f.Name)
			}
			fb = fieldBinding{index: f.Index, source: sourcePath, name: name}
		case f.Tag.Get("query") != "":
			fb = fieldBinding{index: f.Index, source: sourceQuery, name: f.Tag.Get("query")}
		case f.Tag.Get("header") != "":
			fb = fieldBinding{index: f.Index, source: sourceHeader, name: f.Tag.Get("header")}
		default:
			// Untagged fields come from the body.
			bodyCandidates = true
			continue
		}

		if !convertible(f.Type) {
			return fmt.Errorf("%w: field %s (%s)", ErrUnsupportedFieldType, f.Name, f.Type)
		}
		p.fields = append(p.fields, fb)
	}

	p.decodeBody = bodyCandidates && !req.SuppressBodyInference

	return nil
}

// dispatch builds the runtime closure executing the plan: optional body
// decode, parameter binding, handler call, result write.
func (p *plan) dispatch() endpoints.Dispatch {
	return func(w http.ResponseWriter, r *http.Request) error {
		args := make([]reflect.Value, 0, 2)
		args = append(args, reflect.ValueOf(r.Context()))

		if p.reqType != nil {
			pv := reflect.New(p.reqType)
			if p.decodeBody {
				if err := p.decodeInto(r, pv.Interface()); err != nil {
					return p.reject(w, err)
				}
			}
			if err := p.bindParams(pv.Elem(), r); err != nil {
				return p.reject(w, err)
			}
			if p.reqIsPtr {
				args = append(args, pv)
			} else {
				args = append(args, pv.Elem())
			}
		}

		out := p.fn.Call(args)
		if errv := out[len(out)-1]; !errv.IsNil() {
			return errv.Interface().(error)
		}

		if p.hasResult {
			w.Header().Set("Content-Type", MediaTypeJSON)
			w.WriteHeader(http.StatusOK)

			return json.NewEncoder(w).Encode(out[0].Interface())
		}

		w.WriteHeader(http.StatusNoContent)
		return nil
	}
}

// decodeInto decodes the request body into the request model, selected by
// Content-Type. Empty bodies are skipped; parameter bindings applied
// afterwards overwrite decoded values.
func (p *plan) decodeInto(r *http.Request, out any) error {
	if r.Body == nil {
		return nil
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("read request body: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	mt := normalizeMediaType(r.Header.Get("Content-Type"))
	decode, ok := p.decoders[mt]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mt)
	}
	if err := decode(data, out); err != nil {
		return fmt.Errorf("decode %s body: %w", mt, err)
	}

	return nil
}

// bindParams assigns route, query, and header parameters to their tagged
// fields. Absent parameters leave the field at its current value.
func (p *plan) bindParams(v reflect.Value, r *http.Request) error {
	for _, fb := range p.fields {
		var raw string
		switch fb.source {
		case sourcePath:
			raw = r.PathValue(fb.name)
		case sourceQuery:
			raw = r.URL.Query().Get(fb.name)
		case sourceHeader:
			raw = r.Header.Get(fb.name)
		}
		if raw == "" {
			continue
		}

		if err := assign(v.FieldByIndex(fb.index), raw); err != nil {
			return fmt.Errorf("bind parameter %q: %w", fb.name, err)
		}
	}

	return nil
}

// reject handles a binding failure according to the endpoint's malformed
// request policy: respond 400 (415 for unknown media types) and swallow, or
// propagate the error to the dispatch caller.
func (p *plan) reject(w http.ResponseWriter, err error) error {
	err = fmt.Errorf("%w: %w", ErrMalformedRequest, err)
	if p.policy == endpoints.MalformedPropagate {
		return err
	}

	status := http.StatusBadRequest
	if errors.Is(err, ErrUnsupportedMediaType) {
		status = http.StatusUnsupportedMediaType
	}
	w.Header().Set("Content-Type", MediaTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})

	return nil
}
