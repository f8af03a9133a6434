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
	"fmt"
	"math"
	"reflect"
	"slices"
	"strings"

	"rivaas.dev/endpoints/pattern"
)

// bodylessMethods are HTTP methods that conventionally carry no request
// body. A route explicitly constrained to any of them opts out of body
// inference for the whole declaration.
var bodylessMethods = map[string]struct{}{
	"GET":     {},
	"DELETE":  {},
	"HEAD":    {},
	"OPTIONS": {},
	"TRACE":   {},
	"CONNECT": {},
}

// compile materializes one declaration into an immutable Endpoint.
//
// The step order is the correctness contract of this package: pattern
// combination, order and display name, builder construction, method
// metadata, group conventions, handler-declared metadata, entry conventions
// (freezing the collection first), then the binding decision. Reordering any
// of these changes the metadata sequence observable by conventions and
// consumers.
func (ds *DataSource) compile(d *Declaration, g *Group) (*Endpoint, error) {
	tmpl := d.template
	if g != nil && g.Prefix != nil {
		tmpl = ds.engine.Combine(g.Prefix, tmpl)
	}

	order := 0
	if d.fallback {
		order = math.MaxInt
	}

	fn := callable(d.handler)

	cell := &dispatchCell{}
	redirect := cell.redirect()
	b := &Builder{
		Pattern:     tmpl,
		Order:       order,
		DisplayName: displayName(d, tmpl),
		Metadata:    Metadata{HandlerIdentity{Handler: fn, Name: handlerName(fn)}},
		Dispatch:    redirect,
		cell:        cell,
	}

	if d.methods != nil {
		b.Metadata = append(b.Metadata, MethodMetadata{Methods: slices.Clone(d.methods)})
	}
	if d.fallback {
		b.Metadata = append(b.Metadata, FallbackMetadata{})
	}

	// Group conventions see a clean builder and can be overridden by the
	// more specific entry conventions below.
	if g != nil {
		for _, conv := range g.Conventions {
			conv(b)
		}
	}

	// Handler-declared metadata lands between group and entry conventions
	// so entry conventions can observe and react to it.
	b.Metadata = append(b.Metadata, declaredMetadata(fn)...)

	d.conventions.freeze()
	for _, conv := range d.conventions.snapshot() {
		conv(b)
	}

	// Raw routes with no filter factories already carry a ready-to-call
	// dispatch; binding would be wasted work.
	if !d.typed() && len(b.FilterFactories) == 0 {
		raw := d.handler.(RawHandler)
		cell.populate(raw.Fn)
		if sameFunc(b.Dispatch, redirect) {
			b.Dispatch = raw.Fn
		}

		return b.seal(), nil
	}

	if ds.synthesizer == nil {
		return nil, fmt.Errorf("%w: route %q", ErrSynthesizerRequired, b.DisplayName)
	}

	final, err := ds.synthesizer.Synthesize(SynthesisRequest{
		Handler:               fn,
		Metadata:              slices.Clone(b.Metadata),
		FilterFactories:       slices.Clone(b.FilterFactories),
		ParameterNames:        tmpl.ParameterNames(),
		SuppressBodyInference: suppressBodyInference(d.methods),
		MalformedPolicy:       ds.malformedPolicy,
	})
	if err != nil {
		// Synthesis failures propagate unchanged; this package adds no
		// translation layer.
		return nil, err
	}

	cell.populate(final)
	if sameFunc(b.Dispatch, redirect) {
		// No convention replaced the dispatch, so the redirect indirection
		// is unobservable. Skip it.
		b.Dispatch = final
	}

	return b.seal(), nil
}

// displayName derives the human-readable endpoint name. Each transformation
// is additive and order-sensitive: handler name suffix, method prefix,
// fallback prefix.
func displayName(d *Declaration, tmpl *pattern.Template) string {
	name := tmpl.RawText()
	if name == "" {
		name = tmpl.DebugString()
	}

	if d.typed() {
		if method, ok := declaredName(callable(d.handler)); ok {
			name += " => " + method
		}
	}
	if d.methods != nil {
		name = "HTTP: " + strings.Join(d.methods, ", ") + " " + name
	}
	if d.fallback {
		name = "Fallback " + name
	}

	return name
}

// suppressBodyInference reports whether body inference is disabled for a
// route constrained to the given methods. Any single bodyless method
// suppresses inference for the whole declaration; unconstrained routes
// never suppress.
func suppressBodyInference(methods []string) bool {
	for _, m := range methods {
		if _, ok := bodylessMethods[strings.ToUpper(m)]; ok {
			return true
		}
	}

	return false
}

// sameFunc reports whether two Dispatch values share the same code pointer.
// Used to detect whether a convention replaced the builder's dispatch.
func sameFunc(a, b Dispatch) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
