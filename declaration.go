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
	"slices"

	"rivaas.dev/endpoints/pattern"
)

// Declaration is one registered route: parsed template, handler, method
// constraint, fallback flag, and the owned convention collection.
//
// Declarations are immutable after registration, except for the convention
// collection's append-only growth before its freeze. Every snapshot compile
// references the same Declaration; nothing is copied between snapshots.
type Declaration struct {
	template    *pattern.Template
	handler     Handler
	methods     []string // nil means unconstrained
	fallback    bool
	conventions *Conventions
}

// newDeclaration builds a Declaration, copying the method list so the
// caller's slice cannot mutate the stored constraint.
func newDeclaration(t *pattern.Template, h Handler, methods []string, fallback bool) *Declaration {
	var ms []string
	if len(methods) > 0 {
		ms = slices.Clone(methods)
	}

	return &Declaration{
		template:    t,
		handler:     h,
		methods:     ms,
		fallback:    fallback,
		conventions: &Conventions{},
	}
}

// Template returns the declaration's parsed route template.
func (d *Declaration) Template() *pattern.Template {
	return d.template
}

// Handler returns the declaration's handler.
func (d *Declaration) Handler() Handler {
	return d.handler
}

// Methods returns a copy of the accepted HTTP methods, or nil when the
// declaration accepts any method.
func (d *Declaration) Methods() []string {
	return slices.Clone(d.methods)
}

// Fallback reports whether the declaration is a fallback route, matched
// only when nothing else does.
func (d *Declaration) Fallback() bool {
	return d.fallback
}

// Conventions returns the declaration's convention collection.
func (d *Declaration) Conventions() *Conventions {
	return d.conventions
}

// typed reports whether the declaration carries a TypedHandler.
func (d *Declaration) typed() bool {
	_, ok := d.handler.(TypedHandler)
	return ok
}

// RouteInfo is a read-only summary of a registered route for introspection,
// debugging, and documentation generation.
type RouteInfo struct {
	Pattern     string   // Route template text (/users/{id})
	Methods     []string // Accepted HTTP methods, nil if unconstrained
	HandlerName string   // Symbol name of the handler function
	Typed       bool     // True for typed (bound) handlers
	Fallback    bool     // True for fallback routes
	ParamCount  int      // Number of route parameters
}

// info builds the introspection summary for this declaration.
func (d *Declaration) info() RouteInfo {
	return RouteInfo{
		Pattern:     d.template.String(),
		Methods:     d.Methods(),
		HandlerName: handlerName(callable(d.handler)),
		Typed:       d.typed(),
		Fallback:    d.fallback,
		ParamCount:  len(d.template.ParameterNames()),
	}
}
