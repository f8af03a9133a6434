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

// Package endpoints is a deferred endpoint-compilation pipeline: route
// declarations accumulate in a DataSource and, on demand, compile into
// immutable, dispatch-ready Endpoint descriptors.
//
// Declarations arrive in arbitrary order during a single-writer setup
// phase. Each registration returns a Conventions handle for attaching
// customizations, which the compiler replays in a strict order: group
// conventions first, then handler-declared metadata, then entry
// conventions. A route's convention collection freezes permanently the
// first time any snapshot compiles it; later appends fail with
// ErrConventionsFrozen.
//
// Snapshot reads (Endpoints, GroupedEndpoints) recompile every declaration
// and return fresh descriptors each call - nothing is cached, and no
// descriptor identity persists between calls. Compilation is all-or-nothing
// per snapshot.
//
// Typed handlers, and raw handlers that picked up filter factories, go
// through the Synthesizer collaborator, which turns the handler plus its
// binding inputs into a final dispatch function. Raw handlers without
// filters skip synthesis entirely; their dispatch is the registered
// function unchanged.
//
// The package performs no network I/O and no route matching. Pattern
// parsing is delegated to rivaas.dev/endpoints/pattern (or any Engine), and
// request binding to rivaas.dev/endpoints/binding (or any Synthesizer).
//
// Example:
//
//	ds := endpoints.MustNew(endpoints.WithSynthesizer(binding.MustNew()))
//
//	conv, _ := ds.AddRoute("/items/{id}", getItem, http.MethodGet)
//	_ = conv.Add(func(b *endpoints.Builder) {
//	    b.Metadata = append(b.Metadata, RequireAuth{})
//	})
//
//	_, _ = ds.AddTypedRoute("/items", createItem, http.MethodPost)
//
//	eps, err := ds.Endpoints()
package endpoints
