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
	"net/http"
	"slices"

	"rivaas.dev/endpoints/pattern"
)

// Endpoint is a fully compiled, immutable endpoint descriptor: the combined
// route template, matching priority, display name, ordered metadata, and a
// ready-to-call dispatch function.
//
// Endpoints are created fresh on every snapshot read and never mutated after
// return. Two snapshots of the same data source produce endpoints equal in
// content but distinct in identity.
type Endpoint struct {
	template    *pattern.Template
	order       int
	displayName string
	metadata    Metadata
	dispatch    Dispatch
}

// Template returns the endpoint's combined route template.
func (e *Endpoint) Template() *pattern.Template {
	return e.template
}

// Order returns the endpoint's matching priority. Lower values match
// first; fallback endpoints carry math.MaxInt so they match last.
func (e *Endpoint) Order() int {
	return e.order
}

// DisplayName returns the endpoint's human-readable name.
func (e *Endpoint) DisplayName() string {
	return e.displayName
}

// Metadata returns a copy of the endpoint's ordered metadata sequence.
func (e *Endpoint) Metadata() Metadata {
	return slices.Clone(e.metadata)
}

// Dispatch executes the endpoint against a matched request.
func (e *Endpoint) Dispatch(w http.ResponseWriter, r *http.Request) error {
	return e.dispatch(w, r)
}

// String returns the endpoint's display name.
func (e *Endpoint) String() string {
	return e.displayName
}
