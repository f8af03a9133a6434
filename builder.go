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

// Builder is an endpoint descriptor under construction. Conventions receive
// the builder and may mutate any exported field before the endpoint is
// sealed.
//
// The initial Dispatch is a redirect into the route's binding cell: a
// convention may capture it, wrap it, or replace it, and a captured redirect
// still reaches the final bound function once compilation finishes. Invoking
// it during compilation fails with ErrDispatchBeforeReady.
type Builder struct {
	// Pattern is the combined route template (group prefix applied).
	Pattern *pattern.Template

	// Order is the endpoint's matching priority. Lower matches first;
	// fallback routes start at math.MaxInt.
	Order int

	// DisplayName is the human-readable endpoint name.
	DisplayName string

	// Metadata is the ordered marker sequence accumulated so far.
	Metadata Metadata

	// Dispatch is the endpoint's dispatch function.
	Dispatch Dispatch

	// FilterFactories are the deferred request filters to assemble around
	// the dispatch function at binding time.
	FilterFactories []FilterFactory

	cell *dispatchCell
}

// seal produces the immutable endpoint from the builder's current state.
func (b *Builder) seal() *Endpoint {
	return &Endpoint{
		template:    b.Pattern,
		order:       b.Order,
		displayName: b.DisplayName,
		metadata:    slices.Clone(b.Metadata),
		dispatch:    b.Dispatch,
	}
}
