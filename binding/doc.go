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

// Package binding is the standard request-binding synthesizer for
// rivaas.dev/endpoints.
//
// It converts typed handler functions into dispatch functions: signature
// analysis and parameter-binding plans are built once at synthesis time
// with reflection, so per-request work is limited to executing the plan.
// Route parameters arrive through http.Request.PathValue, query parameters
// and headers through struct tags, and request bodies decode by
// Content-Type (JSON, YAML, TOML, MessagePack, and Protocol Buffers by
// default).
//
// Example:
//
//	type getItemRequest struct {
//	    ID   int    `path:"id"`
//	    Sort string `query:"sort"`
//	}
//
//	func getItem(ctx context.Context, req getItemRequest) (Item, error) { ... }
//
//	ds := endpoints.MustNew(endpoints.WithSynthesizer(binding.MustNew()))
//	_, _ = ds.AddTypedRoute("/items/{id}", getItem, http.MethodGet)
package binding
