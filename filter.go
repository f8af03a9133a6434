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

// FilterContext carries the compile-time inputs a filter factory may inspect
// when deciding how to wrap an endpoint: the endpoint's accumulated metadata
// and the route's parameter names in declaration order.
type FilterContext struct {
	Metadata       Metadata
	ParameterNames []string
}

// FilterFactory builds a request filter around an endpoint's dispatch
// function. Factories run once, at binding time, and return the wrapped
// dispatch. Registering a filter factory on a raw route forces that route
// through binding so the filter chain can be assembled.
//
// Factories are applied so that the first-registered factory observes the
// request first (outermost wrapper).
//
// Example convention:
//
//	conv.Add(func(b *endpoints.Builder) {
//	    b.FilterFactories = append(b.FilterFactories, func(fc endpoints.FilterContext, next endpoints.Dispatch) endpoints.Dispatch {
//	        return func(w http.ResponseWriter, r *http.Request) error {
//	            w.Header().Set("X-Filtered", "1")
//	            return next(w, r)
//	        }
//	    })
//	})
type FilterFactory func(fc FilterContext, next Dispatch) Dispatch
