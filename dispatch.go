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
	"sync/atomic"
)

// Dispatch handles one matched HTTP request. It is the execution contract a
// compiled endpoint hands to the dispatch layer: the request's route
// parameters are expected to be available via http.Request.PathValue.
type Dispatch func(w http.ResponseWriter, r *http.Request) error

// dispatchCell is a set-once container for an endpoint's final dispatch
// function. During compilation the builder's dispatch is a redirect into the
// cell; the cell is populated once binding completes.
//
// Populate happens exactly once, on the compiling goroutine. Loads may
// happen concurrently at dispatch time, hence the atomic pointer.
type dispatchCell struct {
	fn atomic.Pointer[Dispatch]
}

// redirect returns a Dispatch that forwards to the cell's function.
// Invoking the redirect before the cell is populated fails with
// ErrDispatchBeforeReady.
func (c *dispatchCell) redirect() Dispatch {
	return func(w http.ResponseWriter, r *http.Request) error {
		fn := c.fn.Load()
		if fn == nil {
			return ErrDispatchBeforeReady
		}

		return (*fn)(w, r)
	}
}

// populate stores the final dispatch function. Later calls overwrite
// nothing: the first stored function wins.
func (c *dispatchCell) populate(fn Dispatch) {
	c.fn.CompareAndSwap(nil, &fn)
}
