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

// MalformedRequestPolicy selects how a bound endpoint reacts to requests
// whose parameters or body cannot be bound to the handler's inputs.
type MalformedRequestPolicy int

const (
	// MalformedRespond writes a 400 response and swallows the binding
	// error. This is the default.
	MalformedRespond MalformedRequestPolicy = iota

	// MalformedPropagate returns the binding error from the dispatch call,
	// leaving the response to the caller.
	MalformedPropagate
)

// SynthesisRequest carries the compiler's inputs to the binding collaborator.
// All fields are read-only snapshots: the synthesizer must not retain or
// mutate them beyond the Synthesize call.
type SynthesisRequest struct {
	// Handler is the underlying callable: a Dispatch for raw routes, an
	// arbitrary function for typed routes.
	Handler any

	// Metadata is the endpoint's accumulated metadata at binding time.
	Metadata Metadata

	// FilterFactories are applied around the bound handler,
	// first-registered outermost.
	FilterFactories []FilterFactory

	// ParameterNames are the route's parameter names in declaration order.
	ParameterNames []string

	// SuppressBodyInference disables inferring a request body parameter.
	// Set when the route is constrained to at least one conventionally
	// bodyless method (GET, DELETE, HEAD, OPTIONS, TRACE, CONNECT).
	SuppressBodyInference bool

	// MalformedPolicy selects the bound endpoint's reaction to requests
	// that fail binding.
	MalformedPolicy MalformedRequestPolicy
}

// Synthesizer converts a handler plus its binding inputs into a final
// dispatch function. The endpoints package treats synthesis as an opaque,
// synchronous operation; failures propagate unchanged to the caller of the
// snapshot read.
//
// The standard implementation lives in rivaas.dev/endpoints/binding.
type Synthesizer interface {
	Synthesize(req SynthesisRequest) (Dispatch, error)
}

// SynthesizerFunc adapts a function to the Synthesizer interface.
type SynthesizerFunc func(req SynthesisRequest) (Dispatch, error)

// Synthesize calls f.
func (f SynthesizerFunc) Synthesize(req SynthesisRequest) (Dispatch, error) {
	return f(req)
}
