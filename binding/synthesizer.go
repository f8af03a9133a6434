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
	"fmt"
	"net/http"

	"rivaas.dev/endpoints"
)

// config holds synthesizer configuration assembled from options.
type config struct {
	decoders map[string]DecodeFunc
}

func defaultConfig() *config {
	return &config{decoders: defaultDecoders()}
}

func (c *config) validate() error {
	if len(c.decoders) == 0 {
		return ErrNoDecoders
	}

	return nil
}

// Option configures a Synthesizer.
type Option func(*config)

// WithDecoder registers (or replaces) a body decoder for a media type.
// The media type is matched against the request's Content-Type with
// parameters stripped and case folded.
//
// Example:
//
//	s := binding.MustNew(binding.WithDecoder("application/cbor", decodeCBOR))
func WithDecoder(mediaType string, fn DecodeFunc) Option {
	return func(c *config) {
		c.decoders[normalizeMediaType(mediaType)] = fn
	}
}

// Synthesizer is the standard request-binding collaborator for
// endpoints.DataSource. It interprets typed handler signatures with
// reflection, binds route parameters, query parameters, and headers through
// struct tags, decodes request bodies by Content-Type, and assembles filter
// chains around the bound handler.
//
// Supported typed handler shapes, with T a struct or pointer to struct:
//
//	func(ctx context.Context) error
//	func(ctx context.Context) (R, error)
//	func(ctx context.Context, req T) error
//	func(ctx context.Context, req T) (R, error)
//
// Request struct fields bind via tags: `path:"id"` from the route
// parameters (http.Request.PathValue), `query:"page"` from the URL query,
// `header:"X-Request-Id"` from the headers. Untagged exported fields are
// populated from the request body unless body inference is suppressed.
//
// Results R are written as JSON with status 200; handlers without a result
// respond 204 on success. Handler errors propagate to the dispatch caller
// unwritten.
//
// Synthesizer is safe for concurrent use.
type Synthesizer struct {
	cfg *config
}

// New creates a Synthesizer with the given options.
// Returns an error if configuration is invalid.
func New(opts ...Option) (*Synthesizer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Synthesizer{cfg: cfg}, nil
}

// MustNew creates a Synthesizer and panics if configuration is invalid.
// Use in main() or init() where panic on startup is acceptable.
func MustNew(opts ...Option) *Synthesizer {
	s, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("binding.MustNew: %v", err))
	}

	return s
}

// Synthesize builds the final dispatch function for one endpoint: the bound
// handler wrapped by the request's filter factories, first-registered
// outermost.
func (s *Synthesizer) Synthesize(req endpoints.SynthesisRequest) (endpoints.Dispatch, error) {
	dispatch, err := s.dispatchFor(req)
	if err != nil {
		return nil, err
	}

	fc := endpoints.FilterContext{
		Metadata:       req.Metadata,
		ParameterNames: req.ParameterNames,
	}
	for i := len(req.FilterFactories) - 1; i >= 0; i-- {
		dispatch = req.FilterFactories[i](fc, dispatch)
	}

	return dispatch, nil
}

// dispatchFor resolves the handler into a dispatch function. Ready-to-call
// handler shapes pass through without reflection; anything else goes
// through signature analysis.
func (s *Synthesizer) dispatchFor(req endpoints.SynthesisRequest) (endpoints.Dispatch, error) {
	switch h := req.Handler.(type) {
	case nil:
		return nil, ErrNilHandler
	case endpoints.Dispatch:
		return h, nil
	case func(http.ResponseWriter, *http.Request) error:
		return h, nil
	case http.Handler:
		return func(w http.ResponseWriter, r *http.Request) error {
			h.ServeHTTP(w, r)
			return nil
		}, nil
	default:
		return s.bindTyped(req)
	}
}
