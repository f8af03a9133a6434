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
	"go.opentelemetry.io/otel/trace"

	"rivaas.dev/endpoints/pattern"
)

// defaultEngine returns the standard brace-syntax pattern engine.
func defaultEngine() Engine {
	return pattern.NewEngine()
}

// WithPatternEngine replaces the default brace-syntax pattern engine.
// Passing nil fails validation.
//
// Example:
//
//	ds, err := endpoints.New(endpoints.WithPatternEngine(myEngine))
func WithPatternEngine(engine Engine) Option {
	return func(ds *DataSource) {
		ds.engine = engine
	}
}

// WithSynthesizer sets the binding collaborator used to convert typed
// handlers (and filtered raw handlers) into dispatch functions.
//
// Example:
//
//	ds := endpoints.MustNew(endpoints.WithSynthesizer(binding.MustNew()))
func WithSynthesizer(s Synthesizer) Option {
	return func(ds *DataSource) {
		ds.synthesizer = s
	}
}

// WithMalformedRequestPolicy selects how bound endpoints react to requests
// that fail binding. The default, MalformedRespond, writes a 400 response.
func WithMalformedRequestPolicy(p MalformedRequestPolicy) Option {
	return func(ds *DataSource) {
		ds.malformedPolicy = p
	}
}

// WithDiagnostics sets a diagnostic handler for the data source.
//
// Diagnostic events are optional informational events; the data source
// functions correctly whether they are collected or not.
//
// Example with logging:
//
//	import "log/slog"
//
//	handler := endpoints.DiagnosticHandlerFunc(func(e endpoints.DiagnosticEvent) {
//	    slog.Warn(e.Message, "kind", e.Kind, "fields", e.Fields)
//	})
//	ds := endpoints.MustNew(endpoints.WithDiagnostics(handler))
func WithDiagnostics(handler DiagnosticHandler) Option {
	return func(ds *DataSource) {
		ds.diagnostics = handler
	}
}

// WithTracerProvider enables OpenTelemetry tracing of snapshot compilation.
// Each Endpoints or GroupedEndpoints call produces one span carrying the
// compiled endpoint count and, for grouped reads, the group prefix.
//
// Example:
//
//	ds := endpoints.MustNew(endpoints.WithTracerProvider(otel.GetTracerProvider()))
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(ds *DataSource) {
		ds.tracer = tp.Tracer(tracerName)
	}
}
