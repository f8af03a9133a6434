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
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/trace"
)

// highParamCountThreshold triggers a diagnostic event when a route declares
// more parameters than a handler can reasonably bind.
const highParamCountThreshold = 8

// neverChanges is the constant invalidation token shared by all data
// sources: declarations are immutable once exposed, so the channel never
// fires.
var neverChanges = make(chan struct{})

// DataSource owns the ordered set of route declarations and compiles them
// into endpoint snapshots on demand.
//
// Registration is a single-writer setup phase; snapshot reads are pure
// functions over the then-current declaration list and may run concurrently
// with each other. Nothing is cached between snapshots: every read
// recompiles every declaration, so conventions added between reads are
// reflected until the owning declaration freezes.
//
// Example:
//
//	ds := endpoints.MustNew(endpoints.WithSynthesizer(binding.MustNew()))
//	conv, _ := ds.AddRoute("/items/{id}", getItem, http.MethodGet)
//	_ = conv.Add(func(b *endpoints.Builder) { b.Order = 5 })
//	eps, err := ds.Endpoints()
type DataSource struct {
	engine          Engine
	synthesizer     Synthesizer
	malformedPolicy MalformedRequestPolicy
	diagnostics     DiagnosticHandler
	tracer          trace.Tracer

	mu           sync.Mutex
	declarations []*Declaration
}

// Option configures a DataSource.
type Option func(*DataSource)

// New creates a DataSource with optional configuration. Configuration is
// validated immediately; for a version that panics instead of returning an
// error, use MustNew.
//
// A data source without a synthesizer can still compile raw routes; typed
// or filtered routes then fail the snapshot read with
// ErrSynthesizerRequired.
func New(opts ...Option) (*DataSource, error) {
	ds := &DataSource{
		engine: defaultEngine(),
	}
	for _, opt := range opts {
		opt(ds)
	}

	if err := ds.validate(); err != nil {
		return nil, fmt.Errorf("endpoints configuration validation failed: %w", err)
	}

	return ds, nil
}

// MustNew creates a DataSource and panics if configuration is invalid.
func MustNew(opts ...Option) *DataSource {
	ds, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("endpoints.MustNew: %v", err))
	}

	return ds
}

// validate checks the data source configuration.
func (ds *DataSource) validate() error {
	if ds.engine == nil {
		return ErrNilPatternEngine
	}

	return nil
}

// AddRoute registers a raw route: a ready-to-call dispatch function with an
// optional HTTP method constraint. Zero methods means the route accepts any
// method. The returned convention collection accepts appends until the
// route's first compile.
func (ds *DataSource) AddRoute(patternText string, handler Dispatch, methods ...string) (*Conventions, error) {
	if handler == nil {
		return nil, fmt.Errorf("%w: route %q", ErrNilHandler, patternText)
	}

	return ds.add(patternText, RawHandler{Fn: handler}, methods, false)
}

// AddTypedRoute registers a typed route: an arbitrary function whose
// signature the synthesizer binds to the request at compile time. Zero
// methods means the route accepts any method.
func (ds *DataSource) AddTypedRoute(patternText string, handler any, methods ...string) (*Conventions, error) {
	if handler == nil {
		return nil, fmt.Errorf("%w: route %q", ErrNilHandler, patternText)
	}

	return ds.add(patternText, TypedHandler{Fn: handler}, methods, false)
}

// AddFallback registers a typed fallback route, matched only when no other
// endpoint does. Fallback endpoints carry the maximum order value.
func (ds *DataSource) AddFallback(patternText string, handler any, methods ...string) (*Conventions, error) {
	if handler == nil {
		return nil, fmt.Errorf("%w: route %q", ErrNilHandler, patternText)
	}

	return ds.add(patternText, TypedHandler{Fn: handler}, methods, true)
}

// add parses the pattern, stores the declaration, and returns its
// convention handle.
func (ds *DataSource) add(patternText string, h Handler, methods []string, fallback bool) (*Conventions, error) {
	tmpl, err := ds.engine.Parse(patternText)
	if err != nil {
		return nil, fmt.Errorf("parse route pattern %q: %w", patternText, err)
	}

	d := newDeclaration(tmpl, h, methods, fallback)

	ds.mu.Lock()
	ds.declarations = append(ds.declarations, d)
	ds.mu.Unlock()

	if n := len(tmpl.ParameterNames()); n > highParamCountThreshold {
		ds.emit(DiagHighParamCount, fmt.Sprintf("route %q declares %d parameters", patternText, n), map[string]any{
			"pattern":     patternText,
			"param_count": n,
		})
	}

	return d.conventions, nil
}

// Endpoints compiles every declaration with no group context and returns a
// fresh snapshot. Compilation is all-or-nothing: the first failing
// declaration fails the whole read.
func (ds *DataSource) Endpoints() ([]*Endpoint, error) {
	return ds.snapshot(nil)
}

// GroupedEndpoints compiles every declaration under the given group context
// and returns a fresh snapshot. The group is not retained.
func (ds *DataSource) GroupedEndpoints(g Group) ([]*Endpoint, error) {
	return ds.snapshot(&g)
}

// snapshot runs the compiler over the current declaration list.
func (ds *DataSource) snapshot(g *Group) ([]*Endpoint, error) {
	end := ds.startSnapshotSpan(g)

	decls := ds.declarationSnapshot()
	eps := make([]*Endpoint, 0, len(decls))
	for _, d := range decls {
		ep, err := ds.compile(d, g)
		if err != nil {
			end(len(eps), err)
			return nil, err
		}
		eps = append(eps, ep)
	}

	end(len(eps), nil)
	return eps, nil
}

// declarationSnapshot copies the declaration slice header so compilation
// iterates a stable list even if a registration slips in concurrently.
func (ds *DataSource) declarationSnapshot() []*Declaration {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	return ds.declarations[:len(ds.declarations):len(ds.declarations)]
}

// Single compiles and returns the data source's only endpoint. It is a
// diagnostic aid for tests and tooling: a store holding zero or more than
// one declaration fails with ErrNotSingleRoute carrying the count.
func (ds *DataSource) Single() (*Endpoint, error) {
	ds.mu.Lock()
	n := len(ds.declarations)
	ds.mu.Unlock()

	if n != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrNotSingleRoute, n)
	}

	eps, err := ds.Endpoints()
	if err != nil {
		return nil, err
	}

	return eps[0], nil
}

// Changes returns the invalidation token consumers watch for endpoint-set
// changes. Declarations are immutable once exposed, so the returned channel
// never fires.
func (ds *DataSource) Changes() <-chan struct{} {
	return neverChanges
}

// Routes returns a read-only summary of every registered declaration for
// introspection and documentation tooling. It does not compile endpoints.
func (ds *DataSource) Routes() []RouteInfo {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	infos := make([]RouteInfo, 0, len(ds.declarations))
	for _, d := range ds.declarations {
		infos = append(infos, d.info())
	}

	return infos
}

// emit forwards a diagnostic event to the configured handler, if any.
func (ds *DataSource) emit(kind DiagnosticKind, msg string, fields map[string]any) {
	if ds.diagnostics == nil {
		return
	}
	ds.diagnostics.OnDiagnostic(DiagnosticEvent{Kind: kind, Message: msg, Fields: fields})
}
