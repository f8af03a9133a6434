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
	"strings"
)

// Metadata is an ordered, append-only sequence of endpoint markers.
// Duplicates are legal and order is significant: consumers that look up a
// marker take the last matching entry, so later additions override the
// effect of earlier ones.
type Metadata []any

// MetadataValue returns the last entry of type T in m.
// The boolean reports whether any entry matched.
//
// Example:
//
//	methods, ok := endpoints.MetadataValue[endpoints.MethodMetadata](ep.Metadata())
func MetadataValue[T any](m Metadata) (T, bool) {
	for i := len(m) - 1; i >= 0; i-- {
		if v, ok := m[i].(T); ok {
			return v, true
		}
	}

	var zero T
	return zero, false
}

// HandlerIdentity identifies the underlying callable an endpoint was built
// from. It is always the first metadata entry of a compiled endpoint.
type HandlerIdentity struct {
	// Handler is the registered callable: a Dispatch for raw routes, an
	// arbitrary function value for typed routes.
	Handler any

	// Name is the callable's symbol name, or "" when unavailable.
	Name string
}

// MethodMetadata restricts an endpoint to the listed HTTP methods, in
// declaration order. Endpoints without MethodMetadata accept any method.
type MethodMetadata struct {
	Methods []string
}

// String renders the method list for diagnostics.
func (m MethodMetadata) String() string {
	return "HTTP: " + strings.Join(m.Methods, ", ")
}

// FallbackMetadata marks an endpoint compiled from a fallback route. Such
// endpoints carry math.MaxInt order and are meant to match only when no
// other endpoint does.
type FallbackMetadata struct{}

// MetadataProvider is implemented by handler types that declare their own
// endpoint metadata. The declared entries are appended during compilation
// after group conventions and before entry conventions, in the order the
// provider returns them.
//
// Named function types can carry metadata this way:
//
//	type auditedHandler func(ctx context.Context) error
//
//	func (auditedHandler) RouteMetadata() []any {
//	    return []any{AuditMarker{}}
//	}
type MetadataProvider interface {
	RouteMetadata() []any
}

// declaredMetadata returns the handler's self-declared metadata entries,
// or nil when the handler declares none.
func declaredMetadata(handler any) []any {
	p, ok := handler.(MetadataProvider)
	if !ok {
		return nil
	}

	return slices.Clone(p.RouteMetadata())
}
