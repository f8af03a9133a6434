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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/endpoints/pattern"
)

func TestNewValidation(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		ds, err := New()
		require.NoError(t, err)
		assert.NotNil(t, ds)
	})

	t.Run("nil engine rejected", func(t *testing.T) {
		_, err := New(WithPatternEngine(nil))
		assert.ErrorIs(t, err, ErrNilPatternEngine)
	})

	t.Run("must new panics on invalid config", func(t *testing.T) {
		assert.Panics(t, func() {
			MustNew(WithPatternEngine(nil))
		})
	})
}

func TestAddRouteValidation(t *testing.T) {
	ds := MustNew()

	t.Run("nil raw handler", func(t *testing.T) {
		_, err := ds.AddRoute("/x", nil)
		assert.ErrorIs(t, err, ErrNilHandler)
	})

	t.Run("nil typed handler", func(t *testing.T) {
		_, err := ds.AddTypedRoute("/x", nil)
		assert.ErrorIs(t, err, ErrNilHandler)
	})

	t.Run("nil fallback handler", func(t *testing.T) {
		_, err := ds.AddFallback("/x", nil)
		assert.ErrorIs(t, err, ErrNilHandler)
	})

	t.Run("malformed pattern", func(t *testing.T) {
		_, err := ds.AddRoute("/items/{id", okDispatch)
		require.Error(t, err)
		assert.ErrorIs(t, err, pattern.ErrUnterminatedBrace)
		assert.Contains(t, err.Error(), "/items/{id")
	})

	t.Run("failed registrations leave no declaration behind", func(t *testing.T) {
		assert.Empty(t, ds.Routes())
	})
}

func TestEndpointsSnapshotIsFresh(t *testing.T) {
	ds := MustNew()

	_, err := ds.AddRoute("/a", okDispatch, http.MethodGet)
	require.NoError(t, err)
	_, err = ds.AddRoute("/b", okDispatch)
	require.NoError(t, err)

	first, err := ds.Endpoints()
	require.NoError(t, err)
	second, err := ds.Endpoints()
	require.NoError(t, err)

	require.Len(t, first, 2)
	require.Len(t, second, 2)

	for i := range first {
		// Equal content, distinct identity: every read recompiles.
		assert.NotSame(t, first[i], second[i])
		assert.Equal(t, first[i].DisplayName(), second[i].DisplayName())
		assert.Equal(t, first[i].Order(), second[i].Order())
		assert.Equal(t, first[i].Metadata(), second[i].Metadata())
		assert.Equal(t, first[i].Template().RawText(), second[i].Template().RawText())
	}
}

func TestEndpointsPreserveRegistrationOrder(t *testing.T) {
	ds := MustNew()

	patterns := []string{"/c", "/a", "/b"}
	for _, p := range patterns {
		_, err := ds.AddRoute(p, okDispatch)
		require.NoError(t, err)
	}

	eps, err := ds.Endpoints()
	require.NoError(t, err)
	require.Len(t, eps, 3)

	for i, p := range patterns {
		assert.Equal(t, p, eps[i].Template().RawText())
	}
}

func TestGroupedEndpointsPrefix(t *testing.T) {
	ds := MustNew()

	_, err := ds.AddRoute("/items/{id}", okDispatch, http.MethodGet)
	require.NoError(t, err)

	prefix := pattern.MustParse("/api/v1")
	eps, err := ds.GroupedEndpoints(Group{Prefix: prefix})
	require.NoError(t, err)
	require.Len(t, eps, 1)

	assert.Equal(t, "/api/v1/items/{id}", eps[0].Template().RawText())

	// The group is per call, not retained: an ungrouped read is unprefixed.
	plain, err := ds.Endpoints()
	require.NoError(t, err)
	require.Len(t, plain, 1)
	assert.Equal(t, "/items/{id}", plain[0].Template().RawText())
}

func TestConventionsFreezeOnFirstSnapshot(t *testing.T) {
	ds := MustNew()

	conv, err := ds.AddRoute("/items", okDispatch)
	require.NoError(t, err)
	require.NoError(t, conv.Add(func(b *Builder) { b.Metadata = append(b.Metadata, "early") }))

	_, err = ds.Endpoints()
	require.NoError(t, err)

	err = conv.Add(func(b *Builder) { b.Metadata = append(b.Metadata, "late") })
	assert.ErrorIs(t, err, ErrConventionsFrozen)

	// Conventions accepted before the freeze keep applying to later reads.
	ep, err := ds.Single()
	require.NoError(t, err)
	last, ok := MetadataValue[string](ep.Metadata())
	require.True(t, ok)
	assert.Equal(t, "early", last)
}

func TestSingle(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		ds := MustNew()
		_, err := ds.Single()
		assert.ErrorIs(t, err, ErrNotSingleRoute)
		assert.Contains(t, err.Error(), "found 0")
	})

	t.Run("two declarations", func(t *testing.T) {
		ds := MustNew()
		_, err := ds.AddRoute("/a", okDispatch)
		require.NoError(t, err)
		_, err = ds.AddRoute("/b", okDispatch)
		require.NoError(t, err)

		_, err = ds.Single()
		assert.ErrorIs(t, err, ErrNotSingleRoute)
		assert.Contains(t, err.Error(), "found 2")
	})

	t.Run("exactly one", func(t *testing.T) {
		ds := MustNew()
		_, err := ds.AddRoute("/only", okDispatch)
		require.NoError(t, err)

		ep, err := ds.Single()
		require.NoError(t, err)
		assert.Equal(t, "/only", ep.Template().RawText())
	})
}

func TestChangesNeverFires(t *testing.T) {
	ds := MustNew()

	ch := ds.Changes()
	require.NotNil(t, ch)

	_, err := ds.AddRoute("/late", okDispatch)
	require.NoError(t, err)

	select {
	case <-ch:
		t.Fatal("change token fired; declarations are immutable once exposed")
	default:
	}
}

func TestRoutesIntrospection(t *testing.T) {
	ds := MustNew(WithSynthesizer(&captureSynthesizer{}))

	_, err := ds.AddRoute("/items/{id}", okDispatch, http.MethodGet)
	require.NoError(t, err)
	_, err = ds.AddFallback("/{*path}", listItems)
	require.NoError(t, err)

	infos := ds.Routes()
	require.Len(t, infos, 2)

	assert.Equal(t, "/items/{id}", infos[0].Pattern)
	assert.Equal(t, []string{"GET"}, infos[0].Methods)
	assert.False(t, infos[0].Typed)
	assert.False(t, infos[0].Fallback)
	assert.Equal(t, 1, infos[0].ParamCount)

	assert.Equal(t, "/{*path}", infos[1].Pattern)
	assert.Empty(t, infos[1].Methods)
	assert.True(t, infos[1].Typed)
	assert.True(t, infos[1].Fallback)
	assert.Contains(t, infos[1].HandlerName, "listItems")
}

func TestHighParamCountDiagnostic(t *testing.T) {
	var events []DiagnosticEvent
	ds := MustNew(WithDiagnostics(DiagnosticHandlerFunc(func(e DiagnosticEvent) {
		events = append(events, e)
	})))

	_, err := ds.AddRoute("/a/{p1}/{p2}/{p3}/{p4}/{p5}/{p6}/{p7}/{p8}", okDispatch)
	require.NoError(t, err)
	assert.Empty(t, events, "threshold itself does not warn")

	_, err = ds.AddRoute("/b/{p1}/{p2}/{p3}/{p4}/{p5}/{p6}/{p7}/{p8}/{p9}", okDispatch)
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, DiagHighParamCount, events[0].Kind)
	assert.Equal(t, 9, events[0].Fields["param_count"])
}

func TestEndpointMetadataIsolation(t *testing.T) {
	ds := MustNew()

	conv, err := ds.AddRoute("/iso", okDispatch)
	require.NoError(t, err)
	require.NoError(t, conv.Add(func(b *Builder) { b.Metadata = append(b.Metadata, "tag") }))

	ep, err := ds.Single()
	require.NoError(t, err)

	md := ep.Metadata()
	md[len(md)-1] = "mutated"

	fresh, ok := MetadataValue[string](ep.Metadata())
	require.True(t, ok)
	assert.Equal(t, "tag", fresh, "metadata accessor must hand out copies")
}
