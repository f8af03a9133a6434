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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"rivaas.dev/endpoints/pattern"
)

func newTestTracing(t *testing.T) (*tracetest.SpanRecorder, Option) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(t.Context()) })

	return recorder, WithTracerProvider(provider)
}

func spanAttr(span sdktrace.ReadOnlySpan, key attribute.Key) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if kv.Key == key {
			return kv.Value, true
		}
	}

	return attribute.Value{}, false
}

func TestSnapshotSpan(t *testing.T) {
	recorder, tracing := newTestTracing(t)
	ds := MustNew(tracing)

	_, err := ds.AddRoute("/a", okDispatch)
	require.NoError(t, err)
	_, err = ds.AddRoute("/b", okDispatch)
	require.NoError(t, err)

	_, err = ds.Endpoints()
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	span := spans[0]

	assert.Equal(t, "endpoints.snapshot", span.Name())

	grouped, ok := spanAttr(span, "endpoints.grouped")
	require.True(t, ok)
	assert.False(t, grouped.AsBool())

	count, ok := spanAttr(span, "endpoints.count")
	require.True(t, ok)
	assert.Equal(t, int64(2), count.AsInt64())
}

func TestSnapshotSpanGrouped(t *testing.T) {
	recorder, tracing := newTestTracing(t)
	ds := MustNew(tracing)

	_, err := ds.AddRoute("/items", okDispatch)
	require.NoError(t, err)

	_, err = ds.GroupedEndpoints(Group{Prefix: pattern.MustParse("/api")})
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	grouped, ok := spanAttr(spans[0], "endpoints.grouped")
	require.True(t, ok)
	assert.True(t, grouped.AsBool())

	prefix, ok := spanAttr(spans[0], "endpoints.group_prefix")
	require.True(t, ok)
	assert.Equal(t, "/api", prefix.AsString())
}

func TestSnapshotSpanRecordsError(t *testing.T) {
	recorder, tracing := newTestTracing(t)
	ds := MustNew(tracing) // no synthesizer, so the typed route fails the read

	_, err := ds.AddTypedRoute("/typed", listItems)
	require.NoError(t, err)

	_, err = ds.Endpoints()
	require.ErrorIs(t, err, ErrSynthesizerRequired)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	require.Len(t, spans[0].Events(), 1, "the failure is recorded as a span event")
}

func TestSnapshotWithoutTracerIsSilent(t *testing.T) {
	ds := MustNew()

	_, err := ds.AddRoute("/quiet", okDispatch)
	require.NoError(t, err)

	eps, err := ds.Endpoints()
	require.NoError(t, err)
	assert.Len(t, eps, 1)
}
