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
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracerName is the instrumentation scope for snapshot spans.
const tracerName = "rivaas.dev/endpoints"

// startSnapshotSpan opens a span for one snapshot read when tracing is
// configured. The returned func records the compiled endpoint count and an
// optional error, then ends the span. Without a tracer it is a no-op.
func (ds *DataSource) startSnapshotSpan(g *Group) func(count int, err error) {
	if ds.tracer == nil {
		return func(int, error) {}
	}

	attrs := []attribute.KeyValue{
		attribute.Bool("endpoints.grouped", g != nil),
	}
	if g != nil && g.Prefix != nil {
		attrs = append(attrs, attribute.String("endpoints.group_prefix", g.Prefix.String()))
	}

	_, span := ds.tracer.Start(context.Background(), "endpoints.snapshot",
		trace.WithAttributes(attrs...))

	return func(count int, err error) {
		span.SetAttributes(attribute.Int("endpoints.count", count))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}
