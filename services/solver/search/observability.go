// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package search

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const tracerName = "countdown.search"

// Tracer provides OpenTelemetry tracing for search runs. When disabled it
// hands out noop spans so the engine never has to branch.
//
// Thread Safety: Safe for concurrent use.
type Tracer struct {
	tracer  trace.Tracer
	logger  *slog.Logger
	enabled bool
}

// NewTracer creates a tracer.
//
// Inputs:
//   - logger: Logger for structured logging (nil falls back to the default).
//   - enabled: Whether to emit real spans.
//
// Outputs:
//   - *Tracer: Tracer instance, never nil.
func NewTracer(logger *slog.Logger, enabled bool) *Tracer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracer{
		tracer:  otel.Tracer(tracerName),
		logger:  logger,
		enabled: enabled,
	}
}

// StartSearch starts a span covering one engine run.
func (t *Tracer) StartSearch(ctx context.Context, runID string, maxDepth int) (context.Context, trace.Span) {
	if !t.enabled {
		return ctx, noop.Span{}
	}

	return t.tracer.Start(ctx, "search.run",
		trace.WithAttributes(
			attribute.String("search.run_id", runID),
			attribute.Int("search.max_depth", maxDepth),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSearch records the run outcome on the span and closes it.
func (t *Tracer) EndSearch(span trace.Span, found bool, pathLen, expanded, generated int) {
	if span == nil {
		return
	}

	span.SetAttributes(
		attribute.Bool("search.result.found", found),
		attribute.Int("search.result.path_length", pathLen),
		attribute.Int("search.result.expanded", expanded),
		attribute.Int("search.result.generated", generated),
	)
	span.SetStatus(codes.Ok, "")
	span.End()
}
