// Package trace records observability spans for traced operations. A span is
// pure side-effect: recording failures are logged and counted, never allowed
// to mask the error of the operation they describe.
package trace

import (
	"context"
	"time"

	"tracegate-api/internal/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Level string

const (
	LevelDefault Level = "DEFAULT"
	LevelError   Level = "ERROR"
)

// Span types understood by the ingestion backend.
const (
	TypeSpan       = "SPAN"
	TypeGeneration = "GENERATION"
)

// Span is an ephemeral record of one traced operation. It has no identity
// outside its own trace.
type Span struct {
	ID            string         `json:"id"`
	TraceID       string         `json:"traceId"`
	Type          string         `json:"type"`
	Name          string         `json:"name"`
	Input         map[string]any `json:"input,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	Level         Level          `json:"level"`
	StatusMessage string         `json:"statusMessage,omitempty"`
	StartTime     time.Time      `json:"startTime"`
	EndTime       time.Time      `json:"endTime"`
}

// Exporter ships one finished span to the tracing backend.
type Exporter interface {
	Export(ctx context.Context, span Span) error
}

// Recorder opens a span on entry and closes it with a status on every exit
// path. A Recorder built without an exporter is a no-op.
type Recorder struct {
	exporter Exporter
	log      *zap.SugaredLogger
}

func NewRecorder(exporter Exporter, log *zap.SugaredLogger) *Recorder {
	return &Recorder{exporter: exporter, log: log}
}

func (r *Recorder) Enabled() bool {
	return r != nil && r.exporter != nil
}

// WithSpan runs fn inside a named span. The span closes with error level and
// the error message as status when fn fails; fn's error is always returned
// unchanged.
func (r *Recorder) WithSpan(ctx context.Context, name string, input, metadata map[string]any, fn func(context.Context) error) error {
	return r.observe(ctx, TypeSpan, name, input, metadata, fn)
}

// WithGeneration is WithSpan for generation-type operations (LLM calls).
func (r *Recorder) WithGeneration(ctx context.Context, name string, input, metadata map[string]any, fn func(context.Context) error) error {
	return r.observe(ctx, TypeGeneration, name, input, metadata, fn)
}

func (r *Recorder) observe(ctx context.Context, typ, name string, input, metadata map[string]any, fn func(context.Context) error) error {
	if !r.Enabled() {
		return fn(ctx)
	}

	span := Span{
		ID:        uuid.NewString(),
		TraceID:   uuid.NewString(),
		Type:      typ,
		Name:      name,
		Input:     input,
		Metadata:  metadata,
		Level:     LevelDefault,
		StartTime: time.Now().UTC(),
	}

	err := fn(ctx)

	span.EndTime = time.Now().UTC()
	if err != nil {
		span.Level = LevelError
		span.StatusMessage = err.Error()
	}
	r.export(ctx, span)
	return err
}

// RecordError emits a zero-duration error-level span describing a failure
// that happened outside any traced operation.
func (r *Recorder) RecordError(ctx context.Context, name string, input, metadata map[string]any) {
	if !r.Enabled() {
		return
	}

	now := time.Now().UTC()
	r.export(ctx, Span{
		ID:            uuid.NewString(),
		TraceID:       uuid.NewString(),
		Type:          TypeSpan,
		Name:          name,
		Input:         input,
		Metadata:      metadata,
		Level:         LevelError,
		StatusMessage: "error",
		StartTime:     now,
		EndTime:       now,
	})
}

func (r *Recorder) export(ctx context.Context, span Span) {
	if err := r.exporter.Export(ctx, span); err != nil {
		metrics.SpanExportFailures.Inc()
		if r.log != nil {
			r.log.Warnw("Failed to export trace span", "span", span.Name, "error", err)
		}
	}
}
