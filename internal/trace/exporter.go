package trace

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	ingestionPath    = "/api/public/ingestion"
	exporterTimeout  = 5 * time.Second
	eventSpanCreate  = "span-create"
	eventGenerations = "generation-create"
)

// LangfuseExporter posts spans to a Langfuse-compatible ingestion endpoint,
// one batch per span, authenticated with the public/secret key pair.
type LangfuseExporter struct {
	client *resty.Client
}

func NewLangfuseExporter(host, publicKey, secretKey string) *LangfuseExporter {
	client := resty.New().
		SetBaseURL(strings.TrimRight(host, "/")).
		SetBasicAuth(publicKey, secretKey).
		SetTimeout(exporterTimeout)
	return &LangfuseExporter{client: client}
}

type ingestionEvent struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Body      Span   `json:"body"`
}

type ingestionBatch struct {
	Batch []ingestionEvent `json:"batch"`
}

func (e *LangfuseExporter) Export(ctx context.Context, span Span) error {
	eventType := eventSpanCreate
	if span.Type == TypeGeneration {
		eventType = eventGenerations
	}

	batch := ingestionBatch{Batch: []ingestionEvent{{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Body:      span,
	}}}

	resp, err := e.client.R().
		SetContext(ctx).
		SetBody(batch).
		Post(ingestionPath)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("ingestion returned status %d", resp.StatusCode())
	}
	return nil
}
