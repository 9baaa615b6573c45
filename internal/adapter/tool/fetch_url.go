package tool

import (
	"context"
	"encoding/json"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"trivia-research/internal/domain"
	"trivia-research/internal/usecase"
)

// FetchURLTool extracts readable text from a single web page.
type FetchURLTool struct {
	svc    *usecase.Service
	logger *slog.Logger
}

// NewFetchURLTool creates the direct URL extraction tool.
func NewFetchURLTool(svc *usecase.Service, logger *slog.Logger) *FetchURLTool {
	return &FetchURLTool{svc: svc, logger: logger}
}

func (t *FetchURLTool) Name() string { return "fetch_trivia_from_url" }
func (t *FetchURLTool) Description() string {
	return "Fetch and extract readable text content from a specific URL for trivia research."
}

func (t *FetchURLTool) Schema() domain.ToolSchema {
	return domain.ToolSchema{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters: json.RawMessage(`{
			"type": "object",
			"properties": {
				"url": {"type": "string", "description": "The URL to fetch content from"}
			},
			"required": ["url"]
		}`),
	}
}

type fetchURLParams struct {
	URL string `json:"url"`
}

func (t *FetchURLTool) Execute(ctx context.Context, params json.RawMessage) (*domain.ToolResult, error) {
	return Execute(ctx, "tool.fetch_trivia_from_url", t.logger, params,
		func(ctx context.Context, span trace.Span, p fetchURLParams) (any, error) {
			if err := ValidateAll(
				RequireField("url", p.URL),
				ValidateURL("url", p.URL),
			); err != nil {
				return ErrResult("%v", err)
			}
			return t.svc.URLReport(ctx, p.URL)
		},
	)
}
