package tool

import (
	"context"
	"encoding/json"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"trivia-research/internal/domain"
	"trivia-research/internal/usecase"
)

// GeographyTool searches country, capital, and landmark trivia.
type GeographyTool struct {
	svc    *usecase.Service
	logger *slog.Logger
}

// NewGeographyTool creates the geography trivia tool.
func NewGeographyTool(svc *usecase.Service, logger *slog.Logger) *GeographyTool {
	return &GeographyTool{svc: svc, logger: logger}
}

func (t *GeographyTool) Name() string { return "search_geography_trivia" }
func (t *GeographyTool) Description() string {
	return "Search for geography trivia: countries, capitals, landmarks, and flags."
}

func (t *GeographyTool) Schema() domain.ToolSchema {
	return domain.ToolSchema{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters: json.RawMessage(`{
			"type": "object",
			"properties": {
				"query": {"type": "string", "description": "What to look up (e.g. 'France', 'Mount Everest')"},
				"category": {"type": "string", "description": "Optional category hint: capital, landmark, country, flag"}
			},
			"required": ["query"]
		}`),
	}
}

type geographyParams struct {
	Query    string `json:"query"`
	Category string `json:"category,omitempty"`
}

func (t *GeographyTool) Execute(ctx context.Context, params json.RawMessage) (*domain.ToolResult, error) {
	return Execute(ctx, "tool.search_geography_trivia", t.logger, params,
		func(ctx context.Context, span trace.Span, p geographyParams) (any, error) {
			if err := RequireField("query", p.Query); err != nil {
				return ErrResult("%v", err)
			}
			return t.svc.GeographyReport(ctx, p.Query, p.Category), nil
		},
	)
}
