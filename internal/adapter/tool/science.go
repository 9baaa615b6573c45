package tool

import (
	"context"
	"encoding/json"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"trivia-research/internal/domain"
	"trivia-research/internal/usecase"
)

// ScienceTool searches discovery and invention trivia.
type ScienceTool struct {
	svc    *usecase.Service
	logger *slog.Logger
}

// NewScienceTool creates the science trivia tool.
func NewScienceTool(svc *usecase.Service, logger *slog.Logger) *ScienceTool {
	return &ScienceTool{svc: svc, logger: logger}
}

func (t *ScienceTool) Name() string { return "search_science_trivia" }
func (t *ScienceTool) Description() string {
	return "Search for science trivia: discoveries, inventions, space, and nature. Field hints scope the queries."
}

func (t *ScienceTool) Schema() domain.ToolSchema {
	return domain.ToolSchema{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters: json.RawMessage(`{
			"type": "object",
			"properties": {
				"query": {"type": "string", "description": "What to look up (e.g. 'black holes', 'penicillin')"},
				"field": {"type": "string", "description": "Optional field hint: space, biology, chemistry, physics, tech"}
			},
			"required": ["query"]
		}`),
	}
}

type scienceParams struct {
	Query string `json:"query"`
	Field string `json:"field,omitempty"`
}

func (t *ScienceTool) Execute(ctx context.Context, params json.RawMessage) (*domain.ToolResult, error) {
	return Execute(ctx, "tool.search_science_trivia", t.logger, params,
		func(ctx context.Context, span trace.Span, p scienceParams) (any, error) {
			if err := RequireField("query", p.Query); err != nil {
				return ErrResult("%v", err)
			}
			return t.svc.ScienceReport(ctx, p.Field, p.Query), nil
		},
	)
}
