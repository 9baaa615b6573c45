package tool

import (
	"context"
	"encoding/json"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"trivia-research/internal/domain"
	"trivia-research/internal/usecase"
)

// EntertainmentTool searches movie, TV, music, and awards trivia.
type EntertainmentTool struct {
	svc    *usecase.Service
	logger *slog.Logger
}

// NewEntertainmentTool creates the entertainment trivia tool.
func NewEntertainmentTool(svc *usecase.Service, logger *slog.Logger) *EntertainmentTool {
	return &EntertainmentTool{svc: svc, logger: logger}
}

func (t *EntertainmentTool) Name() string { return "search_entertainment_trivia" }
func (t *EntertainmentTool) Description() string {
	return "Search for entertainment trivia: movies, TV shows, music, and awards. Category hints scope the queries."
}

func (t *EntertainmentTool) Schema() domain.ToolSchema {
	return domain.ToolSchema{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters: json.RawMessage(`{
			"type": "object",
			"properties": {
				"query": {"type": "string", "description": "What to look up (e.g. 'Titanic', 'Taylor Swift')"},
				"category": {"type": "string", "description": "Optional category hint: movie, tv, music, oscar, emmy"}
			},
			"required": ["query"]
		}`),
	}
}

type entertainmentParams struct {
	Query    string `json:"query"`
	Category string `json:"category,omitempty"`
}

func (t *EntertainmentTool) Execute(ctx context.Context, params json.RawMessage) (*domain.ToolResult, error) {
	return Execute(ctx, "tool.search_entertainment_trivia", t.logger, params,
		func(ctx context.Context, span trace.Span, p entertainmentParams) (any, error) {
			if err := RequireField("query", p.Query); err != nil {
				return ErrResult("%v", err)
			}
			return t.svc.EntertainmentReport(ctx, p.Category, p.Query), nil
		},
	)
}
