package tool

import (
	"context"
	"encoding/json"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"trivia-research/internal/domain"
	"trivia-research/internal/usecase"
)

// SportsTool searches team, player, and championship trivia.
type SportsTool struct {
	svc    *usecase.Service
	logger *slog.Logger
}

// NewSportsTool creates the sports trivia tool.
func NewSportsTool(svc *usecase.Service, logger *slog.Logger) *SportsTool {
	return &SportsTool{svc: svc, logger: logger}
}

func (t *SportsTool) Name() string { return "search_sports_trivia" }
func (t *SportsTool) Description() string {
	return "Search for sports trivia: teams, players, championships, and records. Sport hints scope the queries."
}

func (t *SportsTool) Schema() domain.ToolSchema {
	return domain.ToolSchema{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters: json.RawMessage(`{
			"type": "object",
			"properties": {
				"query": {"type": "string", "description": "What to look up (e.g. 'Michael Jordan', 'Super Bowl')"},
				"sport": {"type": "string", "description": "Optional sport hint: nfl, nba, mlb, nhl, soccer, olympics"}
			},
			"required": ["query"]
		}`),
	}
}

type sportsParams struct {
	Query string `json:"query"`
	Sport string `json:"sport,omitempty"`
}

func (t *SportsTool) Execute(ctx context.Context, params json.RawMessage) (*domain.ToolResult, error) {
	return Execute(ctx, "tool.search_sports_trivia", t.logger, params,
		func(ctx context.Context, span trace.Span, p sportsParams) (any, error) {
			if err := RequireField("query", p.Query); err != nil {
				return ErrResult("%v", err)
			}
			return t.svc.SportsReport(ctx, p.Sport, p.Query), nil
		},
	)
}
