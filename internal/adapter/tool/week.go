package tool

import (
	"context"
	"encoding/json"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"trivia-research/internal/domain"
	"trivia-research/internal/usecase"
)

// WeekTool aggregates trivia highlights for a 7-day window.
type WeekTool struct {
	svc    *usecase.Service
	logger *slog.Logger
}

// NewWeekTool creates the weekly digest tool.
func NewWeekTool(svc *usecase.Service, logger *slog.Logger) *WeekTool {
	return &WeekTool{svc: svc, logger: logger}
}

func (t *WeekTool) Name() string { return "trivia_for_week" }
func (t *WeekTool) Description() string {
	return "Get trivia highlights for a week: top celebrity birthdays and key historical events per day, plus current entertainment news."
}

func (t *WeekTool) Schema() domain.ToolSchema {
	return domain.ToolSchema{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters: json.RawMessage(`{
			"type": "object",
			"properties": {
				"start_date": {"type": "string", "description": "Optional week anchor in YYYY-MM-DD format (e.g. '2025-01-13'). Defaults to the current week's Monday."}
			}
		}`),
	}
}

type weekParams struct {
	StartDate string `json:"start_date,omitempty"`
}

func (t *WeekTool) Execute(ctx context.Context, params json.RawMessage) (*domain.ToolResult, error) {
	return Execute(ctx, "tool.trivia_for_week", t.logger, params,
		func(ctx context.Context, span trace.Span, p weekParams) (any, error) {
			report, err := t.svc.WeeklyReport(ctx, p.StartDate)
			if err != nil {
				return ErrResult("%v", err)
			}
			return report, nil
		},
	)
}
