package tool

import (
	"context"
	"encoding/json"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"trivia-research/internal/domain"
	"trivia-research/internal/usecase"
)

// TodayTool builds the filtered daily trivia digest.
type TodayTool struct {
	svc    *usecase.Service
	logger *slog.Logger
}

// NewTodayTool creates the daily digest tool.
func NewTodayTool(svc *usecase.Service, logger *slog.Logger) *TodayTool {
	return &TodayTool{svc: svc, logger: logger}
}

func (t *TodayTool) Name() string { return "trivia_for_today" }
func (t *TodayTool) Description() string {
	return "Get trivia for today's date: celebrity birthdays, historical events, and notable deaths, filtered for Western pop-culture relevance."
}

func (t *TodayTool) Schema() domain.ToolSchema {
	return domain.ToolSchema{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters: json.RawMessage(`{
			"type": "object",
			"properties": {
				"date_override": {"type": "string", "description": "Optional date override in MM-DD format (e.g. '12-25'). Defaults to today."}
			}
		}`),
	}
}

type todayParams struct {
	DateOverride string `json:"date_override,omitempty"`
}

func (t *TodayTool) Execute(ctx context.Context, params json.RawMessage) (*domain.ToolResult, error) {
	return Execute(ctx, "tool.trivia_for_today", t.logger, params,
		func(ctx context.Context, span trace.Span, p todayParams) (any, error) {
			report, err := t.svc.DailyReport(ctx, p.DateOverride)
			if err != nil {
				return ErrResult("%v", err)
			}
			return report, nil
		},
	)
}
