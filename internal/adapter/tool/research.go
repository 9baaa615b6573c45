package tool

import (
	"context"
	"encoding/json"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"trivia-research/internal/domain"
	"trivia-research/internal/usecase"
)

// ResearchTool looks up a free-text trivia topic across the
// encyclopedia and web search sources.
type ResearchTool struct {
	svc    *usecase.Service
	logger *slog.Logger
}

// NewResearchTool creates the topic research tool.
func NewResearchTool(svc *usecase.Service, logger *slog.Logger) *ResearchTool {
	return &ResearchTool{svc: svc, logger: logger}
}

func (t *ResearchTool) Name() string { return "research_trivia_topic" }
func (t *ResearchTool) Description() string {
	return "Research a trivia topic using web search and Wikipedia. Returns facts, history, and interesting details."
}

func (t *ResearchTool) Schema() domain.ToolSchema {
	return domain.ToolSchema{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters: json.RawMessage(`{
			"type": "object",
			"properties": {
				"topic": {"type": "string", "description": "The trivia topic to research (e.g. 'Marilyn Monroe', 'Super Bowl history')"},
				"depth": {"type": "string", "enum": ["normal", "deep"], "description": "Search depth (default: normal)"}
			},
			"required": ["topic"]
		}`),
	}
}

type researchParams struct {
	Topic string `json:"topic"`
	Depth string `json:"depth,omitempty"`
}

func (t *ResearchTool) Execute(ctx context.Context, params json.RawMessage) (*domain.ToolResult, error) {
	return Execute(ctx, "tool.research_trivia_topic", t.logger, params,
		func(ctx context.Context, span trace.Span, p researchParams) (any, error) {
			if err := ValidateAll(
				RequireField("topic", p.Topic),
				ValidateEnum("depth", p.Depth, "normal", "deep"),
			); err != nil {
				return ErrResult("%v", err)
			}
			return t.svc.TopicReport(ctx, p.Topic, p.Depth), nil
		},
	)
}
