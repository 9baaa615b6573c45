package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"trivia-research/internal/domain"
)

type fakeTool struct {
	name      string
	gotParams json.RawMessage
	result    *domain.ToolResult
	err       error
}

func (f *fakeTool) Name() string        { return f.name }
func (f *fakeTool) Description() string { return "fake" }
func (f *fakeTool) Schema() domain.ToolSchema {
	return domain.ToolSchema{
		Name:        f.name,
		Description: "fake",
		Parameters:  json.RawMessage(`{"type":"object"}`),
	}
}
func (f *fakeTool) Execute(ctx context.Context, params json.RawMessage) (*domain.ToolResult, error) {
	f.gotParams = params
	return f.result, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func textOf(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) != 1 {
		t.Fatalf("content blocks = %d, want 1", len(result.Content))
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content[0] is %T, want TextContent", result.Content[0])
	}
	return text.Text
}

func TestToolHandler_Success(t *testing.T) {
	ft := &fakeTool{name: "research_trivia_topic", result: &domain.ToolResult{Content: "the report"}}
	handler := toolHandler(ft, testLogger())

	result, err := handler(context.Background(), callRequest(map[string]any{"topic": "apollo"}))
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if result.IsError {
		t.Fatal("unexpected error result")
	}
	if textOf(t, result) != "the report" {
		t.Errorf("text = %q", textOf(t, result))
	}

	// Arguments pass through as the tool's raw params.
	var params map[string]string
	if err := json.Unmarshal(ft.gotParams, &params); err != nil {
		t.Fatalf("params: %v", err)
	}
	if params["topic"] != "apollo" {
		t.Errorf("params = %v", params)
	}
}

func TestToolHandler_ErrorResult(t *testing.T) {
	ft := &fakeTool{name: "t", result: &domain.ToolResult{IsError: true, Content: "'topic' is required"}}
	handler := toolHandler(ft, testLogger())

	result, err := handler(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result on the wire")
	}
	if textOf(t, result) != "'topic' is required" {
		t.Errorf("text = %q", textOf(t, result))
	}
}

func TestToolHandler_ExecuteError(t *testing.T) {
	// Execution errors become error results, never protocol errors.
	ft := &fakeTool{name: "t", err: errors.New("internal failure")}
	handler := toolHandler(ft, testLogger())

	result, err := handler(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("handler must not return a protocol error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result")
	}
}

func TestNew_RegistersTools(t *testing.T) {
	tools := []domain.Tool{
		&fakeTool{name: "a", result: &domain.ToolResult{Content: "x"}},
		&fakeTool{name: "b", result: &domain.ToolResult{Content: "y"}},
	}

	srv := New("trivia-research", "1.0.0", tools, testLogger())
	if srv == nil || srv.mcp == nil {
		t.Fatal("expected a constructed server")
	}
}
