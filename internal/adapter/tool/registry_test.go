package tool

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"trivia-research/internal/domain"
)

type stubTool struct {
	name string
}

func (s *stubTool) Name() string        { return s.name }
func (s *stubTool) Description() string { return "stub" }
func (s *stubTool) Schema() domain.ToolSchema {
	return domain.ToolSchema{Name: s.name, Description: "stub", Parameters: json.RawMessage(`{"type":"object"}`)}
}
func (s *stubTool) Execute(ctx context.Context, params json.RawMessage) (*domain.ToolResult, error) {
	return &domain.ToolResult{Content: "ok"}, nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&stubTool{name: "research_trivia_topic"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := r.Get("research_trivia_topic")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name() != "research_trivia_topic" {
		t.Errorf("name = %q", got.Name())
	}
}

func TestRegistry_DuplicateRejected(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&stubTool{name: "dup"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := r.Register(&stubTool{name: "dup"}); err == nil {
		t.Error("expected duplicate registration to fail")
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()
	_, err := r.Get("bogus")
	if !errors.Is(err, domain.ErrToolNotFound) {
		t.Errorf("expected ErrToolNotFound, got %v", err)
	}
}

func TestRegistry_ListAndSchemas(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubTool{name: "a"})
	r.Register(&stubTool{name: "b"})

	if len(r.List()) != 2 {
		t.Errorf("list = %d, want 2", len(r.List()))
	}
	if len(r.Schemas()) != 2 {
		t.Errorf("schemas = %d, want 2", len(r.Schemas()))
	}
}
