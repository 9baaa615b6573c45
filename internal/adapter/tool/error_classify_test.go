package tool

import (
	"errors"
	"fmt"
	"testing"

	"trivia-research/internal/domain"
)

func TestClassifyToolError_Nil(t *testing.T) {
	if classifyToolError(nil) {
		t.Error("expected nil error to be non-retryable")
	}
}

func TestClassifyToolError_RetryableSentinels(t *testing.T) {
	sentinels := []struct {
		name     string
		sentinel error
	}{
		{"ErrUpstream", domain.ErrUpstream},
		{"ErrTimeout", domain.ErrTimeout},
	}
	for _, tt := range sentinels {
		t.Run(tt.name, func(t *testing.T) {
			if !classifyToolError(tt.sentinel) {
				t.Errorf("expected %s to be retryable", tt.name)
			}
		})
	}
}

func TestClassifyToolError_WrappedRetryableSentinels(t *testing.T) {
	wrapped := fmt.Errorf("day feed for 12-25: %w", domain.ErrUpstream)
	if !classifyToolError(wrapped) {
		t.Error("expected wrapped ErrUpstream to be retryable")
	}

	doubleWrapped := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", domain.ErrTimeout))
	if !classifyToolError(doubleWrapped) {
		t.Error("expected double-wrapped ErrTimeout to be retryable")
	}
}

func TestClassifyToolError_PermanentSentinels(t *testing.T) {
	permanents := []struct {
		name     string
		sentinel error
	}{
		{"ErrToolNotFound", domain.ErrToolNotFound},
		{"ErrInvalidInput", domain.ErrInvalidInput},
		{"ErrParse", domain.ErrParse},
		{"ErrConfigLoad", domain.ErrConfigLoad},
	}
	for _, tt := range permanents {
		t.Run(tt.name, func(t *testing.T) {
			if classifyToolError(tt.sentinel) {
				t.Errorf("expected %s to be non-retryable (permanent)", tt.name)
			}
		})
	}
}

func TestClassifyToolError_StringPatterns(t *testing.T) {
	retryables := []struct {
		name string
		err  string
	}{
		{"connection refused", "dial tcp 127.0.0.1:443: connection refused"},
		{"connection reset", "read tcp 10.0.0.1:443: connection reset by peer"},
		{"no such host", "dial tcp: lookup en.wikipedia.org: no such host"},
		{"timeout", "http: request timeout after 15s"},
		{"deadline exceeded", "context deadline exceeded"},
		{"service unavailable", "HTTP 503: service unavailable"},
		{"too many requests", "HTTP 429: too many requests"},
		{"circuit open", "day feed circuit open: upstream unavailable"},
	}
	for _, tt := range retryables {
		t.Run(tt.name, func(t *testing.T) {
			if !classifyToolError(errors.New(tt.err)) {
				t.Errorf("expected %q to be retryable", tt.err)
			}
		})
	}
}

func TestClassifyToolError_NonRetryableStrings(t *testing.T) {
	permanents := []struct {
		name string
		err  string
	}{
		{"bad date", "date format should be MM-DD (e.g., 12-25): invalid input"},
		{"missing field", "'topic' is required"},
		{"generic error", "something completely unexpected happened"},
		{"empty message", ""},
	}
	for _, tt := range permanents {
		t.Run(tt.name, func(t *testing.T) {
			if classifyToolError(errors.New(tt.err)) {
				t.Errorf("expected %q to be non-retryable", tt.err)
			}
		})
	}
}

func TestClassifyToolError_DomainErrorWithRetryableSentinel(t *testing.T) {
	derr := domain.NewDomainError("OnThisDay.Feed", domain.ErrUpstream, "HTTP 502")
	if !classifyToolError(derr) {
		t.Error("expected DomainError wrapping ErrUpstream to be retryable")
	}
}
