package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the domain layer. The taxonomy is deliberately
// small: upstream failures degrade digests rather than fail requests,
// so most call sites only need to distinguish bad input from a dead
// collaborator.
var (
	ErrToolNotFound = errors.New("tool not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUpstream     = errors.New("upstream unavailable")
	ErrParse        = errors.New("unexpected upstream response")
	ErrTimeout      = errors.New("operation timed out")
	ErrConfigLoad   = errors.New("failed to load configuration")
)

// DomainError wraps a sentinel error with context.
type DomainError struct {
	Op     string // operation name (e.g., "Wikipedia.Summary")
	Err    error  // underlying sentinel or wrapped error
	Detail string // human-readable detail
}

func (e *DomainError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *DomainError) Unwrap() error { return e.Err }

// NewDomainError creates a new DomainError.
func NewDomainError(op string, err error, detail string) *DomainError {
	return &DomainError{Op: op, Err: err, Detail: detail}
}

// WrapOp adds operation context to an error using fmt.Errorf wrapping.
// Returns nil if err is nil, enabling idiomatic use: return domain.WrapOp("op", err)
func WrapOp(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

// ErrorCode is a machine-parseable error category for monitoring.
type ErrorCode string

const (
	CodeUnknown      ErrorCode = "UNKNOWN"
	CodeToolNotFound ErrorCode = "TOOL_NOT_FOUND"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeUpstream     ErrorCode = "UPSTREAM_UNAVAILABLE"
	CodeParse        ErrorCode = "PARSE_FAILURE"
	CodeTimeout      ErrorCode = "TIMEOUT"
	CodeConfigLoad   ErrorCode = "CONFIG_LOAD"
)

var errorCodeMap = map[error]ErrorCode{
	ErrToolNotFound: CodeToolNotFound,
	ErrInvalidInput: CodeInvalidInput,
	ErrUpstream:     CodeUpstream,
	ErrParse:        CodeParse,
	ErrTimeout:      CodeTimeout,
	ErrConfigLoad:   CodeConfigLoad,
}

// ErrorCodeOf returns the machine-parseable error code for the given
// error, walking the wrap chain with errors.Is. Returns CodeUnknown if
// no sentinel matches.
func ErrorCodeOf(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}
	for sentinel, code := range errorCodeMap {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return CodeUnknown
}
