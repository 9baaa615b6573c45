package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"trivia-research/internal/domain"
)

// ParseMonthDay parses a strict "MM-DD" date override. Anything else
// — wrong shape, non-numeric, or an impossible calendar day — is
// rejected with a user-facing message and no collaborator is called.
func ParseMonthDay(s string) (month, day int, err error) {
	bad := func() error {
		return fmt.Errorf("date format should be MM-DD (e.g., 12-25): %w", domain.ErrInvalidInput)
	}

	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 2 {
		return 0, 0, bad()
	}
	month, merr := strconv.Atoi(parts[0])
	day, derr := strconv.Atoi(parts[1])
	if merr != nil || derr != nil {
		return 0, 0, bad()
	}
	if !validMonthDay(month, day) {
		return 0, 0, bad()
	}
	return month, day, nil
}

// ParseWeekStart parses a strict "YYYY-MM-DD" week anchor.
func ParseWeekStart(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("date format should be YYYY-MM-DD (e.g., 2025-01-15): %w", domain.ErrInvalidInput)
	}
	return t, nil
}

// validMonthDay checks the pair against a leap year so 02-29 passes
// (the feed is year-agnostic) while 13-45 and friends fail.
func validMonthDay(month, day int) bool {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	t := time.Date(2000, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return int(t.Month()) == month && t.Day() == day
}
