package usecase

import "strings"

// Report layout constants shared by all request types.
var (
	majorDivider = strings.Repeat("=", 50)
	minorDivider = strings.Repeat("-", 30)
)

// report accumulates output lines for one request.
type report struct {
	lines []string
}

func newReport(title string) *report {
	return &report{lines: []string{title, majorDivider, ""}}
}

func (r *report) add(lines ...string) {
	r.lines = append(r.lines, lines...)
}

// section starts a new titled section with the minor divider.
func (r *report) section(title string) {
	r.add(title, minorDivider)
}

// bullets appends each line as a bullet item.
func (r *report) bullets(lines []string) {
	for _, line := range lines {
		r.add("• " + line)
	}
}

// finish appends the closing divider and status line, and joins.
func (r *report) finish(status string) string {
	r.add("", majorDivider, status)
	return strings.Join(r.lines, "\n")
}

// clip truncates s to at most n runes.
func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
