package util //nolint:revive // package name util hosts shared formatting helpers used across TUI views

import (
	"strings"
	"time"
)

// FormatDate formats a timestamp for list display. Returns "—" for the zero
// time, which the remote store sends for never-published drafts.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("2006-01-02")
}

// Truncate shortens s to max runes, appending an ellipsis when it was cut.
// Titles come from user input and can be arbitrarily long; list rows are
// one terminal line each.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= max {
		return string(runes)
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
