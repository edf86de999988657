package plan

import (
	"regexp"
	"strings"

	"github.com/alexanderramin/learnplan/internal/domain"
)

// minRepeatLen is the shortest cleaned text that counts as a repeat. Short
// fragments collide too easily to mean anything.
const minRepeatLen = 10

var ordinalMarker = regexp.MustCompile(`\b(day|week|month|study|learn|practice|continue)\s+\d+:?\s*`)

// IsRepetitive reports whether two entries of a tier say the same thing once
// ordinal markers such as "Day 3:" are stripped. It is a quality heuristic;
// callers decide what to do with a repetitive tier.
func IsRepetitive(entries []domain.TaskEntry) bool {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		text := cleanTaskText(e.Tasks)
		if len(text) <= minRepeatLen {
			continue
		}
		if _, dup := seen[text]; dup {
			return true
		}
		seen[text] = struct{}{}
	}
	return false
}

func cleanTaskText(tasks []string) string {
	joined := strings.ToLower(strings.Join(tasks, " "))
	return strings.TrimSpace(ordinalMarker.ReplaceAllString(joined, ""))
}
