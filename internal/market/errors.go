package market

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// UnknownTagError reports an enumeration tag that matches no variant.
type UnknownTagError struct {
	Kind  string
	Tag   string
	Valid []string
}

func (e *UnknownTagError) Error() string {
	msg := fmt.Sprintf("unknown %s %q", e.Kind, e.Tag)
	if hint := e.Suggestion(); hint != "" {
		return msg + fmt.Sprintf(" (did you mean %q?)", hint)
	}
	return msg + " (valid: " + strings.Join(e.Valid, ", ") + ")"
}

// Suggestion returns the closest valid tag, or "" when nothing is close.
// Comparison is case-insensitive so "veryrare" still points at "VeryRare".
func (e *UnknownTagError) Suggestion() string {
	needle := strings.ToLower(strings.TrimSpace(e.Tag))
	if needle == "" {
		return ""
	}
	best := ""
	bestDist := -1
	for _, cand := range e.Valid {
		dist := levenshtein.ComputeDistance(needle, strings.ToLower(cand))
		if dist > suggestionLimit(len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best
}

func suggestionLimit(n int) int {
	switch {
	case n <= 4:
		return 1
	case n <= 8:
		return 2
	default:
		return 3
	}
}
