package main

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

const (
	suggestMinInput  = 3
	suggestThreshold = 0.5
)

// suggestIngredient returns the previously recorded ingredient closest
// to what the user is typing, or "" when nothing is close enough. An
// exact prefix match wins outright; otherwise candidates are ranked by
// normalized levenshtein distance and accepted below the threshold.
func suggestIngredient(input string, known []string) string {
	in := strings.ToLower(strings.TrimSpace(input))
	if len(in) < suggestMinInput {
		return ""
	}

	best := ""
	bestScore := suggestThreshold
	for _, name := range known {
		cand := strings.ToLower(name)
		if cand == in {
			return ""
		}
		if strings.HasPrefix(cand, in) {
			return name
		}
		score := normalizedDistance(in, cand)
		if score < bestScore {
			best = name
			bestScore = score
		}
	}
	return best
}

func normalizedDistance(a, b string) float64 {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 0
	}
	return float64(levenshtein.ComputeDistance(a, b)) / float64(maxLen)
}
