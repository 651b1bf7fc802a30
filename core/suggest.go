package core

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the candidate closest to id, or "" when nothing is close
// enough to be a likely typo.
func Suggest(id string, candidates []string) string {
	best := ""
	bestDist := -1
	needle := strings.ToLower(id)
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(needle, strings.ToLower(c))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist > max(2, len(id)/3) {
		return ""
	}
	return best
}
