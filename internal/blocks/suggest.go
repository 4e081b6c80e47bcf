package blocks

import "strings"

// closestMatch returns the candidate nearest to value by edit distance,
// compared case-insensitively. Candidates further than a third of their
// own length (at least one edit) are not considered close.
func closestMatch(value string, candidates []string) (string, bool) {
	best, bestDist := "", -1
	v := strings.ToLower(value)
	for _, c := range candidates {
		d := levenshtein(v, strings.ToLower(c))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 {
		return "", false
	}
	limit := max(1, len([]rune(best))/3)
	if bestDist > limit {
		return "", false
	}
	return best, true
}

// levenshtein computes the edit distance between a and b over runes.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	s1, s2 := []rune(a), []rune(b)

	prev := make([]int, len(s2)+1)
	cur := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(s1); i++ {
		cur[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(s2)]
}
