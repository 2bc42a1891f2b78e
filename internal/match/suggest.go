package match

// DefaultThreshold is the minimum similarity for a suggestion.
const DefaultThreshold = 0.7

// Suggest returns the candidate most similar to name, provided its similarity
// is at least threshold. Exact matches are not suggestions and are skipped.
// Ties keep the earlier candidate.
func Suggest(name string, candidates []string, threshold float64) (string, bool) {
	best := ""
	bestScore := -1.0

	for _, c := range candidates {
		if c == name {
			continue
		}

		score := Similarity(name, c)
		if score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore < threshold {
		return "", false
	}

	return best, true
}
