package textutil

import (
	"regexp"
	"strings"

	"github.com/antzucaro/matchr"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeSpace folds every run of whitespace (including non-breaking
// spaces, which the source site sprinkles into captions) into one space.
func NormalizeSpace(text string) string {
	text = strings.ReplaceAll(text, "\u00a0", " ")
	text = whitespaceRegex.ReplaceAllString(text, " ")
	return strings.Trim(text, " ")
}

// NormalizeLabel makes column captions comparable: case and spacing
// are ignored.
func NormalizeLabel(label string) string {
	return strings.ToLower(NormalizeSpace(label))
}

func MatchName(name string, matchers []string) bool {
	name = NormalizeLabel(name)
	for _, m := range matchers {
		if strings.Contains(name, NormalizeLabel(m)) {
			return true
		}
	}
	return false
}

// Closest returns the candidate most similar to `name` by jaro-winkler
// similarity along with its score, "" if there are no candidates.
func Closest(name string, candidates []string) (string, float64) {
	name = NormalizeLabel(name)

	best := ""
	bestScore := -1.0
	for _, c := range candidates {
		score := matchr.JaroWinkler(name, NormalizeLabel(c), false)
		if score > bestScore {
			best = c
			bestScore = score
		}
	}
	if best == "" {
		return "", 0
	}
	return best, bestScore
}
