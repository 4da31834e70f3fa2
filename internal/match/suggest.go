package match

import (
	"sort"
	"strings"
	"unicode"
)

// DefaultThreshold is the minimum Similarity for a candidate to be suggested.
const DefaultThreshold = 0.6

// NormalizeIdent folds an identifier for fuzzy matching: lower case, no
// separators. "Known_Cases", "knownCases" and "KNOWNCASES" all normalize to
// "knowncases".
func NormalizeIdent(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// Similarity returns a score between 0 and 1 for two identifiers after
// normalization. 1 means identical.
func Similarity(a, b string) float64 {
	na, nb := NormalizeIdent(a), NormalizeIdent(b)
	if na == nb {
		return 1
	}

	longest := max(len([]rune(na)), len([]rune(nb)))

	return 1 - float64(Levenshtein(na, nb))/float64(longest)
}

// Suggest returns the candidates whose Similarity to want is at least
// threshold, best first. Ties keep candidate order. Exact matches of want
// are skipped.
func Suggest(want string, candidates []string, threshold float64) []string {
	type scored struct {
		name  string
		score float64
	}

	var found []scored

	seen := make(map[string]bool)

	for _, c := range candidates {
		if c == want || seen[c] {
			continue
		}

		seen[c] = true

		if s := Similarity(want, c); s >= threshold {
			found = append(found, scored{c, s})
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].score > found[j].score
	})

	res := make([]string, 0, len(found))
	for _, f := range found {
		res = append(res, f.name)
	}

	return res
}
