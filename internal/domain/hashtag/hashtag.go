// Package hashtag normalizes and filters raw hashtag names into query terms.
package hashtag

import "strings"

const (
	// MinTokenLen is the shortest normalized token kept for query building.
	MinTokenLen = 3
	// MaxQueryTerms caps how many tokens feed the search query.
	MaxQueryTerms = 5
)

// stoplist holds generic platform noise tokens that carry no topical signal.
var stoplist = map[string]struct{}{
	"fyp":         {},
	"foryou":      {},
	"trending":    {},
	"viral":       {},
	"funny":       {},
	"explore":     {},
	"tiktok":      {},
	"tiktokdance": {},
	"xyzbca":      {},
}

// Normalize lowercases raw and strips every rune that is not an ASCII letter
// or digit. It is total and idempotent; an empty result means the input had
// no usable characters.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range strings.ToLower(raw) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsStop reports whether a normalized token is on the noise stoplist.
func IsStop(token string) bool {
	_, ok := stoplist[token]
	return ok
}

// Filter turns raw hashtag names into an ordered set of query terms:
// normalized, stoplist and short tokens dropped, deduplicated by first
// occurrence, capped at MaxQueryTerms. An empty result is legitimate and
// signals fallback retrieval rather than an error.
func Filter(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	terms := make([]string, 0, MaxQueryTerms)

	for _, name := range names {
		token := Normalize(name)
		if token == "" || IsStop(token) || len(token) < MinTokenLen {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		terms = append(terms, token)
		if len(terms) == MaxQueryTerms {
			break
		}
	}
	return terms
}
