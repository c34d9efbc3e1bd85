// Package query builds the news search query from filtered hashtag terms.
package query

import "strings"

// Mode selects between keyword search and generic headline retrieval.
type Mode string

const (
	// Search retrieves articles matching the keyword query.
	Search Mode = "search"
	// Fallback retrieves generic headlines when no usable terms remain.
	Fallback Mode = "fallback"
)

// Query is the retrieval instruction handed to the news collaborator.
type Query struct {
	mode  Mode
	terms []string
}

// Build creates a Search query joining terms with OR, or a Fallback query
// when no terms are given. Pure decision function, no I/O.
func Build(terms []string) Query {
	if len(terms) == 0 {
		return Query{mode: Fallback}
	}
	return Query{mode: Search, terms: terms}
}

// Mode returns the retrieval mode.
func (q Query) Mode() Mode { return q.mode }

// IsFallback reports whether generic headline retrieval should be used.
func (q Query) IsFallback() bool { return q.mode == Fallback }

// Terms returns the query terms in first-occurrence order.
func (q Query) Terms() []string { return q.terms }

// String renders the keyword query. URL encoding is the transport's concern.
func (q Query) String() string {
	return strings.Join(q.terms, " OR ")
}
