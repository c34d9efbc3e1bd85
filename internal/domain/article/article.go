// Package article holds the candidate and scored article types.
package article

// Candidate is a retrieved news article before scoring. A JSON null or
// absent title/description decodes to the empty string, which marks the
// article unusable.
type Candidate struct {
	Title       string
	Description string
	URL         string
}

// Usable reports whether the article has both a title and a description.
func (c Candidate) Usable() bool {
	return c.Title != "" && c.Description != ""
}

// CombinedText is the transient embedding input: title, one space, description.
func (c Candidate) CombinedText() string {
	return c.Title + " " + c.Description
}

// FilterUsable drops articles lacking a title or description, preserving
// retrieval order.
func FilterUsable(articles []Candidate) []Candidate {
	usable := make([]Candidate, 0, len(articles))
	for _, a := range articles {
		if a.Usable() {
			usable = append(usable, a)
		}
	}
	return usable
}

// Scored is a candidate with its cosine similarity against the interest
// profile attached.
type Scored struct {
	Candidate
	Score float64
}
