// Package archive parses the exported activity file and extracts hashtag names.
package archive

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kailas-cloud/feedrank/internal/domain"
)

// export mirrors the activity archive shape. Every level defaults to its zero
// value when absent, matching the export format's optional nesting.
type export struct {
	YourActivity struct {
		Hashtag struct {
			HashtagList []record `json:"HashtagList"`
		} `json:"Hashtag"`
	} `json:"Your Activity"`
}

// record is one hashtag entry in the export.
type record struct {
	HashtagName string `json:"HashtagName"`
}

// ExtractHashtags parses the raw archive and returns the trimmed hashtag
// names in export order. Casing and wording are preserved since these texts
// feed the embedding model.
//
// Gates, in order: invalid JSON -> ErrInvalidArchive, empty hashtag list ->
// ErrNoHashtags, all names empty or whitespace -> ErrNoUsableHashtags.
func ExtractHashtags(raw []byte) ([]string, error) {
	var doc export
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidArchive, err)
	}

	records := doc.YourActivity.Hashtag.HashtagList
	if len(records) == 0 {
		return nil, domain.ErrNoHashtags
	}

	names := make([]string, 0, len(records))
	for _, r := range records {
		name := strings.TrimSpace(r.HashtagName)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, domain.ErrNoUsableHashtags
	}

	return names, nil
}
