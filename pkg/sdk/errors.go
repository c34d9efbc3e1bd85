package feedrank

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/feedrank/internal/domain"
)

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrInvalidArchive         = domain.ErrInvalidArchive
	ErrNoHashtags             = domain.ErrNoHashtags
	ErrNoUsableHashtags       = domain.ErrNoUsableHashtags
	ErrNoArticles             = domain.ErrNoArticles
	ErrNoUsableArticles       = domain.ErrNoUsableArticles
	ErrNewsAPI                = domain.ErrNewsAPI
	ErrEmbeddingProviderError = domain.ErrEmbeddingProviderError
)

// APIError is a non-2xx response from the service.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("feedrank: %s (status %d)", e.Detail, e.StatusCode)
}

// Unwrap maps well-known detail strings back to domain sentinels so
// callers can use errors.Is without string comparison.
func (e *APIError) Unwrap() error {
	for _, sentinel := range []error{
		ErrInvalidArchive,
		ErrNoHashtags,
		ErrNoUsableHashtags,
		ErrNoArticles,
		ErrNoUsableArticles,
		ErrEmbeddingProviderError,
	} {
		if e.Detail == sentinel.Error() {
			return sentinel
		}
	}
	if strings.HasPrefix(e.Detail, ErrNewsAPI.Error()) {
		return ErrNewsAPI
	}
	return nil
}
