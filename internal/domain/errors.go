package domain

import (
	"errors"
	"fmt"
)

// Sentinel messages double as the client-facing detail strings, so their
// wording is part of the API contract.
var (
	// ErrInvalidArchive signals an activity export that is not valid JSON.
	ErrInvalidArchive = errors.New("Invalid JSON file")
	// ErrNoHashtags signals an archive with an empty hashtag list.
	ErrNoHashtags = errors.New("No hashtags found in TikTok file")
	// ErrNoUsableHashtags signals that every hashtag name was empty or whitespace.
	ErrNoUsableHashtags = errors.New("No usable hashtag texts detected")
	// ErrNoArticles signals that the news provider returned zero articles.
	ErrNoArticles = errors.New("No news articles returned")
	// ErrNoUsableArticles signals that every article lacked a title or description.
	ErrNoUsableArticles = errors.New("No usable news articles returned")
	// ErrNewsAPI signals a non-success response from the news provider.
	ErrNewsAPI = errors.New("NewsAPI error")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
)

// NewsAPIError wraps ErrNewsAPI with the upstream status code and raw body.
type NewsAPIError struct {
	StatusCode int
	Body       string
}

func (e *NewsAPIError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNewsAPI.Error(), e.Body)
}

func (e *NewsAPIError) Unwrap() error { return ErrNewsAPI }

// NewNewsAPIError creates a news provider error carrying the raw response body.
func NewNewsAPIError(statusCode int, body string) error {
	return &NewsAPIError{StatusCode: statusCode, Body: body}
}
