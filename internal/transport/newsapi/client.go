// Package newsapi implements article retrieval against the NewsAPI v2 HTTP API.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/feedrank/internal/domain"
	"github.com/kailas-cloud/feedrank/internal/domain/article"
	"github.com/kailas-cloud/feedrank/internal/domain/query"
	"github.com/kailas-cloud/feedrank/internal/metrics"
)

// maxErrorBody bounds how much of an upstream error body is surfaced.
const maxErrorBody = 16 << 10

// Client retrieves candidate articles from NewsAPI.
type Client struct {
	http     *http.Client
	baseURL  string
	language string
	pageSize int
	logger   *zap.Logger
}

// Config holds the NewsAPI client settings.
type Config struct {
	BaseURL  string
	Language string
	PageSize int
	Timeout  time.Duration
	Logger   *zap.Logger
}

// NewClient creates a NewsAPI client.
func NewClient(cfg *Config) *Client {
	return &Client{
		http:     &http.Client{Timeout: cfg.Timeout},
		baseURL:  cfg.BaseURL,
		language: cfg.Language,
		pageSize: cfg.PageSize,
		logger:   cfg.Logger,
	}
}

// articleDTO mirrors one entry of the NewsAPI "articles" array. Pointers keep
// null and absent fields distinguishable from empty strings at the wire level;
// both decode to unusable candidates.
type articleDTO struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
}

type responseDTO struct {
	Articles []articleDTO `json:"articles"`
}

// FetchArticles retrieves one page of candidate articles. Search queries hit
// the everything endpoint; fallback mode pulls generic top headlines. Always
// first page, bounded by the configured page size, no pagination.
func (c *Client) FetchArticles(
	ctx context.Context, q query.Query, apiKey string,
) ([]article.Candidate, error) {
	endpoint := c.baseURL + "/everything"
	mode := string(query.Search)
	if q.IsFallback() {
		endpoint = c.baseURL + "/top-headlines"
		mode = string(query.Fallback)
	}

	params := url.Values{}
	if !q.IsFallback() {
		params.Set("q", q.String())
	}
	params.Set("language", c.language)
	params.Set("pageSize", strconv.Itoa(c.pageSize))
	params.Set("page", "1")
	params.Set("apiKey", apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build news request: %w", err)
	}

	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.NewsRequestsTotal.WithLabelValues(mode, "error").Inc()
		return nil, fmt.Errorf("news request failed: %v: %w", err, domain.ErrNewsAPI)
	}
	defer func() { _ = resp.Body.Close() }()

	metrics.NewsRequestDuration.WithLabelValues(mode).Observe(time.Since(start).Seconds())

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		metrics.NewsRequestsTotal.WithLabelValues(mode, strconv.Itoa(resp.StatusCode)).Inc()
		c.logger.Warn("news provider returned error",
			zap.Int("status", resp.StatusCode),
			zap.String("mode", mode),
		)
		return nil, domain.NewNewsAPIError(resp.StatusCode, string(body))
	}

	var parsed responseDTO
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		metrics.NewsRequestsTotal.WithLabelValues(mode, "decode_error").Inc()
		return nil, fmt.Errorf("decode news response: %v: %w", err, domain.ErrNewsAPI)
	}

	metrics.NewsRequestsTotal.WithLabelValues(mode, "200").Inc()

	candidates := make([]article.Candidate, len(parsed.Articles))
	for i, a := range parsed.Articles {
		candidates[i] = article.Candidate{
			Title:       deref(a.Title),
			Description: deref(a.Description),
			URL:         deref(a.URL),
		}
	}
	return candidates, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
