package recommend

import (
	"context"

	"github.com/kailas-cloud/feedrank/internal/domain/article"
	"github.com/kailas-cloud/feedrank/internal/domain/query"
)

// NewsFetcher retrieves one bounded batch of candidate articles for a query,
// or generic headlines in fallback mode.
type NewsFetcher interface {
	FetchArticles(ctx context.Context, q query.Query, apiKey string) ([]article.Candidate, error)
}
