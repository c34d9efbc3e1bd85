// Package recommend sequences the hashtag-to-ranked-articles pipeline.
package recommend

import (
	"context"
	"fmt"
	"sort"

	"github.com/kailas-cloud/feedrank/internal/domain"
	"github.com/kailas-cloud/feedrank/internal/domain/archive"
	"github.com/kailas-cloud/feedrank/internal/domain/article"
	"github.com/kailas-cloud/feedrank/internal/domain/hashtag"
	"github.com/kailas-cloud/feedrank/internal/domain/query"
	"github.com/kailas-cloud/feedrank/internal/domain/vector"
)

// Service orchestrates one recommendation request. Each invocation is
// stateless and strictly sequential; the first failing gate terminates the
// request with no retries and no partial results.
type Service struct {
	news  NewsFetcher
	embed domain.BatchEmbedder
}

// New creates a recommendation service.
func New(news NewsFetcher, embed domain.BatchEmbedder) *Service {
	return &Service{news: news, embed: embed}
}

// Recommend runs the pipeline: parse archive, build the interest profile,
// build the query, retrieve candidates, score and rank them descending.
func (s *Service) Recommend(
	ctx context.Context, rawArchive []byte, apiKey string,
) ([]article.Scored, error) {
	names, err := archive.ExtractHashtags(rawArchive)
	if err != nil {
		return nil, err
	}

	// The trimmed original names feed the embedding model; normalization is
	// only for query terms.
	profile, err := s.buildProfile(ctx, names)
	if err != nil {
		return nil, err
	}

	q := query.Build(hashtag.Filter(names))

	candidates, err := s.news.FetchArticles(ctx, q, apiKey)
	if err != nil {
		return nil, fmt.Errorf("fetch articles: %w", err)
	}
	if len(candidates) == 0 {
		return nil, domain.ErrNoArticles
	}

	usable := article.FilterUsable(candidates)
	if len(usable) == 0 {
		return nil, domain.ErrNoUsableArticles
	}

	return s.rank(ctx, usable, profile)
}

// buildProfile embeds all hashtag texts in one batch call and mean-pools the
// vectors into the interest profile.
func (s *Service) buildProfile(ctx context.Context, texts []string) ([]float32, error) {
	res, err := s.embed.BatchEmbed(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed hashtags: %w", err)
	}
	if len(res.Embeddings) == 0 {
		return nil, fmt.Errorf("empty hashtag embedding batch: %w", domain.ErrEmbeddingProviderError)
	}
	return vector.Mean(res.Embeddings), nil
}

// rank batch-embeds the combined article texts, scores each against the
// profile by cosine similarity, and sorts descending. The sort is stable so
// equal scores keep retrieval order; the full ranking is returned untruncated.
func (s *Service) rank(
	ctx context.Context, articles []article.Candidate, profile []float32,
) ([]article.Scored, error) {
	texts := make([]string, len(articles))
	for i, a := range articles {
		texts[i] = a.CombinedText()
	}

	res, err := s.embed.BatchEmbed(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed articles: %w", err)
	}
	if len(res.Embeddings) != len(articles) {
		return nil, fmt.Errorf("article embedding batch size mismatch: %w", domain.ErrEmbeddingProviderError)
	}

	scored := make([]article.Scored, len(articles))
	for i, a := range articles {
		scored[i] = article.Scored{
			Candidate: a,
			Score:     vector.Cosine(res.Embeddings[i], profile),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored, nil
}
