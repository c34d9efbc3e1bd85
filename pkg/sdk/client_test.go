package feedrank

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRecommend_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/recommend" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("news_api_key"); got != "news-key" {
			t.Errorf("news_api_key = %q", got)
		}
		if _, _, err := r.FormFile("file"); err != nil {
			t.Errorf("file part missing: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"title":"A","description":"first","url":"https://a","score":0.9},
			{"title":"B","description":"second","url":"https://b","score":0.5}
		]`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	articles, err := client.Recommend(context.Background(), []byte(`{}`), "news-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("got %d articles, want 2", len(articles))
	}
	if articles[0].Title != "A" || articles[0].Score != 0.9 {
		t.Errorf("first article = %+v", articles[0])
	}
}

func TestRecommend_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer service-key" {
			t.Errorf("Authorization = %q", got)
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := New(srv.URL, WithAPIKey("service-key"))
	if _, err := client.Recommend(context.Background(), []byte(`{}`), "news-key"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRecommend_DetailMapsToSentinel(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		detail   string
		sentinel error
	}{
		{"invalid archive", http.StatusBadRequest, "Invalid JSON file", ErrInvalidArchive},
		{"no hashtags", http.StatusBadRequest, "No hashtags found in TikTok file", ErrNoHashtags},
		{"no usable hashtags", http.StatusBadRequest, "No usable hashtag texts detected", ErrNoUsableHashtags},
		{"no articles", http.StatusInternalServerError, "No news articles returned", ErrNoArticles},
		{"news api", http.StatusInternalServerError, "NewsAPI error: Invalid API key", ErrNewsAPI},
		{"embedding", http.StatusBadGateway, "embedding provider error", ErrEmbeddingProviderError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"detail":"` + tt.detail + `"}`))
			}))
			defer srv.Close()

			client := New(srv.URL)
			_, err := client.Recommend(context.Background(), []byte(`{}`), "news-key")
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.sentinel)
			}

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *APIError, got %T", err)
			}
			if apiErr.StatusCode != tt.status || apiErr.Detail != tt.detail {
				t.Errorf("APIError = %+v", apiErr)
			}
		})
	}
}

func TestRecommend_UnknownDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"internal error"}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	_, err := client.Recommend(context.Background(), []byte(`{}`), "news-key")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Detail != "internal error" {
		t.Errorf("Detail = %q", apiErr.Detail)
	}
	for _, sentinel := range []error{ErrInvalidArchive, ErrNoHashtags, ErrNewsAPI} {
		if errors.Is(err, sentinel) {
			t.Errorf("unexpected sentinel match: %v", sentinel)
		}
	}
}

func TestRecommend_NonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable\n"))
	}))
	defer srv.Close()

	client := New(srv.URL)
	_, err := client.Recommend(context.Background(), []byte(`{}`), "news-key")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Detail != "upstream unavailable" {
		t.Errorf("Detail = %q", apiErr.Detail)
	}
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"status":"degraded","checks":{"embedding":"error"}}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	status, err := client.Health(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.Status != "degraded" {
		t.Errorf("Status = %q", status.Status)
	}
	if status.Checks["embedding"] != "error" {
		t.Errorf("Checks = %v", status.Checks)
	}
}

func TestRecommend_ConnectionError(t *testing.T) {
	client := New("http://127.0.0.1:1", WithHTTPClient(&http.Client{}))
	if _, err := client.Recommend(context.Background(), []byte(`{}`), "news-key"); err == nil {
		t.Fatal("expected connection error")
	}
}
