// Package chi implements the HTTP surface: the recommend endpoint plus
// health and metrics.
package chi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/feedrank/internal/domain"
	"github.com/kailas-cloud/feedrank/internal/domain/article"
	healthuc "github.com/kailas-cloud/feedrank/internal/usecase/health"
	recommenduc "github.com/kailas-cloud/feedrank/internal/usecase/recommend"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server exposes the recommendation pipeline over HTTP.
type Server struct {
	recommend      *recommenduc.Service
	health         *healthuc.Service
	logger         *zap.Logger
	maxUploadBytes int64
	errorHandlers  []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	recommend *recommenduc.Service,
	health *healthuc.Service,
	maxUploadBytes int64,
	logger *zap.Logger,
) *Server {
	s := &Server{
		recommend:      recommend,
		health:         health,
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
	}
	s.errorHandlers = []errorHandler{
		newsAPIHandler,
		sentinelHandler(domain.ErrInvalidArchive, http.StatusBadRequest),
		sentinelHandler(domain.ErrNoHashtags, http.StatusBadRequest),
		sentinelHandler(domain.ErrNoUsableHashtags, http.StatusBadRequest),
		sentinelHandler(domain.ErrNoArticles, http.StatusInternalServerError),
		sentinelHandler(domain.ErrNoUsableArticles, http.StatusInternalServerError),
		sentinelHandler(domain.ErrNewsAPI, http.StatusInternalServerError),
		sentinelHandler(domain.ErrEmbeddingProviderError, http.StatusBadGateway),
	}
	return s
}

// Routes registers the API routes on the router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/recommend", s.Recommend)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// scoredResponse is one ranked article in the response body.
type scoredResponse struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	Score       float64 `json:"score"`
}

// detailResponse is the error payload shape.
type detailResponse struct {
	Detail string `json:"detail"`
}

// Recommend handles POST /recommend: multipart upload of the activity archive
// plus the caller's news API key, returning the ranked article list.
func (s *Server) Recommend(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	apiKey := r.FormValue("news_api_key")
	if apiKey == "" {
		writeError(w, http.StatusBadRequest, "news_api_key form field is required")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file form field is required")
		return
	}
	defer func() { _ = file.Close() }()

	rawArchive, err := io.ReadAll(io.LimitReader(file, s.maxUploadBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	ranked, err := s.recommend.Recommend(r.Context(), rawArchive, apiKey)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rankedToResponse(ranked))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func rankedToResponse(ranked []article.Scored) []scoredResponse {
	out := make([]scoredResponse, len(ranked))
	for i, a := range ranked {
		out[i] = scoredResponse{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			Score:       a.Score,
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailResponse{Detail: detail})
}

// sentinelHandler returns an errorHandler that matches a single sentinel
// error and surfaces its message verbatim as the detail string.
func sentinelHandler(sentinel error, status int) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, sentinel.Error())
		return true
	}
}

// newsAPIHandler surfaces the raw upstream response body for provider errors.
func newsAPIHandler(w http.ResponseWriter, err error) bool {
	var apiErr *domain.NewsAPIError
	if !errors.As(err, &apiErr) {
		return false
	}
	writeError(w, http.StatusInternalServerError, apiErr.Error())
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("pipeline error", zap.Error(err))
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error")
}
