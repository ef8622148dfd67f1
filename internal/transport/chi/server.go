package chi

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/strindex/internal/domain"
	"github.com/kailas-cloud/strindex/internal/domain/filter"
	logpkg "github.com/kailas-cloud/strindex/internal/logger"
	entryuc "github.com/kailas-cloud/strindex/internal/usecase/entry"
	healthuc "github.com/kailas-cloud/strindex/internal/usecase/health"
	searchuc "github.com/kailas-cloud/strindex/internal/usecase/search"
)

const (
	valueParam       = "string_value"
	defaultBodyLimit = 1 << 20
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server is the HTTP API over the entry, search and health services.
type Server struct {
	entries       *entryuc.Service
	search        *searchuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	maxBodyBytes  int64
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	entries *entryuc.Service,
	search *searchuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		entries:      entries,
		search:       search,
		health:       health,
		logger:       logger,
		maxBodyBytes: defaultBodyLimit,
	}
	s.errorHandlers = []errorHandler{
		filterErrorHandler,
		sentinelHandler(domain.ErrInvalidInput, http.StatusBadRequest, CodeInvalidInput),
		sentinelHandler(domain.ErrAlreadyExists, http.StatusConflict, CodeAlreadyExists),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, CodeNotFound),
		sentinelHandler(domain.ErrUnparseable, http.StatusBadRequest, CodeUnparseableQuery),
		sentinelHandler(domain.ErrConflictingFilters, http.StatusUnprocessableEntity, CodeConflictingFilters),
		sentinelHandler(domain.ErrRateLimited, http.StatusTooManyRequests, CodeRateLimited),
	}
	return s
}

// WithMaxBodyBytes limits request body size.
func (s *Server) WithMaxBodyBytes(n int64) *Server {
	if n > 0 {
		s.maxBodyBytes = n
	}
	return s
}

// Routes registers every endpoint on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Post("/strings", s.CreateString)
	r.Get("/strings", s.ListStrings)
	r.Get("/strings/filter-by-natural-language", s.FilterByNaturalLanguage)
	r.Get("/strings/{"+valueParam+"}", s.GetString)
	r.Delete("/strings/{"+valueParam+"}", s.DeleteString)
}

// CreateString handles POST /strings.
func (s *Server) CreateString(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)

	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, CodeBadRequest, "Request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body")
		return
	}

	raw, ok := body["value"]
	if !ok {
		writeError(w, http.StatusBadRequest, CodeInvalidInput, "Missing or empty 'value' field")
		return
	}

	var value string
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) || json.Unmarshal(raw, &value) != nil {
		writeError(w, http.StatusUnprocessableEntity, CodeInvalidType, `Invalid data type for "value" (must be string)`)
		return
	}

	e, err := s.entries.Create(r.Context(), value)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	logpkg.FromContext(r.Context()).Debug("string created", zap.String("id", e.ID()))
	w.Header().Set("Location", "/strings/"+url.PathEscape(e.Value()))
	writeJSON(w, http.StatusCreated, EntryToResponse(&e))
}

// GetString handles GET /strings/{string_value}.
func (s *Server) GetString(w http.ResponseWriter, r *http.Request) {
	e, err := s.entries.GetByValue(r.Context(), pathValue(r))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, EntryToResponse(&e))
}

// ListStrings handles GET /strings with optional filters.
func (s *Server) ListStrings(w http.ResponseWriter, r *http.Request) {
	f, err := filter.Parse(firstValues(r.URL.Query()))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	found, err := s.entries.List(r.Context(), f)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ListResponse{
		Data:           entriesToResponse(found),
		Count:          len(found),
		FiltersApplied: filtersApplied(f),
	})
}

// FilterByNaturalLanguage handles GET /strings/filter-by-natural-language.
func (s *Server) FilterByNaturalLanguage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("query") {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Missing 'query' parameter")
		return
	}

	in, found, err := s.search.Search(r.Context(), q.Get("query"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, NaturalLanguageResponse{
		Data:             entriesToResponse(found),
		Count:            len(found),
		InterpretedQuery: InterpretationToResponse(in),
	})
}

// DeleteString handles DELETE /strings/{string_value}.
func (s *Server) DeleteString(w http.ResponseWriter, r *http.Request) {
	if err := s.entries.DeleteByValue(r.Context(), pathValue(r)); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:  string(report.Status),
		Checks:  checks,
		Entries: report.Entries,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// pathValue returns the decoded {string_value} segment. chi matches against
// RawPath when the request carries one, so the parameter is still escaped then.
func pathValue(r *http.Request) string {
	v := chi.URLParam(r, valueParam)
	if r.URL.RawPath == "" {
		return v
	}
	if decoded, err := url.PathUnescape(v); err == nil {
		return decoded
	}
	return v
}

// firstValues flattens query parameters, keeping the first value per key.
func firstValues(q url.Values) map[string]string {
	out := make(map[string]string, len(q))
	for k, vs := range q {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidInput,
		domain.ErrAlreadyExists,
		domain.ErrNotFound,
		domain.ErrValidation,
		domain.ErrUnparseable,
		domain.ErrConflictingFilters,
		domain.ErrRateLimited,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// filterErrorHandler reports which filter parameter was rejected.
func filterErrorHandler(w http.ResponseWriter, err error, msg string) bool {
	var fe *domain.FilterError
	if !errors.As(err, &fe) {
		return false
	}
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"code":    CodeValidationFailed,
		"message": msg,
		"param":   fe.Param,
		"reason":  fe.Reason,
	})
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			logpkg.FromContext(r.Context()).Debug("domain error", zap.Error(err))
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
