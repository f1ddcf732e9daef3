// Package chi implements the HTTP transport for the tripdex search
// engine. The engine itself owns no network protocol; this layer is the
// calling surface a UI consumes.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/meridian-travel/tripdex/internal/domain/query"
	"github.com/meridian-travel/tripdex/internal/domain/travel"
	"github.com/meridian-travel/tripdex/internal/logger"
	"github.com/meridian-travel/tripdex/internal/metrics"
	searchuc "github.com/meridian-travel/tripdex/internal/usecase/search"
	"github.com/meridian-travel/tripdex/internal/version"

	"github.com/meridian-travel/tripdex/internal/domain/offer"
)

// Server exposes the search pipeline over HTTP.
type Server struct {
	search     *searchuc.Service
	currencies map[string]float64
	delay      time.Duration
	logger     *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(search *searchuc.Service, log *zap.Logger) *Server {
	return &Server{
		search:     search,
		currencies: map[string]float64{"USD": 1.0},
		logger:     log,
	}
}

// WithCurrencies sets the currency code to conversion rate table.
func (s *Server) WithCurrencies(table map[string]float64) *Server {
	if len(table) > 0 {
		s.currencies = table
	}
	return s
}

// WithSimulatedDelay adds an artificial response delay before each
// search. The engine is instant; the delay is a UX affordance only.
func (s *Server) WithSimulatedDelay(d time.Duration) *Server {
	s.delay = d
	return s
}

// Routes registers the API routes on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get("/v1/search", s.handleSearch)
}

type searchResponse struct {
	Domain  travel.Domain `json:"domain"`
	Count   int           `json:"count"`
	Results []offer.Offer `json:"results"`
}

// handleSearch runs the pipeline for GET /v1/search.
//
// Query parameters: domain, origin, destination, date, guests, class,
// sort, and either currency (a code from the configured table) or
// currency_rate (a raw multiplier).
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	rate, err := s.resolveRate(q.Get("currency"), q.Get("currency_rate"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	guests := 0
	if g := q.Get("guests"); g != "" {
		if guests, err = strconv.Atoi(g); err != nil {
			writeError(w, http.StatusBadRequest, codeValidationFailed, "guests must be an integer")
			return
		}
	}

	sortMode := travel.SortRecommended
	if m := q.Get("sort"); m != "" {
		sortMode = travel.SortMode(m)
		if !sortMode.IsValid() {
			writeError(w, http.StatusBadRequest, codeValidationFailed, "unknown sort mode "+strconv.Quote(m))
			return
		}
	}

	req, err := query.New(
		travel.Domain(q.Get("domain")),
		q.Get("origin"), q.Get("destination"), q.Get("date"),
		rate, guests, q.Get("class"),
	)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	if !s.wait(r) {
		// Client went away during the simulated delay.
		return
	}

	set, err := s.search.Search(r.Context(), &req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	metrics.ObserveSearch(string(set.Domain), set.Len())

	logger.FromContext(r.Context()).Debug("search completed",
		zap.String("domain", string(set.Domain)),
		zap.Int("results", set.Len()),
		zap.String("sort", string(sortMode)),
	)

	set = searchuc.Sort(set, sortMode)
	writeJSON(w, http.StatusOK, searchResponse{
		Domain:  set.Domain,
		Count:   set.Len(),
		Results: set.Offers,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.Version,
	})
}

// resolveRate turns the currency parameters into a price multiplier.
// currency_rate wins when both are supplied.
func (s *Server) resolveRate(code, raw string) (float64, error) {
	if raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil || rate <= 0 {
			return 0, errors.New("currency_rate must be a positive number")
		}
		return rate, nil
	}
	if code != "" {
		rate, ok := s.currencies[code]
		if !ok {
			return 0, errors.New("unknown currency " + strconv.Quote(code))
		}
		return rate, nil
	}
	return query.DefaultCurrencyRate, nil
}

// wait sleeps for the configured simulated delay, honoring request
// cancellation. Returns false if the request context ended first.
func (s *Server) wait(r *http.Request) bool {
	if s.delay <= 0 {
		return true
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-r.Context().Done():
		return false
	case <-t.C:
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, travel.ErrInvalidQuery):
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
	case errors.Is(err, travel.ErrUnsupportedDomain):
		writeError(w, http.StatusBadRequest, codeUnsupportedDomain, err.Error())
	default:
		s.logger.Error("search failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternal, "internal error")
	}
}

// Error response codes.
const (
	codeValidationFailed  = "validation_failed"
	codeUnsupportedDomain = "unsupported_domain"
	codeUnauthorized      = "unauthorized"
	codeInternal          = "internal_error"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
