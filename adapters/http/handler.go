// Package http provides the read-only schema API.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/artpar/varmsg/adapters/metrics"
	"github.com/artpar/varmsg/app"
	"github.com/artpar/varmsg/domain/errs"
	"github.com/artpar/varmsg/domain/msgtype"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// SchemaResponse is the JSON form of a resolved descriptor.
type SchemaResponse struct {
	DataType   string `json:"data_type"`
	MD5Sum     string `json:"md5_sum"`
	Definition string `json:"definition"`
}

// ErrorResponse is the JSON form of a failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SchemaHandler serves resolved schema descriptors over HTTP.
type SchemaHandler struct {
	service *app.ResolveService
	logger  zerolog.Logger
	metrics *metrics.Collector
}

// NewSchemaHandler creates a schema API handler.
func NewSchemaHandler(service *app.ResolveService, logger zerolog.Logger, m *metrics.Collector) *SchemaHandler {
	return &SchemaHandler{
		service: service,
		logger:  logger.With().Str("component", "http").Logger(),
		metrics: m,
	}
}

// Router builds the API router.
func (h *SchemaHandler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(h.observe)

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1/schemas", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Get("/{package}/{type}", h.handleResolve)
		r.Get("/{package}/{type}/definition", h.handleDefinition)
	})

	return r
}

func (h *SchemaHandler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *SchemaHandler) handleList(w http.ResponseWriter, r *http.Request) {
	recs, err := h.service.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := make([]SchemaResponse, 0, len(recs))
	for _, rec := range recs {
		resp = append(resp, toResponse(rec.Type))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *SchemaHandler) handleResolve(w http.ResponseWriter, r *http.Request) {
	resolved, ok := h.resolve(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toResponse(resolved))
}

// handleDefinition serves the flattened definition as plain text, the form
// consumed by tools that fingerprint or archive schemas.
func (h *SchemaHandler) handleDefinition(w http.ResponseWriter, r *http.Request) {
	resolved, ok := h.resolve(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(resolved.Definition))
}

func (h *SchemaHandler) resolve(w http.ResponseWriter, r *http.Request) (msgtype.MessageType, bool) {
	dataType := chi.URLParam(r, "package") + "/" + chi.URLParam(r, "type")

	resolved, err := h.service.Resolve(r.Context(), dataType)
	if err != nil {
		h.writeError(w, r, err)
		return msgtype.MessageType{}, false
	}
	if !resolved.IsValid() {
		h.writeError(w, r, &errs.NoSuchDataTypeError{Identifier: dataType})
		return msgtype.MessageType{}, false
	}
	return resolved, true
}

func (h *SchemaHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

// observe records request metrics and logs each request.
func (h *SchemaHandler) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		elapsed := time.Since(start)
		if h.metrics != nil {
			pattern := chi.RouteContext(r.Context()).RoutePattern()
			h.metrics.RequestsTotal.WithLabelValues(r.Method, pattern, httpStatusLabel(ww.Status())).Inc()
			h.metrics.RequestDuration.WithLabelValues(r.Method, pattern).Observe(elapsed.Seconds())
		}
		h.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", elapsed).
			Msg("request")
	})
}

func statusFor(err error) int {
	var (
		invalidType *errs.InvalidMessageTypeError
		noSuchType  *errs.NoSuchDataTypeError
		pkgNotFound *errs.PackageNotFoundError
		fileOpen    *errs.FileOpenError
	)
	switch {
	case errors.As(err, &invalidType), errors.Is(err, errs.ErrInvalidDataType):
		return http.StatusBadRequest
	case errors.As(err, &noSuchType), errors.As(err, &pkgNotFound), errors.As(err, &fileOpen):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func httpStatusLabel(status int) string {
	if status == 0 {
		status = http.StatusOK
	}
	return strconv.Itoa(status)
}

func toResponse(t msgtype.MessageType) SchemaResponse {
	return SchemaResponse{
		DataType:   t.DataType,
		MD5Sum:     t.MD5Sum,
		Definition: t.Definition,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
