// Package api exposes the pattern parsers over HTTP.
//
// Routes:
//
//	GET  /healthz                  liveness and build version
//	GET  /v1/formats               supported formats
//	POST /v1/parse/{format}        parse the request body
//
// The parse route accepts the raw pattern file as the request body and the
// query parameters normalize and refresh (booleans). Successful responses
// carry the descriptor; failures carry {"code","message","line"} with 422
// for parse errors, 404 for unknown formats and 400 for unusable requests.
//
// Every response has an X-Request-ID header. A client-supplied ID is echoed,
// otherwise a random UUID is generated.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/lifeparse/pkg/buildinfo"
	errs "github.com/matzehuels/lifeparse/pkg/errors"
	pkgio "github.com/matzehuels/lifeparse/pkg/io"
	"github.com/matzehuels/lifeparse/pkg/observability"
	"github.com/matzehuels/lifeparse/pkg/pipeline"
)

// RequestIDHeader carries the per-request identifier.
const RequestIDHeader = "X-Request-ID"

// MaxBodySize bounds the pattern file accepted by the parse route.
const MaxBodySize = 8 << 20

// Server serves the HTTP API on top of a pipeline runner.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

// New returns a server that parses with runner. A nil logger uses log.Default().
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, logger: logger}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.health)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/formats", s.formats)
		r.Post("/parse/{format}", s.parse)
	})
	return r
}

// =============================================================================
// Middleware
// =============================================================================

// requestID assigns the request ID and a request-scoped logger.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := withRequestID(r.Context(), id)
		ctx = withLogger(ctx, s.logger.With("request_id", id))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// observe logs each request and reports it to the HTTP hooks.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		duration := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, status, duration)
		loggerFrom(r.Context(), s.logger).Info("request",
			"method", r.Method, "path", r.URL.Path, "status", status, "bytes", ww.BytesWritten(), "duration", duration)
	})
}

// =============================================================================
// Handlers
// =============================================================================

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: buildinfo.Version})
}

type formatResponse struct {
	Name    string   `json:"name"`
	Version string   `json:"version"`
	Aliases []string `json:"aliases"`
}

func (s *Server) formats(w http.ResponseWriter, r *http.Request) {
	out := make([]formatResponse, 0, len(s.runner.Formats))
	for _, f := range s.runner.Formats {
		out = append(out, formatResponse{Name: f.Name, Version: f.Version, Aliases: f.Aliases})
	}
	writeJSON(w, http.StatusOK, out)
}

type parseResponse struct {
	Format   string          `json:"format"`
	CacheHit bool            `json:"cache_hit"`
	Pattern  json.RawMessage `json:"pattern"`
}

func (s *Server) parse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := loggerFrom(ctx, s.logger)

	format, err := s.runner.Format(chi.URLParam(r, "format"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	normalize, err := boolParam(r, "normalize")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	refresh, err := boolParam(r, "refresh")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodySize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge,
				errs.New(errs.ErrCodeInvalidInput, "body exceeds %d bytes", tooLarge.Limit))
			return
		}
		writeError(w, http.StatusBadRequest, errs.Wrap(errs.ErrCodeInvalidInput, err, "read body"))
		return
	}

	res, err := s.runner.Parse(ctx, pipeline.Options{
		Format:    format.Name,
		Source:    "request " + RequestID(ctx),
		Input:     body,
		Normalize: normalize,
		Refresh:   refresh,
		Logger:    logger,
	})
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	data, err := pkgio.MarshalDescriptor(res.Descriptor)
	if err != nil {
		writeError(w, http.StatusInternalServerError, errs.Wrap(errs.ErrCodeInternal, err, "encode descriptor"))
		return
	}
	writeJSON(w, http.StatusOK, parseResponse{Format: res.Format.Name, CacheHit: res.CacheHit, Pattern: data})
}

// =============================================================================
// Helpers
// =============================================================================

func boolParam(r *http.Request, name string) (bool, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errs.New(errs.ErrCodeInvalidInput, "query parameter %s: %q is not a boolean", name, v)
	}
	return b, nil
}

// statusFor maps a parse failure onto an HTTP status.
func statusFor(err error) int {
	switch errs.GetCode(err) {
	case errs.ErrCodeMalformedLine, errs.ErrCodeCoordinateOutOfRange, errs.ErrCodeInvalidFileFormat:
		return http.StatusUnprocessableEntity
	case errs.ErrCodeUnsupported:
		return http.StatusNotFound
	case errs.ErrCodeInvalidInput, errs.ErrCodeIO:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

type errorResponse struct {
	Code    errs.Code `json:"code"`
	Message string    `json:"message"`
	Line    int       `json:"line,omitempty"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	resp := errorResponse{Code: errs.GetCode(err), Message: errs.UserMessage(err)}
	if resp.Code == "" {
		resp.Code = errs.ErrCodeInternal
	}
	if line, ok := errs.LineOf(err); ok {
		resp.Line = line
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
