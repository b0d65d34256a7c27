package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// RequestLogger logs method, path, status, bytes, and duration.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w}
			next.ServeHTTP(sw, r)
			logger.Info("http",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"bytes", sw.bytes,
				"dur", time.Since(start).Round(time.Microsecond),
				"reqID", middleware.GetReqID(r.Context()),
			)
		})
	}
}

// RateLimit rejects requests with 429 once the shared token bucket is empty.
func RateLimit(l *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow() {
				writeJSON(w, http.StatusTooManyRequests, errorResp{Error: "rate limit exceeded"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RouterOptions configures NewRouter. Zero RateLimit disables limiting; nil
// handlers are not mounted.
type RouterOptions struct {
	Logger    *slog.Logger
	RateLimit float64
	Burst     int
	Metrics   http.Handler
	Index     http.Handler
	Static    http.Handler
}

// NewRouter mounts the API under /api with request ids, panic recovery and
// request logging. Rate limiting applies to /api only.
func NewRouter(h *Handler, opts RouterOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer, RequestLogger(logger))

	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}
	if opts.Index != nil {
		r.Method(http.MethodGet, "/", opts.Index)
	}
	if opts.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", opts.Static))
	}
	r.Group(func(r chi.Router) {
		if opts.RateLimit > 0 {
			r.Use(RateLimit(rate.NewLimiter(rate.Limit(opts.RateLimit), max(opts.Burst, 1))))
		}
		h.Register(r)
	})
	return r
}
