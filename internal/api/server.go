// Package api exposes the analysis pipeline over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"skylens/internal/analysis"
	"skylens/internal/config"
	"skylens/internal/core"

	"github.com/go-chi/chi/v5"
)

type contextKey string

const loggerContextKey = contextKey("logger")

type Server struct {
	Logger  *slog.Logger
	Config  *config.Config
	Service *analysis.Service

	server *http.Server
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (s *Server) Init(context.Context) error {
	s.Logger = s.Logger.With("component", "api.Server")

	r := chi.NewMux()

	logger := func(ctx context.Context) *slog.Logger {
		return ctx.Value(loggerContextKey).(*slog.Logger)
	}

	r.Use(
		// json content type
		func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				next.ServeHTTP(w, r)
			})
		},

		// request-scoped logger
		func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger := s.Logger.With("method", r.Method, "path", r.URL.Path)
				ctx := context.WithValue(r.Context(), loggerContextKey, logger)
				next.ServeHTTP(w, r.WithContext(ctx))
			})
		},

		// request logging
		func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				start := time.Now()
				sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

				next.ServeHTTP(sw, r)

				logger(r.Context()).Info("request", "duration", time.Since(start), "status", sw.status)
			})
		},

		// panic recovery
		func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				defer func() {
					if err := recover(); err != nil {
						logger(r.Context()).Error("panic recovered", "error", err)
						http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
					}
				}()
				next.ServeHTTP(w, r)
			})
		},
	)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`)) //nolint:errcheck
	})
	r.Get("/v1/analysis/{handle}", s.getAnalysis)

	s.server = &http.Server{
		Handler:           r,
		Addr:              s.Config.Listen,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      2 * time.Minute,
		IdleTimeout:       time.Minute,
	}
	return nil
}

func (s *Server) Run(ctx context.Context) error {
	s.Logger.Info("Starting API server", "addr", s.server.Addr)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.server.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) getAnalysis(w http.ResponseWriter, r *http.Request) {
	req := analysis.Request{
		Handle:      chi.URLParam(r, "handle"),
		Timezone:    r.URL.Query().Get("tz"),
		Locale:      r.URL.Query().Get("locale"),
		WithSummary: r.URL.Query().Get("summary") == "1",
	}

	result, err := s.Service.Analyze(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	json.NewEncoder(w).Encode(result) //nolint:errcheck
}

// writeError maps pipeline errors onto status codes: an unknown handle is
// a distinct 404, upstream failures surface as 502.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, core.ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, core.ErrUpstream):
		status = http.StatusBadGateway
	case errors.Is(err, context.Canceled):
		status = 499 // client closed request
	}

	s.Logger.Error("analysis failed", "path", r.URL.Path, "status", status, "error", err)

	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()}) //nolint:errcheck
}
