package middleware

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/vfg2006/pmax-campaign-manager/pkg/apiErrors"
	"github.com/vfg2006/pmax-campaign-manager/pkg/log"
)

const (
	CorrelationHeader = "X-Correlation-ID"
	slowRequest       = 2 * time.Second
)

// LoggingMiddleware tags the request with a correlation id and logs its outcome.
// An incoming X-Correlation-ID is reused, otherwise a new one is generated.
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := correlate(r)
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationHeader, correlationID)

			lrw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(lrw, r)

			elapsed := time.Since(start)
			logger := log.ForContext(ctx).WithFields(log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": lrw.status,
				"duration_ms": elapsed.Milliseconds(),
				"remote_addr": r.RemoteAddr,
			})

			switch {
			case lrw.status >= http.StatusInternalServerError:
				logger.Error("http: request failed")
			case lrw.status >= http.StatusBadRequest:
				logger.Warn("http: request rejected")
			case elapsed > slowRequest:
				logger.Info("http: slow request completed")
			default:
				logger.Debug("http: request completed")
			}
		})
	}
}

func correlate(r *http.Request) (context.Context, string) {
	if id := r.Header.Get(CorrelationHeader); id != "" {
		return log.WithGivenCorrelationID(r.Context(), id), id
	}
	return log.WithCorrelationID(r.Context())
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware turns a panic into a logged 500.
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if recovered := recover(); recovered != nil {
					stack := make([]byte, 4096)
					stack = stack[:runtime.Stack(stack, false)]

					log.ForContext(r.Context()).WithFields(log.Fields{
						"panic":       recovered,
						"method":      r.Method,
						"path":        r.URL.Path,
						"stack_trace": string(stack),
					}).Error("http: unhandled panic")

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "internal server error", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
