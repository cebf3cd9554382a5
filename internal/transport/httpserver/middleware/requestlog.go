package middleware

import (
	"net/http"
	"time"

	"diet-profile-go/pkg/logger"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLogger writes one structured line per request once the handler returns.
// Server errors log at error level and client errors at warn.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				args := []any{
					"method", r.Method,
					"path", r.URL.Path,
					"status", status,
					"bytes", ww.BytesWritten(),
					"duration_ms", time.Since(start).Milliseconds(),
					"remote", r.RemoteAddr,
				}
				if id := chimw.GetReqID(r.Context()); id != "" {
					args = append(args, "request_id", id)
				}

				switch {
				case status >= http.StatusInternalServerError:
					log.Error("http: request", args...)
				case status >= http.StatusBadRequest:
					log.Warn("http: request", args...)
				default:
					log.Info("http: request", args...)
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
