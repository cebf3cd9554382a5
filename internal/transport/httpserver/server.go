package httpserver

import (
	"log/slog"
	"net"
	"net/http"

	"diet-profile-go/internal/config"
	"diet-profile-go/pkg/logger"
)

// NewServer binds handler to the configured port. Errors raised inside
// net/http itself (TLS handshakes, panics outside chi) go to log at error.
func NewServer(cfg config.HTTPConfig, handler http.Handler, log logger.Logger) *http.Server {
	return &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		ErrorLog:          logger.StdLog(log, slog.LevelError),
	}
}
