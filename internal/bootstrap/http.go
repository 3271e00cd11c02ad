package bootstrap

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/pinehollow/storefront/config"
	httpx "github.com/pinehollow/storefront/internal/http"
)

// StartHTTPServer creates and starts the HTTP server. Returns the server
// instance for graceful shutdown.
func StartHTTPServer(cfg config.AppConfig, services ServiceContainer, logger *slog.Logger) *http.Server {
	if logger == nil {
		logger = slog.Default()
	}

	router := httpx.NewRouter(
		httpx.RouterServices{
			AdminAuth:  services.AdminAuth,
			BearerAuth: services.BearerAuth,
			Notifier:   services.Notifier,
			Content:    services.Content,
		},
		httpx.RouterConfig{
			CookieDomain: cfg.HTTP.CookieDomain,
			SessionTTL:   cfg.Auth.SessionTTL,
			IsDev:        cfg.IsDev,
		},
		logger,
	)

	// Order: Recover -> Logging -> Router
	handler := httpx.Recover(logger)(httpx.Logging(logger)(router))

	addr := cfg.HTTP.Addr
	if addr == "" {
		addr = ":8080"
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
		}
	}()

	return server
}

// ShutdownHTTPServer gracefully shuts down the HTTP server.
func ShutdownHTTPServer(ctx context.Context, server *http.Server, logger *slog.Logger) error {
	if server == nil {
		return nil
	}

	if logger != nil {
		logger.Info("shutting down HTTP server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if logger != nil {
		logger.Info("HTTP server stopped")
	}

	return nil
}
