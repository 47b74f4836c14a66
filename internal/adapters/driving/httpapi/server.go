package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/butch-garage/showroom/internal/logger"
)

// shutdownTimeout bounds graceful shutdown.
const shutdownTimeout = 10 * time.Second

// Serve runs the API on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, ports *Ports) error {
	handler, err := NewRouter(ports)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("httpapi: shutdown: %v", err)
		}
	}()

	logger.Info("HTTP API listening on %s", addr)
	err = httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
