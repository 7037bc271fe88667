// SPDX-License-Identifier: MIT

package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

// MetricsPath is where Serve mounts the handler.
const MetricsPath = "/metrics"

const shutdownTimeout = 5 * time.Second

// Serve exposes r on addr until ctx is done, then shuts the server down.
// It returns nil after a clean shutdown.
func Serve(ctx context.Context, addr string, r *Recorder) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("metrics: listen %s: %w", addr, err)
	}

	return serve(ctx, ln, r)
}

func serve(ctx context.Context, ln net.Listener, r *Recorder) error {
	mux := http.NewServeMux()
	mux.Handle(MetricsPath, r.Handler())
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("metrics: serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("metrics: shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics: serve: %w", err)
	}

	return nil
}
