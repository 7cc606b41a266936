package worker

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// HTTPServer runs an http.Handler as a supervised worker with graceful
// shutdown on context cancellation.
type HTTPServer struct {
	Addr    string
	Handler http.Handler
}

func (w *HTTPServer) Start(ctx context.Context) error {
	srv := &http.Server{Addr: w.Addr, Handler: w.Handler}

	go func() {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutCtx)
	}()

	slog.Info("http server listening", "addr", w.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
