package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julianstephens/levos/internal/logger"
	"github.com/julianstephens/levos/internal/server"
)

type ServeCmd struct {
	Addr string `help:"HTTP listen address; overrides the config file."`
}

func (c *ServeCmd) Run(ctx *Context) error {
	addr := ctx.Config.Listen
	if c.Addr != "" {
		addr = c.Addr
	}

	var accessLog io.Writer
	if ctx.Config.Debug {
		accessLog = os.Stderr
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      server.New(ctx.Catalog).Router(ctx.Config.AllowedOrigins, accessLog),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting API server", "addr", addr)
		fmt.Printf("Listening on %s\n", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case <-sigCtx.Done():
		logger.Info("shutting down API server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
	}
	return nil
}
