package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"paper-summarizer/internal/config"
	"paper-summarizer/internal/handler"

	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout    = 15 * time.Second
	cachePurgeInterval = time.Minute
)

func main() {
	if err := run(); err != nil {
		log.Printf("Server failed: %v", err)
		os.Exit(1)
	}
}

func run() error {
	// Load environment variables from api.env / .env
	loaded, err := config.LoadEnvFiles(config.DefaultEnvFiles...)
	if err != nil {
		log.Printf("Warning: env file could not be loaded: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Wiring
	container, err := config.NewContainer(ctx)
	if err != nil {
		return fmt.Errorf("startup: %w", err)
	}
	defer func() {
		if err := container.Close(); err != nil {
			container.Logger.Error("Failed to close model backend", err)
		}
	}()
	container.Logger.Info("Environment loaded", "files", loaded)

	// Handlers
	summaryHandler := handler.NewSummaryHandler(
		container.Pipeline,
		container.Config.GetMaxFileSize(),
		container.Logger,
	)

	authMiddleware := handler.NewAuthMiddleware(
		container.Config.GetAccessToken(),
		container.Logger,
	)

	// Router
	router := handler.NewRouter(
		summaryHandler,
		authMiddleware.Middleware,
		container.Config.GetAllowedOrigins(),
		container.Logger,
	)

	server := &http.Server{
		Addr:              ":" + container.Config.GetServerPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		container.Logger.Info("Server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Expired extractions are dropped even when nobody asks for them again
	g.Go(func() error {
		ticker := time.NewTicker(cachePurgeInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				if n := container.Cache.Purge(); n > 0 {
					container.Logger.Debug("Purged expired extractions", "count", n, "remaining", container.Cache.Len())
				}
			}
		}
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		container.Logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		container.Logger.Error("Server stopped with error", err)
		return err
	}

	container.Logger.Info("Server exited")
	return nil
}
