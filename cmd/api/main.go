//	@title			Paimon Cloud Storage API
//	@version		1.0.0
//	@description	Gateway for uploading files to cloud storage providers.
//
//	@host		localhost:8080
//	@BasePath	/

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/paimon/gateway/internal/config"
	"github.com/paimon/gateway/internal/logger"
	"github.com/paimon/gateway/internal/provider"
	"github.com/paimon/gateway/internal/staging"
	"github.com/paimon/gateway/internal/upload"

	_ "github.com/paimon/gateway/docs/swagger"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if err := os.MkdirAll(cfg.TempUploadDir, 0o700); err != nil {
		zlog.Fatalw("scratch directory init failed", "dir", cfg.TempUploadDir, "error", err)
	}
	if abs, err := filepath.Abs(cfg.TempUploadDir); err == nil {
		zlog.Infow("scratch directory ready", "dir", abs)
	}

	store := staging.NewStore(cfg.TempUploadDir, zlog)
	registry := provider.NewRegistry(cfg, zlog)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      upload.NewRouter(cfg, zlog, store, registry),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		zlog.Infow("server listening", "addr", cfg.Addr())
		zlog.Infow("swagger UI available", "url", "http://localhost:"+cfg.Port+"/swagger/")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatalw("server error", "error", err)
		}
	}()

	<-quit
	zlog.Info("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zlog.Fatalw("forced shutdown", "error", err)
	}

	zlog.Info("server stopped")
}
