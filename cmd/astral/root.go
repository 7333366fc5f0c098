package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/astralhq/astral/internal/api"
	"github.com/astralhq/astral/internal/config"
	"github.com/astralhq/astral/internal/persist"
	"github.com/astralhq/astral/internal/state"
	"github.com/astralhq/astral/internal/suggest"
	"github.com/astralhq/astral/internal/worker"
)

// Version is set at build time via ldflags: -ldflags "-X main.Version=1.0.0"
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "astral",
	Short: "Astral - personal operating system service",
	RunE:  run,
}

func run(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.Info("configuration loaded")

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))
	slog.SetDefault(logger)
	slog.Info("logger initialized", "level", cfg.Log.Level)

	blob, err := persist.NewSQLiteBlob(cfg.Database.Path)
	if err != nil {
		return err
	}
	slog.Info("persistence initialized", "path", cfg.Database.Path)

	store, err := state.New(ctx, blob)
	if err != nil {
		return err
	}
	slog.Info("state loaded", "today", store.Today())

	var suggester suggest.Suggester = suggest.Heuristic{}
	if cfg.Suggest.APIKey != "" {
		suggester = suggest.NewSemantic(suggest.NewOpenAI(cfg.Suggest.APIKey, cfg.Suggest.Model))
		slog.Info("suggester initialized", "model", cfg.Suggest.Model)
	} else {
		slog.Info("suggester initialized", "mode", "heuristic")
	}

	handler := api.NewHandler(store, suggester, cfg.Auth.APIKey, Version,
		cfg.Coach.IgnoredGoalDays, cfg.Coach.HeatmapDays)
	router := api.NewRouter(handler)
	slog.Info("router initialized")

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout),
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout),
	}

	var wg sync.WaitGroup
	backupWorker := worker.NewBackupWorker(store,
		cfg.Worker.BackupDir, cfg.Worker.BackupKeep,
		time.Duration(cfg.Worker.BackupInterval))
	startWorker(ctx, &wg, "state-backup", backupWorker.Run)

	go func() {
		slog.Info("server starting", "address", addr)
		// ErrServerClosed is the expected error when Shutdown() is called
		// gracefully. Anything else is a real failure.
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("shutdown initiated")

	shutdownCtx, shutdownCancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout))
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	wg.Wait()

	if err := blob.Close(); err != nil {
		slog.Error("persistence close error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// startWorker launches a background worker goroutine that respects context
// cancellation. Workers are tracked via WaitGroup for graceful shutdown.
func startWorker(ctx context.Context, wg *sync.WaitGroup, name string, fn func(ctx context.Context)) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		slog.Info("worker started", "worker", name)
		fn(ctx)
		slog.Info("worker stopped", "worker", name)
	}()
}
