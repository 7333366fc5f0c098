// Package worker runs background maintenance loops alongside the server.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// StateExporter defines the store operations needed by the backup worker.
type StateExporter interface {
	Export() ([]byte, error)
}

// BackupWorker writes periodic JSON exports of the app state to disk and
// prunes old ones.
type BackupWorker struct {
	store    StateExporter
	dir      string
	keep     int
	interval time.Duration
}

// NewBackupWorker creates a worker with the given store, target directory,
// retention count, and interval.
func NewBackupWorker(store StateExporter, dir string, keep int, interval time.Duration) *BackupWorker {
	return &BackupWorker{
		store:    store,
		dir:      dir,
		keep:     keep,
		interval: interval,
	}
}

// Run starts the worker loop. Writes a backup immediately on start, then
// on each interval. Respects context cancellation for graceful shutdown.
func (w *BackupWorker) Run(ctx context.Context) {
	slog.Info("worker started",
		"component", "worker",
		"worker", "state-backup",
	)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.backup(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("worker stopped",
				"component", "worker",
				"worker", "state-backup",
				"reason", "context_cancelled",
			)
			return
		case <-ticker.C:
			w.backup(ctx)
		}
	}
}

// backup writes one export and logs any errors.
func (w *BackupWorker) backup(ctx context.Context) {
	if err := w.writeBackup(); err != nil {
		if ctx.Err() != nil {
			return
		}
		slog.Warn("state backup failed",
			"component", "worker",
			"action", "backup_failed",
			"error", err,
		)
		return
	}

	if err := w.prune(); err != nil {
		slog.Warn("backup prune failed",
			"component", "worker",
			"action", "prune_failed",
			"error", err,
		)
	}
}

func (w *BackupWorker) writeBackup() error {
	data, err := w.store.Export()
	if err != nil {
		return fmt.Errorf("export state: %w", err)
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create backup dir: %w", err)
	}

	name := fmt.Sprintf("astral-%s.json", time.Now().UTC().Format("20060102T150405Z"))
	path := filepath.Join(w.dir, name)

	// Write to a temp file first so a crash never leaves a torn backup.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("finalize backup: %w", err)
	}

	slog.Info("state backup written",
		"component", "worker",
		"path", path,
		"bytes", len(data),
	)
	return nil
}

// prune removes the oldest backups beyond the retention count. Timestamped
// names sort chronologically.
func (w *BackupWorker) prune() error {
	if w.keep <= 0 {
		return nil
	}

	matches, err := filepath.Glob(filepath.Join(w.dir, "astral-*.json"))
	if err != nil {
		return err
	}
	if len(matches) <= w.keep {
		return nil
	}

	sort.Strings(matches)
	for _, path := range matches[:len(matches)-w.keep] {
		if err := os.Remove(path); err != nil {
			return err
		}
	}
	return nil
}
