package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type stubExporter struct {
	data []byte
	err  error
}

func (s *stubExporter) Export() ([]byte, error) {
	return s.data, s.err
}

func TestBackupWorker_WritesBackup(t *testing.T) {
	dir := t.TempDir()
	w := NewBackupWorker(&stubExporter{data: []byte(`{"tasks":[]}`)}, dir, 5, time.Hour)

	if err := w.writeBackup(); err != nil {
		t.Fatalf("writeBackup: %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "astral-*.json"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("backup files = %d, want 1", len(matches))
	}
	got, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(got) != `{"tasks":[]}` {
		t.Errorf("backup content = %s", got)
	}
}

func TestBackupWorker_WriteFailsOnExportError(t *testing.T) {
	w := NewBackupWorker(&stubExporter{err: errors.New("boom")}, t.TempDir(), 5, time.Hour)

	if err := w.writeBackup(); err == nil {
		t.Error("writeBackup expected error from failed export")
	}
}

func TestBackupWorker_PruneKeepsNewest(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		"astral-20260301T000000Z.json",
		"astral-20260302T000000Z.json",
		"astral-20260303T000000Z.json",
		"astral-20260304T000000Z.json",
	}
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("{}"), 0o644); err != nil {
			t.Fatalf("seed backup: %v", err)
		}
	}

	w := NewBackupWorker(&stubExporter{}, dir, 2, time.Hour)
	if err := w.prune(); err != nil {
		t.Fatalf("prune: %v", err)
	}

	matches, _ := filepath.Glob(filepath.Join(dir, "astral-*.json"))
	if len(matches) != 2 {
		t.Fatalf("surviving backups = %d, want 2", len(matches))
	}
	for _, want := range names[2:] {
		if _, err := os.Stat(filepath.Join(dir, want)); err != nil {
			t.Errorf("newest backup %s pruned", want)
		}
	}
}

func TestBackupWorker_PruneDisabledWhenKeepZero(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"astral-20260301T000000Z.json", "astral-20260302T000000Z.json"} {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("{}"), 0o644); err != nil {
			t.Fatalf("seed backup: %v", err)
		}
	}

	w := NewBackupWorker(&stubExporter{}, dir, 0, time.Hour)
	if err := w.prune(); err != nil {
		t.Fatalf("prune: %v", err)
	}

	matches, _ := filepath.Glob(filepath.Join(dir, "astral-*.json"))
	if len(matches) != 2 {
		t.Errorf("surviving backups = %d, want 2 (retention disabled)", len(matches))
	}
}

func TestBackupWorker_RunStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	w := NewBackupWorker(&stubExporter{data: []byte("{}")}, dir, 5, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}

	// The immediate startup backup should have landed.
	matches, _ := filepath.Glob(filepath.Join(dir, "astral-*.json"))
	if len(matches) != 1 {
		t.Errorf("backup files = %d, want 1", len(matches))
	}
}
