package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/sheaf-tools/sheaf/internal/cliconfig"
)

func testConfig(t *testing.T) cliconfig.Config {
	t.Helper()
	cfg := cliconfig.DefaultConfig()
	cfg.WorkDir = t.TempDir()
	cfg.HistoryPath = filepath.Join(t.TempDir(), "history.db")
	return cfg
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.ZipLevel = 42
	if _, err := New(cfg, nil); err == nil {
		t.Fatal("expected error for invalid zip level")
	}
}

func TestRunOnceMissingInput(t *testing.T) {
	a, err := New(testConfig(t), nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer a.Close()

	missing := filepath.Join(t.TempDir(), "absent.pdf")
	if _, err := a.RunOnce(context.Background(), []string{missing}); err == nil {
		t.Fatal("expected error for missing input file")
	}

	// The failed job must still land in history.
	recs, err := a.History(context.Background(), 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(recs) != 1 || recs[0].Status != "error" {
		t.Errorf("history = %+v, want one error record", recs)
	}
}

func TestHistoryDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.HistoryPath = ""
	a, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer a.Close()

	recs, err := a.History(context.Background(), 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if recs != nil {
		t.Errorf("records = %v, want nil when history is off", recs)
	}
}

func TestWatchRequiresDirectory(t *testing.T) {
	a, err := New(testConfig(t), nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer a.Close()

	if err := a.Watch(context.Background()); err == nil {
		t.Fatal("expected error without a watch directory")
	}
}

func TestWatchStopsOnCancel(t *testing.T) {
	cfg := testConfig(t)
	cfg.WatchDir = t.TempDir()
	a, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer a.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Watch(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("watch returned %v, want nil after cancel", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}
