package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestSQLite(t *testing.T, quota int64) *SQLite {
	t.Helper()
	dir := t.TempDir()
	s, err := NewSQLite(filepath.Join(dir, "test.db"), quota)
	if err != nil {
		t.Fatalf("create storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func implementations(t *testing.T, quota int64) map[string]Storage {
	return map[string]Storage{
		"sqlite": newTestSQLite(t, quota),
		"memory": NewMemory(quota),
	}
}

func TestSetAndGet(t *testing.T) {
	ctx := context.Background()
	for name, s := range implementations(t, 0) {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := s.GetItem(ctx, "missing"); err != nil || ok {
				t.Fatalf("get missing: ok=%v err=%v", ok, err)
			}

			if err := s.SetItem(ctx, "k", "v1"); err != nil {
				t.Fatalf("set: %v", err)
			}
			if err := s.SetItem(ctx, "k", "v2"); err != nil {
				t.Fatalf("overwrite: %v", err)
			}

			got, ok, err := s.GetItem(ctx, "k")
			if err != nil || !ok {
				t.Fatalf("get: ok=%v err=%v", ok, err)
			}
			if got != "v2" {
				t.Errorf("expected 'v2', got %q", got)
			}

			n, err := s.Usage(ctx)
			if err != nil {
				t.Fatalf("usage: %v", err)
			}
			if n != 3 {
				t.Errorf("expected usage 3, got %d", n)
			}
		})
	}
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	for name, s := range implementations(t, 0) {
		t.Run(name, func(t *testing.T) {
			s.SetItem(ctx, "k", "v")
			if err := s.RemoveItem(ctx, "k"); err != nil {
				t.Fatalf("remove: %v", err)
			}
			if _, ok, _ := s.GetItem(ctx, "k"); ok {
				t.Error("expected key to be gone")
			}
			if err := s.RemoveItem(ctx, "k"); err != nil {
				t.Errorf("remove absent: %v", err)
			}
		})
	}
}

func TestQuotaExceeded(t *testing.T) {
	ctx := context.Background()
	for name, s := range implementations(t, 16) {
		t.Run(name, func(t *testing.T) {
			if err := s.SetItem(ctx, "a", "1234"); err != nil {
				t.Fatalf("set within quota: %v", err)
			}

			err := s.SetItem(ctx, "b", strings.Repeat("x", 20))
			if !errors.Is(err, ErrQuotaExceeded) {
				t.Fatalf("expected ErrQuotaExceeded, got %v", err)
			}
			if _, ok, _ := s.GetItem(ctx, "b"); ok {
				t.Error("rejected write must not be stored")
			}

			// Replacing a key only counts the new value.
			if err := s.SetItem(ctx, "a", strings.Repeat("y", 15)); err != nil {
				t.Errorf("replace within quota: %v", err)
			}
		})
	}
}

func TestDBPathCreation(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "sub", "dir", "test.db")
	s, err := NewSQLite(dbPath, 0)
	if err != nil {
		t.Fatalf("create storage: %v", err)
	}
	s.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("expected db file to be created")
	}
}

func TestSQLitePersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	s, err := NewSQLite(dbPath, 0)
	if err != nil {
		t.Fatalf("create storage: %v", err)
	}
	s.SetItem(ctx, "design-token-studio", `{"version":1}`)
	s.Close()

	s, err = NewSQLite(dbPath, 0)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	got, ok, _ := s.GetItem(ctx, "design-token-studio")
	if !ok || got != `{"version":1}` {
		t.Errorf("expected stored record, got %q (ok=%v)", got, ok)
	}
}
