package localstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func newTestStorage(t *testing.T) *FileStorage {
	t.Helper()
	return NewFileStorage(filepath.Join(t.TempDir(), "store", "session.json"))
}

func TestFileStorage_SetGetDelete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	if _, found, err := s.Get(ctx, "session"); err != nil || found {
		t.Fatalf("expected empty store, found=%v err=%v", found, err)
	}

	if err := s.Set(ctx, "session", []byte(`{"id":1}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, found, err := s.Get(ctx, "session")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found || string(raw) != `{"id":1}` {
		t.Fatalf("unexpected value: found=%v raw=%s", found, raw)
	}

	if err := s.Delete(ctx, "session"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, found, _ := s.Get(ctx, "session"); found {
		t.Fatalf("expected key to be gone")
	}
	if err := s.Delete(ctx, "session"); err != nil {
		t.Fatalf("deleting a missing key should be a no-op, got %v", err)
	}
}

func TestFileStorage_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	ctx := context.Background()

	if err := NewFileStorage(path).Set(ctx, "session", []byte(`"v"`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, found, err := NewFileStorage(path).Get(ctx, "session")
	if err != nil || !found {
		t.Fatalf("expected value after reopen, found=%v err=%v", found, err)
	}
	if string(raw) != `"v"` {
		t.Fatalf("unexpected value: %s", raw)
	}
}

func TestFileStorage_CorruptFileTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("not json at all"), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := NewFileStorage(path)
	ctx := context.Background()

	if _, found, err := s.Get(ctx, "session"); err != nil || found {
		t.Fatalf("corrupt store must read as empty, found=%v err=%v", found, err)
	}
	if err := s.Set(ctx, "session", []byte(`1`)); err != nil {
		t.Fatalf("writing over a corrupt store must succeed, got %v", err)
	}
}

func TestFileStorage_KeysAreIndependent(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	if err := s.Set(ctx, "a", []byte(`1`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Set(ctx, "b", []byte(`2`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Delete(ctx, "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, found, err := s.Get(ctx, "b")
	if err != nil || !found || string(raw) != `2` {
		t.Fatalf("expected b untouched, found=%v raw=%s err=%v", found, raw, err)
	}
}
