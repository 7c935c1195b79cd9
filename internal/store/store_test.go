package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xonecas/textfield/internal/selection"
)

func openTestStore(t *testing.T, ttl time.Duration) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(dbPath, ttl)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestDraft_SaveLoad(t *testing.T) {
	s := openTestStore(t, 0)

	if _, ok, err := s.Load("notes"); ok || err != nil {
		t.Fatalf("empty store: ok=%v err=%v", ok, err)
	}

	want := Draft{
		Name:      "notes",
		Text:      "hello\nworld",
		Selection: selection.Range{Start: 2, End: 8},
		Reversed:  true,
	}
	if err := s.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok, err := s.Load("notes")
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if got.Text != want.Text || got.Selection != want.Selection || got.Reversed != want.Reversed {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if got.Updated.IsZero() {
		t.Error("Updated not set")
	}
}

func TestDraft_Replace(t *testing.T) {
	s := openTestStore(t, 0)
	for _, text := range []string{"one", "two"} {
		if err := s.Save(Draft{Name: "title", Text: text}); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
	got, _, _ := s.Load("title")
	if got.Text != "two" {
		t.Errorf("got %q, want %q", got.Text, "two")
	}
}

func TestDraft_Delete(t *testing.T) {
	s := openTestStore(t, 0)
	s.Save(Draft{Name: "title", Text: "x"})
	if err := s.Delete("title"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := s.Load("title"); ok {
		t.Error("draft survived Delete")
	}
}

func TestDraft_PurgeStale(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(dbPath, time.Hour)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.Save(Draft{Name: "old", Text: "x", Updated: time.Now().Add(-2 * time.Hour)})
	s.Save(Draft{Name: "new", Text: "y"})
	s.Close()

	s = openReopened(t, dbPath, time.Hour)
	if _, ok, _ := s.Load("old"); ok {
		t.Error("stale draft was not purged")
	}
	if _, ok, _ := s.Load("new"); !ok {
		t.Error("fresh draft was purged")
	}
}

func openReopened(t *testing.T, path string, ttl time.Duration) *Store {
	t.Helper()
	s, err := Open(path, ttl)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNilStore(t *testing.T) {
	var s *Store
	if err := s.Save(Draft{Name: "x"}); err != nil {
		t.Errorf("nil Save: %v", err)
	}
	if _, ok, err := s.Load("x"); ok || err != nil {
		t.Errorf("nil Load: ok=%v err=%v", ok, err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("nil Close: %v", err)
	}
}
