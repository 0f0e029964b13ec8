package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenMemory(t *testing.T) {
	for _, path := range []string{"", MemoryPath} {
		store, err := Open(path)
		if err != nil {
			t.Fatalf("Open(%q) failed: %v", path, err)
		}
		if err := store.Set("k", "v"); err != nil {
			t.Fatalf("Set() failed: %v", err)
		}
		if v, ok, _ := store.Get("k"); !ok || v != "v" {
			t.Errorf("Get() = %q, %v; expected \"v\", true", v, ok)
		}
		store.Close()
	}
}

func TestStoreKV(t *testing.T) {
	store := openTestStore(t)
	testKV(t, store)
}

func TestMemoryStoreKV(t *testing.T) {
	testKV(t, NewMemoryStore())
}

func testKV(t *testing.T, kv KV) {
	t.Helper()

	if _, ok, err := kv.Get("missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok %v, err %v; expected not found", ok, err)
	}

	if err := kv.Set("key", `{"score":1}`); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := kv.Set("key", `{"score":2}`); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}

	v, ok, err := kv.Get("key")
	if err != nil || !ok {
		t.Fatalf("Get() = ok %v, err %v", ok, err)
	}
	if v != `{"score":2}` {
		t.Errorf("Get() = %q, expected overwritten value", v)
	}

	if err := kv.Remove("key"); err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}
	if _, ok, _ := kv.Get("key"); ok {
		t.Error("key still present after Remove()")
	}
	if err := kv.Remove("key"); err != nil {
		t.Errorf("Remove() of missing key = %v, expected nil", err)
	}
}

func TestStoreSessions(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []float64{100, 50, 200} {
		id, err := store.SaveSession("square", score, 2, 1500*time.Millisecond)
		if err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
		if _, err := uuid.Parse(id); err != nil {
			t.Errorf("session id %q is not a UUID: %v", id, err)
		}
	}
	if _, err := store.SaveSession("pulse", 500, 1, 0); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	sessions, err := store.TopSessions("square", 10)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("Expected 3 sessions, got %d", len(sessions))
	}

	// Should be sorted descending
	for i, expected := range []float64{200, 100, 50} {
		if sessions[i].Score != expected {
			t.Errorf("sessions[%d].Score = %v, expected %v", i, sessions[i].Score, expected)
		}
	}
	if sessions[0].Level != 2 || sessions[0].Duration != 1500*time.Millisecond {
		t.Errorf("sessions[0] = %+v, expected level 2 and 1.5s", sessions[0])
	}

	all, err := store.TopSessions("", 2)
	if err != nil {
		t.Fatalf("TopSessions(all) failed: %v", err)
	}
	if len(all) != 2 || all[0].ContentID != "pulse" {
		t.Errorf("TopSessions(all) = %+v, expected pulse first and limit 2", all)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("square")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("BestScore() on empty = %v, expected 0", best)
	}

	store.SaveSession("square", 10.5, 1, 0)
	store.SaveSession("square", 30, 1, 0)

	best, err = store.BestScore("square")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 30 {
		t.Errorf("BestScore() = %v, expected 30", best)
	}
}

func TestStoreContentStats(t *testing.T) {
	store := openTestStore(t)
	store.SaveSession("square", 10, 1, 0)
	store.SaveSession("square", 30, 1, 0)
	store.SaveSession("pulse", 5, 1, 0)

	stats, err := store.ContentStats()
	if err != nil {
		t.Fatalf("ContentStats() failed: %v", err)
	}
	sq, ok := stats["square"]
	if !ok {
		t.Fatal("missing square stats")
	}
	if sq.Sessions != 2 || sq.BestScore != 30 || sq.AvgScore != 20 {
		t.Errorf("square stats = %+v", sq)
	}
	if len(stats) != 2 {
		t.Errorf("Expected stats for 2 contents, got %d", len(stats))
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)
	store.SaveSession("square", 10, 1, 0)
	store.SaveSession("pulse", 20, 1, 0)

	if err := store.ClearSessions("square"); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}
	if s, _ := store.TopSessions("square", 10); len(s) != 0 {
		t.Errorf("Expected no square sessions, got %d", len(s))
	}
	if s, _ := store.TopSessions("pulse", 10); len(s) != 1 {
		t.Errorf("pulse sessions should survive, got %d", len(s))
	}

	if err := store.ClearSessions(""); err != nil {
		t.Fatalf("ClearSessions(all) failed: %v", err)
	}
	if s, _ := store.TopSessions("", 10); len(s) != 0 {
		t.Errorf("Expected empty history, got %d", len(s))
	}
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "persist.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.Set("become-pm-game-data", `{"score":1}`)
	store.SaveSession("square", 42, 1, 0)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if v, ok, _ := store.Get("become-pm-game-data"); !ok || v != `{"score":1}` {
		t.Errorf("Get() after reopen = %q, %v", v, ok)
	}
	if best, _ := store.BestScore("square"); best != 42 {
		t.Errorf("BestScore() after reopen = %v, expected 42", best)
	}
}
