package boltkv

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/Cbush039/book-review-app/lib/kv"
	"github.com/Cbush039/book-review-app/lib/kv/kvtest"
)

func Test(t *testing.T) {
	counter := 0
	kvtest.RunStoreTests(t, "BoltKV", func() (kv.Store, error) {
		counter++
		return NewBoltStore(filepath.Join(t.TempDir(), fmt.Sprintf("store-%d.db", counter)))
	})
}

// Data written through the store must be readable after a close and reopen
// of the same file.
func TestReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")

	store, err := NewBoltStore(path)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}

	if err := store.Set("persistent-key", []byte("persistent-value")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := NewBoltStore(path)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer reopened.Close()

	value, loaded, err := reopened.Get("persistent-key")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !loaded {
		t.Fatalf("Expected key to survive reopen")
	}
	if string(value) != "persistent-value" {
		t.Errorf("Expected persistent-value, got %s", value)
	}
}

func TestOpenInvalidPath(t *testing.T) {
	_, err := NewBoltStore(filepath.Join(t.TempDir(), "missing-dir", "store.db"))
	if err == nil {
		t.Fatalf("Expected open to fail for a nonexistent directory")
	}
	if !kv.IsUnavailable(err) {
		t.Errorf("Expected a StorageUnavailable error, got: %v", err)
	}
}
