package kvtest

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/Cbush039/book-review-app/lib/kv"
)

// RunStoreTests runs a conformance test suite for a kv.Store implementation.
// The factory must return a fresh, empty store on every call.
func RunStoreTests(t *testing.T, name string, factory kv.Factory) {
	t.Run(name, func(t *testing.T) {
		t.Run("Set&Get", func(t *testing.T) {
			testSetGet(t, mustOpen(t, factory))
		})

		t.Run("Has", func(t *testing.T) {
			testHas(t, mustOpen(t, factory))
		})

		t.Run("Delete", func(t *testing.T) {
			testDelete(t, mustOpen(t, factory))
		})

		t.Run("ValueIsolation", func(t *testing.T) {
			testValueIsolation(t, mustOpen(t, factory))
		})

		t.Run("BinaryValues", func(t *testing.T) {
			testBinaryValues(t, mustOpen(t, factory))
		})

		t.Run("Info", func(t *testing.T) {
			testInfo(t, mustOpen(t, factory))
		})

		t.Run("Snapshot", func(t *testing.T) {
			testSnapshot(t, factory)
		})
	})
}

// --------------------------------------------------------------------------
// Helper functions
// --------------------------------------------------------------------------

func mustOpen(t *testing.T, factory kv.Factory) kv.Store {
	t.Helper()
	store, err := factory()
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return store
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testSetGet(t *testing.T, store kv.Store) {
	defer store.Close()

	testKey := "test-key"
	testValue1 := []byte("test-value1")
	testValue2 := []byte("test-value2")

	if err := store.Set(testKey, testValue1); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	result, loaded, err := store.Get(testKey)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !loaded {
		t.Errorf("Expected key %s to exist after Set", testKey)
	}
	if !bytes.Equal(result, testValue1) {
		t.Errorf("Expected value %s, got %s", testValue1, result)
	}

	// Overwrite
	if err := store.Set(testKey, testValue2); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	result, loaded, err = store.Get(testKey)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !loaded {
		t.Errorf("Expected key %s to exist after overwrite", testKey)
	}
	if !bytes.Equal(result, testValue2) {
		t.Errorf("Expected value %s, got %s", testValue2, result)
	}

	_, loaded, err = store.Get("nonexistent-key")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if loaded {
		t.Errorf("Expected nonexistent key to return loaded=false")
	}
}

func testHas(t *testing.T, store kv.Store) {
	defer store.Close()

	if loaded, err := store.Has("missing"); err != nil {
		t.Fatalf("Has failed: %v", err)
	} else if loaded {
		t.Errorf("Expected Has to return false for a missing key")
	}

	if err := store.Set("present", []byte("v")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if loaded, err := store.Has("present"); err != nil {
		t.Fatalf("Has failed: %v", err)
	} else if !loaded {
		t.Errorf("Expected Has to return true after Set")
	}
}

func testDelete(t *testing.T, store kv.Store) {
	defer store.Close()

	testKey := "delete-me"

	if err := store.Set(testKey, []byte("v")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if err := store.Delete(testKey); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, loaded, _ := store.Get(testKey); loaded {
		t.Errorf("Expected key %s to be gone after Delete", testKey)
	}

	// Deleting a missing key must be a no-op, not an error
	if err := store.Delete(testKey); err != nil {
		t.Errorf("Expected second Delete to be a no-op, got: %v", err)
	}
	if err := store.Delete("never-existed"); err != nil {
		t.Errorf("Expected Delete of unknown key to be a no-op, got: %v", err)
	}
}

func testValueIsolation(t *testing.T, store kv.Store) {
	defer store.Close()

	original := []byte("immutable")
	if err := store.Set("key", original); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// Mutating the caller's slice after Set must not affect the store
	original[0] = 'X'

	result, _, err := store.Get("key")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !bytes.Equal(result, []byte("immutable")) {
		t.Errorf("Stored value was mutated through the caller's slice: %s", result)
	}

	// Mutating a returned slice must not affect subsequent reads
	result[0] = 'Y'

	again, _, err := store.Get("key")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !bytes.Equal(again, []byte("immutable")) {
		t.Errorf("Stored value was mutated through a returned slice: %s", again)
	}
}

func testBinaryValues(t *testing.T, store kv.Store) {
	defer store.Close()

	testCases := [][]byte{
		{},
		{0},
		{0, 1, 2, 3, 255, 254},
		bytes.Repeat([]byte{0xAB}, 64*1024),
	}

	for i, value := range testCases {
		key := fmt.Sprintf("binary-%d", i)
		if err := store.Set(key, value); err != nil {
			t.Fatalf("Set failed for case %d: %v", i, err)
		}

		result, loaded, err := store.Get(key)
		if err != nil {
			t.Fatalf("Get failed for case %d: %v", i, err)
		}
		if !loaded {
			t.Errorf("Expected key %s to exist", key)
			continue
		}
		if !bytes.Equal(result, value) {
			t.Errorf("Value mismatch for case %d: expected %d bytes, got %d bytes", i, len(value), len(result))
		}
	}
}

func testInfo(t *testing.T, store kv.Store) {
	defer store.Close()

	for i := 0; i < 5; i++ {
		if err := store.Set(fmt.Sprintf("key-%d", i), []byte("value")); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}

	info, err := store.Info()
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}
	if info.Engine == "" {
		t.Errorf("Expected Info to report an engine identifier")
	}
	if info.Keys != 5 {
		t.Errorf("Expected 5 keys, got %d", info.Keys)
	}
}

func testSnapshot(t *testing.T, factory kv.Factory) {
	source := mustOpen(t, factory)
	defer source.Close()

	snapshotter, ok := source.(kv.Snapshotter)
	if !ok {
		t.Skip()
	}

	for i := 0; i < 10; i++ {
		if err := source.Set(fmt.Sprintf("snap-%d", i), []byte(fmt.Sprintf("value-%d", i))); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := snapshotter.Save(&buf); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	target := mustOpen(t, factory)
	defer target.Close()

	// Pre-existing data must be replaced by Load
	if err := target.Set("stale", []byte("stale")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if err := target.(kv.Snapshotter).Load(&buf); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if _, loaded, _ := target.Get("stale"); loaded {
		t.Errorf("Expected Load to replace pre-existing contents")
	}

	for i := 0; i < 10; i++ {
		key := fmt.Sprintf("snap-%d", i)
		result, loaded, err := target.Get(key)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !loaded {
			t.Errorf("Expected key %s to survive the snapshot round trip", key)
			continue
		}
		expected := fmt.Sprintf("value-%d", i)
		if string(result) != expected {
			t.Errorf("Expected %s, got %s", expected, result)
		}
	}
}
