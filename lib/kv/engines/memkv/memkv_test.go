package memkv

import (
	"bytes"
	"testing"

	"github.com/Cbush039/book-review-app/lib/kv"
	"github.com/Cbush039/book-review-app/lib/kv/kvtest"
)

func Test(t *testing.T) {
	kvtest.RunStoreTests(t, "MemKV", func() (kv.Store, error) {
		return NewMemStore(), nil
	})
}

func TestLoadRejectsGarbage(t *testing.T) {
	store := NewMemStore()
	defer store.Close()

	testCases := []struct {
		name string
		data []byte
	}{
		{"Empty", []byte{}},
		{"WrongMagic", []byte("NOTAKV\x00\x01")},
		{"TruncatedHeader", []byte("BOOK")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := store.(kv.Snapshotter).Load(bytes.NewReader(tc.data))
			if err == nil {
				t.Errorf("Expected Load to reject invalid snapshot data")
			}
		})
	}
}
