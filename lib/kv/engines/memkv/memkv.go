package memkv

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/Cbush039/book-review-app/lib/kv"
	"github.com/puzpuzpuz/xsync/v3"
)

// --------------------------------------------------------------------------
// Constants
// --------------------------------------------------------------------------

const (
	magicNum        = "BOOKKV\x00" // Snapshot file format identifier
	snapshotVersion = 1            // Snapshot format version
)

// --------------------------------------------------------------------------
// Engine Implementation
// --------------------------------------------------------------------------

// storeImpl implements kv.Store with a concurrent in-memory map.
// Data is lost when the process exits unless persisted explicitly with Save.
type storeImpl struct {
	data *xsync.MapOf[string, []byte]
}

// NewMemStore creates a new in-memory store instance.
// This engine is not durable on its own: use Save and Load (kv.Snapshotter)
// to persist state across process restarts.
func NewMemStore() kv.Store {
	return &storeImpl{
		data: xsync.NewMapOf[string, []byte](),
	}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see kv.Store)
// --------------------------------------------------------------------------

func (s *storeImpl) Set(key string, value []byte) error {
	// Copy to decouple the stored value from the caller's slice
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)
	s.data.Store(key, valueCopy)
	return nil
}

func (s *storeImpl) Get(key string) ([]byte, bool, error) {
	value, loaded := s.data.Load(key)
	if !loaded {
		return nil, false, nil
	}
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)
	return valueCopy, true, nil
}

func (s *storeImpl) Has(key string) (bool, error) {
	_, loaded := s.data.Load(key)
	return loaded, nil
}

func (s *storeImpl) Delete(key string) error {
	s.data.Delete(key)
	return nil
}

func (s *storeImpl) Info() (kv.StoreInfo, error) {
	sizeBytes := 0
	s.data.Range(func(key string, value []byte) bool {
		sizeBytes += len(key) + len(value)
		return true
	})

	return kv.StoreInfo{
		Engine:    kv.ImplMem,
		Keys:      s.data.Size(),
		SizeBytes: sizeBytes,
	}, nil
}

func (s *storeImpl) Close() error {
	return nil
}

// --------------------------------------------------------------------------
// Snapshot Persistence (kv.Snapshotter)
// --------------------------------------------------------------------------

// Save persists the full store state to the writer as a binary snapshot.
//
// Thread-safety: Save iterates over a live map. Concurrent writes during
// Save are not reflected consistently in the snapshot.
func (s *storeImpl) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)

	// Write file header
	if _, err := bw.WriteString(magicNum); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint8(snapshotVersion)); err != nil {
		return err
	}

	// Snapshot entries first so the count prefix is accurate
	type entry struct {
		key   string
		value []byte
	}
	var entries []entry
	s.data.Range(func(key string, value []byte) bool {
		entries = append(entries, entry{key, value})
		return true
	})

	// Write entry count
	if err := binary.Write(bw, binary.LittleEndian, uint64(len(entries))); err != nil {
		return err
	}

	// Write length-prefixed key and value for each entry
	for _, e := range entries {
		if err := binary.Write(bw, binary.LittleEndian, uint32(len(e.key))); err != nil {
			return err
		}
		if _, err := bw.WriteString(e.key); err != nil {
			return err
		}
		if err := binary.Write(bw, binary.LittleEndian, uint32(len(e.value))); err != nil {
			return err
		}
		if _, err := bw.Write(e.value); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Load restores the store state from a snapshot, replacing all current
// contents.
//
// Thread-safety: Load is not safe for use concurrently with other
// operations.
func (s *storeImpl) Load(r io.Reader) error {
	br := bufio.NewReader(r)

	// Read and verify magic number
	magicBytes := make([]byte, len(magicNum))
	if _, err := io.ReadFull(br, magicBytes); err != nil {
		return err
	}
	if string(magicBytes) != magicNum {
		return fmt.Errorf("invalid snapshot format: magic number mismatch")
	}

	// Read and verify version
	var version uint8
	if err := binary.Read(br, binary.LittleEndian, &version); err != nil {
		return err
	}
	if int(version) != snapshotVersion {
		return fmt.Errorf("unsupported snapshot version: %d (expected %d)", version, snapshotVersion)
	}

	// Read entry count
	var count uint64
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return err
	}

	// Replace current contents
	s.data.Clear()

	for i := uint64(0); i < count; i++ {
		var keyLen uint32
		if err := binary.Read(br, binary.LittleEndian, &keyLen); err != nil {
			return err
		}
		keyBytes := make([]byte, keyLen)
		if _, err := io.ReadFull(br, keyBytes); err != nil {
			return err
		}

		var valueLen uint32
		if err := binary.Read(br, binary.LittleEndian, &valueLen); err != nil {
			return err
		}
		value := make([]byte, valueLen)
		if _, err := io.ReadFull(br, value); err != nil {
			return err
		}

		s.data.Store(string(keyBytes), value)
	}

	return nil
}
