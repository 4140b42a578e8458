package boltkv

import (
	"fmt"
	"time"

	"github.com/Cbush039/book-review-app/lib/kv"
	"go.etcd.io/bbolt"
)

var recordsBucket = []byte("records")

// --------------------------------------------------------------------------
// Engine Implementation
// --------------------------------------------------------------------------

// storeImpl implements kv.Store on top of a bbolt file. Every write is a
// committed transaction, so data survives process restarts.
type storeImpl struct {
	db *bbolt.DB
}

// NewBoltStore opens (or creates) the bbolt file at path and returns a
// durable store instance. The open acquires a file lock; a second process
// holding the same file causes the call to fail after a short timeout.
func NewBoltStore(path string) (kv.Store, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, kv.NewError(kv.RetCStorageUnavailable, fmt.Sprintf("open %s: %v", path, err))
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(recordsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, kv.NewError(kv.RetCStorageUnavailable, fmt.Sprintf("init bucket: %v", err))
	}

	return &storeImpl{db: db}, nil
}

// --------------------------------------------------------------------------
// Interface Methods (docu see kv.Store)
// --------------------------------------------------------------------------

func (s *storeImpl) Set(key string, value []byte) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(recordsBucket).Put([]byte(key), value)
	})
	if err != nil {
		return kv.NewError(kv.RetCStorageUnavailable, fmt.Sprintf("set %s: %v", key, err))
	}
	return nil
}

func (s *storeImpl) Get(key string) ([]byte, bool, error) {
	var (
		value  []byte
		loaded bool
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(recordsBucket).Get([]byte(key))
		if data == nil {
			return nil
		}
		// The slice is only valid inside the transaction, copy it out
		value = make([]byte, len(data))
		copy(value, data)
		loaded = true
		return nil
	})
	if err != nil {
		return nil, false, kv.NewError(kv.RetCStorageUnavailable, fmt.Sprintf("get %s: %v", key, err))
	}
	return value, loaded, nil
}

func (s *storeImpl) Has(key string) (bool, error) {
	var loaded bool
	err := s.db.View(func(tx *bbolt.Tx) error {
		loaded = tx.Bucket(recordsBucket).Get([]byte(key)) != nil
		return nil
	})
	if err != nil {
		return false, kv.NewError(kv.RetCStorageUnavailable, fmt.Sprintf("has %s: %v", key, err))
	}
	return loaded, nil
}

func (s *storeImpl) Delete(key string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(recordsBucket).Delete([]byte(key))
	})
	if err != nil {
		return kv.NewError(kv.RetCStorageUnavailable, fmt.Sprintf("delete %s: %v", key, err))
	}
	return nil
}

func (s *storeImpl) Info() (kv.StoreInfo, error) {
	var (
		keys      int
		sizeBytes int
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(recordsBucket)
		stats := bucket.Stats()
		keys = stats.KeyN
		cursor := bucket.Cursor()
		for k, v := cursor.First(); k != nil; k, v = cursor.Next() {
			sizeBytes += len(k) + len(v)
		}
		return nil
	})
	if err != nil {
		return kv.StoreInfo{}, kv.NewError(kv.RetCStorageUnavailable, fmt.Sprintf("info: %v", err))
	}

	return kv.StoreInfo{
		Engine:    kv.ImplBolt,
		Keys:      keys,
		SizeBytes: sizeBytes,
		Metadata: &struct {
			Path string `json:"path"`
		}{Path: s.db.Path()},
	}, nil
}

func (s *storeImpl) Close() error {
	return s.db.Close()
}
