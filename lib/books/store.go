package books

import (
	"fmt"

	"github.com/Cbush039/book-review-app/lib/codec"
	"github.com/Cbush039/book-review-app/lib/kv"
)

// booksKeyPrefix prefixes the per-account collection values.
const booksKeyPrefix = "books_"

// CollectionKey returns the storage key of the book collection owned by
// username.
func CollectionKey(username string) string {
	return booksKeyPrefix + username
}

// CollectionStore persists the ordered book collection of one account as a
// single serialized value. Every mutation rewrites the whole collection,
// which bounds write cost by collection size but makes each mutation as
// atomic as the underlying single-key write.
type CollectionStore struct {
	store kv.Store
	codec codec.Codec
}

// NewCollectionStore creates a CollectionStore on top of the given store
// and codec.
func NewCollectionStore(store kv.Store, c codec.Codec) *CollectionStore {
	return &CollectionStore{store: store, codec: c}
}

// Load reads the collection for username in insertion order. A missing key
// or an unavailable store yields an empty collection.
func (s *CollectionStore) Load(username string) ([]Book, error) {
	value, loaded, err := s.store.Get(CollectionKey(username))
	if err != nil {
		if kv.IsUnavailable(err) {
			return nil, nil
		}
		return nil, err
	}
	if !loaded {
		return nil, nil
	}

	var collection []Book
	if err := s.codec.Unmarshal(value, &collection); err != nil {
		return nil, fmt.Errorf("decode collection %q: %w", CollectionKey(username), err)
	}
	return collection, nil
}

// Save overwrites the collection for username with the given books.
func (s *CollectionStore) Save(username string, collection []Book) error {
	value, err := s.codec.Marshal(collection)
	if err != nil {
		return fmt.Errorf("encode collection %q: %w", CollectionKey(username), err)
	}
	return s.store.Set(CollectionKey(username), value)
}
