package books

import (
	"testing"
	"time"

	"github.com/Cbush039/book-review-app/lib/account"
	"github.com/Cbush039/book-review-app/lib/codec"
	"github.com/Cbush039/book-review-app/lib/kv"
	"github.com/Cbush039/book-review-app/lib/kv/engines/memkv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var alice = &account.Account{Username: "alice", Password: "pw"}

func newTestService() *Service {
	return NewService(NewCollectionStore(memkv.NewMemStore(), codec.NewJSONCodec()))
}

// unavailableStore refuses every operation with a storage error.
type unavailableStore struct{}

func (unavailableStore) Set(string, []byte) error {
	return kv.NewError(kv.RetCStorageUnavailable, "store offline")
}

func (unavailableStore) Get(string) ([]byte, bool, error) {
	return nil, false, kv.NewError(kv.RetCStorageUnavailable, "store offline")
}

func (unavailableStore) Has(string) (bool, error) {
	return false, kv.NewError(kv.RetCStorageUnavailable, "store offline")
}

func (unavailableStore) Delete(string) error {
	return kv.NewError(kv.RetCStorageUnavailable, "store offline")
}

func (unavailableStore) Info() (kv.StoreInfo, error) {
	return kv.StoreInfo{}, kv.NewError(kv.RetCStorageUnavailable, "store offline")
}

func (unavailableStore) Close() error { return nil }

func TestAddDefaults(t *testing.T) {
	svc := newTestService()

	book, err := svc.Add(alice, Draft{Title: "Dune", Author: "Frank Herbert"})
	require.NoError(t, err)

	assert.NotEmpty(t, book.ID)
	assert.Equal(t, "Dune", book.Title)
	assert.Equal(t, "Frank Herbert", book.Author)
	assert.Equal(t, 0, book.Rating)
	assert.Equal(t, StatusWantToRead, book.Status)
	assert.Empty(t, book.Review)
	assert.False(t, book.DateAdded.IsZero())

	collection, err := svc.List(alice)
	require.NoError(t, err)
	require.Len(t, collection, 1)
	assert.Equal(t, *book, collection[0])
}

func TestAddValidation(t *testing.T) {
	svc := newTestService()

	testCases := []struct {
		name  string
		draft Draft
		want  error
	}{
		{"EmptyTitle", Draft{Title: "", Author: "a"}, ErrValidation},
		{"EmptyAuthor", Draft{Title: "t", Author: ""}, ErrValidation},
		{"WhitespaceTitle", Draft{Title: "   ", Author: "a"}, ErrValidation},
		{"RatingTooHigh", Draft{Title: "t", Author: "a", Rating: 6}, ErrInvalidRating},
		{"RatingNegative", Draft{Title: "t", Author: "a", Rating: -1}, ErrInvalidRating},
		{"UnknownStatus", Draft{Title: "t", Author: "a", Status: "abandoned"}, ErrInvalidStatus},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Add(alice, tc.draft)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	// Nothing may have been stored
	collection, err := svc.List(alice)
	require.NoError(t, err)
	assert.Empty(t, collection)
}

func TestAddUniqueIDsAndOrder(t *testing.T) {
	svc := newTestService()
	// Frozen clock forces id collisions on every Add
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }

	titles := []string{"First", "Second", "Third"}
	seen := make(map[string]bool)
	for _, title := range titles {
		book, err := svc.Add(alice, Draft{Title: title, Author: "a"})
		require.NoError(t, err)
		assert.False(t, seen[book.ID], "id %s assigned twice", book.ID)
		seen[book.ID] = true
	}

	collection, err := svc.List(alice)
	require.NoError(t, err)
	require.Len(t, collection, 3)
	for i, title := range titles {
		assert.Equal(t, title, collection[i].Title, "insertion order must be preserved")
	}
}

func TestUpdateRating(t *testing.T) {
	svc := newTestService()

	first, err := svc.Add(alice, Draft{Title: "Dune", Author: "Frank Herbert"})
	require.NoError(t, err)
	second, err := svc.Add(alice, Draft{Title: "Solaris", Author: "Stanislaw Lem"})
	require.NoError(t, err)

	for rating := 0; rating <= 5; rating++ {
		updated, err := svc.Update(alice, first.ID, Patch{Rating: &rating})
		require.NoError(t, err)
		assert.Equal(t, rating, updated.Rating)

		collection, err := svc.List(alice)
		require.NoError(t, err)
		assert.Equal(t, rating, collection[0].Rating)
		assert.Equal(t, 0, collection[1].Rating, "other books must be untouched")
	}

	bad := 6
	_, err = svc.Update(alice, second.ID, Patch{Rating: &bad})
	assert.ErrorIs(t, err, ErrInvalidRating)
}

func TestUpdatePartialMerge(t *testing.T) {
	svc := newTestService()

	book, err := svc.Add(alice, Draft{Title: "Dune", Author: "Frank Herbert", Rating: 4})
	require.NoError(t, err)

	review := "A slow start, then unputdownable."
	status := StatusCompleted
	updated, err := svc.Update(alice, book.ID, Patch{Review: &review, Status: &status})
	require.NoError(t, err)

	// Patched fields change, the rest stays
	assert.Equal(t, review, updated.Review)
	assert.Equal(t, StatusCompleted, updated.Status)
	assert.Equal(t, "Dune", updated.Title)
	assert.Equal(t, 4, updated.Rating)
	assert.Equal(t, book.ID, updated.ID)
	assert.Equal(t, book.DateAdded, updated.DateAdded)
}

func TestUpdateNotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.Add(alice, Draft{Title: "Dune", Author: "Frank Herbert"})
	require.NoError(t, err)

	rating := 3
	_, err = svc.Update(alice, "no-such-id", Patch{Rating: &rating})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteIdempotent(t *testing.T) {
	svc := newTestService()

	book, err := svc.Add(alice, Draft{Title: "Dune", Author: "Frank Herbert"})
	require.NoError(t, err)
	keep, err := svc.Add(alice, Draft{Title: "Solaris", Author: "Stanislaw Lem"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(alice, book.ID))

	collection, err := svc.List(alice)
	require.NoError(t, err)
	require.Len(t, collection, 1)
	assert.Equal(t, keep.ID, collection[0].ID)

	// Second delete of the same id is a no-op
	require.NoError(t, svc.Delete(alice, book.ID))

	collection, err = svc.List(alice)
	require.NoError(t, err)
	assert.Len(t, collection, 1)
}

func TestQuery(t *testing.T) {
	svc := newTestService()

	_, err := svc.Add(alice, Draft{Title: "Dune", Author: "Frank Herbert", Status: StatusCompleted})
	require.NoError(t, err)
	_, err = svc.Add(alice, Draft{Title: "Dune Messiah", Author: "Frank Herbert", Status: StatusReading})
	require.NoError(t, err)
	_, err = svc.Add(alice, Draft{Title: "Solaris", Author: "Stanislaw Lem", Status: StatusCompleted})
	require.NoError(t, err)

	testCases := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"All", Filter{Status: StatusAll}, []string{"Dune", "Dune Messiah", "Solaris"}},
		{"SearchTitleCaseInsensitive", Filter{Search: "dUnE", Status: StatusAll}, []string{"Dune", "Dune Messiah"}},
		{"SearchAuthor", Filter{Search: "herbert", Status: StatusAll}, []string{"Dune", "Dune Messiah"}},
		{"SearchAndStatus", Filter{Search: "dune", Status: string(StatusCompleted)}, []string{"Dune"}},
		{"StatusOnly", Filter{Status: string(StatusCompleted)}, []string{"Dune", "Solaris"}},
		{"NoMatch", Filter{Search: "dune", Status: string(StatusWantToRead)}, nil},
		{"EmptyFilter", Filter{}, []string{"Dune", "Dune Messiah", "Solaris"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			matched, err := svc.Query(alice, tc.filter)
			require.NoError(t, err)

			var titles []string
			for _, book := range matched {
				titles = append(titles, book.Title)
			}
			assert.Equal(t, tc.want, titles)
		})
	}
}

// An unavailable store must degrade reads to an empty collection while
// write failures surface to the caller.
func TestUnavailableStore(t *testing.T) {
	svc := NewService(NewCollectionStore(unavailableStore{}, codec.NewJSONCodec()))

	collection, err := svc.List(alice)
	require.NoError(t, err)
	assert.Empty(t, collection)

	matched, err := svc.Query(alice, Filter{Search: "dune"})
	require.NoError(t, err)
	assert.Empty(t, matched)

	// Add loads an empty collection but fails on the write
	_, err = svc.Add(alice, Draft{Title: "Dune", Author: "Frank Herbert"})
	require.Error(t, err)
	assert.True(t, kv.IsUnavailable(err))
}

func TestListEmptyCollection(t *testing.T) {
	svc := newTestService()

	collection, err := svc.List(alice)
	require.NoError(t, err)
	assert.Empty(t, collection)
}

// Books must survive logout, restore and re-login unchanged.
func TestCollectionSurvivesSessionBoundary(t *testing.T) {
	store := memkv.NewMemStore()
	c := codec.NewJSONCodec()
	accounts := account.NewService(account.NewSessionStore(store, c))
	svc := NewService(NewCollectionStore(store, c))

	acc, err := accounts.Signup("alice", "pw")
	require.NoError(t, err)

	_, err = svc.Add(acc, Draft{Title: "Dune", Author: "Frank Herbert"})
	require.NoError(t, err)
	_, err = svc.Add(acc, Draft{Title: "Solaris", Author: "Stanislaw Lem"})
	require.NoError(t, err)

	before, err := svc.List(acc)
	require.NoError(t, err)

	require.NoError(t, accounts.Logout())
	_, ok, err := accounts.Restore()
	require.NoError(t, err)
	require.False(t, ok)

	acc, err = accounts.Login("alice", "pw")
	require.NoError(t, err)

	after, err := svc.List(acc)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestCollectionsAreIsolatedPerAccount(t *testing.T) {
	svc := newTestService()
	bob := &account.Account{Username: "bob", Password: "pw"}

	_, err := svc.Add(alice, Draft{Title: "Dune", Author: "Frank Herbert"})
	require.NoError(t, err)

	collection, err := svc.List(bob)
	require.NoError(t, err)
	assert.Empty(t, collection)
}
