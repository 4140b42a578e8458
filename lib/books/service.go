package books

import (
	"strconv"
	"strings"
	"time"

	"github.com/Cbush039/book-review-app/lib/account"
)

// Service implements the book collection operations for the active
// account. All operations require an authenticated account; callers pass
// the account returned by the session layer explicitly.
type Service struct {
	collections *CollectionStore
	now         func() time.Time
}

// NewService creates a book service on top of the given collection store.
func NewService(collections *CollectionStore) *Service {
	return &Service{collections: collections, now: time.Now}
}

// List returns the account's collection in insertion order. An account
// without a stored collection yields an empty list.
func (s *Service) List(acc *account.Account) ([]Book, error) {
	return s.collections.Load(acc.Username)
}

// Add validates the draft, assigns a fresh id and creation timestamp,
// appends the book to the end of the collection and persists it. The new
// book is returned.
func (s *Service) Add(acc *account.Account, draft Draft) (*Book, error) {
	title := strings.TrimSpace(draft.Title)
	author := strings.TrimSpace(draft.Author)
	if title == "" || author == "" {
		return nil, ErrValidation
	}
	if draft.Rating < 0 || draft.Rating > 5 {
		return nil, ErrInvalidRating
	}

	status := draft.Status
	if status == "" {
		status = StatusWantToRead
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	collection, err := s.collections.Load(acc.Username)
	if err != nil {
		return nil, err
	}

	book := Book{
		ID:        s.nextID(collection),
		Title:     title,
		Author:    author,
		Rating:    draft.Rating,
		Status:    status,
		Review:    draft.Review,
		DateAdded: s.now().UTC(),
	}
	collection = append(collection, book)

	if err := s.collections.Save(acc.Username, collection); err != nil {
		return nil, err
	}
	return &book, nil
}

// Update merges the non-nil patch fields into the book with the given id
// and persists the collection. The rest of the collection is untouched.
// It fails with ErrNotFound if no book with that id exists, so caller bugs
// referencing stale ids are not masked.
func (s *Service) Update(acc *account.Account, id string, patch Patch) (*Book, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, ErrValidation
	}
	if patch.Author != nil && strings.TrimSpace(*patch.Author) == "" {
		return nil, ErrValidation
	}
	if patch.Rating != nil && (*patch.Rating < 0 || *patch.Rating > 5) {
		return nil, ErrInvalidRating
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	collection, err := s.collections.Load(acc.Username)
	if err != nil {
		return nil, err
	}

	for i := range collection {
		if collection[i].ID != id {
			continue
		}

		book := &collection[i]
		if patch.Title != nil {
			book.Title = strings.TrimSpace(*patch.Title)
		}
		if patch.Author != nil {
			book.Author = strings.TrimSpace(*patch.Author)
		}
		if patch.Rating != nil {
			book.Rating = *patch.Rating
		}
		if patch.Status != nil {
			book.Status = *patch.Status
		}
		if patch.Review != nil {
			book.Review = *patch.Review
		}

		if err := s.collections.Save(acc.Username, collection); err != nil {
			return nil, err
		}
		return book, nil
	}

	return nil, ErrNotFound
}

// Delete removes the book with the given id and persists the collection.
// Deleting an unknown id is a no-op, not an error.
func (s *Service) Delete(acc *account.Account, id string) error {
	collection, err := s.collections.Load(acc.Username)
	if err != nil {
		return err
	}

	remaining := collection[:0]
	for _, book := range collection {
		if book.ID != id {
			remaining = append(remaining, book)
		}
	}
	if len(remaining) == len(collection) {
		return nil
	}

	return s.collections.Save(acc.Username, remaining)
}

// Query returns the books matching the filter, preserving collection
// order. The search term matches case-insensitive substrings of title or
// author; the status condition must hold as well.
func (s *Service) Query(acc *account.Account, filter Filter) ([]Book, error) {
	collection, err := s.collections.Load(acc.Username)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))

	var matched []Book
	for _, book := range collection {
		if search != "" &&
			!strings.Contains(strings.ToLower(book.Title), search) &&
			!strings.Contains(strings.ToLower(book.Author), search) {
			continue
		}
		if filter.Status != "" && filter.Status != StatusAll && Status(filter.Status) != book.Status {
			continue
		}
		matched = append(matched, book)
	}
	return matched, nil
}

// nextID assigns a creation-timestamp id, bumping past ids already present
// in the collection. Ids are unique within a collection and never reused;
// two books added within the same millisecond get consecutive ids.
func (s *Service) nextID(collection []Book) string {
	taken := make(map[string]struct{}, len(collection))
	for _, book := range collection {
		taken[book.ID] = struct{}{}
	}

	candidate := s.now().UnixMilli()
	for {
		id := strconv.FormatInt(candidate, 10)
		if _, exists := taken[id]; !exists {
			return id
		}
		candidate++
	}
}
