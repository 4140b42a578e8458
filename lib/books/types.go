package books

import (
	"errors"
	"fmt"
	"time"
)

// --------------------------------------------------------------------------
// Status Enum
// --------------------------------------------------------------------------

// Status is the reading status of a book. The string values are part of
// the persisted record format.
type Status string

const (
	StatusWantToRead Status = "want-to-read"
	StatusReading    Status = "reading"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusWantToRead, StatusReading, StatusCompleted:
		return true
	default:
		return false
	}
}

// ParseStatus converts a string into a Status, rejecting unknown values.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.Valid() {
		return "", fmt.Errorf("%w: unknown status %q (want one of %s, %s, %s)",
			ErrInvalidStatus, s, StatusWantToRead, StatusReading, StatusCompleted)
	}
	return status, nil
}

// --------------------------------------------------------------------------
// Book Record
// --------------------------------------------------------------------------

// Book is one review/tracking record owned by exactly one account.
// ID and DateAdded are assigned at creation time and immutable; the
// remaining fields are mutable through Service.Update. The json field
// names are part of the persisted record format.
type Book struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	Status    Status    `json:"status"`
	Review    string    `json:"review"`
	DateAdded time.Time `json:"dateAdded"`
}

// Draft holds the caller-supplied fields for a new book. Rating, Status
// and Review are optional; zero values mean unrated, want-to-read and no
// review.
type Draft struct {
	Title  string
	Author string
	Rating int
	Status Status
	Review string
}

// Patch describes a partial update of a book. Nil fields are left
// untouched.
type Patch struct {
	Title  *string
	Author *string
	Rating *int
	Status *Status
	Review *string
}

// Filter selects books from a collection. Search matches case-insensitive
// substrings of title or author; Status of StatusAll (or empty) matches
// every status. Both conditions must hold.
type Filter struct {
	Search string
	Status string
}

// StatusAll is the Filter.Status value matching every reading status.
const StatusAll = "all"

// --------------------------------------------------------------------------
// Error Taxonomy
// --------------------------------------------------------------------------

var (
	// ErrValidation is returned by Add and Update when title or author is
	// empty or whitespace-only.
	ErrValidation = errors.New("title and author are required")

	// ErrInvalidRating is returned when a rating is outside [0,5]. Out of
	// range ratings are rejected, never stored.
	ErrInvalidRating = errors.New("rating must be between 0 and 5")

	// ErrInvalidStatus is returned for a status outside the known enum.
	ErrInvalidStatus = errors.New("invalid reading status")

	// ErrNotFound is returned by Update for an unknown book id. Delete
	// treats an unknown id as success instead.
	ErrNotFound = errors.New("book not found")
)
