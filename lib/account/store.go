package account

import (
	"fmt"

	"github.com/Cbush039/book-review-app/lib/codec"
	"github.com/Cbush039/book-review-app/lib/kv"
)

// --------------------------------------------------------------------------
// Key Layout
// --------------------------------------------------------------------------

const (
	// currentUserKey holds the serialized account of the active session.
	// Absent when nobody is logged in.
	currentUserKey = "current_user"

	// userKeyPrefix prefixes the per-account credential records.
	userKeyPrefix = "user_"
)

// UserKey returns the storage key of the credential record for username.
func UserKey(username string) string {
	return userKeyPrefix + username
}

// --------------------------------------------------------------------------
// Session Store
// --------------------------------------------------------------------------

// SessionStore manages the session pointer and the per-account credential
// records on top of a key-value store. It owns the key layout and record
// serialization; the login/signup semantics live in Service.
type SessionStore struct {
	store kv.Store
	codec codec.Codec
}

// NewSessionStore creates a SessionStore on top of the given store and codec.
func NewSessionStore(store kv.Store, c codec.Codec) *SessionStore {
	return &SessionStore{store: store, codec: c}
}

// LookupAccount reads the credential record for username. The boolean
// return value indicates whether a record was found. An unavailable store
// degrades to "not found".
func (s *SessionStore) LookupAccount(username string) (*Account, bool, error) {
	value, loaded, err := s.store.Get(UserKey(username))
	if err != nil {
		if kv.IsUnavailable(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	if !loaded {
		return nil, false, nil
	}

	var acc Account
	if err := s.codec.Unmarshal(value, &acc); err != nil {
		return nil, false, fmt.Errorf("decode account record %q: %w", UserKey(username), err)
	}
	return &acc, true, nil
}

// SaveAccount persists the credential record for acc.
func (s *SessionStore) SaveAccount(acc *Account) error {
	value, err := s.codec.Marshal(acc)
	if err != nil {
		return fmt.Errorf("encode account record: %w", err)
	}
	return s.store.Set(UserKey(acc.Username), value)
}

// SetCurrent persists acc as the active session pointer.
func (s *SessionStore) SetCurrent(acc *Account) error {
	value, err := s.codec.Marshal(acc)
	if err != nil {
		return fmt.Errorf("encode session pointer: %w", err)
	}
	return s.store.Set(currentUserKey, value)
}

// ClearCurrent removes the session pointer. Clearing an absent pointer is
// a no-op.
func (s *SessionStore) ClearCurrent() error {
	return s.store.Delete(currentUserKey)
}

// Current reads the persisted session pointer. The boolean return value
// indicates whether a session pointer exists. An unavailable store degrades
// to "no session".
func (s *SessionStore) Current() (*Account, bool, error) {
	value, loaded, err := s.store.Get(currentUserKey)
	if err != nil {
		if kv.IsUnavailable(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	if !loaded {
		return nil, false, nil
	}

	var acc Account
	if err := s.codec.Unmarshal(value, &acc); err != nil {
		return nil, false, fmt.Errorf("decode session pointer: %w", err)
	}
	return &acc, true, nil
}
