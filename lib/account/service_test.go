package account

import (
	"testing"

	"github.com/Cbush039/book-review-app/lib/codec"
	"github.com/Cbush039/book-review-app/lib/kv"
	"github.com/Cbush039/book-review-app/lib/kv/engines/memkv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*Service, kv.Store) {
	store := memkv.NewMemStore()
	return NewService(NewSessionStore(store, codec.NewJSONCodec())), store
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

func TestSignup(t *testing.T) {
	svc, _ := newTestService()

	acc, err := svc.Signup("alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "alice", acc.Username)

	// Signup makes the new account the active session
	current, ok, err := svc.Restore()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "alice", current.Username)
}

func TestSignupTakenUsername(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Signup("alice", "pw")
	require.NoError(t, err)

	_, err = svc.Signup("alice", "anything")
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// The first account's password must be unchanged
	acc, err := svc.Login("alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "pw", acc.Password)
}

func TestSignupMissingFields(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Signup("", "pw")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = svc.Signup("alice", "")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = svc.Signup("   ", "pw")
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Signup("alice", "pw")
	require.NoError(t, err)
	require.NoError(t, svc.Logout())

	// Wrong password and unknown user collapse into the same error
	_, err = svc.Login("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login("nobody", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	acc, err := svc.Login("alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "alice", acc.Username)

	current, ok, err := svc.Restore()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "alice", current.Username)
}

func TestLogout(t *testing.T) {
	svc, store := newTestService()

	_, err := svc.Signup("alice", "pw")
	require.NoError(t, err)

	require.NoError(t, svc.Logout())

	_, ok, err := svc.Restore()
	require.NoError(t, err)
	assert.False(t, ok)

	// The account record survives logout
	loaded, err := store.Has(UserKey("alice"))
	require.NoError(t, err)
	assert.True(t, loaded)

	// Logging out twice is fine
	assert.NoError(t, svc.Logout())
}

func TestRestoreNoSession(t *testing.T) {
	svc, _ := newTestService()

	_, ok, err := svc.Restore()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRestoreClearsStalePointer(t *testing.T) {
	store := memkv.NewMemStore()
	c := codec.NewJSONCodec()
	svc := NewService(NewSessionStore(store, c))

	// Session pointer without a matching account record
	value, err := c.Marshal(&Account{Username: "ghost", Password: "pw"})
	require.NoError(t, err)
	require.NoError(t, store.Set("current_user", value))

	_, ok, err := svc.Restore()
	require.NoError(t, err)
	assert.False(t, ok)

	// The stale pointer must be gone afterwards
	loaded, err := store.Has("current_user")
	require.NoError(t, err)
	assert.False(t, loaded)
}

// An unavailable store must degrade reads to "no data" while write
// failures surface to the caller.
func TestUnavailableStore(t *testing.T) {
	svc := NewService(NewSessionStore(unavailableStore{}, codec.NewJSONCodec()))

	// Restore reads the session pointer and reports logged out
	_, ok, err := svc.Restore()
	require.NoError(t, err)
	assert.False(t, ok)

	// Login cannot find the credential record, so the credentials are
	// invalid rather than the store broken
	_, err = svc.Login("alice", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Signup passes the existence check but fails on the write
	_, err = svc.Signup("alice", "pw")
	require.Error(t, err)
	assert.True(t, kv.IsUnavailable(err))
}

func TestSessionSurvivesRestart(t *testing.T) {
	store := memkv.NewMemStore()
	c := codec.NewJSONCodec()

	svc := NewService(NewSessionStore(store, c))
	_, err := svc.Signup("alice", "pw")
	require.NoError(t, err)

	// A new service over the same store models a process restart
	restarted := NewService(NewSessionStore(store, c))
	current, ok, err := restarted.Restore()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "alice", current.Username)
}
