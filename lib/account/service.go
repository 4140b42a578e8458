package account

import "strings"

// Service implements the account operations: signup, login, logout and
// session restore. All operations are local and synchronous.
type Service struct {
	sessions *SessionStore
}

// NewService creates an account service on top of the given session store.
func NewService(sessions *SessionStore) *Service {
	return &Service{sessions: sessions}
}

// Signup registers a new account and makes it the active session.
// It fails with ErrAlreadyExists if a credential record for the username
// already exists; the existing record is left untouched.
//
// The account record is written before the session pointer. A crash between
// the two writes leaves a registered account without a session, which
// Restore treats as logged out.
func (s *Service) Signup(username, password string) (*Account, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	if _, exists, err := s.sessions.LookupAccount(username); err != nil {
		return nil, err
	} else if exists {
		return nil, ErrAlreadyExists
	}

	acc := &Account{Username: username, Password: password}
	if err := s.sessions.SaveAccount(acc); err != nil {
		return nil, err
	}
	if err := s.sessions.SetCurrent(acc); err != nil {
		return nil, err
	}
	return acc, nil
}

// Login authenticates against the stored credential record and makes the
// account the active session. Unknown usernames and wrong passwords both
// fail with ErrInvalidCredentials.
func (s *Service) Login(username, password string) (*Account, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	acc, exists, err := s.sessions.LookupAccount(username)
	if err != nil {
		return nil, err
	}
	if !exists || acc.Password != password {
		return nil, ErrInvalidCredentials
	}

	if err := s.sessions.SetCurrent(acc); err != nil {
		return nil, err
	}
	return acc, nil
}

// Logout clears the active session pointer. The account and its book
// collection are not deleted. Logging out without an active session is a
// no-op.
func (s *Service) Logout() error {
	return s.sessions.ClearCurrent()
}

// Restore reads the persisted session pointer and returns the active
// account, if any. It is called once at process start to support staying
// logged in across restarts.
//
// Recovery rule: a session pointer referencing a missing credential record
// (for example after a crash between the two signup writes went the wrong
// way, or after manual store surgery) is treated as logged out and the
// stale pointer is cleared.
func (s *Service) Restore() (*Account, bool, error) {
	acc, exists, err := s.sessions.Current()
	if err != nil {
		return nil, false, err
	}
	if !exists {
		return nil, false, nil
	}

	if _, registered, err := s.sessions.LookupAccount(acc.Username); err != nil {
		return nil, false, err
	} else if !registered {
		// Stale pointer, clear it and report logged out
		if err := s.sessions.ClearCurrent(); err != nil {
			return nil, false, err
		}
		return nil, false, nil
	}

	return acc, true, nil
}
