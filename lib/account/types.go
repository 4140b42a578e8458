package account

import "errors"

// Account is a registered username/password pair. Accounts are created on
// signup and immutable afterwards; there is no update or delete operation.
//
// The password is stored and compared in plaintext to keep the persisted
// record format stable. The json field names are part of that format.
type Account struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// --------------------------------------------------------------------------
// Error Taxonomy
// --------------------------------------------------------------------------

var (
	// ErrAlreadyExists is returned by Signup when the username is taken.
	ErrAlreadyExists = errors.New("username already exists")

	// ErrInvalidCredentials is returned by Login for an unknown username or
	// a wrong password. Both cases collapse into this one error so callers
	// cannot learn which part was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrMissingCredentials is returned when username or password is empty.
	ErrMissingCredentials = errors.New("username and password are required")
)
