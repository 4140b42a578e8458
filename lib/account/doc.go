// Package account implements the session and credential model: a set of
// registered username/password accounts and a single persisted session
// pointer identifying the currently authenticated account.
//
// The package is split into two layers:
//
//   - SessionStore owns the key layout ("user_<username>" credential
//     records and the "current_user" session pointer) and the record
//     serialization against the key-value store.
//
//   - Service implements the operations on top: Signup, Login, Logout and
//     Restore. Failures are reported through the sentinel errors
//     ErrAlreadyExists, ErrInvalidCredentials and ErrMissingCredentials,
//     to be matched with errors.Is.
//
// Exactly one session is active at a time. The pointer is set by Signup
// and Login, cleared by Logout, and read by Restore at process start so a
// user stays logged in across restarts. Restore applies a recovery rule:
// a pointer whose account record is missing is treated as logged out and
// removed, so the system is never half signed up.
//
// Passwords are stored and compared in plaintext: the record format of
// data files already in the field is kept as-is, and hashing would change
// the persisted values.
package account
