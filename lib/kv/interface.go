package kv

import (
	"fmt"
	"io"
)

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// Implementation identifies a storage engine backend.
type Implementation string

const (
	ImplBolt Implementation = "bolt"
	ImplMem  Implementation = "mem"
)

// Factory is a function type that creates a new Store instance.
// It is used to abstract engine construction from the code using the store.
type Factory func() (Store, error)

// Store is the generic interface for interacting with a local key-value
// store. All write operations return only an error (nil on success), while
// read operations return the requested data along with an error.
//
// Single-key reads and writes are atomic; no guarantees are made across
// multiple keys.
type Store interface {
	// Set inserts or updates a key-value pair.
	Set(key string, value []byte) (err error)
	// Get returns the value for a key. The boolean return value indicates
	// whether a value for the key was found. The returned slice is a copy
	// and safe to modify.
	Get(key string) (value []byte, loaded bool, err error)
	// Has returns whether a key exists in the store.
	Has(key string) (loaded bool, err error)
	// Delete removes a key-value pair. Deleting a missing key is a no-op.
	Delete(key string) (err error)
	// Info returns metadata about the engine underlying the store.
	// It is not guaranteed that all fields are filled in.
	Info() (info StoreInfo, err error)
	// Close releases all resources held by the store.
	Close() (err error)
}

// Snapshotter is implemented by engines that can serialize their full state
// to a writer and restore it from a reader. Load replaces the current
// contents of the store.
type Snapshotter interface {
	Save(w io.Writer) (err error)
	Load(r io.Reader) (err error)
}

// StoreInfo describes the state of a store's underlying engine.
type StoreInfo struct {
	Engine    Implementation `json:"engine"`
	Keys      int            `json:"keys"`
	SizeBytes int            `json:"size_bytes"`
	Metadata  interface{}    `json:"metadata,omitempty"`
}

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is a custom error type that wraps a return code (of type RetCode)
// and an error message.
type Error struct {
	Code RetCode // The return code
	Msg  string  // The error message
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("KVStoreError (code %s): %s", e.Code, e.Msg)
}

// NewError creates a new Error with the given code and message.
func NewError(code RetCode, msg string) *Error {
	return &Error{
		Code: code,
		Msg:  msg,
	}
}

// IsUnavailable reports whether err is a store error with the
// RetCStorageUnavailable code. The service layer uses this to degrade
// gracefully: reads treat an unavailable store as "no existing data".
func IsUnavailable(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Code == RetCStorageUnavailable
	}
	return false
}

// --------------------------------------------------------------------------
// Return Codes
// --------------------------------------------------------------------------

type RetCode uint64

const (
	RetCSuccess              RetCode = iota // 0: Command executed successfully.
	RetCInternalError                       // 1: Command failed due to an internal error.
	RetCStorageUnavailable                  // 2: The underlying storage refused the operation.
	RetCUnsupportedOperation                // 3: Operation is not supported by the engine.
)

func (c RetCode) String() string {
	switch c {
	case RetCSuccess:
		return "Success"
	case RetCInternalError:
		return "InternalError"
	case RetCStorageUnavailable:
		return "StorageUnavailable"
	case RetCUnsupportedOperation:
		return "UnsupportedOperation"
	default:
		return "Unknown"
	}
}
