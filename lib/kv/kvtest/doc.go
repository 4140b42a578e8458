// Package kvtest provides a standardized conformance test suite for
// kv.Store implementations. Engine packages call RunStoreTests from their
// own tests with a factory that produces a fresh, empty store per case.
//
// The suite validates the contract the service layer depends on: read-back
// after write, overwrite semantics, idempotent deletes, value isolation
// (stored and returned slices are copies), binary-safe values, and
// snapshot round trips for engines implementing kv.Snapshotter.
package kvtest
