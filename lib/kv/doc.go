// Package kv provides a unified interface for local key-value storage with
// typed error reporting. It is the persistence foundation of the
// application: account records, the session pointer and per-user book
// collections are all stored as string-keyed byte values through this
// interface.
//
// The package focuses on:
//   - A unified interface (Store) for key-value operations across engines
//   - Pluggable engine architecture through the Factory pattern
//   - A structured error system using typed return codes
//   - Optional operation metrics via an instrumenting decorator
//
// Key Components:
//
//   - Store Interface: The core abstraction defining Set, Get, Has, Delete,
//     Info and Close. All engines share this interface, allowing the
//     service layer to switch backends without code changes. Single-key
//     operations are atomic; nothing is guaranteed across keys.
//
//   - Error System: Store methods return *Error values carrying a RetCode.
//     The RetCStorageUnavailable code is special-cased by IsUnavailable so
//     callers can degrade gracefully when the underlying storage refuses
//     an operation (reads treat this as "no existing data").
//
//   - Snapshotter: Engines that can serialize their full state implement
//     this optional interface. It backs the file-snapshot mode of the
//     in-memory engine.
//
//   - Instrumentation: NewInstrumentedStore decorates any Store with
//     per-operation counters and error counters, exported in Prometheus
//     text format.
//
// Implementations:
//
//	The package includes two engines:
//
//	- boltkv: a durable engine backed by a bbolt file. Every write is a
//	  committed transaction, so data survives process restarts. This is
//	  the default engine.
//	  Available in "github.com/Cbush039/book-review-app/lib/kv/engines/boltkv".
//
//	- memkv: a pure in-memory engine backed by a concurrent map, with
//	  binary snapshot support for explicit persistence. Used by tests and
//	  by the optional snapshot-file mode.
//	  Available in "github.com/Cbush039/book-review-app/lib/kv/engines/memkv".
//
// The kvtest package (github.com/Cbush039/book-review-app/lib/kv/kvtest)
// provides a standardized conformance suite for Store implementations.
package kv
