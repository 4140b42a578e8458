// Package memkv implements a local, in-memory key-value engine based on the
// kv.Store interface. It provides a thin wrapper around a concurrent map
// with optional binary snapshot persistence. Data is held entirely in
// memory and is only persisted when Save is called explicitly.
//
// Key Features:
//   - Pure in-memory storage with no file handles or locks to manage
//   - Value isolation: stored and returned slices are always copies
//   - Binary snapshot format (kv.Snapshotter) for explicit persistence
//   - Thread-safe operations for concurrent access
//
// Snapshot Format:
//
//	Snapshots start with a magic number and a format version, followed by
//	an entry count and length-prefixed key/value pairs. Load verifies the
//	header and replaces the full store contents, so a partially written
//	snapshot never results in a half-loaded store state on top of old data.
//
// Suitable Use Cases:
//
//	The in-memory engine is ideal for:
//	- Tests, which get a fresh isolated store per case
//	- Snapshot-file mode, where the CLI loads a snapshot at startup and
//	  saves it back before exiting
//	- Ephemeral sessions where durability is explicitly not wanted
//
// For durable per-write persistence, use the boltkv engine instead, which
// commits every write to a bbolt file.
package memkv
