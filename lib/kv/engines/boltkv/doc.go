// Package boltkv implements a durable key-value engine based on the
// kv.Store interface, backed by a single bbolt file. It is the default
// engine of the application: every write operation runs inside a committed
// write transaction, so each single-key mutation is crash-atomic and the
// data survives process restarts.
//
// All records live in one bucket. The engine does not interpret keys or
// values in any way; key layout and record serialization are the concern
// of the layers above.
//
// bbolt holds an exclusive file lock while the store is open, so two
// processes cannot corrupt the file by writing concurrently. A second
// opener fails after a short timeout instead of blocking forever.
package boltkv
