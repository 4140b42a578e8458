// Package codec provides pluggable record serialization for the values
// written to the key-value store. Account records, the session pointer and
// book collections are all serialized through the Codec interface, so the
// on-disk value format is a deployment choice rather than a hard-coded one.
//
// Two implementations are provided:
//
//   - json (default): human-readable values that match the record format
//     the application has always used. A collection stored with the json
//     codec can be inspected and fixed with standard tools.
//
//   - gob: Go's binary encoding. More compact, but opaque, and only
//     readable by Go programs that know the record types.
//
// A store written with one codec cannot be read with another; the codec is
// part of the persisted format and must stay stable for a given data file.
package codec
