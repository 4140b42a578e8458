// Package cmd implements the command-line interface for the bookrev book
// tracker. It provides a hierarchical command structure with operations for
// managing accounts, sessions and per-account book collections.
//
// The package is organized into several subpackages:
//
//   - account: Commands for signup, login, logout and session inspection
//   - books: Commands for adding, listing, updating and deleting books
//   - store: Maintenance commands for the underlying key-value store
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See bookrev -help for a list of all commands.
package cmd
