// Package books implements the per-account book collection: an
// insertion-ordered list of tracking records with rating, reading status
// and free-text review.
//
// CollectionStore persists each account's collection as one serialized
// value under "books_<username>"; every mutation rewrites the whole value.
// Service implements the operations on top: List, Add, Update, Delete and
// Query. Validation happens in the service layer: empty titles or authors,
// out-of-range ratings and unknown statuses are rejected before anything
// is written, so invalid records never reach the store.
//
// A collection is only reachable through the account owning it; callers
// obtain an account from the session layer and pass it in explicitly.
package books
