// Package wish persists "notify me" saved searches. A wish snapshots the
// parsed query at creation time and is later checked against new listings
// by an external matching job; this package owns the record's lifecycle
// (create with dedupe by raw query, reactivate, view, toggle, delete,
// oldest-first eviction past capacity) but not the matching itself.
package wish
