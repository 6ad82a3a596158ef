// Package store defines interfaces for todo persistence operations.
// These interfaces abstract the underlying storage mechanism from the
// application's core logic, so services depend on a TodoStore rather than
// on a particular implementation.
package store
