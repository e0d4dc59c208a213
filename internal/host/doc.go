// Package host models the side of the system that owns climate records: a
// priority-ordered event bus that posts one [ClimateQuery] per key, and a
// batch helper that resolves a whole baseline document through the bus.
//
// Listeners are registered before the first query is posted. Posting is
// safe for concurrent use; a single query is owned by the goroutine that
// posts it.
package host
