// Package parallel provides a bounded concurrent map over a slice of
// items. Concurrency bounds are grouped by a resource key, so independent
// callers naming the same resource share a single in-flight budget.
package parallel
