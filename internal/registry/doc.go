// Package registry holds the in-memory collection of watch lists for one
// invocation, keyed by unique list name.
//
// A Registry is built once from the store, mutated by at most one operation
// and then handed back to the store for persistence. It is not safe for
// concurrent use.
package registry
