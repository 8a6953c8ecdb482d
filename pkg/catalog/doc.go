// Package catalog defines the static field descriptors that drive form
// rendering and raw-payload required-field enforcement. A Catalog is pure
// data: it has no I/O and no mutable state.
package catalog
