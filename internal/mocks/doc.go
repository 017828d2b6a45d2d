// Package mocks provides hand-rolled mock implementations of the store
// interfaces for use in unit tests. Each mock keeps its data in memory
// and exposes per-method function fields so individual tests can override
// behavior without writing a full implementation.
package mocks
