// Package kernel contains shared value objects used across the domain model.
// These are small immutable types with validation built into their
// constructors, so an instance that exists is an instance that is valid.
package kernel
