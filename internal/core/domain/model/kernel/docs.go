// Package kernel contains shared value objects used across the domain model.
// These are the building blocks other aggregates are composed from: validated
// identifiers and geographic coordinates. All types here are immutable and
// must be created through their constructor functions.
package kernel
