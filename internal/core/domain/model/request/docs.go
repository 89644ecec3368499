// Package request contains the Request aggregate: a single customer service
// job with a guarded lifecycle status, a structured where/when payload, and
// a weak reference to the rider working it. The status state machine in this
// package is the single authority on which lifecycle transitions are legal.
package request
