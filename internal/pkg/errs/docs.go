// Package errs provides standardized error types for the dispatch console.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrValueIsRequired)
//   - a struct type carrying the error details
//   - constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() targeting the sentinel
//
// Callers classify errors with errors.Is against the sentinels rather than
// matching concrete types, which keeps handling uniform across layers.
package errs
