// Package services provides domain services that operate across aggregates
// of the dispatch console.
//
// The package includes:
//   - NotificationComposer: composes customer messages for request status
//     transitions
//
// Domain services hold business logic that does not naturally belong to a
// single aggregate root.
package services
