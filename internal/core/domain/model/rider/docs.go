// Package rider contains the Rider aggregate: a service provider with a
// category, a derived availability flag, and hashed portal credentials.
// Availability is owned by the status transition engine, which keeps it
// consistent with the rider's active requests.
package rider
