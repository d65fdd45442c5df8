package domain

import "errors"

// Shared error taxonomy. Callers classify with errors.Is; adapters wrap
// these with fmt.Errorf("op: %w", ...) to add call-site context.
var (
	// ErrValidation marks a rejected mutation (blank required field,
	// out-of-range visit date, malformed date/time).
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a lookup of a spot identifier that is not in the
	// collection.
	ErrNotFound = errors.New("not found")

	// ErrPlaceNotFound: a geocoding query returned zero candidates, or a
	// named-place routing backend could not resolve an endpoint.
	ErrPlaceNotFound = errors.New("place not found")

	// ErrRouteNotFound: both endpoints resolved but the routing backend
	// reports no viable route between them.
	ErrRouteNotFound = errors.New("route not found")

	// ErrUpstream: the routing backend answered with a non-success status
	// outside the mapped cases; the wrapped message carries the raw status.
	ErrUpstream = errors.New("upstream error")

	// ErrCommunication: network-level failure (unreachable service,
	// malformed response, transport timeout).
	ErrCommunication = errors.New("communication error")

	// ErrConfiguration: a required credential is missing. Surfaced before
	// any network call and never retried.
	ErrConfiguration = errors.New("configuration error")

	// ErrNoActiveTrip: no trip record exists for the session. The caller
	// redirects to trip creation; the core does not handle it further.
	ErrNoActiveTrip = errors.New("no active trip")
)
