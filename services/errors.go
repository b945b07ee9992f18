package services

import "errors"

// Sentinel errors shared across services. Controllers translate these
// into structured {success:false} responses with the right status code;
// raw upstream detail never reaches the client.
var (
	// ErrNoSafeFoods: the allergy filter left nothing to plan with.
	ErrNoSafeFoods = errors.New("no safe foods found for your allergies")

	// ErrNotFound: a referenced entity (food, cycle, plan) is absent.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput: missing or unparsable required input.
	ErrInvalidInput = errors.New("invalid input")

	// Upstream failures, split by how the route reports them:
	// timeout -> 504, bad status -> 502, unusable body -> 500.
	ErrUpstreamTimeout = errors.New("upstream request timed out")
	ErrUpstreamStatus  = errors.New("upstream returned an error status")
	ErrUpstreamDecode  = errors.New("upstream response missing expected data")
)
