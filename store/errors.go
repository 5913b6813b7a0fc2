package store

import "errors"

var (
	// ErrNoOffers means the pool is empty. Callers present it as
	// "nothing available right now", not as a failure.
	ErrNoOffers = errors.New("no offers available")

	// ErrOfferNotFound covers a malformed or unknown offer id on the
	// redirect path. No click is recorded when it is returned.
	ErrOfferNotFound = errors.New("offer not found")
)
