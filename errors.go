package dockerhubutil

import "errors"

var (
	// ErrInvalidMethod is returned when a request method other than GET or
	// POST is passed to Client.Do. This is a programmer error, not a
	// recoverable condition.
	ErrInvalidMethod = errors.New("invalid HTTP request method")

	// ErrNoTags is returned when a repository has no version tags left after
	// placeholder filtering. Resolution cannot pick a maximum from nothing,
	// so the whole run fails rather than skipping the repository.
	ErrNoTags = errors.New("no version tags after filtering")

	// ErrUnexpectedStatus is returned for non-200 responses when the client
	// runs in strict mode. In the default mode a non-200 yields empty data.
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")
)
