package storage

import "errors"

// Classified store errors. Handlers translate these to specific 4xx codes;
// anything else surfaces as a 500 at the request boundary.
var (
	// ErrInvalidID means the supplied identifier is not a well-formed
	// ObjectID. Returned before any store access.
	ErrInvalidID = errors.New("invalid identifier")

	// ErrNotFound means no record matched the query.
	ErrNotFound = errors.New("record not found")

	// ErrMissingFile means a required uploaded-file reference was empty.
	ErrMissingFile = errors.New("uploaded file is required")

	// ErrDuplicateSubscriber means the email is already subscribed.
	ErrDuplicateSubscriber = errors.New("email is already subscribed")

	// ErrNotAcknowledged means the underlying write was not acknowledged.
	ErrNotAcknowledged = errors.New("write not acknowledged")
)
