package domain

import "errors"

// Domain errors represent business failures, distinct from
// infrastructure errors. Only authentication failures are fatal to a
// run; everything else degrades to partial results.
var (
	// ErrAuthRequired indicates no stored credentials were found.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthInvalid indicates stored credentials could not be used or
	// refreshed.
	ErrAuthInvalid = errors.New("authentication invalid")

	// ErrDocumentNotFound indicates the document ID resolved to nothing
	// visible to the authenticated account.
	ErrDocumentNotFound = errors.New("document not found")
)
