package domain

import "time"

// Revision is one recorded saved state of the document. Records are
// immutable once fetched; ModifiedTime is the ordering key.
type Revision struct {
	ID           string
	ModifiedTime time.Time

	// LastModifyingUser is nil when the API omitted it.
	LastModifyingUser *User
}

// DocumentMetadata holds the document header fields shown at the top of
// a report. The time fields are kept as the raw API strings: they are
// display-only and reformatted best-effort by the renderer.
type DocumentMetadata struct {
	Title        string
	CreatedTime  string
	ModifiedTime string
	Owner        string
	LastModifier string
}
