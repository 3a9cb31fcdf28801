package domain

import "time"

// EditKind classifies an edit action for the heuristic word-contribution
// estimate. The kinds carry different calibration weights.
type EditKind int

const (
	// EditOther is a regular edit with no recognized sub-kind.
	EditOther EditKind = iota

	// EditDocumentChange is a major document content change.
	EditDocumentChange

	// EditDelete is a deletion operation.
	EditDelete
)

// EditDetail describes an edit-type activity. Suggestion edits are
// proposed but not accepted content and are excluded from the
// word-contribution estimate.
type EditDetail struct {
	Suggestion bool
	Kind       EditKind
}

// Activity is one logged user action against the document, distinct
// from a revision. Only the fields the aggregators consume are kept
// from the raw activity record.
type Activity struct {
	// Timestamp is the zero time when the raw record had no usable
	// timestamp; such records are excluded from daily bucketing.
	Timestamp time.Time

	// ActorName is the display name of the first actor,
	// UnknownUserName when the record named none.
	ActorName string

	// HasDriveItemTarget is true when the first target of the activity
	// is the document itself. Only targeted activities count toward
	// word contributions.
	HasDriveItemTarget bool

	// Edit is nil when the primary action is not an edit.
	Edit *EditDetail
}
