// Package domain contains the core types for document participation
// analysis: the normalized records fetched from the document API
// (revisions, comments, activity events) and the aggregate statistics
// derived from them.
//
// All aggregation in this project is keyed by user display name, because
// the comment and revision APIs do not expose a stable user identifier
// uniformly. Two accounts sharing a display name collide into one bucket;
// this is a documented limitation of the analysis, not a bug in the
// aggregators.
package domain
