package driven

import (
	"context"
	"time"

	"github.com/anastluc/gdocs-participation-statistics/internal/core/domain"
)

// MetadataSource fetches document header metadata.
type MetadataSource interface {
	// GetMetadata returns title, creation/modification times, owner, and
	// last modifier for the document.
	GetMetadata(ctx context.Context, docID string) (domain.DocumentMetadata, error)
}

// RevisionLister fetches the complete revision history of a document.
// Implementations handle pagination internally and return the full set.
type RevisionLister interface {
	ListRevisions(ctx context.Context, docID string) ([]domain.Revision, error)
}

// CommentLister fetches all comment threads of a document, replies
// included, handling pagination internally.
type CommentLister interface {
	ListComments(ctx context.Context, docID string) ([]domain.Comment, error)
}

// ActivityLister fetches the activity log of a document from the given
// start time onward, handling pagination internally.
type ActivityLister interface {
	ListActivity(ctx context.Context, docID string, since time.Time) ([]domain.Activity, error)
}

// RevisionContentFetcher retrieves the plain-text snapshot of a single
// revision. Implementations decide export availability; an empty string
// with a nil error means the revision exposes no text export. They are
// also responsible for pacing consecutive fetches against rate limits,
// which can make a long revision walk run for minutes to hours - callers
// must pass a cancellable context.
type RevisionContentFetcher interface {
	FetchRevisionText(ctx context.Context, docID, revisionID string) (string, error)
}
