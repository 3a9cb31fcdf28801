package googledocs

import (
	"context"
	"fmt"

	"google.golang.org/api/drive/v3"

	"github.com/anastluc/gdocs-participation-statistics/internal/core/domain"
	"github.com/anastluc/gdocs-participation-statistics/internal/core/ports/driven"
	"github.com/anastluc/gdocs-participation-statistics/internal/logger"
)

var _ driven.RevisionLister = (*Client)(nil)

// ListRevisions fetches the complete revision history, looping over
// pages until no continuation token remains. Revisions with malformed
// modification times are skipped and logged rather than allowed to
// sort as the zero time.
func (c *Client) ListRevisions(ctx context.Context, docID string) ([]domain.Revision, error) {
	var revisions []domain.Revision
	pageToken := ""

	for {
		call := c.drive.Revisions.List(docID).
			PageSize(pageSize).
			Fields("nextPageToken,revisions(id,modifiedTime,lastModifyingUser)").
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("list revisions: %w", err)
		}

		for _, rev := range resp.Revisions {
			mapped, ok := mapRevision(rev)
			if !ok {
				continue
			}
			revisions = append(revisions, mapped)
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return revisions, nil
}

func mapRevision(rev *drive.Revision) (domain.Revision, bool) {
	modified, err := domain.ParseTimestamp(rev.ModifiedTime)
	if err != nil {
		logger.Warn("skipping revision %s: bad modifiedTime %q", rev.Id, rev.ModifiedTime)
		return domain.Revision{}, false
	}

	return domain.Revision{
		ID:                rev.Id,
		ModifiedTime:      modified,
		LastModifyingUser: mapRevisionUser(rev.LastModifyingUser),
	}, true
}

// mapRevisionUser deliberately drops the Me flag: revision users are
// reported with their real address, never the "me" placeholder.
func mapRevisionUser(u *drive.User) *domain.User {
	if u == nil {
		return nil
	}
	return &domain.User{
		DisplayName:  u.DisplayName,
		EmailAddress: u.EmailAddress,
	}
}
