package googledocs

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/driveactivity/v2"

	"github.com/anastluc/gdocs-participation-statistics/internal/core/domain"
	"github.com/anastluc/gdocs-participation-statistics/internal/core/ports/driven"
	"github.com/anastluc/gdocs-participation-statistics/internal/logger"
)

var _ driven.ActivityLister = (*Client)(nil)

// ListActivity queries the Drive Activity API for all actions against
// the document from since onward, looping over pages until no
// continuation token remains.
func (c *Client) ListActivity(ctx context.Context, docID string, since time.Time) ([]domain.Activity, error) {
	var activities []domain.Activity
	pageToken := ""

	for {
		req := &driveactivity.QueryDriveActivityRequest{
			ItemName:  "items/" + docID,
			PageSize:  pageSize,
			PageToken: pageToken,
			Filter:    fmt.Sprintf("time >= %q", since.UTC().Format(time.RFC3339)),
		}

		resp, err := c.activity.Activity.Query(req).Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("query activity: %w", err)
		}

		for _, activity := range resp.Activities {
			activities = append(activities, mapActivity(activity))
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return activities, nil
}

func mapActivity(activity *driveactivity.DriveActivity) domain.Activity {
	return domain.Activity{
		Timestamp:          activityTime(activity),
		ActorName:          activityActor(activity),
		HasDriveItemTarget: len(activity.Targets) > 0 && activity.Targets[0].DriveItem != nil,
		Edit:               mapActionDetail(activity.PrimaryActionDetail),
	}
}

// activityTime prefers the point timestamp and falls back to the end of
// the activity's time range. The zero time marks records without a
// usable timestamp; those are excluded from daily bucketing.
func activityTime(activity *driveactivity.DriveActivity) time.Time {
	raw := activity.Timestamp
	if raw == "" && activity.TimeRange != nil {
		raw = activity.TimeRange.EndTime
	}
	if raw == "" {
		return time.Time{}
	}

	t, err := domain.ParseTimestamp(raw)
	if err != nil {
		logger.Warn("activity with bad timestamp %q", raw)
		return time.Time{}
	}
	return t
}

// activityActor resolves the first actor's person resource name. The
// activity API identifies known users by an opaque people resource
// name, not a display name, so collisions with the revision and
// comment display names are expected and accepted.
func activityActor(activity *driveactivity.DriveActivity) string {
	if len(activity.Actors) == 0 {
		return domain.UnknownUserName
	}
	actor := activity.Actors[0]
	if actor.User == nil || actor.User.KnownUser == nil || actor.User.KnownUser.PersonName == "" {
		return domain.UnknownUserName
	}
	return actor.User.KnownUser.PersonName
}

// mapActionDetail reduces the activity API's action variants onto the
// edit sub-kind model used by the word-contribution estimate: content
// edits weigh as document changes, deletions as deletes, and
// move/rename/restore actions as generic edits. Suggestion comments
// map to suggestion edits, which the estimate excludes.
func mapActionDetail(detail *driveactivity.ActionDetail) *domain.EditDetail {
	switch {
	case detail == nil:
		return nil
	case detail.Edit != nil:
		return &domain.EditDetail{Kind: domain.EditDocumentChange}
	case detail.Delete != nil:
		return &domain.EditDetail{Kind: domain.EditDelete}
	case detail.Move != nil, detail.Rename != nil, detail.Restore != nil:
		return &domain.EditDetail{Kind: domain.EditOther}
	case detail.Comment != nil && detail.Comment.Suggestion != nil:
		return &domain.EditDetail{Kind: domain.EditOther, Suggestion: true}
	default:
		return nil
	}
}
