package googledocs

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/drive/v3"

	"github.com/anastluc/gdocs-participation-statistics/internal/core/domain"
	"github.com/anastluc/gdocs-participation-statistics/internal/core/ports/driven"
	"github.com/anastluc/gdocs-participation-statistics/internal/logger"
)

var _ driven.CommentLister = (*Client)(nil)

// replyActionResolve marks the reply that resolved a comment thread.
const replyActionResolve = "resolve"

// ListComments fetches all comment threads with their replies, looping
// over pages until no continuation token remains. Deleted comments are
// excluded.
func (c *Client) ListComments(ctx context.Context, docID string) ([]domain.Comment, error) {
	var comments []domain.Comment
	pageToken := ""

	for {
		call := c.drive.Comments.List(docID).
			PageSize(pageSize).
			Fields("nextPageToken,comments(id,content,author,createdTime,resolved,modifiedTime,replies)").
			IncludeDeleted(false).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("list comments: %w", err)
		}

		for _, comment := range resp.Comments {
			comments = append(comments, mapComment(comment))
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return comments, nil
}

func mapComment(comment *drive.Comment) domain.Comment {
	created, err := domain.ParseTimestamp(comment.CreatedTime)
	if err != nil {
		logger.Warn("comment %s: bad createdTime %q", comment.Id, comment.CreatedTime)
	}

	var modified time.Time
	if comment.ModifiedTime != "" {
		modified, err = domain.ParseTimestamp(comment.ModifiedTime)
		if err != nil {
			logger.Warn("comment %s: bad modifiedTime %q", comment.Id, comment.ModifiedTime)
		}
	}

	mapped := domain.Comment{
		ID:           comment.Id,
		Content:      comment.Content,
		Author:       mapCommentUser(comment.Author),
		CreatedTime:  created,
		ModifiedTime: modified,
		Resolved:     comment.Resolved,
	}

	for _, reply := range comment.Replies {
		replyCreated, err := domain.ParseTimestamp(reply.CreatedTime)
		if err != nil {
			logger.Warn("comment %s: reply with bad createdTime %q", comment.Id, reply.CreatedTime)
		}
		author := mapCommentUser(reply.Author)
		mapped.Replies = append(mapped.Replies, domain.Reply{
			Author:      author,
			CreatedTime: replyCreated,
		})

		// The API records resolution as a reply action; the last
		// resolving reply's author is the resolver.
		if reply.Action == replyActionResolve {
			mapped.ResolvedBy = author
		}
	}

	return mapped
}

// mapCommentUser keeps the Me flag: comment authors are identified by
// the synthetic "me" placeholder when they are the authenticated
// account, since the comments API exposes no address for them.
func mapCommentUser(u *drive.User) *domain.User {
	if u == nil {
		return nil
	}
	return &domain.User{
		DisplayName:  u.DisplayName,
		EmailAddress: u.EmailAddress,
		Me:           u.Me,
	}
}
