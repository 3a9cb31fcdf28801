package services

import "github.com/anastluc/gdocs-participation-statistics/internal/core/domain"

// AggregateComments folds comment threads into per-user statistics
// keyed by display name. Each comment credits its author; each nested
// reply credits the reply's author; a resolved comment credits whoever
// the API recorded as resolver, falling back to the comment's author
// when no resolver was recorded. No temporal reconciliation is done:
// resolution credit follows the resolvedBy field, not the timestamp of
// the resolving action.
func AggregateComments(comments []domain.Comment) map[string]*domain.CommentStats {
	stats := make(map[string]*domain.CommentStats)

	for i := range comments {
		comment := &comments[i]
		author := comment.Author

		entry := getOrInsert(stats, author.Name())
		entry.CommentsMade++
		entry.Email = author.Email()

		if comment.Resolved {
			resolver := comment.ResolvedBy
			if resolver == nil {
				resolver = author
			}
			resolverEntry := getOrInsert(stats, resolver.Name())
			resolverEntry.ResolvedComments++
			resolverEntry.Email = resolver.Email()
		}

		for _, reply := range comment.Replies {
			replyEntry := getOrInsert(stats, reply.Author.Name())
			replyEntry.RepliesMade++
			replyEntry.Email = reply.Author.Email()
		}
	}

	return stats
}
