package domain

import "time"

// Comment is one comment thread on the document, with its nested replies
// in the order the API returned them. Comments are append-only as
// retrieved and never mutated by the analysis.
type Comment struct {
	ID      string
	Content string

	// Author is nil when the API omitted it.
	Author *User

	CreatedTime time.Time

	// ModifiedTime is the zero time when the API omitted it. For
	// resolved comments it stands in for the resolution time.
	ModifiedTime time.Time

	Resolved bool

	// ResolvedBy is nil when the API did not record a resolver.
	ResolvedBy *User

	Replies []Reply
}

// Reply is a nested reply within a comment thread.
type Reply struct {
	Author      *User
	CreatedTime time.Time
}

// ReplyCount returns the total number of replies across all comments.
func ReplyCount(comments []Comment) int {
	n := 0
	for i := range comments {
		n += len(comments[i].Replies)
	}
	return n
}
