package googledocs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/drive/v3"
)

func TestMapComment(t *testing.T) {
	mapped := mapComment(&drive.Comment{
		Id:           "c1",
		Content:      "Needs a citation",
		CreatedTime:  "2024-02-01T09:00:00.000Z",
		ModifiedTime: "2024-02-01T10:00:00.000Z",
		Resolved:     false,
		Author:       &drive.User{DisplayName: "Ada", EmailAddress: "ada@example.com"},
		Replies: []*drive.Reply{
			{
				CreatedTime: "2024-02-01T09:30:00.000Z",
				Author:      &drive.User{DisplayName: "Bob"},
			},
		},
	})

	assert.Equal(t, "c1", mapped.ID)
	assert.Equal(t, "Needs a citation", mapped.Content)
	assert.Equal(t, time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC), mapped.CreatedTime)
	assert.False(t, mapped.Resolved)
	assert.Nil(t, mapped.ResolvedBy)
	require.Len(t, mapped.Replies, 1)
	assert.Equal(t, "Bob", mapped.Replies[0].Author.DisplayName)
}

func TestMapCommentResolverFromReplyAction(t *testing.T) {
	mapped := mapComment(&drive.Comment{
		Id:          "c1",
		CreatedTime: "2024-02-01T09:00:00Z",
		Resolved:    true,
		Author:      &drive.User{DisplayName: "Ada"},
		Replies: []*drive.Reply{
			{
				CreatedTime: "2024-02-01T09:30:00Z",
				Author:      &drive.User{DisplayName: "Bob"},
			},
			{
				CreatedTime: "2024-02-02T08:00:00Z",
				Action:      "resolve",
				Author:      &drive.User{DisplayName: "Carol"},
			},
		},
	})

	require.NotNil(t, mapped.ResolvedBy)
	assert.Equal(t, "Carol", mapped.ResolvedBy.DisplayName)
}

func TestMapCommentUserKeepsMeFlag(t *testing.T) {
	u := mapCommentUser(&drive.User{DisplayName: "Ada", Me: true})

	require.NotNil(t, u)
	assert.True(t, u.Me)
	assert.Nil(t, mapCommentUser(nil))
}
