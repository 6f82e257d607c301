package post

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Brideshead/api-final-yatube/internal/user"
)

func TestToPostResponse(t *testing.T) {
	pubDate := time.Date(2024, 5, 12, 10, 0, 0, 0, time.UTC)
	groupID := "group1"

	tests := []struct {
		name     string
		post     Post
		expected PostResponse
	}{
		{
			name: "Post with group and image",
			post: Post{
				ID:       "post1",
				Text:     "Premier billet",
				PubDate:  pubDate,
				AuthorID: "user1",
				Author:   user.User{ID: "user1", Username: "alice"},
				GroupID:  &groupID,
				ImageURL: "https://bucket.s3.eu-west-3.amazonaws.com/posts/post_post1.jpg",
			},
			expected: PostResponse{
				ID:      "post1",
				Author:  "alice",
				Text:    "Premier billet",
				PubDate: pubDate,
				Group:   &groupID,
				Image:   "https://bucket.s3.eu-west-3.amazonaws.com/posts/post_post1.jpg",
			},
		},
		{
			name: "Post without group",
			post: Post{
				ID:       "post2",
				Text:     "Sans groupe",
				PubDate:  pubDate,
				AuthorID: "user1",
				Author:   user.User{ID: "user1", Username: "alice"},
			},
			expected: PostResponse{
				ID:      "post2",
				Author:  "alice",
				Text:    "Sans groupe",
				PubDate: pubDate,
				Group:   nil,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// L'auteur sort en username, jamais en ID interne
			assert.Equal(t, tt.expected, ToPostResponse(tt.post))
		})
	}
}

func TestToCommentResponse(t *testing.T) {
	created := time.Date(2024, 5, 12, 11, 0, 0, 0, time.UTC)

	cm := Comment{
		ID:       "comment1",
		AuthorID: "user2",
		Author:   user.User{ID: "user2", Username: "bob"},
		PostID:   "post1",
		Text:     "Bien vu",
		Created:  created,
	}

	assert.Equal(t, CommentResponse{
		ID:      "comment1",
		Author:  "bob",
		Post:    "post1",
		Text:    "Bien vu",
		Created: created,
	}, ToCommentResponse(cm))
}

func TestToPostResponsesEmpty(t *testing.T) {
	responses := ToPostResponses(nil)
	assert.NotNil(t, responses)
	assert.Len(t, responses, 0)
}
