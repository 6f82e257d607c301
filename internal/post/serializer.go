package post

import "time"

// Les auteurs sortent sous forme de username, jamais d'ID interne.
// Le groupe d'un post et le post d'un commentaire restent des IDs nus.

type PostResponse struct {
	ID      string    `json:"id"`
	Author  string    `json:"author"`
	Text    string    `json:"text"`
	PubDate time.Time `json:"pub_date"`
	Group   *string   `json:"group"`
	Image   string    `json:"image,omitempty"`
}

type CommentResponse struct {
	ID      string    `json:"id"`
	Author  string    `json:"author"`
	Post    string    `json:"post"`
	Text    string    `json:"text"`
	Created time.Time `json:"created"`
}

func ToPostResponse(p Post) PostResponse {
	return PostResponse{
		ID:      p.ID,
		Author:  p.Author.Username,
		Text:    p.Text,
		PubDate: p.PubDate,
		Group:   p.GroupID,
		Image:   p.ImageURL,
	}
}

func ToPostResponses(posts []Post) []PostResponse {
	responses := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		responses = append(responses, ToPostResponse(p))
	}
	return responses
}

func ToCommentResponse(cm Comment) CommentResponse {
	return CommentResponse{
		ID:      cm.ID,
		Author:  cm.Author.Username,
		Post:    cm.PostID,
		Text:    cm.Text,
		Created: cm.Created,
	}
}

func ToCommentResponses(comments []Comment) []CommentResponse {
	responses := make([]CommentResponse, 0, len(comments))
	for _, cm := range comments {
		responses = append(responses, ToCommentResponse(cm))
	}
	return responses
}
