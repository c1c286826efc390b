package response

import (
	"time"

	"review-hub/internal/data/entity"
)

type CommentResponse struct {
	ID        int64     `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"pub_date"`
}

func CommentToResponse(comment *entity.Comment, authorUsername string) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		Author:    authorUsername,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	}
}
