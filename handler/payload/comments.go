package payload

import (
	"fmt"
	"time"

	"github.com/junle/database"
	"github.com/junle/pkg/portal"
)

type CommentResponse struct {
	ID          uint64    `json:"id"`
	UUID        string    `json:"uuid"`
	Name        string    `json:"name"`
	AvatarURL   string    `json:"avatar_url"`
	Content     string    `json:"content"`
	PublishedAt time.Time `json:"published_at"`
}

// CommentRequest carries the visitor-submitted form fields. Content length
// mirrors the column size so validation fails before the database does.
type CommentRequest struct {
	Name    string `validate:"required,max=100"`
	Email   string `validate:"omitempty,email,max=255"`
	Content string `validate:"required,max=254"`
}

func GetCommentResponse(comment database.Comment) CommentResponse {
	return CommentResponse{
		ID:          comment.ID,
		UUID:        comment.UUID,
		Name:        comment.Name,
		AvatarURL:   gravatarURL(comment.Email),
		Content:     comment.Content,
		PublishedAt: comment.PublishedAt,
	}
}

func gravatarURL(email string) string {
	if email == "" {
		return ""
	}

	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?d=mp", portal.GravatarHash(email))
}
