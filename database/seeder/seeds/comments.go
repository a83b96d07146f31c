package seeds

import (
	"fmt"

	"github.com/junle/database"
	"github.com/junle/database/repository"
)

type CommentsSeed struct {
	db *database.Connection
}

func NewCommentsSeed(db *database.Connection) *CommentsSeed {
	return &CommentsSeed{
		db: db,
	}
}

// Create attaches a small thread to each given post. Every comment lands as
// a draft the way visitor submissions do; the first two per post are then
// validated so the public thread is not empty.
func (s CommentsSeed) Create(posts ...database.Post) ([]database.Comment, error) {
	comments := repository.Comments{DB: s.db}

	visitors := []struct {
		name    string
		email   string
		content string
	}{
		{"Ada", "ada@example.com", "Great write-up, thanks for sharing."},
		{"Linus", "", "The pagination section cleared things up for me."},
		{"Anonymous", "", "Still waiting on moderation."},
	}

	var created []database.Comment

	for _, post := range posts {
		for i, visitor := range visitors {
			comment, err := comments.Create(database.CommentsAttrs{
				PostID:  post.ID,
				Name:    visitor.name,
				Email:   visitor.email,
				Content: visitor.content,
			})

			if err != nil {
				return nil, fmt.Errorf("error creating comments: %w", err)
			}

			if i < 2 {
				if err = comments.Transition(comment.ID, database.StateValidated); err != nil {
					return nil, fmt.Errorf("error validating comments: %w", err)
				}

				comment.State = database.StateValidated
			}

			created = append(created, *comment)
		}
	}

	return created, nil
}
