package seeds

import (
	"fmt"
	"time"

	"github.com/junle/database"
	"github.com/junle/database/repository"
)

type PostsSeed struct {
	db *database.Connection
}

func NewPostsSeed(db *database.Connection) *PostsSeed {
	return &PostsSeed{
		db: db,
	}
}

// CreatePosts spreads a handful of markdown articles across the given
// categories and tags. Publication dates step backwards a week at a time so
// the listings have a stable newest-first order, and a couple of posts stay
// out of the validated state on purpose.
func (s PostsSeed) CreatePosts(author database.User, categories []database.Category, tags []database.Tag) ([]database.Post, error) {
	if len(categories) == 0 || len(tags) == 0 {
		return nil, fmt.Errorf("posts need categories and tags seeded first")
	}

	posts := repository.Posts{DB: s.db}

	seedList := []struct {
		title string
		state database.ModerationState
	}{
		{"Shipping a Read Model", database.StateValidated},
		{"Pagination Without Surprises", database.StateValidated},
		{"Comment Moderation in Practice", database.StateValidated},
		{"Counting Views Honestly", database.StateValidated},
		{"Half-written Field Notes", database.StateDraft},
		{"A Post That Did Not Make It", database.StateInvalidated},
	}

	publishedAt := time.Now().UTC()
	var created []database.Post

	for i, seed := range seedList {
		category := categories[i%len(categories)]
		tag := tags[i%len(tags)]

		post, err := posts.Create(database.PostsAttrs{
			AuthorID:    author.ID,
			CategoryID:  category.ID,
			Title:       seed.title,
			Description: fmt.Sprintf("Notes on %s.", seed.title),
			Content:     fmt.Sprintf("# %s\n\nThis article is *seeded* content.\n\n```go\nfunc main() {}\n```\n", seed.title),
			PublishedAt: publishedAt.AddDate(0, 0, -7*i),
			State:       seed.state,
			Tags: []database.TagAttrs{
				{Id: tag.ID, Title: tag.Title},
			},
		})

		if err != nil {
			return nil, fmt.Errorf("issue creating posts: %w", err)
		}

		created = append(created, *post)
	}

	return created, nil
}
