package handler

import (
	"testing"
	"time"

	"github.com/junle/database"
	"github.com/junle/database/repository"
)

func seedCategory(t *testing.T, conn *database.Connection, title string, state database.ModerationState) database.Category {
	t.Helper()

	category, err := repository.Categories{DB: conn}.Create(database.CategoriesAttrs{
		Title: title,
		State: state,
	})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}

	return *category
}

func seedTag(t *testing.T, conn *database.Connection, title string, state database.ModerationState) database.Tag {
	t.Helper()

	tag, err := repository.Tags{DB: conn}.Create(database.TagAttrs{
		Title: title,
		State: state,
	})
	if err != nil {
		t.Fatalf("create tag: %v", err)
	}

	return *tag
}

func seedPost(t *testing.T, conn *database.Connection, author database.User, category database.Category, title string, state database.ModerationState, publishedAt time.Time, tags ...database.Tag) database.Post {
	t.Helper()

	var tagAttrs []database.TagAttrs
	for _, tag := range tags {
		tagAttrs = append(tagAttrs, database.TagAttrs{Id: tag.ID, Title: tag.Title})
	}

	post, err := repository.Posts{DB: conn}.Create(database.PostsAttrs{
		AuthorID:    author.ID,
		CategoryID:  category.ID,
		Title:       title,
		Description: title + " description",
		Content:     "# " + title + "\n\nbody",
		PublishedAt: publishedAt,
		State:       state,
		Tags:        tagAttrs,
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	return *post
}

func seedComment(t *testing.T, conn *database.Connection, post database.Post, name string, state database.ModerationState) database.Comment {
	t.Helper()

	comments := repository.Comments{DB: conn}

	comment, err := comments.Create(database.CommentsAttrs{
		PostID:  post.ID,
		Name:    name,
		Email:   name + "@example.test",
		Content: "comment by " + name,
	})
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}

	if state != database.StateDraft {
		if err := comments.Transition(comment.ID, state); err != nil {
			t.Fatalf("transition comment: %v", err)
		}
		comment.State = state
	}

	return *comment
}

func seedPage(t *testing.T, conn *database.Connection, reference string, state database.ModerationState) database.Page {
	t.Helper()

	page, err := repository.Pages{DB: conn}.Create(database.PagesAttrs{
		Title:       reference,
		Reference:   reference,
		Content:     "# " + reference + "\n\nbody",
		PublishedAt: time.Now().UTC(),
		State:       state,
	})
	if err != nil {
		t.Fatalf("create page: %v", err)
	}

	return *page
}
