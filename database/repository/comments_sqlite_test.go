package repository_test

import (
	"testing"
	"time"

	"github.com/junle/database"
	"github.com/junle/database/repository"
	"github.com/junle/database/repository/pagination"
	"github.com/junle/pkg/gorm"
)

func TestCommentsCreateStartsAsDraft(t *testing.T) {
	conn, _ := newSQLiteConnection(t)

	author := seedUser(t, conn, "junle")
	category := seedCategory(t, conn, "Linux", database.StateValidated)

	// The submission path accepts comments on draft posts on purpose.
	post := seedPost(t, conn, author, category, "unpublished", database.StateDraft, time.Now().UTC())

	repo := repository.Comments{DB: conn}

	comment, err := repo.Create(database.CommentsAttrs{
		PostID:  post.ID,
		Name:    "alice",
		Email:   "alice@example.test",
		Content: "first!",
	})
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}

	if comment.State != database.StateDraft {
		t.Fatalf("submissions must start as drafts, got %q", comment.State)
	}

	if comment.PublishedAt.IsZero() {
		t.Fatalf("publish date must be stamped at creation")
	}

	mustUUID(t, comment.UUID)

	listed, err := repo.GetForPost(post.ID, pagination.Paginate{Page: 1, Limit: pagination.DefaultLimit})
	if err != nil {
		t.Fatalf("get for post: %v", err)
	}

	if len(listed.Data) != 0 {
		t.Fatalf("draft comments must stay out of the public list")
	}

	if err := repo.Transition(comment.ID, database.StateValidated); err != nil {
		t.Fatalf("validate comment: %v", err)
	}

	listed, err = repo.GetForPost(post.ID, pagination.Paginate{Page: 1, Limit: pagination.DefaultLimit})
	if err != nil {
		t.Fatalf("get for post: %v", err)
	}

	if len(listed.Data) != 1 {
		t.Fatalf("validated comment must appear, got %d", len(listed.Data))
	}
}

func TestCommentsOrderedNewestFirst(t *testing.T) {
	conn, _ := newSQLiteConnection(t)

	author := seedUser(t, conn, "junle")
	category := seedCategory(t, conn, "Linux", database.StateValidated)
	post := seedPost(t, conn, author, category, "discussed", database.StateValidated, time.Now().UTC())

	repo := repository.Comments{DB: conn}

	first := seedComment(t, conn, post, "alice")
	second := seedComment(t, conn, post, "bob")

	// Force distinct publish dates; sqlite timestamps can collide in-test.
	base := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []uint64{first.ID, second.ID} {
		err := conn.Sql().Model(&database.Comment{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"published_at": base.Add(time.Duration(i) * time.Hour),
				"state":        database.StateValidated,
			}).Error
		if err != nil {
			t.Fatalf("stamp comment: %v", err)
		}
	}

	listed, err := repo.GetForPost(post.ID, pagination.Paginate{Page: 1, Limit: pagination.DefaultLimit})
	if err != nil {
		t.Fatalf("get for post: %v", err)
	}

	if len(listed.Data) != 2 {
		t.Fatalf("expected both comments, got %d", len(listed.Data))
	}

	if listed.Data[0].Name != "bob" || listed.Data[1].Name != "alice" {
		t.Fatalf("expected newest-first order, got %q then %q", listed.Data[0].Name, listed.Data[1].Name)
	}
}

func TestCommentsUpdateKeepsPublishDate(t *testing.T) {
	conn, _ := newSQLiteConnection(t)

	author := seedUser(t, conn, "junle")
	category := seedCategory(t, conn, "Linux", database.StateValidated)
	post := seedPost(t, conn, author, category, "edited", database.StateValidated, time.Now().UTC())

	repo := repository.Comments{DB: conn}

	comment := seedComment(t, conn, post, "alice")
	stamped := comment.PublishedAt

	err := repo.Update(comment.ID, database.CommentsAttrs{
		Name:    "alice b",
		Email:   "alice@example.test",
		Content: "edited for clarity",
	})
	if err != nil {
		t.Fatalf("update comment: %v", err)
	}

	var stored database.Comment
	if err = conn.Sql().First(&stored, comment.ID).Error; err != nil {
		t.Fatalf("reload comment: %v", err)
	}

	if stored.Content != "edited for clarity" || stored.Name != "alice b" {
		t.Fatalf("edited fields not persisted: %+v", stored)
	}

	if !stored.PublishedAt.Equal(stamped) {
		t.Fatalf("publish date must not move on update: %v != %v", stored.PublishedAt, stamped)
	}

	if err = repo.Update(9999, database.CommentsAttrs{Name: "x", Content: "y"}); !gorm.IsNotFound(err) {
		t.Fatalf("expected not-found updating a missing comment, got %v", err)
	}
}

func TestCommentsRequireExistingPost(t *testing.T) {
	conn, _ := newSQLiteConnection(t)

	repo := repository.Comments{DB: conn}

	_, err := repo.Create(database.CommentsAttrs{
		PostID:  9999,
		Name:    "ghost",
		Content: "hello?",
	})

	if !gorm.IsForeignKeyViolated(err) {
		t.Fatalf("expected a referential-integrity violation, got %v", err)
	}
}
