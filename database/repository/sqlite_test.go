package repository_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/junle/database"
	"github.com/junle/database/repository"
)

func newSQLiteConnection(t *testing.T) (*database.Connection, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	// An in-memory sqlite database lives inside its connection; a second
	// pooled connection would see a different, empty database.
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	conn := database.NewConnectionFromGorm(db)

	if err := conn.Migrate(); err != nil {
		t.Fatalf("migrate schema: %v", err)
	}

	return conn, db
}

func seedUser(t *testing.T, conn *database.Connection, username string) database.User {
	t.Helper()

	user, err := repository.Users{DB: conn}.Create(database.UsersAttrs{
		Username:    username,
		DisplayName: username,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	return *user
}

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

func seedComment(t *testing.T, conn *database.Connection, post database.Post, name string) database.Comment {
	t.Helper()

	comment, err := repository.Comments{DB: conn}.Create(database.CommentsAttrs{
		PostID:  post.ID,
		Name:    name,
		Email:   name + "@example.test",
		Content: "comment by " + name,
	})
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}

	return *comment
}

func seedPage(t *testing.T, conn *database.Connection, reference string, state database.ModerationState) database.Page {
	t.Helper()

	page, err := repository.Pages{DB: conn}.Create(database.PagesAttrs{
		Title:       reference,
		Reference:   reference,
		Content:     "page " + reference,
		PublishedAt: time.Now().UTC(),
		State:       state,
	})
	if err != nil {
		t.Fatalf("create page: %v", err)
	}

	return *page
}

func mustUUID(t *testing.T, value string) {
	t.Helper()

	if _, err := uuid.Parse(value); err != nil {
		t.Fatalf("expected a uuid, got %q: %v", value, err)
	}
}
