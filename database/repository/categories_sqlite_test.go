package repository_test

import (
	"testing"
	"time"

	"github.com/junle/database"
	"github.com/junle/database/repository"
	"github.com/junle/database/repository/pagination"
	"github.com/junle/pkg/gorm"
)

func TestCategoriesGetValidatedAlphabetical(t *testing.T) {
	conn, _ := newSQLiteConnection(t)

	seedCategory(t, conn, "Zen", database.StateValidated)
	seedCategory(t, conn, "Ansible", database.StateValidated)
	seedCategory(t, conn, "Hidden", database.StateDraft)

	repo := repository.Categories{DB: conn}

	result, err := repo.GetValidated(pagination.Paginate{Page: 1, Limit: pagination.DefaultLimit})
	if err != nil {
		t.Fatalf("get validated: %v", err)
	}

	if len(result.Data) != 2 {
		t.Fatalf("expected draft filtered out, got %d", len(result.Data))
	}

	if result.Data[0].Title != "Ansible" || result.Data[1].Title != "Zen" {
		t.Fatalf("expected alphabetical order, got %q then %q", result.Data[0].Title, result.Data[1].Title)
	}
}

func TestCategoriesTitleUniqueness(t *testing.T) {
	conn, _ := newSQLiteConnection(t)

	seedCategory(t, conn, "Linux", database.StateValidated)

	repo := repository.Categories{DB: conn}

	_, err := repo.Create(database.CategoriesAttrs{Title: "Linux"})
	if err == nil {
		t.Fatalf("expected duplicate title to be rejected")
	}

	if !gorm.IsDuplicated(err) {
		t.Fatalf("expected a uniqueness violation, got %v", err)
	}

	var count int64
	if err := conn.Sql().Model(&database.Category{}).Count(&count).Error; err != nil {
		t.Fatalf("count categories: %v", err)
	}

	if count != 1 {
		t.Fatalf("rejected write must leave the store unchanged, found %d rows", count)
	}
}

func TestCategoriesDetailLookupFiltersState(t *testing.T) {
	conn, _ := newSQLiteConnection(t)

	visible := seedCategory(t, conn, "Linux", database.StateValidated)
	draft := seedCategory(t, conn, "Pending", database.StateDraft)

	repo := repository.Categories{DB: conn}

	if found := repo.FindValidatedBy(visible.ID); found == nil || found.ID != visible.ID {
		t.Fatalf("expected validated category")
	}

	if repo.FindValidatedBy(draft.ID) != nil {
		t.Fatalf("draft category must read as missing")
	}
}

func TestCategoriesDeleteCascadesToPostsAndComments(t *testing.T) {
	conn, _ := newSQLiteConnection(t)

	author := seedUser(t, conn, "junle")
	category := seedCategory(t, conn, "Doomed", database.StateValidated)
	post := seedPost(t, conn, author, category, "orphan-to-be", database.StateValidated, time.Now().UTC())
	seedComment(t, conn, post, "alice")

	repo := repository.Categories{DB: conn}

	if err := repo.Delete(category.ID); err != nil {
		t.Fatalf("delete category: %v", err)
	}

	var posts, comments int64
	if err := conn.Sql().Model(&database.Post{}).Count(&posts).Error; err != nil {
		t.Fatalf("count posts: %v", err)
	}
	if err := conn.Sql().Model(&database.Comment{}).Count(&comments).Error; err != nil {
		t.Fatalf("count comments: %v", err)
	}

	if posts != 0 || comments != 0 {
		t.Fatalf("expected full cascade, %d posts and %d comments left", posts, comments)
	}
}
