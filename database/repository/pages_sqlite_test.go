package repository_test

import (
	"testing"

	"github.com/junle/database"
	"github.com/junle/database/repository"
	"github.com/junle/pkg/gorm"
)

func TestPagesFindValidatedByReference(t *testing.T) {
	conn, _ := newSQLiteConnection(t)

	page := seedPage(t, conn, "about", database.StateValidated)
	seedPage(t, conn, "secret", database.StateDraft)

	repo := repository.Pages{DB: conn}

	if found := repo.FindValidatedBy("about"); found == nil || found.ID != page.ID {
		t.Fatalf("expected the about page")
	}

	if found := repo.FindValidatedBy("  ABOUT  "); found == nil || found.ID != page.ID {
		t.Fatalf("reference lookup should be case-insensitive and trimmed")
	}

	if repo.FindValidatedBy("secret") != nil {
		t.Fatalf("draft page must read as missing")
	}

	if repo.FindValidatedBy("nope") != nil {
		t.Fatalf("unknown reference must read as missing")
	}
}

func TestPagesReferenceUniqueness(t *testing.T) {
	conn, _ := newSQLiteConnection(t)

	seedPage(t, conn, "about", database.StateValidated)

	repo := repository.Pages{DB: conn}

	_, err := repo.Create(database.PagesAttrs{
		Title:     "About again",
		Reference: "about",
		Content:   "dup",
	})

	if !gorm.IsDuplicated(err) {
		t.Fatalf("expected a uniqueness violation, got %v", err)
	}
}

func TestPagesTransition(t *testing.T) {
	conn, _ := newSQLiteConnection(t)

	page := seedPage(t, conn, "about", database.StateDraft)

	repo := repository.Pages{DB: conn}

	if repo.FindValidatedBy("about") != nil {
		t.Fatalf("draft page should be hidden")
	}

	if err := repo.Transition(page.ID, database.StateValidated); err != nil {
		t.Fatalf("transition: %v", err)
	}

	if repo.FindValidatedBy("about") == nil {
		t.Fatalf("validated page should resolve")
	}
}
