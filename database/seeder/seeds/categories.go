package seeds

import (
	"fmt"

	"github.com/junle/database"
	"github.com/junle/database/repository"
)

type CategoriesSeed struct {
	db *database.Connection
}

func MakeCategoriesSeed(db *database.Connection) *CategoriesSeed {
	return &CategoriesSeed{
		db: db,
	}
}

// Create seeds a fixed catalogue of categories. Most land validated so the
// public listings have content; the last two stay draft and invalidated to
// exercise the moderation filters.
func (s CategoriesSeed) Create() ([]database.Category, error) {
	categories := repository.Categories{DB: s.db}

	seedList := []struct {
		title string
		state database.ModerationState
	}{
		{"Engineering", database.StateValidated},
		{"Cloud", database.StateValidated},
		{"Data", database.StateValidated},
		{"Leadership", database.StateValidated},
		{"Notebooks", database.StateDraft},
		{"Archive", database.StateInvalidated},
	}

	var created []database.Category

	for _, seed := range seedList {
		category, err := categories.Create(database.CategoriesAttrs{
			Title: seed.title,
			State: seed.state,
		})

		if err != nil {
			return nil, fmt.Errorf("error seeding categories: %w", err)
		}

		created = append(created, *category)
	}

	return created, nil
}
