package seeds

import (
	"fmt"

	"github.com/junle/database"
	"github.com/junle/database/repository"
)

type TagsSeed struct {
	db *database.Connection
}

func NewTagsSeed(db *database.Connection) *TagsSeed {
	return &TagsSeed{
		db: db,
	}
}

func (s TagsSeed) Create() ([]database.Tag, error) {
	tags := repository.Tags{DB: s.db}

	seedList := []struct {
		title string
		state database.ModerationState
	}{
		{"go", database.StateValidated},
		{"postgres", database.StateValidated},
		{"testing", database.StateValidated},
		{"architecture", database.StateValidated},
		{"scratchpad", database.StateDraft},
		{"deprecated", database.StateInvalidated},
	}

	var created []database.Tag

	for _, seed := range seedList {
		tag, err := tags.Create(database.TagAttrs{
			Title: seed.title,
			State: seed.state,
		})

		if err != nil {
			return nil, fmt.Errorf("issues creating tags: %w", err)
		}

		created = append(created, *tag)
	}

	return created, nil
}
