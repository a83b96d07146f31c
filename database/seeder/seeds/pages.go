package seeds

import (
	"fmt"
	"time"

	"github.com/junle/database"
	"github.com/junle/database/repository"
)

type PagesSeed struct {
	db *database.Connection
}

func NewPagesSeed(db *database.Connection) *PagesSeed {
	return &PagesSeed{
		db: db,
	}
}

func (s PagesSeed) Create() ([]database.Page, error) {
	pages := repository.Pages{DB: s.db}

	seedList := []database.PagesAttrs{
		{
			Title:       "About",
			Reference:   "about",
			Content:     "# About\n\nThis site is a seeded playground.\n",
			PublishedAt: time.Now().UTC(),
			State:       database.StateValidated,
		},
		{
			Title:       "Colophon",
			Reference:   "colophon",
			Content:     "# Colophon\n\nStill being written.\n",
			PublishedAt: time.Now().UTC(),
			State:       database.StateDraft,
		},
	}

	var created []database.Page

	for _, attrs := range seedList {
		page, err := pages.Create(attrs)
		if err != nil {
			return nil, fmt.Errorf("error creating pages: %w", err)
		}

		created = append(created, *page)
	}

	return created, nil
}
