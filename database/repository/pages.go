package repository

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/junle/database"
	"github.com/junle/database/repository/queries"
	"github.com/junle/pkg/gorm"
)

type Pages struct {
	DB *database.Connection
}

// FindValidatedBy resolves a page by its reference slug, the lookup key the
// routes use instead of the numeric id. Non-validated pages read as missing.
func (p Pages) FindValidatedBy(reference string) *database.Page {
	page := database.Page{}

	result := p.DB.Sql().
		Scopes(queries.Validated("pages")).
		Where("LOWER(pages.reference) = ?", strings.ToLower(strings.TrimSpace(reference))).
		First(&page)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	return &page
}

func (p Pages) Create(attrs database.PagesAttrs) (*database.Page, error) {
	state := attrs.State
	if state == "" {
		state = database.StateDraft
	}

	page := database.Page{
		UUID:        uuid.NewString(),
		Title:       attrs.Title,
		Reference:   attrs.Reference,
		Content:     attrs.Content,
		PublishedAt: attrs.PublishedAt,
		State:       state,
	}

	if result := p.DB.Sql().Create(&page); gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("issue creating page [%s]: %w", attrs.Reference, result.Error)
	}

	return &page, nil
}

func (p Pages) Update(id uint64, attrs database.PagesAttrs) error {
	columns := map[string]any{
		"title":        attrs.Title,
		"reference":    attrs.Reference,
		"content":      attrs.Content,
		"published_at": attrs.PublishedAt,
	}

	result := p.DB.Sql().
		Model(&database.Page{}).
		Where("id = ?", id).
		Updates(columns)

	if gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("issue updating page [%d]: %w", id, result.Error)
	}

	return nil
}

func (p Pages) Transition(id uint64, state database.ModerationState) error {
	return transition(p.DB, &database.Page{}, id, state)
}

func (p Pages) Delete(id uint64) error {
	result := p.DB.Sql().Delete(&database.Page{}, id)

	if gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("issue deleting page [%d]: %w", id, result.Error)
	}

	return nil
}
