package repository

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/junle/database"
	"github.com/junle/database/repository/pagination"
	"github.com/junle/database/repository/queries"
	"github.com/junle/pkg/gorm"
)

type Categories struct {
	DB *database.Connection
}

// GetValidated pages through publicly visible categories, alphabetical.
func (c Categories) GetValidated(paginate pagination.Paginate) (*pagination.Pagination[database.Category], error) {
	var numItems int64
	var categories []database.Category

	query := c.DB.Sql().
		Model(&database.Category{}).
		Scopes(queries.Validated("categories"), queries.Alphabetical("categories"))

	if err := pagination.Count[*int64](&numItems, query, c.DB.GetSession(), "categories.id"); err != nil {
		return nil, err
	}

	paginate.Clamp(numItems)

	err := query.
		Limit(paginate.Limit).
		Offset(paginate.GetOffset()).
		Find(&categories).Error

	if err != nil {
		return nil, err
	}

	return pagination.MakePagination[database.Category](categories, paginate), nil
}

// FindValidatedBy resolves a public category detail lookup; drafts and
// invalidated rows read as missing.
func (c Categories) FindValidatedBy(id uint64) *database.Category {
	category := database.Category{}

	result := c.DB.Sql().
		Scopes(queries.Validated("categories")).
		Where("categories.id = ?", id).
		First(&category)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	return &category
}

func (c Categories) Create(attrs database.CategoriesAttrs) (*database.Category, error) {
	state := attrs.State
	if state == "" {
		state = database.StateDraft
	}

	category := database.Category{
		UUID:  uuid.NewString(),
		Title: attrs.Title,
		State: state,
	}

	if result := c.DB.Sql().Create(&category); gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("issue creating category [%s]: %w", attrs.Title, result.Error)
	}

	return &category, nil
}

func (c Categories) Update(id uint64, attrs database.CategoriesAttrs) error {
	result := c.DB.Sql().
		Model(&database.Category{}).
		Where("id = ?", id).
		Update("title", attrs.Title)

	if gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("issue updating category [%d]: %w", id, result.Error)
	}

	return nil
}

func (c Categories) Transition(id uint64, state database.ModerationState) error {
	return transition(c.DB, &database.Category{}, id, state)
}

// Delete removes a category. Every post referencing it, and in turn their
// comments, disappear through the cascading foreign keys.
func (c Categories) Delete(id uint64) error {
	result := c.DB.Sql().Delete(&database.Category{}, id)

	if gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("issue deleting category [%d]: %w", id, result.Error)
	}

	return nil
}
