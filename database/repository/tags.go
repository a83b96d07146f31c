package repository

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/junle/database"
	"github.com/junle/database/repository/pagination"
	"github.com/junle/database/repository/queries"
	"github.com/junle/pkg/gorm"
)

type Tags struct {
	DB *database.Connection
}

// GetValidated pages through publicly visible tags, alphabetical.
func (t Tags) GetValidated(paginate pagination.Paginate) (*pagination.Pagination[database.Tag], error) {
	var numItems int64
	var tags []database.Tag

	query := t.DB.Sql().
		Model(&database.Tag{}).
		Scopes(queries.Validated("tags"), queries.Alphabetical("tags"))

	if err := pagination.Count[*int64](&numItems, query, t.DB.GetSession(), "tags.id"); err != nil {
		return nil, err
	}

	paginate.Clamp(numItems)

	err := query.
		Limit(paginate.Limit).
		Offset(paginate.GetOffset()).
		Find(&tags).Error

	if err != nil {
		return nil, err
	}

	return pagination.MakePagination[database.Tag](tags, paginate), nil
}

// GetAllValidated returns every publicly visible tag, alphabetical. The home
// listing derives its keyword list from it.
func (t Tags) GetAllValidated() ([]database.Tag, error) {
	var tags []database.Tag

	err := t.DB.Sql().
		Model(&database.Tag{}).
		Scopes(queries.Validated("tags"), queries.Alphabetical("tags")).
		Find(&tags).Error

	if err != nil {
		return nil, err
	}

	return tags, nil
}

// FindValidatedBy resolves a public tag detail lookup; drafts and invalidated
// rows read as missing.
func (t Tags) FindValidatedBy(id uint64) *database.Tag {
	tag := database.Tag{}

	result := t.DB.Sql().
		Scopes(queries.Validated("tags")).
		Where("tags.id = ?", id).
		First(&tag)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	return &tag
}

func (t Tags) Create(attrs database.TagAttrs) (*database.Tag, error) {
	state := attrs.State
	if state == "" {
		state = database.StateDraft
	}

	tag := database.Tag{
		UUID:  uuid.NewString(),
		Title: attrs.Title,
		State: state,
	}

	if result := t.DB.Sql().Create(&tag); gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("issue creating tag [%s]: %w", attrs.Title, result.Error)
	}

	return &tag, nil
}

func (t Tags) Update(id uint64, attrs database.TagAttrs) error {
	result := t.DB.Sql().
		Model(&database.Tag{}).
		Where("id = ?", id).
		Update("title", attrs.Title)

	if gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("issue updating tag [%d]: %w", id, result.Error)
	}

	return nil
}

func (t Tags) Transition(id uint64, state database.ModerationState) error {
	return transition(t.DB, &database.Tag{}, id, state)
}

func (t Tags) Delete(id uint64) error {
	result := t.DB.Sql().Delete(&database.Tag{}, id)

	if gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("issue deleting tag [%d]: %w", id, result.Error)
	}

	return nil
}
