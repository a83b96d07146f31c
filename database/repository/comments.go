package repository

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	stdgorm "gorm.io/gorm"

	"github.com/junle/database"
	"github.com/junle/database/repository/pagination"
	"github.com/junle/database/repository/queries"
	"github.com/junle/pkg/gorm"
)

type Comments struct {
	DB *database.Connection
}

// GetForPost pages through the validated comments of one post, newest first
// by publish date, which is fixed at creation and acts as the ordering key.
func (c Comments) GetForPost(postID uint64, paginate pagination.Paginate) (*pagination.Pagination[database.Comment], error) {
	var numItems int64
	var comments []database.Comment

	query := c.DB.Sql().
		Model(&database.Comment{}).
		Where("comments.post_id = ?", postID).
		Scopes(queries.Validated("comments"), queries.NewestFirst("comments"))

	if err := pagination.Count[*int64](&numItems, query, c.DB.GetSession(), "comments.id"); err != nil {
		return nil, err
	}

	paginate.Clamp(numItems)

	err := query.
		Limit(paginate.Limit).
		Offset(paginate.GetOffset()).
		Find(&comments).Error

	if err != nil {
		return nil, err
	}

	return pagination.MakePagination[database.Comment](comments, paginate), nil
}

// Create stores an anonymous submission as a draft pending moderation.
// PublishedAt is stamped here and never changes afterwards.
func (c Comments) Create(attrs database.CommentsAttrs) (*database.Comment, error) {
	comment := database.Comment{
		UUID:        uuid.NewString(),
		PostID:      attrs.PostID,
		Name:        attrs.Name,
		Email:       attrs.Email,
		Content:     attrs.Content,
		PublishedAt: time.Now().UTC(),
		State:       database.StateDraft,
	}

	if result := c.DB.Sql().Create(&comment); gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("issue creating comment for post [%d]: %w", attrs.PostID, result.Error)
	}

	return &comment, nil
}

// Update rewrites the moderatable fields of a comment. PublishedAt and the
// post reference are fixed at creation and stay out of the column list.
func (c Comments) Update(id uint64, attrs database.CommentsAttrs) error {
	columns := map[string]any{
		"name":    attrs.Name,
		"email":   attrs.Email,
		"content": attrs.Content,
	}

	result := c.DB.Sql().
		Model(&database.Comment{}).
		Where("id = ?", id).
		Updates(columns)

	if gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("issue updating comment [%d]: %w", id, result.Error)
	}

	if result.RowsAffected == 0 {
		return stdgorm.ErrRecordNotFound
	}

	return nil
}

func (c Comments) Transition(id uint64, state database.ModerationState) error {
	return transition(c.DB, &database.Comment{}, id, state)
}

func (c Comments) Delete(id uint64) error {
	result := c.DB.Sql().Delete(&database.Comment{}, id)

	if gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("issue deleting comment [%d]: %w", id, result.Error)
	}

	return nil
}
