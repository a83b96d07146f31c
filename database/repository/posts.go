package repository

import (
	"fmt"

	"github.com/google/uuid"
	stdgorm "gorm.io/gorm"

	"github.com/junle/database"
	"github.com/junle/database/repository/pagination"
	"github.com/junle/database/repository/queries"
	"github.com/junle/pkg/gorm"
)

type Posts struct {
	DB *database.Connection
}

// GetValidated pages through publicly visible posts, newest first. The page
// number is clamped against the counted result set before the fetch.
func (p Posts) GetValidated(paginate pagination.Paginate) (*pagination.Pagination[database.Post], error) {
	query := p.DB.Sql().
		Model(&database.Post{}).
		Scopes(queries.Validated("posts"), queries.NewestFirst("posts"))

	return p.paginate(query, paginate)
}

// GetForCategory pages through the validated posts of one category, newest
// first. Callers resolve the category themselves; an unknown id yields an
// empty page, not an error.
func (p Posts) GetForCategory(categoryID uint64, paginate pagination.Paginate) (*pagination.Pagination[database.Post], error) {
	query := p.DB.Sql().
		Model(&database.Post{}).
		Where("posts.category_id = ?", categoryID).
		Scopes(queries.Validated("posts"), queries.NewestFirst("posts"))

	return p.paginate(query, paginate)
}

// GetForTag pages through the validated posts carrying one tag, newest first.
func (p Posts) GetForTag(tagID uint64, paginate pagination.Paginate) (*pagination.Pagination[database.Post], error) {
	query := p.DB.Sql().
		Model(&database.Post{}).
		Joins("JOIN post_tags ON post_tags.post_id = posts.id").
		Where("post_tags.tag_id = ?", tagID).
		Scopes(queries.Validated("posts"), queries.NewestFirst("posts"))

	return p.paginate(query, paginate)
}

func (p Posts) paginate(query *stdgorm.DB, paginate pagination.Paginate) (*pagination.Pagination[database.Post], error) {
	var numItems int64
	var posts []database.Post

	if err := pagination.Count[*int64](&numItems, query, p.DB.GetSession(), "posts.id"); err != nil {
		return nil, err
	}

	paginate.Clamp(numItems)

	err := query.
		Preload("Category").
		Preload("Author").
		Limit(paginate.Limit).
		Offset(paginate.GetOffset()).
		Find(&posts).Error

	if err != nil {
		return nil, err
	}

	return pagination.MakePagination[database.Post](posts, paginate), nil
}

// FindValidatedBy resolves a public detail lookup. A draft or invalidated
// post is indistinguishable from a missing one for public callers. Related
// tags come back validated-only, alphabetical.
func (p Posts) FindValidatedBy(id uint64) *database.Post {
	post := database.Post{}

	result := p.DB.Sql().
		Scopes(queries.Validated("posts")).
		Preload("Category").
		Preload("Author").
		Preload("Tags", func(db *stdgorm.DB) *stdgorm.DB {
			return db.Scopes(queries.Validated("tags"), queries.Alphabetical("tags"))
		}).
		Where("posts.id = ?", id).
		First(&post)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	return &post
}

// FindBy looks a post up by id with no state filter. Comment submission uses
// it on purpose: a comment may be attached to a draft or invalidated post.
func (p Posts) FindBy(id uint64) *database.Post {
	post := database.Post{}

	result := p.DB.Sql().
		Where("posts.id = ?", id).
		First(&post)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	return &post
}

func (p Posts) Create(attrs database.PostsAttrs) (*database.Post, error) {
	state := attrs.State
	if state == "" {
		state = database.StateDraft
	}

	post := database.Post{
		UUID:        uuid.NewString(),
		AuthorID:    attrs.AuthorID,
		CategoryID:  attrs.CategoryID,
		Title:       attrs.Title,
		Description: attrs.Description,
		Content:     attrs.Content,
		PublishedAt: attrs.PublishedAt,
		State:       state,
	}

	// The post row and its tag links land together or not at all; a failed
	// link must not leave a partially written post behind.
	err := p.DB.Transaction(func(db *stdgorm.DB) error {
		if result := db.Create(&post); gorm.HasDbIssues(result.Error) {
			return fmt.Errorf("issue creating post [%s]: %w", attrs.Title, result.Error)
		}

		return linkTags(db, post, attrs.Tags)
	})

	if err != nil {
		return nil, err
	}

	return &post, nil
}

func linkTags(db *stdgorm.DB, post database.Post, tags []database.TagAttrs) error {
	for _, tag := range tags {
		trace := database.PostTag{
			PostID: post.ID,
			TagID:  tag.Id,
		}

		if result := db.Create(&trace); gorm.HasDbIssues(result.Error) {
			return fmt.Errorf("error linking tag [%s:%s]: %w", tag.Title, post.Title, result.Error)
		}
	}

	return nil
}

// Update rewrites the editable fields of a post. The author reference is
// immutable once set and is deliberately left out of the column list.
func (p Posts) Update(id uint64, attrs database.PostsAttrs) error {
	columns := map[string]any{
		"title":        attrs.Title,
		"description":  attrs.Description,
		"content":      attrs.Content,
		"published_at": attrs.PublishedAt,
		"category_id":  attrs.CategoryID,
	}

	result := p.DB.Sql().
		Model(&database.Post{}).
		Where("id = ?", id).
		Updates(columns)

	if gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("issue updating post [%d]: %w", id, result.Error)
	}

	if result.RowsAffected == 0 {
		return stdgorm.ErrRecordNotFound
	}

	return nil
}

// Transition moves a post to the given moderation state. Any state may move
// to any other state; callers must not assume monotonicity.
func (p Posts) Transition(id uint64, state database.ModerationState) error {
	return transition(p.DB, &database.Post{}, id, state)
}

// Delete removes a post. Its comments and tag links go with it through the
// schema's cascading foreign keys.
func (p Posts) Delete(id uint64) error {
	result := p.DB.Sql().Delete(&database.Post{}, id)

	if gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("issue deleting post [%d]: %w", id, result.Error)
	}

	return nil
}

// RecordView persists one qualifying read: views moves up by exactly one via
// an atomic UPDATE expression, so concurrent readers never lose increments to
// a read-modify-write race. Only validated posts qualify.
func (p Posts) RecordView(post *database.Post) error {
	if post == nil || !post.State.IsPublic() {
		return nil
	}

	result := p.DB.Sql().
		Model(&database.Post{}).
		Where("id = ?", post.ID).
		UpdateColumn("views", stdgorm.Expr("views + ?", 1))

	if gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("issue recording view for post [%d]: %w", post.ID, result.Error)
	}

	post.Views++

	return nil
}

// GetAllValidated returns every publicly visible post, newest first. The
// sitemap projection reuses the index listing's query contract without the
// pagination window.
func (p Posts) GetAllValidated() ([]database.Post, error) {
	var posts []database.Post

	err := p.DB.Sql().
		Model(&database.Post{}).
		Scopes(queries.Validated("posts"), queries.NewestFirst("posts")).
		Find(&posts).Error

	if err != nil {
		return nil, err
	}

	return posts, nil
}
