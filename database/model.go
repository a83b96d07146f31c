package database

import (
	"regexp"
	"time"
)

const DriverName = "postgres"

// ModerationState is the shared tri-state lifecycle applied to every
// content entity. Only validated rows are visible through public reads.
type ModerationState string

const (
	StateDraft       ModerationState = "draft"
	StateValidated   ModerationState = "validated"
	StateInvalidated ModerationState = "invalidated"
)

func (s ModerationState) IsPublic() bool {
	return s == StateValidated
}

func (s ModerationState) IsValid() bool {
	switch s {
	case StateDraft, StateValidated, StateInvalidated:
		return true
	}

	return false
}

// User anchors the author foreign key on posts. Author identity is an
// opaque reference here: no credentials or permissions are modelled.
type User struct {
	ID          uint64    `gorm:"primaryKey"`
	UUID        string    `gorm:"type:uuid;uniqueIndex;not null"`
	Username    string    `gorm:"size:255;uniqueIndex;not null"`
	DisplayName string    `gorm:"size:255;not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`

	Posts []Post `gorm:"foreignKey:AuthorID"`
}

type Category struct {
	ID        uint64          `gorm:"primaryKey"`
	UUID      string          `gorm:"type:uuid;uniqueIndex;not null"`
	Title     string          `gorm:"size:63;uniqueIndex;not null"`
	State     ModerationState `gorm:"size:15;not null;default:draft;index"`
	CreatedAt time.Time       `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime;index"`

	Posts []Post `gorm:"constraint:OnDelete:CASCADE"`
}

type Tag struct {
	ID        uint64          `gorm:"primaryKey"`
	UUID      string          `gorm:"type:uuid;uniqueIndex;not null"`
	Title     string          `gorm:"size:63;uniqueIndex;not null"`
	State     ModerationState `gorm:"size:15;not null;default:draft;index"`
	CreatedAt time.Time       `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime;index"`

	Posts []Post `gorm:"many2many:post_tags"`
}

// Post is the central entity: markdown-authored, categorised, tagged and
// commented. Views counts qualifying reads of the rendered content.
type Post struct {
	ID          uint64          `gorm:"primaryKey"`
	UUID        string          `gorm:"type:uuid;uniqueIndex;not null"`
	Title       string          `gorm:"size:100;not null"`
	Description string          `gorm:"size:255;not null"`
	Content     string          `gorm:"type:text;not null"`
	PublishedAt time.Time       `gorm:"not null;index;index:idx_posts_state_published_at,priority:2"`
	Views       uint64          `gorm:"not null;default:0;index"`
	State       ModerationState `gorm:"size:15;not null;default:draft;index;index:idx_posts_state_published_at,priority:1"`
	CategoryID  uint64          `gorm:"not null;index"`
	AuthorID    uint64          `gorm:"not null;index"`
	CreatedAt   time.Time       `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime;index"`

	Category Category  `gorm:"constraint:OnDelete:CASCADE"`
	Author   User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Tags     []Tag     `gorm:"many2many:post_tags"`
	Comments []Comment `gorm:"constraint:OnDelete:CASCADE"`
}

// Comment is the only entity created by anonymous visitors. PublishedAt is
// fixed at creation and acts as the ordering key for a post's comment list.
type Comment struct {
	ID          uint64          `gorm:"primaryKey"`
	UUID        string          `gorm:"type:uuid;uniqueIndex;not null"`
	Name        string          `gorm:"size:100;not null"`
	Email       string          `gorm:"size:255"`
	Content     string          `gorm:"size:254;not null"`
	PublishedAt time.Time       `gorm:"not null;index;index:idx_comments_state_published_at,priority:2"`
	State       ModerationState `gorm:"size:15;not null;default:draft;index;index:idx_comments_state_published_at,priority:1"`
	PostID      uint64          `gorm:"not null;index"`
	CreatedAt   time.Time       `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime;index"`

	Post Post `gorm:"constraint:OnDelete:CASCADE"`
}

// Page is a standalone markdown document addressed by its reference slug
// (e.g. "about") rather than by numeric id.
type Page struct {
	ID          uint64          `gorm:"primaryKey"`
	UUID        string          `gorm:"type:uuid;uniqueIndex;not null"`
	Title       string          `gorm:"size:100;not null"`
	Reference   string          `gorm:"size:100;uniqueIndex;not null"`
	Content     string          `gorm:"type:text;not null"`
	PublishedAt time.Time       `gorm:"not null;index;index:idx_pages_state_published_at,priority:2"`
	State       ModerationState `gorm:"size:15;not null;default:draft;index;index:idx_pages_state_published_at,priority:1"`
	CreatedAt   time.Time       `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime;index"`
}

// PostTag is the join row behind the posts<->tags many-to-many.
type PostTag struct {
	PostID uint64 `gorm:"primaryKey"`
	TagID  uint64 `gorm:"primaryKey"`
}

var tableNamePattern = regexp.MustCompile(`^[a-z_]{1,255}$`)

// GetSchemaTables lists every table in creation order. Truncation and
// migrations walk this list (truncation in reverse).
func GetSchemaTables() []string {
	return []string{
		"users",
		"categories",
		"tags",
		"posts",
		"post_tags",
		"comments",
		"pages",
	}
}

// SchemaModels returns the models in a dependency-safe order for AutoMigrate.
func SchemaModels() []any {
	return []any{
		&User{},
		&Category{},
		&Tag{},
		&Post{},
		&Comment{},
		&Page{},
	}
}

func isValidTable(name string) bool {
	if !tableNamePattern.MatchString(name) {
		return false
	}

	for _, table := range GetSchemaTables() {
		if table == name {
			return true
		}
	}

	return false
}
