package queries

import (
	"gorm.io/gorm"

	"github.com/junle/database"
)

// Validated narrows the query to publicly visible rows of the master table.
// Every public read path applies it; there is no bypass.
func Validated(table string) func(*gorm.DB) *gorm.DB {
	return State(table, database.StateValidated)
}

// State filters the master table by an explicit moderation state. The
// administrative read paths use it to list drafts and invalidated rows.
func State(table string, state database.ModerationState) func(*gorm.DB) *gorm.DB {
	return func(query *gorm.DB) *gorm.DB {
		return query.Where(table+".state = ?", state)
	}
}

// NewestFirst orders by publish date descending: post and comment listings.
func NewestFirst(table string) func(*gorm.DB) *gorm.DB {
	return func(query *gorm.DB) *gorm.DB {
		return query.Order(table + ".published_at desc")
	}
}

// Alphabetical orders by title ascending: tag and category listings.
func Alphabetical(table string) func(*gorm.DB) *gorm.DB {
	return func(query *gorm.DB) *gorm.DB {
		return query.Order(table + ".title asc")
	}
}
