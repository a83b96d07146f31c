package repository

import (
	"fmt"

	stdgorm "gorm.io/gorm"

	"github.com/junle/database"
	"github.com/junle/pkg/gorm"
)

// transition flips the moderation state of one row. The workflow imposes no
// transition graph: any of the three states may move to any other.
func transition(db *database.Connection, model any, id uint64, state database.ModerationState) error {
	if !state.IsValid() {
		return fmt.Errorf("unknown moderation state [%s]", state)
	}

	result := db.Sql().
		Model(model).
		Where("id = ?", id).
		Update("state", state)

	if gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("issue transitioning record [%d] to [%s]: %w", id, state, result.Error)
	}

	if result.RowsAffected == 0 {
		return stdgorm.ErrRecordNotFound
	}

	return nil
}
