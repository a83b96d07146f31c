package repository

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/junle/database"
	"github.com/junle/pkg/gorm"
)

// Users exists to anchor the author reference on posts. Author identity is
// opaque to this core; there is no credential or permission handling here.
type Users struct {
	DB *database.Connection
}

func (u Users) Create(attrs database.UsersAttrs) (*database.User, error) {
	user := database.User{
		UUID:        uuid.NewString(),
		Username:    attrs.Username,
		DisplayName: attrs.DisplayName,
	}

	if result := u.DB.Sql().Create(&user); gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("issue creating user [%s]: %w", attrs.Username, result.Error)
	}

	return &user, nil
}

func (u Users) FindBy(username string) *database.User {
	user := database.User{}

	result := u.DB.Sql().
		Where("LOWER(username) = ?", strings.ToLower(username)).
		First(&user)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	return &user
}
