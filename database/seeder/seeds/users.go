package seeds

import (
	"fmt"

	"github.com/junle/database"
	"github.com/junle/database/repository"
)

type UsersSeed struct {
	db *database.Connection
}

func NewUsersSeed(db *database.Connection) *UsersSeed {
	return &UsersSeed{
		db: db,
	}
}

func (s UsersSeed) Create(attrs database.UsersAttrs) (database.User, error) {
	users := repository.Users{DB: s.db}

	user, err := users.Create(attrs)
	if err != nil {
		return database.User{}, fmt.Errorf("issues creating users: %w", err)
	}

	return *user, nil
}
