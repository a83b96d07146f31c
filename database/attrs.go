package database

import (
	"time"
)

type UsersAttrs struct {
	Username    string
	DisplayName string
}

type CategoriesAttrs struct {
	Id    uint64
	Title string
	State ModerationState
}

type TagAttrs struct {
	Id    uint64
	Title string
	State ModerationState
}

type PostsAttrs struct {
	AuthorID    uint64
	CategoryID  uint64
	Title       string
	Description string
	Content     string
	PublishedAt time.Time
	State       ModerationState
	Tags        []TagAttrs
}

type CommentsAttrs struct {
	PostID  uint64
	Name    string
	Email   string
	Content string
}

type PagesAttrs struct {
	Title       string
	Reference   string
	Content     string
	PublishedAt time.Time
	State       ModerationState
}
