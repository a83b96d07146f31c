package payload

import (
	"time"

	"github.com/junle/database"
	"github.com/junle/database/repository/pagination"
)

// PostSummaryResponse is the index-listing shape: no body, no comments.
type PostSummaryResponse struct {
	ID          uint64           `json:"id"`
	UUID        string           `json:"uuid"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Author      UserResponse     `json:"author"`
	Category    CategoryResponse `json:"category"`
	PublishedAt time.Time        `json:"published_at"`
}

// PostResponse is the detail shape: the markdown body arrives rendered and
// sanitised in ContentHTML.
type PostResponse struct {
	ID          uint64           `json:"id"`
	UUID        string           `json:"uuid"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	ContentHTML string           `json:"content_html"`
	Views       uint64           `json:"views"`
	Author      UserResponse     `json:"author"`
	Category    CategoryResponse `json:"category"`
	Tags        []TagResponse    `json:"tags"`
	PublishedAt time.Time        `json:"published_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// PostDetailResponse pairs the rendered post with its first page of
// validated comments.
type PostDetailResponse struct {
	Post     PostResponse                           `json:"post"`
	Comments pagination.Pagination[CommentResponse] `json:"comments"`
}

type UserResponse struct {
	UUID        string `json:"uuid"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

func GetPostSummaryResponse(p database.Post) PostSummaryResponse {
	return PostSummaryResponse{
		ID:          p.ID,
		UUID:        p.UUID,
		Title:       p.Title,
		Description: p.Description,
		Author:      GetUserResponse(p.Author),
		Category:    GetCategoryResponse(p.Category),
		PublishedAt: p.PublishedAt,
	}
}

func GetPostResponse(p database.Post, contentHTML string) PostResponse {
	return PostResponse{
		ID:          p.ID,
		UUID:        p.UUID,
		Title:       p.Title,
		Description: p.Description,
		ContentHTML: contentHTML,
		Views:       p.Views,
		Author:      GetUserResponse(p.Author),
		Category:    GetCategoryResponse(p.Category),
		Tags:        GetTagsResponse(p.Tags),
		PublishedAt: p.PublishedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func GetUserResponse(u database.User) UserResponse {
	return UserResponse{
		UUID:        u.UUID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
	}
}
