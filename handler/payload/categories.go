package payload

import (
	"github.com/junle/database"
	"github.com/junle/database/repository/pagination"
)

type CategoryResponse struct {
	ID    uint64 `json:"id"`
	UUID  string `json:"uuid"`
	Title string `json:"title"`
}

func GetCategoryResponse(category database.Category) CategoryResponse {
	return CategoryResponse{
		ID:    category.ID,
		UUID:  category.UUID,
		Title: category.Title,
	}
}

type CategoryDetailResponse struct {
	Category CategoryResponse                           `json:"category"`
	Posts    pagination.Pagination[PostSummaryResponse] `json:"posts"`
}

func GetCategoriesResponse(categories []database.Category) []CategoryResponse {
	var data []CategoryResponse

	for _, category := range categories {
		data = append(data, GetCategoryResponse(category))
	}

	return data
}
