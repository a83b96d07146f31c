package payload

import (
	"github.com/junle/database"
	"github.com/junle/database/repository/pagination"
)

type TagResponse struct {
	ID    uint64 `json:"id"`
	UUID  string `json:"uuid"`
	Title string `json:"title"`
}

func GetTagResponse(tag database.Tag) TagResponse {
	return TagResponse{
		ID:    tag.ID,
		UUID:  tag.UUID,
		Title: tag.Title,
	}
}

type TagDetailResponse struct {
	Tag   TagResponse                                `json:"tag"`
	Posts pagination.Pagination[PostSummaryResponse] `json:"posts"`
}

func GetTagsResponse(tags []database.Tag) []TagResponse {
	var data []TagResponse

	for _, tag := range tags {
		data = append(data, GetTagResponse(tag))
	}

	return data
}
