package payload

import (
	"time"

	"github.com/junle/database"
)

type PageResponse struct {
	ID          uint64    `json:"id"`
	UUID        string    `json:"uuid"`
	Title       string    `json:"title"`
	Reference   string    `json:"reference"`
	ContentHTML string    `json:"content_html"`
	PublishedAt time.Time `json:"published_at"`
}

func GetPageResponse(page database.Page, contentHTML string) PageResponse {
	return PageResponse{
		ID:          page.ID,
		UUID:        page.UUID,
		Title:       page.Title,
		Reference:   page.Reference,
		ContentHTML: contentHTML,
		PublishedAt: page.PublishedAt,
	}
}
