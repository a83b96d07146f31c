package payload

import "github.com/junle/database/repository/pagination"

// HomeResponse is the index envelope: site metadata, the keyword list built
// from validated tags, and the paginated post summaries.
type HomeResponse struct {
	Title    string                                     `json:"title"`
	Footer   string                                     `json:"footer"`
	Keywords []string                                   `json:"keywords"`
	Posts    pagination.Pagination[PostSummaryResponse] `json:"posts"`
}
