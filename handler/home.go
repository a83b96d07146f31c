package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/junle/database"
	"github.com/junle/database/repository"
	"github.com/junle/database/repository/pagination"
	"github.com/junle/handler/paginate"
	"github.com/junle/handler/payload"
	"github.com/junle/metal/env"
	"github.com/junle/pkg/endpoint"
)

type HomeHandler struct {
	Posts *repository.Posts
	Tags  *repository.Tags
	Site  env.SiteEnvironment
}

func NewHomeHandler(posts *repository.Posts, tags *repository.Tags, site env.SiteEnvironment) HomeHandler {
	return HomeHandler{
		Posts: posts,
		Tags:  tags,
		Site:  site,
	}
}

func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	result, err := h.Posts.GetValidated(
		paginate.MakeFrom(r.URL.Query()),
	)

	if err != nil {
		slog.Error("Error getting posts", "err", err)
		return endpoint.InternalError("Error getting posts")
	}

	tags, err := h.Tags.GetAllValidated()

	if err != nil {
		slog.Error("Error getting tags", "err", err)
		return endpoint.InternalError("Error getting tags")
	}

	keywords := make([]string, 0, len(tags))
	for _, tag := range tags {
		keywords = append(keywords, tag.Title)
	}

	items := pagination.HydratePagination(
		result,
		func(p database.Post) payload.PostSummaryResponse {
			return payload.GetPostSummaryResponse(p)
		},
	)

	resp := payload.HomeResponse{
		Title:    h.Site.Title,
		Footer:   h.Site.Footer,
		Keywords: keywords,
		Posts:    *items,
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "err", err)

		return endpoint.InternalError("There was an issue processing the response. Please, try later.")
	}

	return nil
}
