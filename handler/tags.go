package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/junle/database"
	"github.com/junle/database/repository"
	"github.com/junle/database/repository/pagination"
	"github.com/junle/handler/paginate"
	"github.com/junle/handler/payload"
	"github.com/junle/pkg/endpoint"
)

type TagsHandler struct {
	Tags  *repository.Tags
	Posts *repository.Posts
}

func NewTagsHandler(tags *repository.Tags, posts *repository.Posts) TagsHandler {
	return TagsHandler{
		Tags:  tags,
		Posts: posts,
	}
}

func (h *TagsHandler) Index(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	result, err := h.Tags.GetValidated(
		paginate.MakeFrom(r.URL.Query()),
	)

	if err != nil {
		slog.Error("Error getting tags", "err", err)
		return endpoint.InternalError("Error getting tags")
	}

	stamps := make([]time.Time, len(result.Data))
	for i, tag := range result.Data {
		stamps[i] = tag.UpdatedAt
	}

	resp := endpoint.NewResponseFrom(listingSalt("tags", result.Page, result.Total, newestUpdate(stamps...)), w, r)

	if resp.HasCache() {
		resp.RespondWithNotModified()

		return nil
	}

	items := pagination.HydratePagination(
		result,
		func(t database.Tag) payload.TagResponse {
			return payload.GetTagResponse(t)
		},
	)

	if err := resp.RespondOk(items); err != nil {
		slog.Error("failed to encode response", "err", err)
	}

	return nil
}

func (h *TagsHandler) Show(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	id, err := payload.GetIDFrom(r)

	if err != nil {
		return endpoint.NotFound("tag not found")
	}

	tag := h.Tags.FindValidatedBy(id)

	if tag == nil {
		return endpoint.NotFound("tag not found")
	}

	posts, err := h.Posts.GetForTag(
		tag.ID,
		paginate.MakeFrom(r.URL.Query()),
	)

	if err != nil {
		slog.Error("Error getting tag posts", "err", err)
		return endpoint.InternalError("Error getting tag posts")
	}

	items := pagination.HydratePagination(
		posts,
		func(p database.Post) payload.PostSummaryResponse {
			return payload.GetPostSummaryResponse(p)
		},
	)

	resp := payload.TagDetailResponse{
		Tag:   payload.GetTagResponse(*tag),
		Posts: *items,
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "err", err)

		return endpoint.InternalError("There was an issue processing the response. Please, try later.")
	}

	return nil
}
