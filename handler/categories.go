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

type CategoriesHandler struct {
	Categories *repository.Categories
	Posts      *repository.Posts
}

func NewCategoriesHandler(categories *repository.Categories, posts *repository.Posts) CategoriesHandler {
	return CategoriesHandler{
		Categories: categories,
		Posts:      posts,
	}
}

func (h *CategoriesHandler) Index(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	result, err := h.Categories.GetValidated(
		paginate.MakeFrom(r.URL.Query()),
	)

	if err != nil {
		slog.Error("Error getting categories", "err", err)
		return endpoint.InternalError("Error getting categories")
	}

	stamps := make([]time.Time, len(result.Data))
	for i, category := range result.Data {
		stamps[i] = category.UpdatedAt
	}

	resp := endpoint.NewResponseFrom(listingSalt("categories", result.Page, result.Total, newestUpdate(stamps...)), w, r)

	if resp.HasCache() {
		resp.RespondWithNotModified()

		return nil
	}

	items := pagination.HydratePagination(
		result,
		func(c database.Category) payload.CategoryResponse {
			return payload.GetCategoryResponse(c)
		},
	)

	if err := resp.RespondOk(items); err != nil {
		slog.Error("failed to encode response", "err", err)
	}

	return nil
}

func (h *CategoriesHandler) Show(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	id, err := payload.GetIDFrom(r)

	if err != nil {
		return endpoint.NotFound("category not found")
	}

	category := h.Categories.FindValidatedBy(id)

	if category == nil {
		return endpoint.NotFound("category not found")
	}

	posts, err := h.Posts.GetForCategory(
		category.ID,
		paginate.MakeFrom(r.URL.Query()),
	)

	if err != nil {
		slog.Error("Error getting category posts", "err", err)
		return endpoint.InternalError("Error getting category posts")
	}

	items := pagination.HydratePagination(
		posts,
		func(p database.Post) payload.PostSummaryResponse {
			return payload.GetPostSummaryResponse(p)
		},
	)

	resp := payload.CategoryDetailResponse{
		Category: payload.GetCategoryResponse(*category),
		Posts:    *items,
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "err", err)

		return endpoint.InternalError("There was an issue processing the response. Please, try later.")
	}

	return nil
}
