package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/junle/database/repository"
	"github.com/junle/handler/payload"
	"github.com/junle/pkg/endpoint"
	"github.com/junle/pkg/markdown"
)

const AboutPageReference = "about"

type PagesHandler struct {
	Pages    *repository.Pages
	Markdown *markdown.Renderer
}

func NewPagesHandler(pages *repository.Pages, renderer *markdown.Renderer) PagesHandler {
	return PagesHandler{
		Pages:    pages,
		Markdown: renderer,
	}
}

// About serves the "about" page. Pages carry no view counter: reads leave
// them untouched, which is what makes the route safely cacheable.
func (h *PagesHandler) About(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	return h.show(AboutPageReference, w, r)
}

func (h *PagesHandler) show(reference string, w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	page := h.Pages.FindValidatedBy(reference)

	if page == nil {
		return endpoint.NotFound("page not found")
	}

	salt := fmt.Sprintf("page-%s-%d", page.UUID, page.UpdatedAt.UTC().Unix())
	resp := endpoint.NewResponseFrom(salt, w, r)

	if resp.HasCache() {
		resp.RespondWithNotModified()

		return nil
	}

	contentHTML, err := h.Markdown.ToSafeHTML(page.Content)

	if err != nil {
		return endpoint.LogInternalError("Error rendering the page", err)
	}

	if err := resp.RespondOk(payload.GetPageResponse(*page, contentHTML)); err != nil {
		slog.Error("failed to encode response", "err", err)
	}

	return nil
}
