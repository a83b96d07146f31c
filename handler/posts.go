package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/junle/database"
	"github.com/junle/database/repository"
	"github.com/junle/database/repository/pagination"
	"github.com/junle/handler/paginate"
	"github.com/junle/handler/payload"
	"github.com/junle/pkg/endpoint"
	pkggorm "github.com/junle/pkg/gorm"
	"github.com/junle/pkg/markdown"
	"github.com/junle/pkg/portal"
)

type PostsHandler struct {
	Posts    *repository.Posts
	Comments *repository.Comments
	Markdown *markdown.Renderer
}

func NewPostsHandler(posts *repository.Posts, comments *repository.Comments, renderer *markdown.Renderer) PostsHandler {
	return PostsHandler{
		Posts:    posts,
		Comments: comments,
		Markdown: renderer,
	}
}

// Show renders a validated post. Serving the rendered content is what counts
// as a read, so the view counter only moves after rendering succeeds.
func (h *PostsHandler) Show(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	id, err := payload.GetIDFrom(r)

	if err != nil {
		return endpoint.NotFound("post not found")
	}

	post := h.Posts.FindValidatedBy(id)

	if post == nil {
		return endpoint.NotFound("post not found")
	}

	contentHTML, err := h.Markdown.ToSafeHTML(post.Content)

	if err != nil {
		return endpoint.LogInternalError("Error rendering the post", err)
	}

	if err := h.Posts.RecordView(post); err != nil {
		// the read still succeeds when the counter write fails
		slog.Error("Error recording post view", "err", err, "post", post.ID)
	}

	comments, err := h.Comments.GetForPost(
		post.ID,
		paginate.MakeFrom(r.URL.Query()),
	)

	if err != nil {
		slog.Error("Error getting comments", "err", err)
		return endpoint.InternalError("Error getting comments")
	}

	items := pagination.HydratePagination(
		comments,
		func(c database.Comment) payload.CommentResponse {
			return payload.GetCommentResponse(c)
		},
	)

	resp := payload.PostDetailResponse{
		Post:     payload.GetPostResponse(*post, contentHTML),
		Comments: *items,
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "err", err)

		return endpoint.InternalError("There was an issue processing the response. Please, try later.")
	}

	return nil
}

// AddComment accepts a visitor comment for any existing post, validated or
// not. The comment itself starts as a draft and stays invisible until a
// moderator validates it.
func (h *PostsHandler) AddComment(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	id, err := payload.GetIDFrom(r)

	if err != nil {
		return endpoint.NotFound("post not found")
	}

	post := h.Posts.FindBy(id)

	if post == nil {
		return endpoint.NotFound("post not found")
	}

	if err := r.ParseForm(); err != nil {
		return endpoint.BadRequestError("invalid form payload")
	}

	form := payload.CommentRequest{
		Name:    strings.TrimSpace(r.PostFormValue("name")),
		Email:   strings.TrimSpace(r.PostFormValue("email")),
		Content: strings.TrimSpace(r.PostFormValue("content")),
	}

	validate := portal.GetDefaultValidator()

	if reject, _ := validate.Rejects(form); reject {
		errs := map[string]any{}

		for field, rule := range validate.GetErrors() {
			errs[field] = rule
		}

		return endpoint.UnprocessableEntity("invalid comment", errs)
	}

	if _, err := h.Comments.Create(database.CommentsAttrs{
		PostID:  post.ID,
		Name:    form.Name,
		Email:   form.Email,
		Content: form.Content,
	}); err != nil {
		if pkggorm.IsForeignKeyViolated(err) {
			return endpoint.Conflict("the post no longer exists")
		}

		return endpoint.LogInternalError("Error saving the comment", err)
	}

	http.Redirect(w, r, fmt.Sprintf("/post/%d/", post.ID), http.StatusSeeOther)

	return nil
}
