package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/junle/database"
	"github.com/junle/database/repository"
	"github.com/junle/handler/payload"
	handlertests "github.com/junle/handler/tests"
	"github.com/junle/pkg/markdown"
)

func newPostsHandler(conn *database.Connection) PostsHandler {
	return NewPostsHandler(
		&repository.Posts{DB: conn},
		&repository.Comments{DB: conn},
		markdown.NewRenderer(),
	)
}

func showRequest(id string, query string) *http.Request {
	target := "/post/" + id + "/"
	if query != "" {
		target += "?" + query
	}

	r := httptest.NewRequest("GET", target, nil)
	r.SetPathValue("id", id)

	return r
}

func TestPostsHandlerShow(t *testing.T) {
	conn, author := handlertests.MakeTestDB(t)

	category := seedCategory(t, conn, "News", database.StateValidated)
	tag := seedTag(t, conn, "go", database.StateValidated)

	post := seedPost(t, conn, author, category, "Hello", database.StateValidated, time.Now().UTC(), tag)

	older := seedComment(t, conn, post, "ana", database.StateValidated)
	seedComment(t, conn, post, "bob", database.StateDraft)

	h := newPostsHandler(conn)

	rec := httptest.NewRecorder()

	if err := h.Show(rec, showRequest("1", "")); err != nil {
		t.Fatalf("show: %v", err)
	}

	var resp payload.PostDetailResponse

	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if resp.Post.Title != "Hello" {
		t.Fatalf("unexpected post: %+v", resp.Post)
	}

	if !strings.Contains(resp.Post.ContentHTML, "<h1") {
		t.Fatalf("content not rendered: %s", resp.Post.ContentHTML)
	}

	if resp.Post.Views != 1 {
		t.Fatalf("expected the read to count, got %d views", resp.Post.Views)
	}

	if len(resp.Post.Tags) != 1 || resp.Post.Tags[0].Title != "go" {
		t.Fatalf("unexpected tags: %+v", resp.Post.Tags)
	}

	if len(resp.Comments.Data) != 1 || resp.Comments.Data[0].Name != older.Name {
		t.Fatalf("unexpected comments: %+v", resp.Comments.Data)
	}

	// a second read keeps counting
	rec = httptest.NewRecorder()

	if err := h.Show(rec, showRequest("1", "")); err != nil {
		t.Fatalf("second show: %v", err)
	}

	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if resp.Post.Views != 2 {
		t.Fatalf("expected 2 views, got %d", resp.Post.Views)
	}
}

func TestPostsHandlerShowHidesNonValidated(t *testing.T) {
	conn, author := handlertests.MakeTestDB(t)

	category := seedCategory(t, conn, "News", database.StateValidated)
	seedPost(t, conn, author, category, "Draft", database.StateDraft, time.Now().UTC())

	h := newPostsHandler(conn)

	err := h.Show(httptest.NewRecorder(), showRequest("1", ""))
	if err == nil || err.Status != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}

	err = h.Show(httptest.NewRecorder(), showRequest("99", ""))
	if err == nil || err.Status != http.StatusNotFound {
		t.Fatalf("expected 404 for missing post, got %v", err)
	}

	err = h.Show(httptest.NewRecorder(), showRequest("abc", ""))
	if err == nil || err.Status != http.StatusNotFound {
		t.Fatalf("expected 404 for malformed id, got %v", err)
	}
}

func commentRequest(id string, form url.Values) *http.Request {
	r := httptest.NewRequest("POST", "/post/"+id+"/addcomment/", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.SetPathValue("id", id)

	return r
}

func TestPostsHandlerAddComment(t *testing.T) {
	conn, author := handlertests.MakeTestDB(t)

	category := seedCategory(t, conn, "News", database.StateValidated)

	// comments can target posts awaiting moderation
	post := seedPost(t, conn, author, category, "Draft", database.StateDraft, time.Now().UTC())

	h := newPostsHandler(conn)

	rec := httptest.NewRecorder()

	form := url.Values{
		"name":    {"ana"},
		"email":   {"ana@example.test"},
		"content": {"great read"},
	}

	if err := h.AddComment(rec, commentRequest("1", form)); err != nil {
		t.Fatalf("add comment: %v", err)
	}

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", rec.Code)
	}

	if got := rec.Header().Get("Location"); got != "/post/1/" {
		t.Fatalf("unexpected redirect target: %s", got)
	}

	var saved database.Comment

	if err := conn.Sql().First(&saved, "post_id = ?", post.ID).Error; err != nil {
		t.Fatalf("load comment: %v", err)
	}

	if saved.Name != "ana" || saved.State != database.StateDraft {
		t.Fatalf("unexpected comment: %+v", saved)
	}
}

func TestPostsHandlerAddCommentValidation(t *testing.T) {
	conn, author := handlertests.MakeTestDB(t)

	category := seedCategory(t, conn, "News", database.StateValidated)
	seedPost(t, conn, author, category, "Hello", database.StateValidated, time.Now().UTC())

	h := newPostsHandler(conn)

	cases := []struct {
		name string
		form url.Values
	}{
		{name: "missing name", form: url.Values{"content": {"hi"}}},
		{name: "missing content", form: url.Values{"name": {"ana"}}},
		{name: "bad email", form: url.Values{"name": {"ana"}, "email": {"nope"}, "content": {"hi"}}},
		{name: "content too long", form: url.Values{"name": {"ana"}, "content": {strings.Repeat("x", 255)}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := h.AddComment(httptest.NewRecorder(), commentRequest("1", tc.form))
			if err == nil || err.Status != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %v", err)
			}

			if len(err.Data) == 0 {
				t.Fatalf("expected field errors")
			}
		})
	}

	var count int64
	conn.Sql().Model(&database.Comment{}).Count(&count)

	if count != 0 {
		t.Fatalf("rejected submissions must not persist, found %d", count)
	}
}

func TestPostsHandlerAddCommentMissingPost(t *testing.T) {
	conn, _ := handlertests.MakeTestDB(t)

	h := newPostsHandler(conn)

	form := url.Values{"name": {"ana"}, "content": {"hi"}}

	err := h.AddComment(httptest.NewRecorder(), commentRequest("42", form))
	if err == nil || err.Status != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}
