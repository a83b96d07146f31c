package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/junle/database"
	"github.com/junle/database/repository"
	"github.com/junle/handler/payload"
	handlertests "github.com/junle/handler/tests"
	"github.com/junle/pkg/markdown"
)

func newPagesHandler(conn *database.Connection) PagesHandler {
	return NewPagesHandler(
		&repository.Pages{DB: conn},
		markdown.NewRenderer(),
	)
}

func TestPagesHandlerAbout(t *testing.T) {
	conn, _ := handlertests.MakeTestDB(t)

	seedPage(t, conn, "about", database.StateValidated)

	h := newPagesHandler(conn)

	rec := httptest.NewRecorder()

	if err := h.About(rec, httptest.NewRequest("GET", "/about/", nil)); err != nil {
		t.Fatalf("about: %v", err)
	}

	var resp payload.PageResponse

	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if resp.Reference != "about" {
		t.Fatalf("unexpected page: %+v", resp)
	}

	if !strings.Contains(resp.ContentHTML, "<h1") {
		t.Fatalf("content not rendered: %s", resp.ContentHTML)
	}
}

func TestPagesHandlerAboutCaches(t *testing.T) {
	conn, _ := handlertests.MakeTestDB(t)

	seedPage(t, conn, "about", database.StateValidated)

	h := newPagesHandler(conn)

	rec := httptest.NewRecorder()

	if err := h.About(rec, httptest.NewRequest("GET", "/about/", nil)); err != nil {
		t.Fatalf("about: %v", err)
	}

	etag := rec.Header().Get("ETag")
	if etag == "" {
		t.Fatalf("expected an ETag on the about response")
	}

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}

	revisit := httptest.NewRequest("GET", "/about/", nil)
	revisit.Header.Set("If-None-Match", etag)

	rec = httptest.NewRecorder()

	if err := h.About(rec, revisit); err != nil {
		t.Fatalf("cached about: %v", err)
	}

	if rec.Code != http.StatusNotModified {
		t.Fatalf("expected 304 on a matching validator, got %d", rec.Code)
	}

	if rec.Body.Len() != 0 {
		t.Fatalf("a not-modified response must carry no body")
	}
}

func TestPagesHandlerAboutHidesNonValidated(t *testing.T) {
	conn, _ := handlertests.MakeTestDB(t)

	seedPage(t, conn, "about", database.StateDraft)

	h := newPagesHandler(conn)

	err := h.About(httptest.NewRecorder(), httptest.NewRequest("GET", "/about/", nil))
	if err == nil || err.Status != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestPagesHandlerAboutMissing(t *testing.T) {
	conn, _ := handlertests.MakeTestDB(t)

	h := newPagesHandler(conn)

	err := h.About(httptest.NewRecorder(), httptest.NewRequest("GET", "/about/", nil))
	if err == nil || err.Status != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}
