package handler

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/junle/database/repository"
	"github.com/junle/metal/env"
	"github.com/junle/pkg/endpoint"
)

type SitemapHandler struct {
	Posts *repository.Posts
	Net   env.NetEnvironment
}

func NewSitemapHandler(posts *repository.Posts, net env.NetEnvironment) SitemapHandler {
	return SitemapHandler{
		Posts: posts,
		Net:   net,
	}
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Handle lists every validated post. Entries use the last update time so
// crawlers revisit edited posts.
func (h *SitemapHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	posts, err := h.Posts.GetAllValidated()

	if err != nil {
		slog.Error("Error getting sitemap posts", "err", err)
		return endpoint.InternalError("Error getting sitemap posts")
	}

	host := h.Net.GetHostURL()

	urlSet := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
	}

	for _, post := range posts {
		urlSet.URLs = append(urlSet.URLs, sitemapURL{
			Loc:        fmt.Sprintf("%s/post/%d/", host, post.ID),
			LastMod:    post.UpdatedAt.UTC().Format("2006-01-02"),
			ChangeFreq: "monthly",
			Priority:   "0.9",
		})
	}

	w.Header().Set("Content-Type", "application/xml")

	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return endpoint.LogInternalError("Error writing the sitemap", err)
	}

	if err := xml.NewEncoder(w).Encode(urlSet); err != nil {
		slog.Error("failed to encode sitemap", "err", err)

		return endpoint.InternalError("There was an issue processing the sitemap. Please, try later.")
	}

	return nil
}
