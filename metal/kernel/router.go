package kernel

import (
	baseHttp "net/http"

	"github.com/junle/database"
	"github.com/junle/database/repository"
	"github.com/junle/handler"
	"github.com/junle/metal/env"
	"github.com/junle/pkg/endpoint"
	"github.com/junle/pkg/markdown"
	"github.com/junle/pkg/middleware"
)

type Router struct {
	Env      *env.Environment
	Mux      *baseHttp.ServeMux
	Pipeline middleware.Pipeline
	Db       *database.Connection
	Markdown *markdown.Renderer
}

func (r *Router) PipelineFor(apiHandler endpoint.ApiHandler) baseHttp.HandlerFunc {
	return endpoint.NewApiHandler(
		r.Pipeline.Chain(apiHandler),
	)
}

// ThrottledPipelineFor guards write endpoints with the submission throttle.
func (r *Router) ThrottledPipelineFor(apiHandler endpoint.ApiHandler) baseHttp.HandlerFunc {
	return endpoint.NewApiHandler(
		r.Pipeline.Chain(
			apiHandler,
			r.Pipeline.Throttle.Handle,
		),
	)
}

func (r *Router) Home() {
	posts := repository.Posts{DB: r.Db}
	tags := repository.Tags{DB: r.Db}
	abstract := handler.NewHomeHandler(&posts, &tags, r.Env.Site)

	index := r.PipelineFor(abstract.Index)

	r.Mux.HandleFunc("GET /{$}", index)
}

func (r *Router) About() {
	repo := repository.Pages{DB: r.Db}
	abstract := handler.NewPagesHandler(&repo, r.Markdown)

	about := r.PipelineFor(abstract.About)

	r.Mux.HandleFunc("GET /about/", about)
}

func (r *Router) Posts() {
	posts := repository.Posts{DB: r.Db}
	comments := repository.Comments{DB: r.Db}
	abstract := handler.NewPostsHandler(&posts, &comments, r.Markdown)

	show := r.PipelineFor(abstract.Show)
	addComment := r.ThrottledPipelineFor(abstract.AddComment)

	r.Mux.HandleFunc("GET /post/{id}/", show)
	r.Mux.HandleFunc("POST /post/{id}/addcomment/", addComment)
}

func (r *Router) Tags() {
	tags := repository.Tags{DB: r.Db}
	posts := repository.Posts{DB: r.Db}
	abstract := handler.NewTagsHandler(&tags, &posts)

	index := r.PipelineFor(abstract.Index)
	show := r.PipelineFor(abstract.Show)

	r.Mux.HandleFunc("GET /tags/", index)
	r.Mux.HandleFunc("GET /tags/{id}/", show)
}

func (r *Router) Categories() {
	categories := repository.Categories{DB: r.Db}
	posts := repository.Posts{DB: r.Db}
	abstract := handler.NewCategoriesHandler(&categories, &posts)

	index := r.PipelineFor(abstract.Index)
	show := r.PipelineFor(abstract.Show)

	r.Mux.HandleFunc("GET /categories/", index)
	r.Mux.HandleFunc("GET /categories/{id}/", show)
}

func (r *Router) Sitemap() {
	posts := repository.Posts{DB: r.Db}
	abstract := handler.NewSitemapHandler(&posts, r.Env.Network)

	sitemap := r.PipelineFor(abstract.Handle)

	r.Mux.HandleFunc("GET /sitemap.xml", sitemap)
}
