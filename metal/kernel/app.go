package kernel

import (
	baseHttp "net/http"

	"github.com/junle/database"
	"github.com/junle/metal/env"
	"github.com/junle/pkg/llogs"
	"github.com/junle/pkg/markdown"
	"github.com/junle/pkg/middleware"
	"github.com/junle/pkg/portal"
)

type App struct {
	router    *Router
	sentry    *portal.Sentry
	logs      llogs.Driver
	validator *portal.Validator
	env       *env.Environment
	db        *database.Connection
}

func MakeApp(env *env.Environment, validator *portal.Validator) (*App, error) {
	db := MakeDbConnection(env)

	app := App{
		env:       env,
		validator: validator,
		logs:      MakeLogs(env),
		sentry:    MakeSentry(env),
		db:        db,
	}

	router := Router{
		Env:      env,
		Db:       db,
		Mux:      baseHttp.NewServeMux(),
		Markdown: markdown.NewRenderer(),
		Pipeline: middleware.Pipeline{
			Env:      env,
			Throttle: middleware.MakeThrottleMiddleware(),
		},
	}

	app.SetRouter(router)

	return &app, nil
}

func (a *App) Boot() {
	if a == nil || a.router == nil {
		panic("bootstrapping error > Invalid setup")
	}

	router := *a.router

	router.Home()
	router.About()
	router.Posts()
	router.Tags()
	router.Categories()
	router.Sitemap()
}
