package main

import (
	"context"
	"log/slog"
	baseHttp "net/http"

	_ "github.com/lib/pq"

	"github.com/junle/database/backup"
	"github.com/junle/metal/kernel"
	"github.com/junle/pkg/endpoint"
	"github.com/junle/pkg/portal"
)

var app *kernel.App

func init() {
	validate := portal.GetDefaultValidator()

	secrets, err := kernel.Ignite("./.env", validate)
	if err != nil {
		panic("Ignite: " + err.Error())
	}

	instance, err := kernel.MakeApp(secrets, validate)
	if err != nil {
		panic("MakeApp: " + err.Error())
	}

	app = instance
}

func main() {
	defer app.CloseDB()
	defer app.CloseLogs()

	app.Boot()
	app.GetDB().Ping()

	environment := app.GetEnv()

	if environment.Backup.Enabled {
		scheduler, err := backup.NewScheduler(environment)
		if err != nil {
			panic("Backup: " + err.Error())
		}

		if err = scheduler.Start(context.Background()); err != nil {
			panic("Backup: " + err.Error())
		}

		defer scheduler.Stop()
	}

	addr := environment.Network.GetHostURL()

	server := &baseHttp.Server{
		Addr: addr,
		Handler: endpoint.NewServerHandler(endpoint.ServerHandlerConfig{
			Mux:          app.GetMux(),
			IsProduction: app.IsProduction(),
			DevHost:      environment.App.URL,
			Wrap:         app.GetSentry().Handler.Handle,
		}),
	}

	slog.Info("Starting new server on :" + environment.Network.HttpPort)

	if err := endpoint.RunServer(addr, server); err != nil {
		slog.Error("Error starting server", "error", err)
		panic("Error starting server." + err.Error())
	}
}
