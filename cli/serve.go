package cli

import (
	"context"

	"ponto/logger"
	"ponto/server"
	"ponto/templates"
)

type ServeCmd struct {
	Port string `help:"Listen port (overrides SERVER_PORT/PORT)."`
}

func (c *ServeCmd) Run(app *Context, ctx context.Context) error {
	port := app.Config.ServerPort
	if c.Port != "" {
		port = c.Port
	}

	pages, err := templates.Load()
	if err != nil {
		return err
	}

	auditService, err := newAuditService(ctx, app)
	if err != nil {
		return err
	}

	router := server.NewRouter(server.Deps{
		Config:    app.Config,
		Store:     app.Store,
		Timesheet: app.Timesheet,
		Audit:     auditService,
		Templates: pages,
	})

	logger.Info("Ponto ready", "env", app.Config.Environment, "postgres", app.Config.IsPostgres())
	return server.Serve(ctx, ":"+port, router, app.Config.ShutdownTimeout)
}
