package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"

	"ponto/cli"
	"ponto/config"
	"ponto/database"
	"ponto/logger"
	"ponto/middleware"
	"ponto/timesheet"
)

var CLI struct {
	Version kong.VersionFlag
	Debug   bool `help:"Enable debug logging."`

	Serve cli.ServeCmd `cmd:"" help:"Run the web time sheet." default:"1"`
	Entry struct {
		Add    cli.EntryAddCmd    `cmd:"" help:"Record a work session."`
		Delete cli.EntryDeleteCmd `cmd:"" help:"Delete a recorded session."`
		List   cli.EntryListCmd   `cmd:"" help:"List the sessions of a payroll cycle."`
	} `cmd:"" help:"Manage time entries."`
	Config struct {
		Show cli.ConfigShowCmd `cmd:"" help:"Show the shift configuration." default:"1"`
		Set  cli.ConfigSetCmd  `cmd:"" help:"Save the shift configuration."`
	} `cmd:"" help:"Manage the shift configuration."`
	Report       cli.ReportCmd       `cmd:"" help:"Compute the payroll of a cycle."`
	Audit        cli.AuditCmd        `cmd:"" help:"Audit a payslip against the recorded entries."`
	HashPassword cli.HashPasswordCmd `cmd:"" help:"Print a bcrypt hash for ADMIN_PASSWORD_HASH."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("ponto"),
		kong.Description("Time sheet and CLT payroll calculator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{"version": "v1.0.0"},
	)

	cfg := config.Load()
	if CLI.Debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	command := kctx.Command()
	if err := logger.Init(logger.Config{
		Debug:  cfg.Debug,
		LogDir: cfg.LogDir,
		Quiet:  command != "serve",
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	middleware.SetJWTSecret(cfg.JWTSecret)

	app := &cli.Context{Config: cfg, Out: os.Stdout}
	if !strings.HasPrefix(command, "hash-password") {
		store, err := database.Init(cfg)
		if err != nil {
			logger.Fatal("Failed to initialize database", "err", err)
		}
		defer store.Close()
		app.Store = store
		app.Timesheet = timesheet.NewService(store)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	kctx.BindTo(ctx, (*context.Context)(nil))

	if err := kctx.Run(app); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
