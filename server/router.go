package server

import (
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"ponto/audit"
	"ponto/config"
	"ponto/database"
	"ponto/handlers"
	"ponto/middleware"
	"ponto/timesheet"
)

// Deps is everything the router wires into handlers.
type Deps struct {
	Config    *config.Config
	Store     *database.Store
	Timesheet *timesheet.Service
	Audit     *audit.Service
	Templates map[string]*template.Template
}

func NewRouter(d Deps) *chi.Mux {
	authHandler := handlers.NewAuthHandler(d.Config, d.Templates, d.Store)
	timesheetHandler := handlers.NewTimesheetHandler(d.Templates, d.Timesheet)
	configHandler := handlers.NewConfigHandler(d.Templates, d.Timesheet)
	reportHandler := handlers.NewReportHandler(d.Templates, d.Timesheet)
	auditHandler := handlers.NewAuditHandler(d.Templates, d.Audit)

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.RequestLogger)
	router.Use(chimiddleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := d.Store.Ping(r.Context()); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	})

	// Public routes
	router.Get("/login", authHandler.LoginPage)
	router.Post("/login", authHandler.Login)

	router.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:" + d.Config.ServerPort},
			AllowedMethods:   []string{"GET", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
		}))
		r.Use(middleware.APIAuth(d.Store))
		r.Get("/report", reportHandler.JSON)
	})

	// Protected routes
	router.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(d.Store))

		// Logout (doesn't need password change check)
		r.Get("/logout", authHandler.Logout)

		// Password change routes (accessible even when password change required)
		r.Get("/change-password", authHandler.ChangePasswordPage)
		r.Post("/change-password", authHandler.ChangePassword)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequirePasswordChange)

			r.Get("/", timesheetHandler.Index)
			r.Post("/entries", timesheetHandler.CreateEntry)
			r.Post("/entries/delete", timesheetHandler.DeleteEntry)
			r.Get("/export/csv", timesheetHandler.ExportCSV)

			r.Get("/config", configHandler.Page)
			r.Post("/config", configHandler.Save)

			r.Get("/report", reportHandler.Page)
			r.Post("/report", reportHandler.Page)
			r.Get("/report/pdf", reportHandler.PDF)

			r.Get("/audit", auditHandler.Page)
			r.Post("/audit", auditHandler.Run)
		})
	})

	return router
}
