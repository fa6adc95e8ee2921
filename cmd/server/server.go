// cmd/server/server.go
package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/analysishub/analysishub/internal/api"
	"github.com/analysishub/analysishub/internal/api/auth"
	"github.com/analysishub/analysishub/internal/api/matches"
	"github.com/analysishub/analysishub/internal/api/players"
	"github.com/analysishub/analysishub/internal/api/reportfiles"
	"github.com/analysishub/analysishub/internal/config"
	"github.com/analysishub/analysishub/internal/db"
	"github.com/analysishub/analysishub/internal/templates"
	"github.com/analysishub/analysishub/internal/templates/components/home"
)

func newServer(cfg *config.Config, database *db.DB) *http.Server {
	router := http.NewServeMux()

	handler := api.ChainMiddleware(
		router,
		api.WithLogging,
		api.WithAuth,
		api.WithRecovery,
		api.WithRequestID,
	)

	registerRoutes(router, cfg, database)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func registerRoutes(mux *http.ServeMux, cfg *config.Config, database *db.DB) {
	playerHandler := players.NewHandler(cfg, database.Queries)
	matchHandler := matches.NewHandler(cfg, database.Queries)
	downloadHandler := reportfiles.NewHandler(cfg, database.Queries)

	mux.HandleFunc("GET /{$}", api.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		templates.RenderPage(w, r, "Create a Report", home.SelectReportType())
	}))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Auth
	mux.HandleFunc("GET /login", auth.HandleLoginPage)
	mux.HandleFunc("POST /login", auth.HandleLogin)
	mux.HandleFunc("GET /register", auth.HandleRegisterPage)
	mux.HandleFunc("POST /register", auth.HandleRegister)
	mux.HandleFunc("GET /logout", api.RequireAuth(auth.HandleLogout))

	// Player reports
	mux.HandleFunc("GET /create_player_report_form", api.RequireAuth(playerHandler.HandleNewForm))
	mux.HandleFunc("POST /generate_player_report", api.RequireAuth(playerHandler.HandleGenerate))
	mux.HandleFunc("GET /players", api.RequireAuth(playerHandler.HandleList))
	mux.HandleFunc("GET /edit_player/{id}", api.RequireAuth(playerHandler.HandleEditForm))
	mux.HandleFunc("POST /edit_player/{id}", api.RequireAuth(playerHandler.HandleUpdate))
	mux.HandleFunc("POST /delete_player/{id}", api.RequireAuth(playerHandler.HandleDelete))

	// Match reports
	mux.HandleFunc("GET /create_match_report_form", api.RequireAuth(matchHandler.HandleNewForm))
	mux.HandleFunc("POST /generate_match_report", api.RequireAuth(matchHandler.HandleGenerate))
	mux.HandleFunc("GET /matches", api.RequireAuth(matchHandler.HandleList))
	mux.HandleFunc("GET /edit_match/{id}", api.RequireAuth(matchHandler.HandleEditForm))
	mux.HandleFunc("POST /edit_match/{id}", api.RequireAuth(matchHandler.HandleUpdate))
	mux.HandleFunc("POST /delete_match/{id}", api.RequireAuth(matchHandler.HandleDelete))

	// Report downloads
	mux.HandleFunc("GET /download_report/{filename}", api.RequireAuth(downloadHandler.HandleDownload))
}
