package main

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"wedding-api/internal/api"
	"wedding-api/internal/config"
	"wedding-api/internal/github"
	"wedding-api/internal/middleware"
	"wedding-api/internal/models"
	"wedding-api/internal/services"
	"wedding-api/internal/store"
)

func main() {
	cfg := config.Load()
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if cfg.GitHubToken == "" {
		// Requests will answer 500 until the credential is provided; starting
		// anyway keeps /health usable for deploy checks.
		log.Warn().Msg("GITHUB_TOKEN not set, data endpoints will fail")
	}

	client := github.NewClient(github.DefaultBaseURL, cfg.GitHubRepo, cfg.GitHubToken,
		log.With().Str("component", "github").Logger())

	guests := services.NewGuestService(
		store.NewCollection[models.Guest](client, "data/guests.json", cfg.DataBranch))
	rsvps := services.NewRSVPService(
		store.NewCollection[models.RSVP](client, "data/rsvps.json", cfg.DataBranch))
	faqs := services.NewFAQService(
		store.NewCollection[models.FAQ](client, "data/faqs.json", cfg.DataBranch))
	roles := services.NewRoleConfigService(
		store.NewDocument[models.RoleConfig](client, "data/role-config.json", cfg.DataBranch))

	auth := middleware.NewAdminAuth(cfg.JWTSecret)
	admin := services.NewAdminService(cfg.AdminPassword, cfg.AdminPasswordHash, auth.SignToken)

	mux := http.NewServeMux()
	api.NewRouter(guests, rsvps, faqs, roles, admin,
		log.With().Str("component", "api").Logger()).Register(mux)

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":   true,
			"name": "Wedding API",
			"repo": cfg.GitHubRepo,
		})
	})

	handler := middleware.CORS(cfg.AllowedOrigin,
		middleware.SecureHeaders(
			middleware.NoStore(
				auth.WithAuth(mux))))

	log.Info().Str("addr", cfg.Addr).Str("branch", cfg.DataBranch).Msg("wedding API listening")
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
