package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/anthonyvouin/icoproject/internal/api/handler"
	apimiddleware "github.com/anthonyvouin/icoproject/internal/api/middleware"
	"github.com/anthonyvouin/icoproject/internal/middleware"
	"github.com/anthonyvouin/icoproject/internal/services/auth"
	"github.com/anthonyvouin/icoproject/internal/services/cards"
	"github.com/anthonyvouin/icoproject/internal/services/game"
	"github.com/anthonyvouin/icoproject/internal/services/settings"
	"github.com/anthonyvouin/icoproject/internal/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	AuthService     *auth.Service
	GameController  game.ControllerInterface
	Countdown       *game.Runner
	CardsService    cards.ServiceInterface
	SettingsService settings.ServiceInterface
	HubManager      *sse.HubManager
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.AuthService)
	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.Countdown, cfg.HubManager)
	catalogHandler := handler.NewCatalogHandler(cfg.CardsService, cfg.SettingsService)

	// Create middleware
	authMiddleware := apimiddleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := apimiddleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Account routes (no auth required for creating accounts/logging in)
	api.HandleFunc("/players/guest", playerHandler.CreateGuest).Methods(http.MethodPost)
	api.HandleFunc("/players/register", playerHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/players/login", playerHandler.Login).Methods(http.MethodPost)

	// Protected account routes
	playerProtected := api.PathPrefix("/players").Subrouter()
	playerProtected.Use(authMiddleware)
	playerProtected.HandleFunc("/me", playerHandler.GetMe).Methods(http.MethodGet)
	playerProtected.HandleFunc("/logout", playerHandler.Logout).Methods(http.MethodPost)

	// Game routes (all require auth)
	games := api.PathPrefix("/games").Subrouter()
	games.Use(authMiddleware)
	games.HandleFunc("", gameHandler.Create).Methods(http.MethodPost)
	games.HandleFunc("/{game_id}", gameHandler.Get).Methods(http.MethodGet)
	games.HandleFunc("/{game_id}", gameHandler.Delete).Methods(http.MethodDelete)
	games.HandleFunc("/{game_id}/captain-vote", gameHandler.CastCaptainVote).Methods(http.MethodPost)
	games.HandleFunc("/{game_id}/reveal", gameHandler.BeginReveal).Methods(http.MethodPost)
	games.HandleFunc("/{game_id}/reveal/confirm", gameHandler.ConfirmReveal).Methods(http.MethodPost)
	games.HandleFunc("/{game_id}/advance", gameHandler.AdvancePhase).Methods(http.MethodPost)
	games.HandleFunc("/{game_id}/crew", gameHandler.SelectCrewMember).Methods(http.MethodPost)
	games.HandleFunc("/{game_id}/crew/confirm", gameHandler.ConfirmCrew).Methods(http.MethodPost)
	games.HandleFunc("/{game_id}/card", gameHandler.PlayCard).Methods(http.MethodPost)
	games.HandleFunc("/{game_id}/final-vote", gameHandler.CastFinalVote).Methods(http.MethodPost)
	games.HandleFunc("/{game_id}/restart", gameHandler.Restart).Methods(http.MethodPost)
	games.HandleFunc("/{game_id}/events", gameHandler.Events).Methods(http.MethodGet)

	// Catalog routes (read access is public, settings updates require auth)
	api.HandleFunc("/cards", catalogHandler.ListCards).Methods(http.MethodGet)
	api.HandleFunc("/cards/{name}", catalogHandler.GetCard).Methods(http.MethodGet)
	api.HandleFunc("/settings", catalogHandler.GetSettings).Methods(http.MethodGet)

	settingsProtected := api.PathPrefix("/settings").Subrouter()
	settingsProtected.Use(authMiddleware)
	settingsProtected.HandleFunc("", catalogHandler.UpdateSettings).Methods(http.MethodPut)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
