package factory

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/anthonyvouin/icoproject/internal/dependencies/clock"
	"github.com/anthonyvouin/icoproject/internal/dependencies/random"
	"github.com/anthonyvouin/icoproject/internal/services/auth"
	"github.com/anthonyvouin/icoproject/internal/services/cards"
	"github.com/anthonyvouin/icoproject/internal/services/game"
	"github.com/anthonyvouin/icoproject/internal/services/session"
	"github.com/anthonyvouin/icoproject/internal/services/settings"
	"github.com/anthonyvouin/icoproject/internal/sse"
	"github.com/anthonyvouin/icoproject/internal/storage"
	"github.com/anthonyvouin/icoproject/internal/storage/memory"
	redisstorage "github.com/anthonyvouin/icoproject/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	AuthService     *auth.Service
	CardsService    *cards.Service
	SettingsService *settings.Service
	SessionService  *session.Service
	GameController  *game.Controller
	Countdown       *game.Runner
	HubManager      *sse.HubManager
	Broadcaster     *sse.Broadcaster
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// CountdownInterval is the eyes-open countdown tick interval (optional)
	// If zero, defaults to one second
	CountdownInterval time.Duration
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	interval := cfg.CountdownInterval
	if interval == 0 {
		interval = time.Second
	}

	return newWithDependencies(store, clk, rnd, authCfg, interval, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, authCfg auth.Config, countdownInterval time.Duration, logger *slog.Logger) *App {
	// Create services
	authService := auth.New(store, clk, authCfg)
	cardsService := cards.New(store, logger)
	settingsService := settings.New(store, logger)
	sessionService := session.New(store, clk, rnd, logger)

	hubManager := sse.NewHubManager(logger)
	broadcaster := sse.NewBroadcaster(hubManager, logger)

	gameController := game.NewController(
		store,
		cardsService,
		settingsService,
		sessionService,
		clk,
		rnd,
		broadcaster,
		logger,
	)
	countdown := game.NewRunner(gameController, countdownInterval, logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		AuthService:     authService,
		CardsService:    cardsService,
		SettingsService: settingsService,
		SessionService:  sessionService,
		GameController:  gameController,
		Countdown:       countdown,
		HubManager:      hubManager,
		Broadcaster:     broadcaster,
	}
}
