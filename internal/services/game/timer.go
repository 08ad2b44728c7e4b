package game

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/anthonyvouin/icoproject/internal/model"
)

// Runner drives the eyes-open countdown for games. One goroutine per
// running countdown; the goroutine stops itself as soon as a tick
// reports the phase has moved on.
type Runner struct {
	controller ControllerInterface
	interval   time.Duration
	logger     *slog.Logger

	mu      sync.Mutex
	cancels map[model.GameID]context.CancelFunc
}

// NewRunner creates a countdown runner ticking at the given interval
// (one second in production; tests shorten it)
func NewRunner(controller ControllerInterface, interval time.Duration, logger *slog.Logger) *Runner {
	return &Runner{
		controller: controller,
		interval:   interval,
		logger:     logger.With(slog.String("component", "countdown")),
		cancels:    make(map[model.GameID]context.CancelFunc),
	}
}

// Start begins the countdown for a game, replacing any countdown
// already running for it
func (r *Runner) Start(gameID model.GameID) {
	ctx, cancel := context.WithCancel(context.Background())

	r.mu.Lock()
	if existing, ok := r.cancels[gameID]; ok {
		existing()
	}
	r.cancels[gameID] = cancel
	r.mu.Unlock()

	r.logger.Info("countdown started", slog.String("game_id", string(gameID)))

	go r.run(ctx, gameID)
}

// Stop cancels the countdown for a game, if one is running
func (r *Runner) Stop(gameID model.GameID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cancel, ok := r.cancels[gameID]; ok {
		cancel()
		delete(r.cancels, gameID)
	}
}

// StopAll cancels every running countdown (used at shutdown)
func (r *Runner) StopAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for gameID, cancel := range r.cancels {
		cancel()
		delete(r.cancels, gameID)
	}
}

func (r *Runner) run(ctx context.Context, gameID model.GameID) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			running, err := r.controller.Tick(ctx, gameID)
			if err != nil {
				r.logger.Warn("countdown tick failed",
					slog.String("game_id", string(gameID)),
					slog.String("error", err.Error()),
				)
				r.Stop(gameID)
				return
			}
			if !running {
				r.Stop(gameID)
				return
			}
		}
	}
}
