package game

import (
	"context"
	"log/slog"

	"github.com/anthonyvouin/icoproject/internal/deck"
	"github.com/anthonyvouin/icoproject/internal/dependencies/clock"
	"github.com/anthonyvouin/icoproject/internal/dependencies/random"
	"github.com/anthonyvouin/icoproject/internal/model"
	"github.com/anthonyvouin/icoproject/internal/services/cards"
	"github.com/anthonyvouin/icoproject/internal/services/session"
	"github.com/anthonyvouin/icoproject/internal/services/settings"
	"github.com/anthonyvouin/icoproject/internal/storage"
	"github.com/anthonyvouin/icoproject/internal/vote"
)

const gameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// EventSink receives game events for broadcast to observers
type EventSink interface {
	Publish(event model.Event)
}

// Controller manages the game phase machine and all player actions
type Controller struct {
	storage         storage.Storage
	cardsService    cards.ServiceInterface
	settingsService settings.ServiceInterface
	sessionService  session.ServiceInterface
	clock           clock.Clock
	random          random.Random
	events          EventSink
	logger          *slog.Logger
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	cardsService cards.ServiceInterface,
	settingsService settings.ServiceInterface,
	sessionService session.ServiceInterface,
	clock clock.Clock,
	random random.Random,
	events EventSink,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:         storage,
		cardsService:    cardsService,
		settingsService: settingsService,
		sessionService:  sessionService,
		clock:           clock,
		random:          random,
		events:          events,
		logger:          logger,
	}
}

// StartGame validates the roster, deals roles and bonus cards, records the
// game session, and returns a game ready for the captain election.
// A session record failure aborts the whole operation.
func (c *Controller) StartGame(ctx context.Context, userID model.UserID, names []string) (*model.Game, error) {
	gameSettings := c.settingsService.Get(ctx)
	catalog := c.cardsService.Catalog(ctx)

	players, bonusDeck, err := deck.Deal(c.random, names, catalog)
	if err != nil {
		return nil, err
	}

	gameSession, err := c.sessionService.Start(ctx, userID)
	if err != nil {
		c.logger.Error("game session creation failed, aborting game start",
			slog.String("user_id", string(userID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:             model.GameID(c.random.String(12, gameIDAlphabet)),
		SessionID:      gameSession.ID,
		Phase:          model.PhaseCaptainVote,
		Players:        players,
		CurrentCaptain: -1,
		CurrentRound:   1,
		BonusDeck:      bonusDeck,
		ActionDeck:     deck.Shuffle(c.random, deck.ActionDeck()),
		CaptainVotes:   make(map[int]int),
		FinalVotes:     make(map[int]int),
		Revealed:       make(map[int]bool),
		RoundsToWin:    gameSettings.RoundsToWin,
		RevealSeconds:  gameSettings.TimerSeconds,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game started",
		slog.String("game_id", string(game.ID)),
		slog.String("session_id", string(gameSession.ID)),
		slog.Int("player_count", len(players)),
	)

	c.publish(game, model.EventGameStarted, -1, nil)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// CastCaptainVote records a player's vote for the first captain. Voting
// again overwrites the previous vote. Once every player has voted the
// plurality winner becomes captain and the game moves to distribution.
func (c *Controller) CastCaptainVote(ctx context.Context, gameID model.GameID, voter, target int) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	if game.Phase != model.PhaseCaptainVote {
		return model.ErrWrongPhase
	}

	eligible := game.AllPlayerIDs()
	if err := vote.Cast(game.CaptainVotes, eligible, voter, target); err != nil {
		return err
	}

	if p, ok := game.Player(voter); ok {
		p.HasVoted = true
	}

	c.publish(game, model.EventCaptainVoted, voter, model.CaptainVotedPayload{
		VotesIn: len(game.CaptainVotes),
		VotesOf: len(game.Players),
	})

	if vote.Complete(game.CaptainVotes, eligible) {
		winner, _ := vote.Winner(game.CaptainVotes)
		game.CurrentCaptain = winner
		c.setPhase(game, model.PhaseDistribution)

		c.logger.Info("captain elected",
			slog.String("game_id", string(game.ID)),
			slog.Int("captain", winner),
		)
	}

	game.UpdatedAt = c.clock.Now()
	return c.storage.SaveGame(ctx, game)
}

// BeginReveal starts the identity confirmation for a player during
// distribution. Only one reveal may be in progress at a time.
func (c *Controller) BeginReveal(ctx context.Context, gameID model.GameID, playerID int) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	if game.Phase != model.PhaseDistribution {
		return model.ErrWrongPhase
	}
	if _, ok := game.Player(playerID); !ok {
		return model.ErrUnknownPlayer
	}
	if game.PendingReveal != nil && *game.PendingReveal != playerID {
		return model.ErrRevealInProgress
	}

	game.PendingReveal = &playerID
	game.UpdatedAt = c.clock.Now()
	return c.storage.SaveGame(ctx, game)
}

// ConfirmReveal completes a pending identity confirmation. Accepting
// returns the player's role and bonus card and marks them revealed;
// declining leaves everything untouched.
func (c *Controller) ConfirmReveal(ctx context.Context, gameID model.GameID, playerID int, accept bool) (*model.Player, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.Phase != model.PhaseDistribution {
		return nil, model.ErrWrongPhase
	}
	if game.PendingReveal == nil || *game.PendingReveal != playerID {
		return nil, model.ErrNoPendingReveal
	}

	game.PendingReveal = nil

	if !accept {
		game.UpdatedAt = c.clock.Now()
		return nil, c.storage.SaveGame(ctx, game)
	}

	player, _ := game.Player(playerID)
	game.Revealed[playerID] = true
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	revealed := *player
	return &revealed, nil
}

// AdvancePhase moves the game through its explicit transitions. Which
// transition applies depends on the current phase:
//
//	distribution   -> eyes-closed (once everyone has revealed)
//	eyes-closed    -> eyes-open (arms the countdown)
//	eyes-open      -> crew-selection (manual skip or timer expiry)
//	reveal-cards   -> result (resolves the round)
//	result         -> final-vote, game-over, or the next round
func (c *Controller) AdvancePhase(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	switch game.Phase {
	case model.PhaseDistribution:
		if !game.AllRevealed() {
			return nil, model.ErrWrongPhase
		}
		c.setPhase(game, model.PhaseEyesClosed)

	case model.PhaseEyesClosed:
		game.TimerRemaining = game.RevealSeconds
		c.setPhase(game, model.PhaseEyesOpen)

	case model.PhaseEyesOpen:
		game.TimerRemaining = 0
		c.setPhase(game, model.PhaseCrewSelection)

	case model.PhaseRevealCards:
		c.resolveRound(game)

	case model.PhaseResult:
		c.advanceFromResult(ctx, game)

	default:
		return nil, model.ErrWrongPhase
	}

	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// Tick decrements the eyes-open countdown by one second. Stale ticks
// arriving after the phase has moved on are no-ops. The return reports
// whether the countdown is still running.
func (c *Controller) Tick(ctx context.Context, gameID model.GameID) (bool, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return false, err
	}

	if game.Phase != model.PhaseEyesOpen {
		return false, nil
	}

	game.TimerRemaining--
	if game.TimerRemaining < 0 {
		game.TimerRemaining = 0
	}

	c.publish(game, model.EventTimerTick, -1, model.TimerTickPayload{
		Remaining: game.TimerRemaining,
	})

	if game.TimerRemaining == 0 {
		c.setPhase(game, model.PhaseCrewSelection)
	}

	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return false, err
	}
	return game.Phase == model.PhaseEyesOpen, nil
}

// SelectCrewMember toggles a player in or out of the captain's crew.
// Selecting a fourth member while three are chosen is a no-op; removing
// one while the crew awaits confirmation cancels the confirmation.
func (c *Controller) SelectCrewMember(ctx context.Context, gameID model.GameID, actor, target int) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	if game.Phase != model.PhaseCrewSelection {
		return model.ErrWrongPhase
	}
	if actor != game.CurrentCaptain {
		return model.ErrNotCaptain
	}
	player, ok := game.Player(target)
	if !ok {
		return model.ErrUnknownPlayer
	}

	if game.CrewContains(target) {
		crew := make([]int, 0, len(game.SelectedCrew))
		for _, member := range game.SelectedCrew {
			if member != target {
				crew = append(crew, member)
			}
		}
		game.SelectedCrew = crew
		player.IsInCrew = false
		game.AwaitingCrewConfirm = false
	} else {
		if len(game.SelectedCrew) >= model.CrewSize {
			return nil
		}
		game.SelectedCrew = append(game.SelectedCrew, target)
		player.IsInCrew = true
		if len(game.SelectedCrew) == model.CrewSize {
			game.AwaitingCrewConfirm = true
		}
	}

	game.UpdatedAt = c.clock.Now()
	return c.storage.SaveGame(ctx, game)
}

// ConfirmCrew resolves the crew confirmation. Accepting sends the crew
// off to play cards; declining hands the captaincy to the next player
// and clears the selection.
func (c *Controller) ConfirmCrew(ctx context.Context, gameID model.GameID, actor int, accept bool) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	if game.Phase != model.PhaseCrewSelection {
		return model.ErrWrongPhase
	}
	if actor != game.CurrentCaptain {
		return model.ErrNotCaptain
	}
	if !game.AwaitingCrewConfirm || len(game.SelectedCrew) != model.CrewSize {
		return model.ErrCrewIncomplete
	}

	game.AwaitingCrewConfirm = false

	if accept {
		game.CrewTurn = 0
		c.publish(game, model.EventCrewSelected, actor, model.CrewSelectedPayload{
			Crew: append([]int(nil), game.SelectedCrew...),
		})
		c.setPhase(game, model.PhaseCardPlaying)
	} else {
		c.clearCrew(game)
		game.CurrentCaptain = (game.CurrentCaptain + 1) % len(game.Players)
		c.logger.Info("crew declined, captaincy passed",
			slog.String("game_id", string(game.ID)),
			slog.Int("captain", game.CurrentCaptain),
		)
	}

	game.UpdatedAt = c.clock.Now()
	return c.storage.SaveGame(ctx, game)
}

// PlayCard records a crew member's card for the voyage. Crew members
// play in selection order; poison is restricted to pirates. The third
// card shuffles the played set and moves the game to the reveal.
func (c *Controller) PlayCard(ctx context.Context, gameID model.GameID, playerID int, card model.ActionCard) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	if game.Phase != model.PhaseCardPlaying {
		return model.ErrWrongPhase
	}
	if !game.CrewContains(playerID) {
		return model.ErrNotInCrew
	}
	actor, ok := game.CurrentCrewActor()
	if !ok || actor != playerID {
		return model.ErrNotPlayerTurn
	}
	if card != model.CardIle && card != model.CardPoison {
		return model.ErrInvalidCard
	}

	player, _ := game.Player(playerID)
	if card == model.CardPoison && player.Role != model.RolePirate {
		return model.ErrPoisonForbidden
	}

	player.SelectedCard = card
	game.PlayedCards = append(game.PlayedCards, card)
	game.CrewTurn++

	c.publish(game, model.EventCardPlayed, playerID, model.CardPlayedPayload{
		CardsPlayed: len(game.PlayedCards),
		CardsTotal:  model.CrewSize,
	})

	if len(game.PlayedCards) == model.CrewSize {
		// Shuffle so the reveal order cannot be traced back to players
		game.RevealedCards = deck.Shuffle(c.random, game.PlayedCards)
		c.setPhase(game, model.PhaseRevealCards)
	}

	game.UpdatedAt = c.clock.Now()
	return c.storage.SaveGame(ctx, game)
}

// CastFinalVote records an accusation in the siren hunt. Only pirates
// and the siren vote. Once every eligible player has voted, accusing
// the siren hands the win to the pirates; anyone else and the siren
// escapes with the victory.
func (c *Controller) CastFinalVote(ctx context.Context, gameID model.GameID, voter, target int) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	if game.Phase != model.PhaseFinalVote {
		return model.ErrWrongPhase
	}

	eligible := game.FinalVoters()
	if err := vote.Cast(game.FinalVotes, eligible, voter, target); err != nil {
		return err
	}

	if p, ok := game.Player(voter); ok {
		p.HasVoted = true
	}

	if vote.Complete(game.FinalVotes, eligible) {
		accused, _ := vote.Winner(game.FinalVotes)
		winner := model.FactionSirene
		if accused == game.SirenID() {
			winner = model.FactionPirates
		}

		c.logger.Info("final vote resolved",
			slog.String("game_id", string(game.ID)),
			slog.Int("accused", accused),
			slog.String("winner", string(winner)),
		)

		c.finishGame(ctx, game, winner)
	}

	game.UpdatedAt = c.clock.Now()
	return c.storage.SaveGame(ctx, game)
}

// RestartSameRoster starts a fresh game with the same players. Roles and
// bonus cards are redealt; a new session record is created for the new
// game. Only a finished game can be restarted.
func (c *Controller) RestartSameRoster(ctx context.Context, gameID model.GameID, userID model.UserID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.Phase != model.PhaseGameOver {
		return nil, model.ErrGameNotOver
	}

	names := make([]string, len(game.Players))
	for i, p := range game.Players {
		names[i] = p.Name
	}

	players, bonusDeck, err := deck.Deal(c.random, names, c.cardsService.Catalog(ctx))
	if err != nil {
		return nil, err
	}

	gameSession, err := c.sessionService.Start(ctx, userID)
	if err != nil {
		c.logger.Error("game session creation failed, aborting restart",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	gameSettings := c.settingsService.Get(ctx)
	now := c.clock.Now()

	game.SessionID = gameSession.ID
	game.Phase = model.PhaseCaptainVote
	game.Players = players
	game.CurrentCaptain = -1
	game.CurrentRound = 1
	game.SelectedCrew = nil
	game.AwaitingCrewConfirm = false
	game.CrewTurn = 0
	game.PlayedCards = nil
	game.RevealedCards = nil
	game.Score = model.Score{}
	game.Winner = ""
	game.BonusDeck = bonusDeck
	game.ActionDeck = deck.Shuffle(c.random, deck.ActionDeck())
	game.CaptainVotes = make(map[int]int)
	game.FinalVotes = make(map[int]int)
	game.Revealed = make(map[int]bool)
	game.PendingReveal = nil
	game.TimerRemaining = 0
	game.RoundsToWin = gameSettings.RoundsToWin
	game.RevealSeconds = gameSettings.TimerSeconds
	game.UpdatedAt = now

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game restarted with same roster",
		slog.String("game_id", string(game.ID)),
		slog.String("session_id", string(gameSession.ID)),
	)

	c.publish(game, model.EventGameRestarted, -1, nil)

	return game, nil
}

// ResetGame discards a game entirely. An in-progress game has its
// session record stamped on the way out.
func (c *Controller) ResetGame(ctx context.Context, gameID model.GameID) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	if game.Phase != model.PhaseGameOver {
		if err := c.sessionService.End(ctx, game.SessionID); err != nil {
			c.logger.Warn("failed to end session for discarded game",
				slog.String("game_id", string(gameID)),
				slog.String("session_id", string(game.SessionID)),
				slog.String("error", err.Error()),
			)
		}
	}

	c.logger.Info("game reset",
		slog.String("game_id", string(gameID)),
	)

	return c.storage.DeleteGame(ctx, gameID)
}

// resolveRound applies the round outcome: one poison is enough to sink
// the voyage and score for the pirates, otherwise the marines score.
func (c *Controller) resolveRound(game *model.Game) {
	poisoned := false
	for _, card := range game.PlayedCards {
		if card == model.CardPoison {
			poisoned = true
			break
		}
	}

	if poisoned {
		game.Score.Pirates++
	} else {
		game.Score.Marines++
	}

	c.logger.Info("round resolved",
		slog.String("game_id", string(game.ID)),
		slog.Int("round", game.CurrentRound),
		slog.Bool("poisoned", poisoned),
		slog.Int("pirates", game.Score.Pirates),
		slog.Int("marines", game.Score.Marines),
	)

	c.publish(game, model.EventRoundResolved, -1, model.RoundResolvedPayload{
		Round:         game.CurrentRound,
		RevealedCards: append([]model.ActionCard(nil), game.RevealedCards...),
		Poisoned:      poisoned,
		Score:         game.Score,
	})

	c.setPhase(game, model.PhaseResult)
}

// advanceFromResult branches after a round: pirates reaching the
// threshold trigger the siren hunt, marines reaching it win outright,
// otherwise the next round starts with a new captain.
func (c *Controller) advanceFromResult(ctx context.Context, game *model.Game) {
	switch {
	case game.Score.Pirates >= game.RoundsToWin:
		game.FinalVotes = make(map[int]int)
		for i := range game.Players {
			game.Players[i].HasVoted = false
		}
		c.setPhase(game, model.PhaseFinalVote)

	case game.Score.Marines >= game.RoundsToWin:
		c.finishGame(ctx, game, model.FactionMarines)

	default:
		c.clearCrew(game)
		for i := range game.Players {
			game.Players[i].HasVoted = false
		}
		game.PlayedCards = nil
		game.RevealedCards = nil
		game.CrewTurn = 0
		game.CurrentRound++
		game.CurrentCaptain = (game.CurrentCaptain + 1) % len(game.Players)
		c.setPhase(game, model.PhaseCrewSelection)
	}
}

// finishGame records the winner and stamps the session record. A
// failure to stamp is logged but never surfaces to players.
func (c *Controller) finishGame(ctx context.Context, game *model.Game, winner model.Faction) {
	game.Winner = winner
	c.setPhase(game, model.PhaseGameOver)

	c.publish(game, model.EventGameOver, -1, model.GameOverPayload{
		Winner: winner,
	})

	if err := c.sessionService.End(ctx, game.SessionID); err != nil {
		c.logger.Warn("failed to end game session",
			slog.String("game_id", string(game.ID)),
			slog.String("session_id", string(game.SessionID)),
			slog.String("error", err.Error()),
		)
	}
}

// clearCrew empties the selected crew and per-player crew flags
func (c *Controller) clearCrew(game *model.Game) {
	game.SelectedCrew = nil
	game.AwaitingCrewConfirm = false
	for i := range game.Players {
		game.Players[i].IsInCrew = false
		game.Players[i].SelectedCard = ""
	}
}

// setPhase transitions the game and announces the change
func (c *Controller) setPhase(game *model.Game, to model.GamePhase) {
	from := game.Phase
	game.Phase = to
	c.publish(game, model.EventPhaseChanged, -1, model.PhaseChangedPayload{
		From: from,
		To:   to,
	})
}

// publish forwards an event to the sink, if one is configured
func (c *Controller) publish(game *model.Game, eventType model.EventType, playerID int, payload any) {
	if c.events == nil {
		return
	}
	c.events.Publish(model.Event{
		Type:      eventType,
		Timestamp: c.clock.Now(),
		GameID:    game.ID,
		PlayerID:  playerID,
		Payload:   payload,
	})
}

// Interface for dependency injection
type ControllerInterface interface {
	StartGame(ctx context.Context, userID model.UserID, names []string) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	CastCaptainVote(ctx context.Context, gameID model.GameID, voter, target int) error
	BeginReveal(ctx context.Context, gameID model.GameID, playerID int) error
	ConfirmReveal(ctx context.Context, gameID model.GameID, playerID int, accept bool) (*model.Player, error)
	AdvancePhase(ctx context.Context, gameID model.GameID) (*model.Game, error)
	Tick(ctx context.Context, gameID model.GameID) (bool, error)
	SelectCrewMember(ctx context.Context, gameID model.GameID, actor, target int) error
	ConfirmCrew(ctx context.Context, gameID model.GameID, actor int, accept bool) error
	PlayCard(ctx context.Context, gameID model.GameID, playerID int, card model.ActionCard) error
	CastFinalVote(ctx context.Context, gameID model.GameID, voter, target int) error
	RestartSameRoster(ctx context.Context, gameID model.GameID, userID model.UserID) (*model.Game, error)
	ResetGame(ctx context.Context, gameID model.GameID) error
}

var _ ControllerInterface = (*Controller)(nil)
