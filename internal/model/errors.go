package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Roster errors
	ErrTooFewPlayers  = errors.New("at least 7 players are required")
	ErrTooManyPlayers = errors.New("at most 20 players are allowed")
	ErrMissingName    = errors.New("every player needs a name")
	ErrDuplicateName  = errors.New("player names must be distinct")
	ErrUnknownPlayer  = errors.New("player not in this game")

	// Game errors
	ErrGameNotFound     = errors.New("game not found")
	ErrWrongPhase       = errors.New("operation not valid in current phase")
	ErrSelfVote         = errors.New("players cannot vote for themselves")
	ErrNotEligible      = errors.New("player is not eligible to vote")
	ErrNotCaptain       = errors.New("player is not the captain")
	ErrNotInCrew        = errors.New("player is not in the crew")
	ErrNotPlayerTurn    = errors.New("not this player's turn")
	ErrCrewIncomplete   = errors.New("crew must have exactly three members")
	ErrPoisonForbidden  = errors.New("only pirates may play poison")
	ErrInvalidCard      = errors.New("unknown action card")
	ErrNoPendingReveal  = errors.New("no reveal in progress for this player")
	ErrRevealInProgress = errors.New("another reveal is in progress")
	ErrGameNotOver      = errors.New("game is not over")

	// Catalog errors
	ErrCardNotFound     = errors.New("card not found")
	ErrCatalogNotSeeded = errors.New("card catalog not seeded")

	// Settings errors
	ErrSettingsNotFound = errors.New("settings not found")

	// Session errors
	ErrSessionNotFound = errors.New("game session not found")
)
