package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventGameStarted   EventType = "game_started"
	EventCaptainVoted  EventType = "captain_voted"
	EventPhaseChanged  EventType = "phase_changed"
	EventTimerTick     EventType = "timer_tick"
	EventCrewSelected  EventType = "crew_selected"
	EventCardPlayed    EventType = "card_played"
	EventRoundResolved EventType = "round_resolved"
	EventGameOver      EventType = "game_over"
	EventGameRestarted EventType = "game_restarted"
)

// Event is the base structure for all events
type Event struct {
	Type      EventType
	Timestamp time.Time
	GameID    GameID
	PlayerID  int // -1 when no single player triggered the event
	Payload   any // Type-specific data
}

// PhaseChangedPayload contains data for phase changed events
type PhaseChangedPayload struct {
	From GamePhase
	To   GamePhase
}

// CaptainVotedPayload contains data for captain voted events.
// The target is never included; who voted for whom stays private.
type CaptainVotedPayload struct {
	VotesIn int
	VotesOf int
}

// TimerTickPayload contains data for countdown tick events
type TimerTickPayload struct {
	Remaining int
}

// CrewSelectedPayload contains data for crew selected events
type CrewSelectedPayload struct {
	Crew []int
}

// CardPlayedPayload contains data for card played events.
// The card itself is not broadcast until the reveal phase.
type CardPlayedPayload struct {
	CardsPlayed int
	CardsTotal  int
}

// RoundResolvedPayload contains data for round resolved events
type RoundResolvedPayload struct {
	Round         int
	RevealedCards []ActionCard
	Poisoned      bool
	Score         Score
}

// GameOverPayload contains data for game over events
type GameOverPayload struct {
	Winner Faction
}
