package sse

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/anthonyvouin/icoproject/internal/model"
)

// Broadcaster fans game events out to the SSE clients of the game
// they belong to. It satisfies the game controller's event sink.
type Broadcaster struct {
	hubManager *HubManager
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// envelope is the wire form of an event
type envelope struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	GameID    string    `json:"gameId"`
	PlayerID  *int      `json:"playerId,omitempty"`
	Payload   any       `json:"payload,omitempty"`
}

type phaseChangedWire struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type captainVotedWire struct {
	VotesIn int `json:"votesIn"`
	VotesOf int `json:"votesOf"`
}

type timerTickWire struct {
	Remaining int `json:"remaining"`
}

type crewSelectedWire struct {
	Crew []int `json:"crew"`
}

type cardPlayedWire struct {
	CardsPlayed int `json:"cardsPlayed"`
	CardsTotal  int `json:"cardsTotal"`
}

type roundResolvedWire struct {
	Round         int      `json:"round"`
	RevealedCards []string `json:"revealedCards"`
	Poisoned      bool     `json:"poisoned"`
	PirateScore   int      `json:"pirateScore"`
	MarineScore   int      `json:"marineScore"`
}

type gameOverWire struct {
	Winner string `json:"winner"`
}

// Publish broadcasts an event to every client connected to its game.
// Events for games with no connected clients are dropped.
func (b *Broadcaster) Publish(event model.Event) {
	hub := b.hubManager.GetHub(event.GameID)
	if hub == nil {
		return
	}

	env := envelope{
		Type:      string(event.Type),
		Timestamp: event.Timestamp,
		GameID:    string(event.GameID),
		Payload:   wirePayload(event.Payload),
	}
	if event.PlayerID >= 0 {
		playerID := event.PlayerID
		env.PlayerID = &playerID
	}

	data, err := json.Marshal(env)
	if err != nil {
		b.logger.Error("sse failed to encode event",
			slog.String("game_id", string(event.GameID)),
			slog.String("event_type", string(event.Type)),
			slog.Any("error", err))
		return
	}

	hub.BroadcastEvent(string(event.Type), string(data))
}

// wirePayload converts a typed event payload to its wire form
func wirePayload(payload any) any {
	switch p := payload.(type) {
	case model.PhaseChangedPayload:
		return phaseChangedWire{From: string(p.From), To: string(p.To)}
	case model.CaptainVotedPayload:
		return captainVotedWire{VotesIn: p.VotesIn, VotesOf: p.VotesOf}
	case model.TimerTickPayload:
		return timerTickWire{Remaining: p.Remaining}
	case model.CrewSelectedPayload:
		return crewSelectedWire{Crew: p.Crew}
	case model.CardPlayedPayload:
		return cardPlayedWire{CardsPlayed: p.CardsPlayed, CardsTotal: p.CardsTotal}
	case model.RoundResolvedPayload:
		cards := make([]string, len(p.RevealedCards))
		for i, card := range p.RevealedCards {
			cards[i] = string(card)
		}
		return roundResolvedWire{
			Round:         p.Round,
			RevealedCards: cards,
			Poisoned:      p.Poisoned,
			PirateScore:   p.Score.Pirates,
			MarineScore:   p.Score.Marines,
		}
	case model.GameOverPayload:
		return gameOverWire{Winner: string(p.Winner)}
	default:
		return nil
	}
}
