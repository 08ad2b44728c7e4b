package sse

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/anthonyvouin/icoproject/internal/model"
	"github.com/anthonyvouin/icoproject/internal/testutil"
)

func receiveMessage(t *testing.T, client *Client) string {
	t.Helper()
	select {
	case msg := <-client.send:
		return string(msg)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("client did not receive message")
		return ""
	}
}

func TestBroadcaster_PublishPhaseChanged(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	broadcaster := NewBroadcaster(manager, testutil.NopLogger())

	hub := manager.GetOrCreateHub("GAME1")
	client := NewClient(hub, 0)
	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	broadcaster.Publish(model.Event{
		Type:      model.EventPhaseChanged,
		Timestamp: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		GameID:    "GAME1",
		PlayerID:  -1,
		Payload: model.PhaseChangedPayload{
			From: model.PhaseEyesClosed,
			To:   model.PhaseEyesOpen,
		},
	})

	msg := receiveMessage(t, client)
	if !strings.Contains(msg, "event: phase_changed") {
		t.Errorf("message does not contain event name: %s", msg)
	}
	if !strings.Contains(msg, `"from":"eyes-closed"`) {
		t.Errorf("message does not contain the old phase: %s", msg)
	}
	if !strings.Contains(msg, `"to":"eyes-open"`) {
		t.Errorf("message does not contain the new phase: %s", msg)
	}
	// No single player triggered the event
	if strings.Contains(msg, "playerId") {
		t.Errorf("message unexpectedly contains a player id: %s", msg)
	}

	manager.RemoveHub("GAME1")
}

func TestBroadcaster_PublishIncludesPlayerID(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	broadcaster := NewBroadcaster(manager, testutil.NopLogger())

	hub := manager.GetOrCreateHub("GAME1")
	client := NewClient(hub, 0)
	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	broadcaster.Publish(model.Event{
		Type:      model.EventCardPlayed,
		Timestamp: time.Now(),
		GameID:    "GAME1",
		PlayerID:  3,
		Payload:   model.CardPlayedPayload{CardsPlayed: 2, CardsTotal: 3},
	})

	msg := receiveMessage(t, client)
	if !strings.Contains(msg, `"playerId":3`) {
		t.Errorf("message does not contain the player id: %s", msg)
	}
	if !strings.Contains(msg, `"cardsPlayed":2`) {
		t.Errorf("message does not contain played count: %s", msg)
	}

	manager.RemoveHub("GAME1")
}

func TestBroadcaster_PublishRoundResolved(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	broadcaster := NewBroadcaster(manager, testutil.NopLogger())

	hub := manager.GetOrCreateHub("GAME1")
	client := NewClient(hub, 0)
	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	broadcaster.Publish(model.Event{
		Type:      model.EventRoundResolved,
		Timestamp: time.Now(),
		GameID:    "GAME1",
		PlayerID:  -1,
		Payload: model.RoundResolvedPayload{
			Round:         1,
			RevealedCards: []model.ActionCard{model.CardIle, model.CardPoison, model.CardIle},
			Poisoned:      true,
			Score:         model.Score{Pirates: 1},
		},
	})

	msg := receiveMessage(t, client)

	// The data line carries the JSON envelope
	var dataLine string
	for _, line := range strings.Split(msg, "\n") {
		if strings.HasPrefix(line, "data: ") {
			dataLine = strings.TrimPrefix(line, "data: ")
			break
		}
	}
	if dataLine == "" {
		t.Fatalf("message has no data line: %s", msg)
	}

	var env struct {
		Type    string `json:"type"`
		GameID  string `json:"gameId"`
		Payload struct {
			Round         int      `json:"round"`
			RevealedCards []string `json:"revealedCards"`
			Poisoned      bool     `json:"poisoned"`
			PirateScore   int      `json:"pirateScore"`
		} `json:"payload"`
	}
	if err := json.Unmarshal([]byte(dataLine), &env); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}

	if env.Type != "round_resolved" {
		t.Errorf("envelope type = %q, want round_resolved", env.Type)
	}
	if env.GameID != "GAME1" {
		t.Errorf("envelope gameId = %q, want GAME1", env.GameID)
	}
	if !env.Payload.Poisoned {
		t.Error("envelope payload should be poisoned")
	}
	if env.Payload.PirateScore != 1 {
		t.Errorf("envelope pirateScore = %d, want 1", env.Payload.PirateScore)
	}
	if len(env.Payload.RevealedCards) != 3 {
		t.Errorf("envelope revealedCards has %d entries, want 3", len(env.Payload.RevealedCards))
	}

	manager.RemoveHub("GAME1")
}

func TestBroadcaster_NoHubDropsEvent(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	broadcaster := NewBroadcaster(manager, testutil.NopLogger())

	// Should not panic when no hub exists for the game
	broadcaster.Publish(model.Event{
		Type:     model.EventGameStarted,
		GameID:   "NOEXIST",
		PlayerID: -1,
	})
}
