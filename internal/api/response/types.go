package response

import (
	"time"

	"github.com/anthonyvouin/icoproject/internal/model"
	"github.com/anthonyvouin/icoproject/internal/services/auth"
)

// User represents a user in API responses
type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		ID:          string(u.ID),
		DisplayName: u.DisplayName,
		IsGuest:     u.IsGuest,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	User         User   `json:"user"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		User:         UserFromModel(&s.User),
		SessionToken: s.Token,
	}
}

// Player represents a player in the public game view. Role and bonus
// card are filled in only once the game is over; until then each
// player learns their own identity through the reveal endpoint.
type Player struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	IsInCrew  bool   `json:"is_in_crew"`
	HasVoted  bool   `json:"has_voted"`
	Revealed  bool   `json:"revealed"`
	Role      string `json:"role,omitempty"`
	BonusCard string `json:"bonus_card,omitempty"`
}

// Score represents the round tally
type Score struct {
	Pirates int `json:"pirates"`
	Marines int `json:"marines"`
}

// GameState is the public view of a game
type GameState struct {
	ID                  string    `json:"id"`
	Phase               string    `json:"phase"`
	Players             []Player  `json:"players"`
	CurrentCaptain      int       `json:"current_captain"`
	CurrentRound        int       `json:"current_round"`
	SelectedCrew        []int     `json:"selected_crew"`
	AwaitingCrewConfirm bool      `json:"awaiting_crew_confirm"`
	CurrentActor        *int      `json:"current_actor,omitempty"`
	CardsPlayed         int       `json:"cards_played"`
	RevealedCards       []string  `json:"revealed_cards,omitempty"`
	Score               Score     `json:"score"`
	Winner              string    `json:"winner,omitempty"`
	TimerRemaining      int       `json:"timer_remaining"`
	RoundsToWin         int       `json:"rounds_to_win"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// GameStateFromModel converts a model.Game to its public view.
// Identities stay hidden until the game is over; played cards are
// shown only in their shuffled reveal order.
func GameStateFromModel(g *model.Game) GameState {
	gameOver := g.Phase == model.PhaseGameOver

	players := make([]Player, len(g.Players))
	for i := range g.Players {
		p := &g.Players[i]
		players[i] = Player{
			ID:       p.ID,
			Name:     p.Name,
			IsInCrew: p.IsInCrew,
			HasVoted: p.HasVoted,
			Revealed: g.Revealed[p.ID],
		}
		if gameOver {
			players[i].Role = string(p.Role)
			players[i].BonusCard = p.BonusCard
		}
	}

	var currentActor *int
	if g.Phase == model.PhaseCardPlaying {
		if actor, ok := g.CurrentCrewActor(); ok {
			currentActor = &actor
		}
	}

	var revealedCards []string
	if g.Phase != model.PhaseCardPlaying {
		for _, card := range g.RevealedCards {
			revealedCards = append(revealedCards, string(card))
		}
	}

	crew := g.SelectedCrew
	if crew == nil {
		crew = []int{}
	}

	return GameState{
		ID:                  string(g.ID),
		Phase:               string(g.Phase),
		Players:             players,
		CurrentCaptain:      g.CurrentCaptain,
		CurrentRound:        g.CurrentRound,
		SelectedCrew:        crew,
		AwaitingCrewConfirm: g.AwaitingCrewConfirm,
		CurrentActor:        currentActor,
		CardsPlayed:         len(g.PlayedCards),
		RevealedCards:       revealedCards,
		Score:               Score{Pirates: g.Score.Pirates, Marines: g.Score.Marines},
		Winner:              string(g.Winner),
		TimerRemaining:      g.TimerRemaining,
		RoundsToWin:         g.RoundsToWin,
		CreatedAt:           g.CreatedAt,
		UpdatedAt:           g.UpdatedAt,
	}
}

// RevealResponse carries a player's private identity after an accepted
// reveal. Declined reveals return no body.
type RevealResponse struct {
	PlayerID  int    `json:"player_id"`
	Role      string `json:"role"`
	BonusCard string `json:"bonus_card,omitempty"`
}

// RevealResponseFromModel converts a revealed player
func RevealResponseFromModel(p *model.Player) RevealResponse {
	return RevealResponse{
		PlayerID:  p.ID,
		Role:      string(p.Role),
		BonusCard: p.BonusCard,
	}
}

// Card represents a catalog card
type Card struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Image       string `json:"image,omitempty"`
}

// CardFromModel converts a model.Card
func CardFromModel(c model.Card) Card {
	return Card{
		Name:        c.Name,
		Description: c.Description,
		Type:        string(c.Type),
		Image:       c.Image,
	}
}

// CardsFromModel converts a catalog slice
func CardsFromModel(cards []model.Card) []Card {
	out := make([]Card, len(cards))
	for i, c := range cards {
		out[i] = CardFromModel(c)
	}
	return out
}

// Settings represents game settings
type Settings struct {
	RoundsToWin  int `json:"rounds_to_win"`
	TimerSeconds int `json:"timer_seconds"`
}

// SettingsFromModel converts model.Settings
func SettingsFromModel(s model.Settings) Settings {
	return Settings{
		RoundsToWin:  s.RoundsToWin,
		TimerSeconds: s.TimerSeconds,
	}
}

// GameSession represents a play session record
type GameSession struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
}

// GameSessionFromModel converts a model.GameSession
func GameSessionFromModel(s *model.GameSession) GameSession {
	return GameSession{
		ID:        string(s.ID),
		UserID:    string(s.UserID),
		StartedAt: s.StartedAt,
		EndedAt:   s.EndedAt,
	}
}
