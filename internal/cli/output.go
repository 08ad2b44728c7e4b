package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case AuthResult:
		o.printAuthResult(v)
	case GameState:
		o.printGameState(v)
	case RevealResult:
		o.printRevealResult(v)
	case []Card:
		o.printCards(v)
	case Card:
		o.printCard(v)
	case Settings:
		o.printSettings(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email,omitempty"`
	IsGuest     bool   `json:"is_guest"`
}

// AuthResult combines user and token
type AuthResult struct {
	User         User   `json:"user"`
	SessionToken string `json:"session_token"`
}

// Player response type
type Player struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	IsInCrew  bool   `json:"is_in_crew"`
	HasVoted  bool   `json:"has_voted"`
	Revealed  bool   `json:"revealed"`
	Role      string `json:"role,omitempty"`
	BonusCard string `json:"bonus_card,omitempty"`
}

// Score response type
type Score struct {
	Pirates int `json:"pirates"`
	Marines int `json:"marines"`
}

// GameState response type
type GameState struct {
	ID                 string   `json:"id"`
	Phase              string   `json:"phase"`
	Players            []Player `json:"players"`
	CurrentCaptain     int      `json:"current_captain"`
	CurrentRound       int      `json:"current_round"`
	SelectedCrew       []int    `json:"selected_crew"`
	AwaitingCrewConfirm bool     `json:"awaiting_crew_confirm"`
	CurrentActor       *int     `json:"current_actor,omitempty"`
	CardsPlayed        int      `json:"cards_played"`
	RevealedCards      []string `json:"revealed_cards,omitempty"`
	Score              Score    `json:"score"`
	Winner             string   `json:"winner,omitempty"`
	TimerRemaining     int      `json:"timer_remaining"`
	RoundsToWin        int      `json:"rounds_to_win"`
}

// RevealResult response type
type RevealResult struct {
	PlayerID  int    `json:"player_id"`
	Role      string `json:"role"`
	BonusCard string `json:"bonus_card,omitempty"`
}

// Card response type
type Card struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Count       int    `json:"count"`
}

// Settings response type
type Settings struct {
	RoundsToWin  int `json:"rounds_to_win"`
	TimerSeconds int `json:"timer_seconds"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printUser(u User) {
	guestStr := "no"
	if u.IsGuest {
		guestStr = "yes"
	}
	fmt.Printf("User: %s (%s)\n", u.DisplayName, u.ID)
	if u.Email != "" {
		fmt.Printf("Email: %s\n", u.Email)
	}
	fmt.Printf("Guest: %s\n", guestStr)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printUser(a.User)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printGameState(g GameState) {
	fmt.Printf("Game: %s\n", g.ID)
	fmt.Printf("Phase: %s\n", g.Phase)
	fmt.Printf("Round: %d (first to %d)\n", g.CurrentRound, g.RoundsToWin)
	fmt.Printf("Score: pirates %d, marines %d\n", g.Score.Pirates, g.Score.Marines)

	if g.CurrentCaptain >= 0 {
		fmt.Printf("Captain: %d\n", g.CurrentCaptain)
	}
	if g.TimerRemaining > 0 {
		fmt.Printf("Timer: %ds\n", g.TimerRemaining)
	}

	fmt.Printf("Players (%d):\n", len(g.Players))
	for _, p := range g.Players {
		var marks []string
		if p.ID == g.CurrentCaptain {
			marks = append(marks, "captain")
		}
		if p.IsInCrew {
			marks = append(marks, "crew")
		}
		if p.Revealed {
			marks = append(marks, "revealed")
		}
		if p.HasVoted {
			marks = append(marks, "voted")
		}
		if p.Role != "" {
			marks = append(marks, p.Role)
		}
		suffix := ""
		if len(marks) > 0 {
			suffix = " [" + strings.Join(marks, ", ") + "]"
		}
		fmt.Printf("  %d: %s%s\n", p.ID, p.Name, suffix)
	}

	if len(g.SelectedCrew) > 0 {
		crew := make([]string, len(g.SelectedCrew))
		for i, id := range g.SelectedCrew {
			crew[i] = strconv.Itoa(id)
		}
		confirmStr := ""
		if g.AwaitingCrewConfirm {
			confirmStr = " (awaiting confirmation)"
		}
		fmt.Printf("Crew: %s%s\n", strings.Join(crew, ", "), confirmStr)
	}

	if g.CurrentActor != nil {
		fmt.Printf("Playing: %d (%d/3 cards in)\n", *g.CurrentActor, g.CardsPlayed)
	}
	if len(g.RevealedCards) > 0 {
		fmt.Printf("Voyage cards: %s\n", strings.Join(g.RevealedCards, ", "))
	}

	if g.Winner != "" {
		fmt.Printf("\nWinner: %s\n", g.Winner)
	}
}

func (o *Output) printRevealResult(r RevealResult) {
	fmt.Printf("Player %d: %s\n", r.PlayerID, r.Role)
	if r.BonusCard != "" {
		fmt.Printf("Bonus card: %s\n", r.BonusCard)
	}
}

func (o *Output) printCards(cards []Card) {
	for _, c := range cards {
		o.printCard(c)
	}
}

func (o *Output) printCard(c Card) {
	fmt.Printf("%s (%s, x%d)\n", c.Name, c.Type, c.Count)
	if c.Description != "" {
		fmt.Printf("  %s\n", c.Description)
	}
}

func (o *Output) printSettings(s Settings) {
	fmt.Printf("Rounds to win: %d\n", s.RoundsToWin)
	fmt.Printf("Timer: %ds\n", s.TimerSeconds)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
