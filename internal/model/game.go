package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GamePhase represents the current phase of a game
type GamePhase string

const (
	PhaseCaptainVote   GamePhase = "captain-vote"   // Electing the first captain
	PhaseDistribution  GamePhase = "distribution"   // Players privately reveal their role
	PhaseEyesClosed    GamePhase = "eyes-closed"    // Everyone closes their eyes
	PhaseEyesOpen      GamePhase = "eyes-open"      // Pirates and siren identify each other while the countdown runs
	PhaseCrewSelection GamePhase = "crew-selection" // Captain picks a crew of three
	PhaseCardPlaying   GamePhase = "card-playing"   // Crew members each play one card
	PhaseRevealCards   GamePhase = "reveal-cards"   // Played cards shown in shuffled order
	PhaseResult        GamePhase = "result"         // Round outcome and score update
	PhaseFinalVote     GamePhase = "final-vote"     // Pirates and siren accuse the siren
	PhaseGameOver      GamePhase = "game-over"      // Winner decided
)

// Faction identifies a winning side
type Faction string

const (
	FactionPirates Faction = "pirates"
	FactionMarines Faction = "marines"
	FactionSirene  Faction = "sirene"
)

// Score tracks round wins per side. The siren scores with the pirates.
type Score struct {
	Pirates int
	Marines int
}

// CrewSize is the number of players the captain sends on each voyage
const CrewSize = 3

// Game is the authoritative state of a single ICO game
type Game struct {
	ID        GameID
	SessionID SessionID
	Phase     GamePhase

	// Players in seating order; a player's ID is its index
	Players []Player

	CurrentCaptain int
	CurrentRound   int

	// Crew selection state
	SelectedCrew        []int
	AwaitingCrewConfirm bool

	// Card playing state. CrewTurn indexes into SelectedCrew.
	CrewTurn      int
	PlayedCards   []ActionCard
	RevealedCards []ActionCard // shuffled copy shown at reveal

	Score  Score
	Winner Faction // empty until game over

	BonusDeck  []string
	ActionDeck []ActionCard

	// Vote tallies, voter id -> target id
	CaptainVotes map[int]int
	FinalVotes   map[int]int

	// Distribution phase tracking
	Revealed      map[int]bool
	PendingReveal *int

	// Seconds remaining on the eyes-open countdown
	TimerRemaining int

	// Settings captured at game start
	RoundsToWin   int
	RevealSeconds int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Player returns the player with the given id
func (g *Game) Player(id int) (*Player, bool) {
	if id < 0 || id >= len(g.Players) {
		return nil, false
	}
	return &g.Players[id], true
}

// SirenID returns the id of the siren player
func (g *Game) SirenID() int {
	for i := range g.Players {
		if g.Players[i].Role == RoleSirene {
			return i
		}
	}
	return -1
}

// CrewContains returns true if the player is in the selected crew
func (g *Game) CrewContains(id int) bool {
	for _, member := range g.SelectedCrew {
		if member == id {
			return true
		}
	}
	return false
}

// CurrentCrewActor returns the id of the crew member whose turn it is to play
func (g *Game) CurrentCrewActor() (int, bool) {
	if g.CrewTurn < 0 || g.CrewTurn >= len(g.SelectedCrew) {
		return 0, false
	}
	return g.SelectedCrew[g.CrewTurn], true
}

// AllRevealed returns true if every player has confirmed their identity
func (g *Game) AllRevealed() bool {
	for i := range g.Players {
		if !g.Revealed[i] {
			return false
		}
	}
	return true
}

// FinalVoters returns the ids of players eligible for the final vote
// (pirates and the siren; marines have already lost)
func (g *Game) FinalVoters() []int {
	var voters []int
	for i := range g.Players {
		if g.Players[i].Role == RolePirate || g.Players[i].Role == RoleSirene {
			voters = append(voters, i)
		}
	}
	return voters
}

// AllPlayerIDs returns every player id in seating order
func (g *Game) AllPlayerIDs() []int {
	ids := make([]int, len(g.Players))
	for i := range g.Players {
		ids[i] = i
	}
	return ids
}
