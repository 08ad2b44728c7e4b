package model

// Role is a player's secret allegiance
type Role string

const (
	RolePirate Role = "pirate"
	RoleMarin  Role = "marin"
	RoleSirene Role = "sirene"
)

// Player is a participant in a single game, identified by seat index
type Player struct {
	ID   int
	Name string

	Role      Role
	BonusCard string // empty if the bonus deck ran out

	IsInCrew     bool
	SelectedCard ActionCard // card played this round, empty if none
	HasVoted     bool
}
