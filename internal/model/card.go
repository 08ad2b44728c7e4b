package model

// ActionCard is a card playable during a voyage
type ActionCard string

const (
	CardIle    ActionCard = "ile"
	CardPoison ActionCard = "poison"
)

// ActionCopies is how many copies of each action card the deck holds
const ActionCopies = 6

// CardType classifies catalog cards
type CardType string

const (
	CardTypeRole   CardType = "ROLE"
	CardTypeBonus  CardType = "BONUS"
	CardTypeAction CardType = "ACTION"
)

// Card is an entry in the card catalog
type Card struct {
	Name        string
	Description string
	Type        CardType
	Image       string
}

// DefaultCatalog returns the built-in card catalog, used to seed storage
// and as a fallback when the catalog cannot be read
func DefaultCatalog() []Card {
	return []Card{
		{
			Name:        "pirate",
			Description: "Membre de l'équipage cherchant à s'emparer du navire",
			Type:        CardTypeRole,
			Image:       "/cards/pirate.png",
		},
		{
			Name:        "marin",
			Description: "Fidèle défenseur du navire et de son capitaine",
			Type:        CardTypeRole,
			Image:       "/cards/marin.png",
		},
		{
			Name:        "sirene",
			Description: "Créature mystérieuse alliée aux pirates, gagne seule si elle survit",
			Type:        CardTypeRole,
			Image:       "/cards/sirene.png",
		},
		{
			Name:        "ile",
			Description: "Le voyage se déroule sans encombre",
			Type:        CardTypeAction,
			Image:       "/cards/ile.png",
		},
		{
			Name:        "poison",
			Description: "Empoisonne l'équipage et offre la manche aux pirates",
			Type:        CardTypeAction,
			Image:       "/cards/poison.png",
		},
		{
			Name:        "Antidote",
			Description: "Protège son détenteur d'un empoisonnement",
			Type:        CardTypeBonus,
			Image:       "/cards/antidote.png",
		},
	}
}
