package deck

import (
	"strings"

	"github.com/anthonyvouin/icoproject/internal/dependencies/random"
	"github.com/anthonyvouin/icoproject/internal/model"
)

const (
	// MinPlayers and MaxPlayers bound the supported roster size
	MinPlayers = 7
	MaxPlayers = 20
)

// Distribution is the role split for a given player count
type Distribution struct {
	Pirates int
	Marins  int
	Sirene  int
}

// distributions maps player count to role split. There is always exactly
// one siren; pirates never outnumber marines.
var distributions = map[int]Distribution{
	7:  {Pirates: 3, Marins: 3, Sirene: 1},
	8:  {Pirates: 3, Marins: 4, Sirene: 1},
	9:  {Pirates: 4, Marins: 4, Sirene: 1},
	10: {Pirates: 4, Marins: 5, Sirene: 1},
	11: {Pirates: 5, Marins: 5, Sirene: 1},
	12: {Pirates: 5, Marins: 6, Sirene: 1},
	13: {Pirates: 6, Marins: 6, Sirene: 1},
	14: {Pirates: 6, Marins: 7, Sirene: 1},
	15: {Pirates: 7, Marins: 7, Sirene: 1},
	16: {Pirates: 7, Marins: 8, Sirene: 1},
	17: {Pirates: 8, Marins: 8, Sirene: 1},
	18: {Pirates: 8, Marins: 9, Sirene: 1},
	19: {Pirates: 9, Marins: 9, Sirene: 1},
	20: {Pirates: 9, Marins: 10, Sirene: 1},
}

// DistributionFor returns the role split for the given player count
func DistributionFor(count int) (Distribution, error) {
	if count < MinPlayers {
		return Distribution{}, model.ErrTooFewPlayers
	}
	if count > MaxPlayers {
		return Distribution{}, model.ErrTooManyPlayers
	}
	return distributions[count], nil
}

// ValidateRoster checks that the player names form a playable roster
func ValidateRoster(names []string) error {
	if len(names) < MinPlayers {
		return model.ErrTooFewPlayers
	}
	if len(names) > MaxPlayers {
		return model.ErrTooManyPlayers
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return model.ErrMissingName
		}
		if seen[trimmed] {
			return model.ErrDuplicateName
		}
		seen[trimmed] = true
	}
	return nil
}

// Shuffle returns an unbiased (Fisher-Yates) shuffled copy of items.
// The input slice is not modified.
func Shuffle[T any](rnd random.Random, items []T) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// RoleDeck builds the unshuffled role deck for a distribution
func RoleDeck(d Distribution) []model.Role {
	roles := make([]model.Role, 0, d.Pirates+d.Marins+d.Sirene)
	for i := 0; i < d.Pirates; i++ {
		roles = append(roles, model.RolePirate)
	}
	for i := 0; i < d.Marins; i++ {
		roles = append(roles, model.RoleMarin)
	}
	for i := 0; i < d.Sirene; i++ {
		roles = append(roles, model.RoleSirene)
	}
	return roles
}

// ActionDeck builds the unshuffled action deck (six of each card)
func ActionDeck() []model.ActionCard {
	cards := make([]model.ActionCard, 0, 2*model.ActionCopies)
	for i := 0; i < model.ActionCopies; i++ {
		cards = append(cards, model.CardIle)
	}
	for i := 0; i < model.ActionCopies; i++ {
		cards = append(cards, model.CardPoison)
	}
	return cards
}

// BonusDeck builds the unshuffled bonus deck from the card catalog
func BonusDeck(catalog []model.Card) []string {
	var names []string
	for _, card := range catalog {
		if card.Type == model.CardTypeBonus {
			names = append(names, card.Name)
		}
	}
	return names
}

// Draw pops the top card off a bonus deck. An empty deck yields an
// empty card name; players simply go without.
func Draw(bonusDeck []string) (string, []string) {
	if len(bonusDeck) == 0 {
		return "", bonusDeck
	}
	top := bonusDeck[len(bonusDeck)-1]
	return top, bonusDeck[:len(bonusDeck)-1]
}

// Deal validates the roster, shuffles roles and bonus cards, and returns
// the seated players plus the remaining bonus deck
func Deal(rnd random.Random, names []string, catalog []model.Card) ([]model.Player, []string, error) {
	if err := ValidateRoster(names); err != nil {
		return nil, nil, err
	}

	dist, err := DistributionFor(len(names))
	if err != nil {
		return nil, nil, err
	}

	roles := Shuffle(rnd, RoleDeck(dist))
	bonusDeck := Shuffle(rnd, BonusDeck(catalog))

	players := make([]model.Player, len(names))
	for i, name := range names {
		var bonus string
		bonus, bonusDeck = Draw(bonusDeck)
		players[i] = model.Player{
			ID:        i,
			Name:      strings.TrimSpace(name),
			Role:      roles[i],
			BonusCard: bonus,
		}
	}

	return players, bonusDeck, nil
}
