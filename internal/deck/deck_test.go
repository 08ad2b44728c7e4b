package deck

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anthonyvouin/icoproject/internal/dependencies/mocks"
	"github.com/anthonyvouin/icoproject/internal/dependencies/random"
	"github.com/anthonyvouin/icoproject/internal/model"
)

func makeNames(count int) []string {
	names := make([]string, count)
	for i := range names {
		names[i] = fmt.Sprintf("player-%d", i)
	}
	return names
}

func TestDistributionFor(t *testing.T) {
	for count := MinPlayers; count <= MaxPlayers; count++ {
		dist, err := DistributionFor(count)
		require.NoError(t, err)
		assert.Equal(t, 1, dist.Sirene, "count %d", count)
		assert.Equal(t, count, dist.Pirates+dist.Marins+dist.Sirene, "count %d", count)
		assert.LessOrEqual(t, dist.Pirates, dist.Marins, "count %d", count)
	}
}

func TestDistributionForEightPlayers(t *testing.T) {
	dist, err := DistributionFor(8)
	require.NoError(t, err)
	assert.Equal(t, Distribution{Pirates: 3, Marins: 4, Sirene: 1}, dist)
}

func TestDistributionForOutOfRange(t *testing.T) {
	_, err := DistributionFor(6)
	assert.ErrorIs(t, err, model.ErrTooFewPlayers)

	_, err = DistributionFor(21)
	assert.ErrorIs(t, err, model.ErrTooManyPlayers)
}

func TestValidateRoster(t *testing.T) {
	assert.NoError(t, ValidateRoster(makeNames(7)))
	assert.NoError(t, ValidateRoster(makeNames(20)))

	assert.ErrorIs(t, ValidateRoster(makeNames(6)), model.ErrTooFewPlayers)
	assert.ErrorIs(t, ValidateRoster(makeNames(21)), model.ErrTooManyPlayers)

	blank := makeNames(7)
	blank[3] = "   "
	assert.ErrorIs(t, ValidateRoster(blank), model.ErrMissingName)

	dup := makeNames(7)
	dup[5] = dup[2]
	assert.ErrorIs(t, ValidateRoster(dup), model.ErrDuplicateName)
}

func TestShufflePreservesElements(t *testing.T) {
	rnd := random.New()
	original := []int{1, 2, 3, 4, 5, 6, 7, 8}
	input := append([]int(nil), original...)

	shuffled := Shuffle(rnd, input)

	assert.Equal(t, original, input, "input must not be modified")
	assert.ElementsMatch(t, original, shuffled)
}

func TestShuffleDeterministicWithMock(t *testing.T) {
	rnd := mocks.NewMockRandom()
	rnd.QueueIntn(0, 0, 0)

	shuffled := Shuffle(rnd, []int{1, 2, 3, 4})

	// Each element in turn is swapped to the front
	assert.Equal(t, []int{2, 3, 4, 1}, shuffled)
}

func TestActionDeck(t *testing.T) {
	cards := ActionDeck()
	require.Len(t, cards, 12)

	counts := make(map[model.ActionCard]int)
	for _, card := range cards {
		counts[card]++
	}
	assert.Equal(t, 6, counts[model.CardIle])
	assert.Equal(t, 6, counts[model.CardPoison])
}

func TestBonusDeckFiltersCatalog(t *testing.T) {
	names := BonusDeck(model.DefaultCatalog())
	assert.Equal(t, []string{"Antidote"}, names)
}

func TestDraw(t *testing.T) {
	card, rest := Draw([]string{"a", "b", "c"})
	assert.Equal(t, "c", card)
	assert.Equal(t, []string{"a", "b"}, rest)

	card, rest = Draw(nil)
	assert.Equal(t, "", card)
	assert.Empty(t, rest)
}

func TestDealAssignsRolesPerDistribution(t *testing.T) {
	rnd := random.New()
	players, _, err := Deal(rnd, makeNames(8), model.DefaultCatalog())
	require.NoError(t, err)
	require.Len(t, players, 8)

	counts := make(map[model.Role]int)
	for i, p := range players {
		assert.Equal(t, i, p.ID)
		counts[p.Role]++
	}
	assert.Equal(t, 3, counts[model.RolePirate])
	assert.Equal(t, 4, counts[model.RoleMarin])
	assert.Equal(t, 1, counts[model.RoleSirene])
}

func TestDealBonusDeckRunsOut(t *testing.T) {
	// One bonus card in the default catalog; exactly one player gets it
	rnd := random.New()
	players, remaining, err := Deal(rnd, makeNames(7), model.DefaultCatalog())
	require.NoError(t, err)
	assert.Empty(t, remaining)

	withBonus := 0
	for _, p := range players {
		if p.BonusCard != "" {
			withBonus++
		}
	}
	assert.Equal(t, 1, withBonus)
}

func TestDealRejectsBadRoster(t *testing.T) {
	rnd := random.New()
	_, _, err := Deal(rnd, makeNames(5), model.DefaultCatalog())
	assert.ErrorIs(t, err, model.ErrTooFewPlayers)
}
