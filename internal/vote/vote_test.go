package vote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anthonyvouin/icoproject/internal/model"
)

func TestCastRejectsSelfVote(t *testing.T) {
	votes := make(map[int]int)
	err := Cast(votes, []int{0, 1, 2}, 1, 1)
	assert.ErrorIs(t, err, model.ErrSelfVote)
	assert.Empty(t, votes)
}

func TestCastRejectsIneligibleVoter(t *testing.T) {
	votes := make(map[int]int)
	err := Cast(votes, []int{0, 1, 2}, 5, 1)
	assert.ErrorIs(t, err, model.ErrNotEligible)
}

func TestCastRejectsIneligibleTarget(t *testing.T) {
	votes := make(map[int]int)
	err := Cast(votes, []int{0, 1, 2}, 1, 5)
	assert.ErrorIs(t, err, model.ErrUnknownPlayer)
}

func TestCastOverwritesPreviousVote(t *testing.T) {
	votes := make(map[int]int)
	eligible := []int{0, 1, 2}

	require.NoError(t, Cast(votes, eligible, 0, 1))
	require.NoError(t, Cast(votes, eligible, 0, 2))

	assert.Equal(t, map[int]int{0: 2}, votes)
}

func TestComplete(t *testing.T) {
	votes := make(map[int]int)
	eligible := []int{0, 1, 2}

	assert.False(t, Complete(votes, eligible))

	require.NoError(t, Cast(votes, eligible, 0, 1))
	require.NoError(t, Cast(votes, eligible, 1, 2))
	assert.False(t, Complete(votes, eligible))

	require.NoError(t, Cast(votes, eligible, 2, 0))
	assert.True(t, Complete(votes, eligible))
}

func TestCompleteEmptyPool(t *testing.T) {
	assert.False(t, Complete(map[int]int{}, nil))
}

func TestWinnerPlurality(t *testing.T) {
	votes := map[int]int{0: 2, 1: 2, 3: 1, 2: 4}
	winner, ok := Winner(votes)
	require.True(t, ok)
	assert.Equal(t, 2, winner)
}

func TestWinnerTieBreaksToLowestID(t *testing.T) {
	votes := map[int]int{0: 3, 1: 2, 2: 3, 3: 2}
	winner, ok := Winner(votes)
	require.True(t, ok)
	assert.Equal(t, 2, winner)
}

func TestWinnerNoVotes(t *testing.T) {
	_, ok := Winner(map[int]int{})
	assert.False(t, ok)
}
