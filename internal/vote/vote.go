// Package vote implements the plurality tally shared by the captain
// election and the final accusation vote.
package vote

import (
	"github.com/anthonyvouin/icoproject/internal/model"
)

// Cast records a vote in the tally. Voter and target must both be in the
// eligible pool, and players cannot vote for themselves. Voting again
// overwrites the previous vote.
func Cast(votes map[int]int, eligible []int, voter, target int) error {
	if !contains(eligible, voter) {
		return model.ErrNotEligible
	}
	if !contains(eligible, target) {
		return model.ErrUnknownPlayer
	}
	if voter == target {
		return model.ErrSelfVote
	}
	votes[voter] = target
	return nil
}

// Complete returns true once every eligible player has voted
func Complete(votes map[int]int, eligible []int) bool {
	for _, id := range eligible {
		if _, ok := votes[id]; !ok {
			return false
		}
	}
	return len(eligible) > 0
}

// Winner returns the plurality winner of the tally. Ties are broken in
// favour of the lowest player id so the result is deterministic. The
// second return is false when no votes have been cast.
func Winner(votes map[int]int) (int, bool) {
	if len(votes) == 0 {
		return 0, false
	}

	counts := make(map[int]int)
	for _, target := range votes {
		counts[target]++
	}

	winner := -1
	best := 0
	for target, count := range counts {
		if count > best || (count == best && target < winner) {
			winner = target
			best = count
		}
	}
	return winner, true
}

func contains(ids []int, id int) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
