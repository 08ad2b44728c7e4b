package factory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/anthonyvouin/icoproject/internal/model"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func (s *IntegrationSuite) roster(count int) []string {
	names := make([]string, count)
	for i := range names {
		names[i] = fmt.Sprintf("player-%d", i)
	}
	return names
}

// electCaptain has every player vote for the given target (the target
// votes for player 0, or 1 if the target is 0)
func (s *IntegrationSuite) electCaptain(gameID model.GameID, playerCount, target int) {
	for voter := 0; voter < playerCount; voter++ {
		t := target
		if voter == target {
			t = 0
			if target == 0 {
				t = 1
			}
		}
		s.Require().NoError(s.app.GameController.CastCaptainVote(s.ctx, gameID, voter, t))
	}
}

func (s *IntegrationSuite) revealEveryone(gameID model.GameID, playerCount int) {
	for i := 0; i < playerCount; i++ {
		s.Require().NoError(s.app.GameController.BeginReveal(s.ctx, gameID, i))
		_, err := s.app.GameController.ConfirmReveal(s.ctx, gameID, i, true)
		s.Require().NoError(err)
	}
}

// Test: a full game from roster to pirate victory through the siren hunt
func (s *IntegrationSuite) TestFullGameToPirateVictory() {
	// One poisoned round is enough to reach the final vote
	s.Require().NoError(s.app.SettingsService.Update(s.ctx, model.Settings{
		RoundsToWin:  1,
		TimerSeconds: 2,
	}))

	s.app.MockRandom.QueueString("sessA", "GAME01")
	game, err := s.app.GameController.StartGame(s.ctx, "user-1", s.roster(7))
	s.Require().NoError(err)
	s.Equal(model.PhaseCaptainVote, game.Phase)
	s.Equal(1, game.RoundsToWin)

	// Elect player 1 captain
	s.electCaptain(game.ID, 7, 1)
	game, err = s.app.GameController.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(model.PhaseDistribution, game.Phase)
	s.Equal(1, game.CurrentCaptain)

	// Everyone confirms their identity
	s.revealEveryone(game.ID, 7)

	// distribution -> eyes-closed -> eyes-open -> crew-selection
	game, err = s.app.GameController.AdvancePhase(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(model.PhaseEyesClosed, game.Phase)

	game, err = s.app.GameController.AdvancePhase(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(model.PhaseEyesOpen, game.Phase)
	s.Equal(2, game.TimerRemaining)

	game, err = s.app.GameController.AdvancePhase(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(model.PhaseCrewSelection, game.Phase)

	// Build a crew around a pirate so poison can be played
	var pirate int
	for i := range game.Players {
		if game.Players[i].Role == model.RolePirate {
			pirate = i
			break
		}
	}
	crew := []int{pirate}
	for i := range game.Players {
		if i != pirate && len(crew) < model.CrewSize {
			crew = append(crew, i)
		}
	}

	captain := game.CurrentCaptain
	for _, member := range crew {
		s.Require().NoError(s.app.GameController.SelectCrewMember(s.ctx, game.ID, captain, member))
	}
	s.Require().NoError(s.app.GameController.ConfirmCrew(s.ctx, game.ID, captain, true))

	// Crew plays in selection order; the pirate poisons the voyage
	for _, member := range crew {
		card := model.CardIle
		if member == pirate {
			card = model.CardPoison
		}
		s.Require().NoError(s.app.GameController.PlayCard(s.ctx, game.ID, member, card))
	}

	game, err = s.app.GameController.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(model.PhaseRevealCards, game.Phase)

	// reveal-cards -> result: pirates score
	game, err = s.app.GameController.AdvancePhase(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(model.PhaseResult, game.Phase)
	s.Equal(1, game.Score.Pirates)

	// result -> final-vote (pirates reached the threshold)
	game, err = s.app.GameController.AdvancePhase(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(model.PhaseFinalVote, game.Phase)

	// Pirates accuse the siren; the siren accuses a pirate
	siren := game.SirenID()
	for _, voter := range game.FinalVoters() {
		target := siren
		if voter == siren {
			target = game.FinalVoters()[0]
			if target == siren {
				target = game.FinalVoters()[1]
			}
		}
		s.Require().NoError(s.app.GameController.CastFinalVote(s.ctx, game.ID, voter, target))
	}

	game, err = s.app.GameController.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(model.PhaseGameOver, game.Phase)
	s.Equal(model.FactionPirates, game.Winner)

	// The session record was stamped on the way out
	record, err := s.app.SessionService.Get(s.ctx, game.SessionID)
	s.Require().NoError(err)
	s.NotNil(record.EndedAt)
}

// Test: marines win outright when every voyage comes home clean
func (s *IntegrationSuite) TestMarinesWinWithCleanVoyages() {
	s.Require().NoError(s.app.SettingsService.Update(s.ctx, model.Settings{
		RoundsToWin:  1,
		TimerSeconds: 2,
	}))

	s.app.MockRandom.QueueString("sessA", "GAME01")
	game, err := s.app.GameController.StartGame(s.ctx, "user-1", s.roster(7))
	s.Require().NoError(err)

	s.electCaptain(game.ID, 7, 0)
	s.revealEveryone(game.ID, 7)

	for i := 0; i < 3; i++ {
		game, err = s.app.GameController.AdvancePhase(s.ctx, game.ID)
		s.Require().NoError(err)
	}
	s.Equal(model.PhaseCrewSelection, game.Phase)

	captain := game.CurrentCaptain
	crew := []int{(captain + 1) % 7, (captain + 2) % 7, (captain + 3) % 7}
	for _, member := range crew {
		s.Require().NoError(s.app.GameController.SelectCrewMember(s.ctx, game.ID, captain, member))
	}
	s.Require().NoError(s.app.GameController.ConfirmCrew(s.ctx, game.ID, captain, true))

	for _, member := range crew {
		s.Require().NoError(s.app.GameController.PlayCard(s.ctx, game.ID, member, model.CardIle))
	}

	// reveal-cards -> result -> game-over
	_, err = s.app.GameController.AdvancePhase(s.ctx, game.ID)
	s.Require().NoError(err)
	game, err = s.app.GameController.AdvancePhase(s.ctx, game.ID)
	s.Require().NoError(err)

	s.Equal(model.PhaseGameOver, game.Phase)
	s.Equal(model.FactionMarines, game.Winner)
}

// Test: restarting a finished game keeps the roster and opens a new session
func (s *IntegrationSuite) TestRestartAfterGameOver() {
	s.Require().NoError(s.app.SettingsService.Update(s.ctx, model.Settings{
		RoundsToWin:  1,
		TimerSeconds: 2,
	}))

	s.app.MockRandom.QueueString("sessA", "GAME01")
	game, err := s.app.GameController.StartGame(s.ctx, "user-1", s.roster(7))
	s.Require().NoError(err)

	s.electCaptain(game.ID, 7, 0)
	s.revealEveryone(game.ID, 7)
	for i := 0; i < 3; i++ {
		game, err = s.app.GameController.AdvancePhase(s.ctx, game.ID)
		s.Require().NoError(err)
	}

	captain := game.CurrentCaptain
	crew := []int{(captain + 1) % 7, (captain + 2) % 7, (captain + 3) % 7}
	for _, member := range crew {
		s.Require().NoError(s.app.GameController.SelectCrewMember(s.ctx, game.ID, captain, member))
	}
	s.Require().NoError(s.app.GameController.ConfirmCrew(s.ctx, game.ID, captain, true))
	for _, member := range crew {
		s.Require().NoError(s.app.GameController.PlayCard(s.ctx, game.ID, member, model.CardIle))
	}
	_, err = s.app.GameController.AdvancePhase(s.ctx, game.ID)
	s.Require().NoError(err)
	game, err = s.app.GameController.AdvancePhase(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Require().Equal(model.PhaseGameOver, game.Phase)

	firstSession := game.SessionID

	s.app.MockRandom.QueueString("sessB")
	restarted, err := s.app.GameController.RestartSameRoster(s.ctx, game.ID, "user-1")
	s.Require().NoError(err)

	s.Equal(model.PhaseCaptainVote, restarted.Phase)
	s.NotEqual(firstSession, restarted.SessionID)
	s.Len(restarted.Players, 7)
	for i, p := range restarted.Players {
		s.Equal(fmt.Sprintf("player-%d", i), p.Name)
	}
}

// Test: the seeded catalog backs dealing and the cards service
func (s *IntegrationSuite) TestCatalogSeedAndDeal() {
	s.Require().NoError(s.app.CardsService.Seed(s.ctx))

	catalog := s.app.CardsService.Catalog(s.ctx)
	s.NotEmpty(catalog)

	bonus := s.app.CardsService.ByType(s.ctx, model.CardTypeBonus)
	s.NotEmpty(bonus)

	s.app.MockRandom.QueueString("sessA", "GAME01")
	game, err := s.app.GameController.StartGame(s.ctx, "user-1", s.roster(8))
	s.Require().NoError(err)

	counts := make(map[model.Role]int)
	for _, p := range game.Players {
		counts[p.Role]++
	}
	s.Equal(3, counts[model.RolePirate])
	s.Equal(4, counts[model.RoleMarin])
	s.Equal(1, counts[model.RoleSirene])
}

// Test: guest auth sessions work against the shared storage
func (s *IntegrationSuite) TestGuestAuthFlow() {
	session, err := s.app.AuthService.CreateGuestUser(s.ctx, "Alice")
	s.Require().NoError(err)
	s.True(session.User.IsGuest)

	validated, err := s.app.AuthService.ValidateSession(session.Token)
	s.Require().NoError(err)
	s.Equal(session.UserID, validated.UserID)

	stored, err := s.app.Storage.GetUser(s.ctx, session.UserID)
	s.Require().NoError(err)
	s.Equal("Alice", stored.DisplayName)
}
