package model

const (
	DefaultRoundsToWin  = 10
	DefaultTimerSeconds = 10
)

// Settings are the tunable game parameters
type Settings struct {
	RoundsToWin  int // score either side needs to trigger the endgame
	TimerSeconds int // eyes-open countdown duration
}

// DefaultSettings returns the settings used when none are stored
func DefaultSettings() Settings {
	return Settings{
		RoundsToWin:  DefaultRoundsToWin,
		TimerSeconds: DefaultTimerSeconds,
	}
}
