package request

// CreateGuestRequest is the request body for creating a guest user
type CreateGuestRequest struct {
	DisplayName string `json:"display_name"`
}

// RegisterRequest is the request body for registering a user
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateGameRequest is the request body for starting a game
type CreateGameRequest struct {
	PlayerNames []string `json:"player_names"`
}

// VoteRequest is the request body for captain and final votes
type VoteRequest struct {
	Voter  int `json:"voter"`
	Target int `json:"target"`
}

// BeginRevealRequest is the request body for starting an identity reveal
type BeginRevealRequest struct {
	PlayerID int `json:"player_id"`
}

// ConfirmRevealRequest is the request body for resolving an identity reveal
type ConfirmRevealRequest struct {
	PlayerID int  `json:"player_id"`
	Accept   bool `json:"accept"`
}

// SelectCrewRequest is the request body for toggling a crew member
type SelectCrewRequest struct {
	Actor  int `json:"actor"`
	Target int `json:"target"`
}

// ConfirmCrewRequest is the request body for resolving the crew confirmation
type ConfirmCrewRequest struct {
	Actor  int  `json:"actor"`
	Accept bool `json:"accept"`
}

// PlayCardRequest is the request body for playing an action card
type PlayCardRequest struct {
	PlayerID int    `json:"player_id"`
	Card     string `json:"card"`
}

// UpdateSettingsRequest is the request body for updating game settings
type UpdateSettingsRequest struct {
	RoundsToWin  int `json:"rounds_to_win"`
	TimerSeconds int `json:"timer_seconds"`
}
