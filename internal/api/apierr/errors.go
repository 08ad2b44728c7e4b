package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/anthonyvouin/icoproject/internal/model"
	"github.com/anthonyvouin/icoproject/internal/services/auth"
	"github.com/anthonyvouin/icoproject/internal/services/settings"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeGameNotFound       = "GAME_NOT_FOUND"
	CodeCardNotFound       = "CARD_NOT_FOUND"
	CodeSessionNotFound    = "SESSION_NOT_FOUND"
	CodeRosterInvalid      = "ROSTER_INVALID"
	CodeWrongPhase         = "WRONG_PHASE"
	CodeSelfVote           = "SELF_VOTE"
	CodeNotEligible        = "NOT_ELIGIBLE"
	CodeNotCaptain         = "NOT_CAPTAIN"
	CodeNotInCrew          = "NOT_IN_CREW"
	CodeNotYourTurn        = "NOT_YOUR_TURN"
	CodeCrewIncomplete     = "CREW_INCOMPLETE"
	CodePoisonForbidden    = "POISON_FORBIDDEN"
	CodeInvalidCard        = "INVALID_CARD"
	CodeNoPendingReveal    = "NO_PENDING_REVEAL"
	CodeRevealInProgress   = "REVEAL_IN_PROGRESS"
	CodeGameNotOver        = "GAME_NOT_OVER"
	CodeUnknownPlayer      = "UNKNOWN_PLAYER"
	CodeEmailExists        = "EMAIL_EXISTS"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInvalidSettings    = "INVALID_SETTINGS"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrUserNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeUserNotFound, "User not found"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrCardNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeCardNotFound, "Card not found"}}
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Game session not found"}}
	case errors.Is(err, model.ErrTooFewPlayers),
		errors.Is(err, model.ErrTooManyPlayers),
		errors.Is(err, model.ErrMissingName),
		errors.Is(err, model.ErrDuplicateName):
		return &httpError{http.StatusBadRequest, APIError{CodeRosterInvalid, err.Error()}}
	case errors.Is(err, model.ErrUnknownPlayer):
		return &httpError{http.StatusNotFound, APIError{CodeUnknownPlayer, "Player not in this game"}}
	case errors.Is(err, model.ErrWrongPhase):
		return &httpError{http.StatusConflict, APIError{CodeWrongPhase, "Operation not valid in current phase"}}
	case errors.Is(err, model.ErrSelfVote):
		return &httpError{http.StatusBadRequest, APIError{CodeSelfVote, "Players cannot vote for themselves"}}
	case errors.Is(err, model.ErrNotEligible):
		return &httpError{http.StatusForbidden, APIError{CodeNotEligible, "Player is not eligible to vote"}}
	case errors.Is(err, model.ErrNotCaptain):
		return &httpError{http.StatusForbidden, APIError{CodeNotCaptain, "Only the captain can perform this action"}}
	case errors.Is(err, model.ErrNotInCrew):
		return &httpError{http.StatusForbidden, APIError{CodeNotInCrew, "Player is not in the crew"}}
	case errors.Is(err, model.ErrNotPlayerTurn):
		return &httpError{http.StatusForbidden, APIError{CodeNotYourTurn, "Not your turn"}}
	case errors.Is(err, model.ErrCrewIncomplete):
		return &httpError{http.StatusConflict, APIError{CodeCrewIncomplete, "Crew must have exactly three members"}}
	case errors.Is(err, model.ErrPoisonForbidden):
		return &httpError{http.StatusForbidden, APIError{CodePoisonForbidden, "Only pirates may play poison"}}
	case errors.Is(err, model.ErrInvalidCard):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidCard, "Unknown action card"}}
	case errors.Is(err, model.ErrNoPendingReveal):
		return &httpError{http.StatusConflict, APIError{CodeNoPendingReveal, "No reveal in progress for this player"}}
	case errors.Is(err, model.ErrRevealInProgress):
		return &httpError{http.StatusConflict, APIError{CodeRevealInProgress, "Another reveal is in progress"}}
	case errors.Is(err, model.ErrGameNotOver):
		return &httpError{http.StatusConflict, APIError{CodeGameNotOver, "Game is not over"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid email or password"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}
	case errors.Is(err, auth.ErrEmailExists):
		return &httpError{http.StatusConflict, APIError{CodeEmailExists, "Email already registered"}}

	// Map settings errors
	case errors.Is(err, settings.ErrInvalidSettings):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidSettings, "Settings values must be positive"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
