package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/anthonyvouin/icoproject/internal/api/middleware"
	"github.com/anthonyvouin/icoproject/internal/api/request"
	"github.com/anthonyvouin/icoproject/internal/api/response"
	"github.com/anthonyvouin/icoproject/internal/model"
	"github.com/anthonyvouin/icoproject/internal/services/game"
	"github.com/anthonyvouin/icoproject/internal/sse"
)

// GameHandler handles game endpoints
type GameHandler struct {
	controller game.ControllerInterface
	countdown  *game.Runner
	hubManager *sse.HubManager
}

// NewGameHandler creates a new game handler
func NewGameHandler(controller game.ControllerInterface, countdown *game.Runner, hubManager *sse.HubManager) *GameHandler {
	return &GameHandler{
		controller: controller,
		countdown:  countdown,
		hubManager: hubManager,
	}
}

func gameID(r *http.Request) model.GameID {
	return model.GameID(mux.Vars(r)["game_id"])
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if len(req.PlayerNames) == 0 {
		WriteError(w, NewInvalidRequestError("player_names is required"))
		return
	}

	user := middleware.MustGetUser(r.Context())
	created, err := h.controller.StartGame(r.Context(), user.ID, req.PlayerNames)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameStateFromModel(created))
}

// Get handles GET /api/v1/games/{game_id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	g, err := h.controller.GetGame(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameStateFromModel(g))
}

// CastCaptainVote handles POST /api/v1/games/{game_id}/captain-vote
func (h *GameHandler) CastCaptainVote(w http.ResponseWriter, r *http.Request) {
	var req request.VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	id := gameID(r)
	if err := h.controller.CastCaptainVote(r.Context(), id, req.Voter, req.Target); err != nil {
		WriteError(w, err)
		return
	}

	h.respondWithGame(w, r, id)
}

// BeginReveal handles POST /api/v1/games/{game_id}/reveal
func (h *GameHandler) BeginReveal(w http.ResponseWriter, r *http.Request) {
	var req request.BeginRevealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.controller.BeginReveal(r.Context(), gameID(r), req.PlayerID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// ConfirmReveal handles POST /api/v1/games/{game_id}/reveal/confirm
func (h *GameHandler) ConfirmReveal(w http.ResponseWriter, r *http.Request) {
	var req request.ConfirmRevealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.controller.ConfirmReveal(r.Context(), gameID(r), req.PlayerID, req.Accept)
	if err != nil {
		WriteError(w, err)
		return
	}

	if player == nil {
		response.NoContent(w)
		return
	}

	response.JSON(w, http.StatusOK, response.RevealResponseFromModel(player))
}

// AdvancePhase handles POST /api/v1/games/{game_id}/advance.
// Reaching eyes-open arms the countdown; leaving it cancels.
func (h *GameHandler) AdvancePhase(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	g, err := h.controller.AdvancePhase(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	switch g.Phase {
	case model.PhaseEyesOpen:
		h.countdown.Start(id)
	case model.PhaseCrewSelection:
		h.countdown.Stop(id)
	}

	response.JSON(w, http.StatusOK, response.GameStateFromModel(g))
}

// SelectCrewMember handles POST /api/v1/games/{game_id}/crew
func (h *GameHandler) SelectCrewMember(w http.ResponseWriter, r *http.Request) {
	var req request.SelectCrewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	id := gameID(r)
	if err := h.controller.SelectCrewMember(r.Context(), id, req.Actor, req.Target); err != nil {
		WriteError(w, err)
		return
	}

	h.respondWithGame(w, r, id)
}

// ConfirmCrew handles POST /api/v1/games/{game_id}/crew/confirm
func (h *GameHandler) ConfirmCrew(w http.ResponseWriter, r *http.Request) {
	var req request.ConfirmCrewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	id := gameID(r)
	if err := h.controller.ConfirmCrew(r.Context(), id, req.Actor, req.Accept); err != nil {
		WriteError(w, err)
		return
	}

	h.respondWithGame(w, r, id)
}

// PlayCard handles POST /api/v1/games/{game_id}/card
func (h *GameHandler) PlayCard(w http.ResponseWriter, r *http.Request) {
	var req request.PlayCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	id := gameID(r)
	if err := h.controller.PlayCard(r.Context(), id, req.PlayerID, model.ActionCard(req.Card)); err != nil {
		WriteError(w, err)
		return
	}

	h.respondWithGame(w, r, id)
}

// CastFinalVote handles POST /api/v1/games/{game_id}/final-vote
func (h *GameHandler) CastFinalVote(w http.ResponseWriter, r *http.Request) {
	var req request.VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	id := gameID(r)
	if err := h.controller.CastFinalVote(r.Context(), id, req.Voter, req.Target); err != nil {
		WriteError(w, err)
		return
	}

	h.respondWithGame(w, r, id)
}

// Restart handles POST /api/v1/games/{game_id}/restart
func (h *GameHandler) Restart(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	g, err := h.controller.RestartSameRoster(r.Context(), gameID(r), user.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameStateFromModel(g))
}

// Delete handles DELETE /api/v1/games/{game_id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	if err := h.controller.ResetGame(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	h.countdown.Stop(id)
	h.hubManager.RemoveHub(id)
	response.NoContent(w)
}

// Events handles GET /api/v1/games/{game_id}/events, streaming game
// events over SSE until the client disconnects
func (h *GameHandler) Events(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	if _, err := h.controller.GetGame(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	playerID := -1
	if raw := r.URL.Query().Get("player_id"); raw != "" {
		if pid, err := strconv.Atoi(raw); err == nil {
			playerID = pid
		}
	}

	hub := h.hubManager.GetOrCreateHub(id)
	sse.ServeSSE(w, r, hub, playerID)
}

// respondWithGame writes the current public game state
func (h *GameHandler) respondWithGame(w http.ResponseWriter, r *http.Request, id model.GameID) {
	g, err := h.controller.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameStateFromModel(g))
}
