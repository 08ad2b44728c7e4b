package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/anthonyvouin/icoproject/internal/api/request"
	"github.com/anthonyvouin/icoproject/internal/api/response"
	"github.com/anthonyvouin/icoproject/internal/model"
	"github.com/anthonyvouin/icoproject/internal/services/cards"
	"github.com/anthonyvouin/icoproject/internal/services/settings"
)

// CatalogHandler handles card catalog and settings endpoints
type CatalogHandler struct {
	cardsService    cards.ServiceInterface
	settingsService settings.ServiceInterface
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cardsService cards.ServiceInterface, settingsService settings.ServiceInterface) *CatalogHandler {
	return &CatalogHandler{
		cardsService:    cardsService,
		settingsService: settingsService,
	}
}

// ListCards handles GET /api/v1/cards. An optional type query filters
// by card type (role, bonus, action).
func (h *CatalogHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	if cardType := r.URL.Query().Get("type"); cardType != "" {
		filtered := h.cardsService.ByType(r.Context(), model.CardType(cardType))
		response.JSON(w, http.StatusOK, response.CardsFromModel(filtered))
		return
	}

	catalog := h.cardsService.Catalog(r.Context())
	response.JSON(w, http.StatusOK, response.CardsFromModel(catalog))
}

// GetCard handles GET /api/v1/cards/{name}
func (h *CatalogHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	card, err := h.cardsService.Get(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CardFromModel(*card))
}

// GetSettings handles GET /api/v1/settings
func (h *CatalogHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.SettingsFromModel(h.settingsService.Get(r.Context())))
}

// UpdateSettings handles PUT /api/v1/settings
func (h *CatalogHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	updated := model.Settings{
		RoundsToWin:  req.RoundsToWin,
		TimerSeconds: req.TimerSeconds,
	}
	if err := h.settingsService.Update(r.Context(), updated); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SettingsFromModel(updated))
}
