package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pcruz7/deckbuilder/internal/domain"
)

// CardHandler handles HTTP requests for the card catalog
type CardHandler struct {
	cardUseCase domain.CardUseCase
}

// NewCardHandler creates a new card handler
func NewCardHandler(cardUseCase domain.CardUseCase) *CardHandler {
	return &CardHandler{cardUseCase: cardUseCase}
}

// List returns catalog cards with optional rarity/type/elixir filters
// @Summary List cards
// @Description List catalog cards with optional filters
// @Tags cards
// @Produce json
// @Param rarity query string false "Rarity filter" Enums(COMMON, RARE, EPIC, LEGENDARY)
// @Param type query string false "Type filter" Enums(TROOP, SPELL, BUILDING)
// @Param elixir query int false "Elixir cost filter"
// @Success 200 {object} map[string]interface{}
// @Router /cards [get]
func (h *CardHandler) List(c *gin.Context) {
	var filter domain.CardFilter

	if rarity := c.Query("rarity"); rarity != "" {
		filter.Rarity = domain.Rarity(rarity)
	}
	if cardType := c.Query("type"); cardType != "" {
		filter.Type = domain.CardType(cardType)
	}
	if elixirStr := c.Query("elixir"); elixirStr != "" {
		elixir, err := strconv.Atoi(elixirStr)
		if err != nil {
			respondError(c, domain.NewValidationError("Invalid elixir filter"))
			return
		}
		filter.Elixir = &elixir
	}

	cards, err := h.cardUseCase.ListCards(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"cards": cards},
		"count":  len(cards),
	})
}

// Get returns a single card by id
// @Summary Get card
// @Description Get a single catalog card by id
// @Tags cards
// @Produce json
// @Param id path int true "Card ID"
// @Success 200 {object} domain.Card
// @Failure 404 {object} ErrorResponse
// @Router /cards/{id} [get]
func (h *CardHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, domain.NewValidationError("Invalid card id"))
		return
	}

	card, err := h.cardUseCase.GetCardByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"card": card})
}

// Stats returns aggregate catalog counts
// @Summary Card stats
// @Description Total card count plus counts grouped by rarity and type
// @Tags cards
// @Produce json
// @Success 200 {object} domain.CardStats
// @Router /cards/stats [get]
func (h *CardHandler) Stats(c *gin.Context) {
	stats, err := h.cardUseCase.GetStats()
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, stats)
}
