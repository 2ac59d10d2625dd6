package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pcruz7/deckbuilder/internal/domain"
	"github.com/pcruz7/deckbuilder/internal/http/middleware"
)

// DeckHandler handles HTTP requests for deck operations
type DeckHandler struct {
	deckUseCase domain.DeckUseCase
}

// NewDeckHandler creates a new deck handler
func NewDeckHandler(deckUseCase domain.DeckUseCase) *DeckHandler {
	return &DeckHandler{deckUseCase: deckUseCase}
}

// CreateDeckRequest represents the deck creation body
type CreateDeckRequest struct {
	Name        string   `json:"name" example:"Hog Cycle"`
	Description string   `json:"description" example:"Fast cycle deck"`
	CardNames   []string `json:"cardNames"`
	Slot        int      `json:"slot" example:"0"`
	IsPublic    bool     `json:"isPublic" example:"true"`
}

// UpdateDeckRequest represents a partial deck update body
type UpdateDeckRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	CardNames   []string `json:"cardNames"`
	Slot        *int     `json:"slot"`
	IsPublic    *bool    `json:"isPublic"`
}

// List returns public decks, or the caller's decks when authenticated
// @Summary List decks
// @Description With onlyPublic=true lists public decks; otherwise lists the authenticated user's decks
// @Tags decks
// @Produce json
// @Param onlyPublic query bool false "List public decks only"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Router /decks [get]
func (h *DeckHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	if c.Query("onlyPublic") == "true" {
		decks, err := h.deckUseCase.ListPublicDecks(limit, offset)
		if err != nil {
			respondError(c, err)
			return
		}
		respondList(c, len(decks), decks)
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, domain.NewValidationError("Login required"))
		return
	}

	decks, err := h.deckUseCase.ListOwnedDecks(user.ID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, len(decks), decks)
}

// Get returns one of the caller's decks
// @Summary Get deck
// @Description Get a deck owned by the authenticated user
// @Tags decks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Deck ID"
// @Success 200 {object} domain.Deck
// @Failure 404 {object} ErrorResponse
// @Router /decks/{id} [get]
func (h *DeckHandler) Get(c *gin.Context) {
	id, user, ok := h.deckAndUser(c)
	if !ok {
		return
	}

	deck, err := h.deckUseCase.GetDeckByID(id, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, deck)
}

// Create validates and persists a new deck
// @Summary Create deck
// @Description Create a deck of exactly 8 distinct cards in a free slot
// @Tags decks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateDeckRequest true "Deck data"
// @Success 201 {object} domain.Deck
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /decks [post]
func (h *DeckHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, domain.NewAuthenticationError("Invalid token"))
		return
	}

	var req CreateDeckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.NewValidationError("Invalid request body"))
		return
	}

	deck, err := h.deckUseCase.CreateDeck(domain.CreateDeckInput{
		Name:        req.Name,
		Description: req.Description,
		Slot:        req.Slot,
		IsPublic:    req.IsPublic,
		CardNames:   req.CardNames,
		OwnerID:     user.ID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, deck)
}

// Update applies a partial update to one of the caller's decks
// @Summary Update deck
// @Description Patch metadata and/or replace the full card list
// @Tags decks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Deck ID"
// @Param request body UpdateDeckRequest true "Fields to update"
// @Success 200 {object} domain.Deck
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /decks/{id} [put]
func (h *DeckHandler) Update(c *gin.Context) {
	id, user, ok := h.deckAndUser(c)
	if !ok {
		return
	}

	var req UpdateDeckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.NewValidationError("Invalid request body"))
		return
	}

	deck, err := h.deckUseCase.UpdateDeck(id, domain.UpdateDeckInput{
		Name:        req.Name,
		Description: req.Description,
		Slot:        req.Slot,
		IsPublic:    req.IsPublic,
		CardNames:   req.CardNames,
	}, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, deck)
}

// Delete removes one of the caller's decks
// @Summary Delete deck
// @Description Delete a deck owned by the authenticated user
// @Tags decks
// @Security BearerAuth
// @Param id path int true "Deck ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse
// @Router /decks/{id} [delete]
func (h *DeckHandler) Delete(c *gin.Context) {
	id, user, ok := h.deckAndUser(c)
	if !ok {
		return
	}

	if err := h.deckUseCase.DeleteDeck(id, user.ID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Like records a like on a public deck
// @Summary Like deck
// @Description Record at most one like per user on a public deck
// @Tags decks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Deck ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /decks/{id}/like [post]
func (h *DeckHandler) Like(c *gin.Context) {
	id, user, ok := h.deckAndUser(c)
	if !ok {
		return
	}

	likes, err := h.deckUseCase.LikeDeck(id, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"likes": likes})
}

// Stats returns aggregate deck counts
// @Summary Deck stats
// @Description Aggregate deck counts and global average elixir
// @Tags decks
// @Produce json
// @Success 200 {object} domain.DeckStats
// @Router /decks/stats [get]
func (h *DeckHandler) Stats(c *gin.Context) {
	stats, err := h.deckUseCase.GetStats()
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, stats)
}

// Shared returns a public deck without any ownership check
// @Summary Shared deck
// @Description Public view of a deck; private and missing decks are indistinguishable
// @Tags decks
// @Produce json
// @Param id path int true "Deck ID"
// @Success 200 {object} domain.Deck
// @Failure 404 {object} ErrorResponse
// @Router /decks/shared/{id} [get]
func (h *DeckHandler) Shared(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, domain.NewValidationError("Invalid deck id"))
		return
	}

	deck, err := h.deckUseCase.GetSharedDeck(id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, deck)
}

// deckAndUser parses the path id and resolves the authenticated user,
// writing the error response on failure
func (h *DeckHandler) deckAndUser(c *gin.Context) (int64, *domain.PublicUser, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, domain.NewValidationError("Invalid deck id"))
		return 0, nil, false
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, domain.NewAuthenticationError("Invalid token"))
		return 0, nil, false
	}

	return id, user, true
}
