package deck

import (
	"fmt"

	"github.com/pcruz7/deckbuilder/internal/domain"
	"gorm.io/gorm"
)

// setupTransaction begins a database transaction and binds the deck and
// like repositories to it
func (uc *DeckUseCase) setupTransaction() (*gorm.DB, domain.DeckRepository, domain.DeckLikeRepository, error) {
	tx := uc.db.Begin()
	if tx.Error != nil {
		return nil, nil, nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to start transaction", 500, tx.Error)
	}
	return tx, uc.deckRepo.WithTransaction(tx), uc.likeRepo.WithTransaction(tx), nil
}

// validateMetadata checks name/description length limits and the slot range
func validateMetadata(name, description string, slot int) error {
	if name == "" {
		return domain.NewValidationError("Deck name is required")
	}
	if len(name) > domain.MaxNameLength {
		return domain.NewValidationError(fmt.Sprintf("Name too long (max %d chars)", domain.MaxNameLength))
	}
	if len(description) > domain.MaxDescriptionLength {
		return domain.NewValidationError(fmt.Sprintf("Description too long (max %d chars)", domain.MaxDescriptionLength))
	}
	if slot < 0 || slot >= domain.DeckSlots {
		return domain.NewValidationError(fmt.Sprintf("Slot must be between 0 and %d", domain.DeckSlots-1))
	}
	return nil
}

// checkSlotFree enforces the one-deck-per-slot rule. This is the friendly
// pre-check; the unique (owner_id, slot) index is the real safety net
// against concurrent creates.
func (uc *DeckUseCase) checkSlotFree(ownerID int64, slot int, excludeID int64) error {
	existing, err := uc.deckRepo.FindBySlot(ownerID, slot, excludeID)
	if err != nil {
		return domain.NewDatabaseError("check slot availability", err)
	}
	if existing != nil {
		return domain.NewConflictError(fmt.Sprintf("Slot %d already occupied", slot))
	}
	return nil
}

// resolveCards validates a card list (exactly 8 names, no duplicates, all
// known) and returns the catalog cards in input order
func (uc *DeckUseCase) resolveCards(cardNames []string) ([]*domain.Card, error) {
	if len(cardNames) != domain.CardsPerDeck {
		return nil, domain.NewValidationError(fmt.Sprintf("Need exactly %d cards", domain.CardsPerDeck))
	}

	seen := make(map[string]struct{}, len(cardNames))
	for _, name := range cardNames {
		if _, dup := seen[name]; dup {
			return nil, domain.NewValidationError("No duplicate cards allowed")
		}
		seen[name] = struct{}{}
	}

	cards, err := uc.cardRepo.GetByNames(cardNames)
	if err != nil {
		return nil, domain.NewDatabaseError("get cards by names", err)
	}
	if len(cards) != domain.CardsPerDeck {
		return nil, domain.NewValidationError(fmt.Sprintf("Only found %d/%d cards", len(cards), domain.CardsPerDeck))
	}

	byName := make(map[string]*domain.Card, len(cards))
	for _, card := range cards {
		byName[card.Name] = card
	}

	ordered := make([]*domain.Card, 0, len(cardNames))
	for _, name := range cardNames {
		ordered = append(ordered, byName[name])
	}
	return ordered, nil
}

// averageElixir computes the derived deck statistic, rounded to one decimal
func averageElixir(cards []*domain.Card) float64 {
	total := 0
	for _, card := range cards {
		total += card.Elixir
	}
	return roundElixir(float64(total) / domain.CardsPerDeck)
}

// deckCards builds the association rows, positions matching input order
func deckCards(deckID int64, cards []*domain.Card) []domain.DeckCard {
	rows := make([]domain.DeckCard, 0, len(cards))
	for i, card := range cards {
		rows = append(rows, domain.DeckCard{
			DeckID:   deckID,
			CardID:   card.ID,
			Position: i,
		})
	}
	return rows
}
