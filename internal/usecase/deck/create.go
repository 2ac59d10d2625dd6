package deck

import (
	"fmt"

	"github.com/pcruz7/deckbuilder/internal/domain"
	"github.com/pcruz7/deckbuilder/internal/infrastructure/repository"
	"go.uber.org/zap"
)

// CreateDeck validates and persists a new deck with its 8 card
// associations in one transaction
func (uc *DeckUseCase) CreateDeck(input domain.CreateDeckInput) (*domain.Deck, error) {
	if err := validateMetadata(input.Name, input.Description, input.Slot); err != nil {
		return nil, err
	}

	if err := uc.checkSlotFree(input.OwnerID, input.Slot, 0); err != nil {
		return nil, err
	}

	cards, err := uc.resolveCards(input.CardNames)
	if err != nil {
		return nil, err
	}

	deck := &domain.Deck{
		Name:        input.Name,
		Description: input.Description,
		Slot:        input.Slot,
		IsPublic:    input.IsPublic,
		OwnerID:     input.OwnerID,
		AvgElixir:   averageElixir(cards),
		Cards:       deckCards(0, cards),
	}

	tx, txDeckRepo, _, err := uc.setupTransaction()
	if err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := txDeckRepo.Create(deck); err != nil {
		tx.Rollback()
		if repository.IsDuplicateKeyError(err) {
			// lost the race for the slot; the unique index is authoritative
			return nil, domain.NewConflictError(fmt.Sprintf("Slot %d already occupied", input.Slot))
		}
		uc.logger.Error("Failed to create deck",
			zap.Int64("owner_id", input.OwnerID),
			zap.Error(err))
		return nil, domain.NewDatabaseError("create deck", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	uc.logger.Info("Deck created",
		zap.Int64("deck_id", deck.ID),
		zap.Int64("owner_id", input.OwnerID),
		zap.Int("slot", input.Slot))

	return uc.reload(deck.ID)
}

// reload fetches a deck with all associations resolved
func (uc *DeckUseCase) reload(id int64) (*domain.Deck, error) {
	deck, err := uc.deckRepo.GetByID(id)
	if err != nil {
		return nil, domain.NewDatabaseError("get deck by id", err)
	}
	if deck == nil {
		return nil, domain.NewNotFoundError("Deck")
	}
	return deck, nil
}
