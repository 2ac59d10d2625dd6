package deck

import (
	"fmt"

	"github.com/pcruz7/deckbuilder/internal/domain"
	"github.com/pcruz7/deckbuilder/internal/infrastructure/repository"
	"go.uber.org/zap"
)

// UpdateDeck applies a partial update after re-validating ownership. A
// card-list replacement drops and recreates all DeckCard rows and
// recomputes the average elixir; metadata-only patches touch just the
// provided fields. Accumulated likes survive either way.
func (uc *DeckUseCase) UpdateDeck(id int64, input domain.UpdateDeckInput, ownerID int64) (*domain.Deck, error) {
	existing, err := uc.GetDeckByID(id, ownerID)
	if err != nil {
		return nil, err
	}

	fields, err := uc.metadataFields(existing, input, ownerID, id)
	if err != nil {
		return nil, err
	}

	if input.CardNames == nil {
		if len(fields) > 0 {
			if err := uc.deckRepo.UpdateFields(id, fields); err != nil {
				if repository.IsDuplicateKeyError(err) {
					return nil, domain.NewConflictError(fmt.Sprintf("Slot %d already occupied", *input.Slot))
				}
				return nil, domain.NewDatabaseError("update deck", err)
			}
		}
		return uc.reload(id)
	}

	cards, err := uc.resolveCards(input.CardNames)
	if err != nil {
		return nil, err
	}
	fields["avg_elixir"] = averageElixir(cards)

	tx, txDeckRepo, _, err := uc.setupTransaction()
	if err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := txDeckRepo.DeleteCards(id); err != nil {
		tx.Rollback()
		return nil, domain.NewDatabaseError("delete deck cards", err)
	}

	if err := txDeckRepo.CreateCards(deckCards(id, cards)); err != nil {
		tx.Rollback()
		return nil, domain.NewDatabaseError("create deck cards", err)
	}

	if err := txDeckRepo.UpdateFields(id, fields); err != nil {
		tx.Rollback()
		if repository.IsDuplicateKeyError(err) {
			return nil, domain.NewConflictError(fmt.Sprintf("Slot %d already occupied", *input.Slot))
		}
		return nil, domain.NewDatabaseError("update deck", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	uc.logger.Info("Deck cards replaced",
		zap.Int64("deck_id", id),
		zap.Int64("owner_id", ownerID))

	return uc.reload(id)
}

// metadataFields validates the scalar patch and collects the columns to
// update, including the slot-availability re-check when the slot moves
func (uc *DeckUseCase) metadataFields(existing *domain.Deck, input domain.UpdateDeckInput, ownerID, deckID int64) (map[string]interface{}, error) {
	fields := make(map[string]interface{})

	if input.Name != nil {
		if *input.Name == "" || len(*input.Name) > domain.MaxNameLength {
			return nil, domain.NewValidationError(fmt.Sprintf("Name must be 1-%d chars", domain.MaxNameLength))
		}
		fields["name"] = *input.Name
	}

	if input.Description != nil {
		if len(*input.Description) > domain.MaxDescriptionLength {
			return nil, domain.NewValidationError(fmt.Sprintf("Description too long (max %d chars)", domain.MaxDescriptionLength))
		}
		fields["description"] = *input.Description
	}

	if input.IsPublic != nil {
		fields["is_public"] = *input.IsPublic
	}

	if input.Slot != nil {
		if *input.Slot < 0 || *input.Slot >= domain.DeckSlots {
			return nil, domain.NewValidationError(fmt.Sprintf("Slot must be between 0 and %d", domain.DeckSlots-1))
		}
		if *input.Slot != existing.Slot {
			if err := uc.checkSlotFree(ownerID, *input.Slot, deckID); err != nil {
				return nil, err
			}
		}
		fields["slot"] = *input.Slot
	}

	return fields, nil
}
