package deck

import (
	"github.com/pcruz7/deckbuilder/internal/domain"
	"github.com/pcruz7/deckbuilder/internal/infrastructure/repository"
	"go.uber.org/zap"
)

// LikeDeck records at most one like per (deck, user) pair and bumps the
// denormalized counter in the same transaction. Only public decks can be
// liked; there is no unlike.
func (uc *DeckUseCase) LikeDeck(deckID, userID int64) (int, error) {
	if _, err := uc.GetSharedDeck(deckID); err != nil {
		return 0, err
	}

	liked, err := uc.likeRepo.Exists(deckID, userID)
	if err != nil {
		return 0, domain.NewDatabaseError("check existing like", err)
	}
	if liked {
		return 0, domain.NewValidationError("Already liked")
	}

	tx, txDeckRepo, txLikeRepo, err := uc.setupTransaction()
	if err != nil {
		return 0, err
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := txLikeRepo.Create(&domain.DeckLike{DeckID: deckID, UserID: userID}); err != nil {
		tx.Rollback()
		if repository.IsDuplicateKeyError(err) {
			// concurrent double-tap; the unique index resolves it
			return 0, domain.NewValidationError("Already liked")
		}
		return 0, domain.NewDatabaseError("create like", err)
	}

	likes, err := txDeckRepo.IncrementLikes(deckID)
	if err != nil {
		tx.Rollback()
		return 0, domain.NewDatabaseError("increment likes", err)
	}

	if err := tx.Commit().Error; err != nil {
		return 0, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	uc.logger.Info("Deck liked",
		zap.Int64("deck_id", deckID),
		zap.Int64("user_id", userID),
		zap.Int("likes", likes))

	return likes, nil
}
