package deck

import (
	"math"

	"github.com/pcruz7/deckbuilder/internal/domain"
	"github.com/pcruz7/deckbuilder/internal/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultListLimit = 50

// DeckUseCase implements domain.DeckUseCase
type DeckUseCase struct {
	deckRepo domain.DeckRepository
	likeRepo domain.DeckLikeRepository
	cardRepo domain.CardRepository
	db       *gorm.DB
	logger   *logger.Logger
}

// NewDeckUseCase creates a new deck use case
func NewDeckUseCase(
	deckRepo domain.DeckRepository,
	likeRepo domain.DeckLikeRepository,
	cardRepo domain.CardRepository,
	db *gorm.DB,
	logger *logger.Logger,
) domain.DeckUseCase {
	return &DeckUseCase{
		deckRepo: deckRepo,
		likeRepo: likeRepo,
		cardRepo: cardRepo,
		db:       db,
		logger:   logger,
	}
}

// ListPublicDecks returns public decks ordered by likes then recency
func (uc *DeckUseCase) ListPublicDecks(limit, offset int) ([]*domain.Deck, error) {
	limit, offset = normalizePage(limit, offset)
	decks, err := uc.deckRepo.ListPublic(limit, offset)
	if err != nil {
		uc.logger.Error("Failed to list public decks", zap.Error(err))
		return nil, domain.NewDatabaseError("list public decks", err)
	}
	return decks, nil
}

// ListOwnedDecks returns all decks belonging to an owner
func (uc *DeckUseCase) ListOwnedDecks(ownerID int64, limit, offset int) ([]*domain.Deck, error) {
	limit, offset = normalizePage(limit, offset)
	decks, err := uc.deckRepo.ListByOwner(ownerID, limit, offset)
	if err != nil {
		uc.logger.Error("Failed to list owned decks",
			zap.Int64("owner_id", ownerID),
			zap.Error(err))
		return nil, domain.NewDatabaseError("list owned decks", err)
	}
	return decks, nil
}

// GetDeckByID retrieves a deck. When ownerID is non-zero the deck must
// belong to that owner; a foreign deck surfaces as the same NotFound as a
// missing one so existence of other users' decks never leaks.
func (uc *DeckUseCase) GetDeckByID(id, ownerID int64) (*domain.Deck, error) {
	deck, err := uc.deckRepo.GetByID(id)
	if err != nil {
		uc.logger.Error("Failed to get deck",
			zap.Int64("deck_id", id),
			zap.Error(err))
		return nil, domain.NewDatabaseError("get deck by id", err)
	}
	if deck == nil {
		return nil, domain.NewNotFoundError("Deck")
	}
	if ownerID != 0 && deck.OwnerID != ownerID {
		return nil, domain.NewNotFoundError("Deck")
	}
	return deck, nil
}

// GetSharedDeck retrieves a deck for the public view path. Private and
// missing decks produce identical errors.
func (uc *DeckUseCase) GetSharedDeck(id int64) (*domain.Deck, error) {
	deck, err := uc.deckRepo.GetByID(id)
	if err != nil {
		uc.logger.Error("Failed to get shared deck",
			zap.Int64("deck_id", id),
			zap.Error(err))
		return nil, domain.NewDatabaseError("get deck by id", err)
	}
	if deck == nil || !deck.IsPublic {
		return nil, domain.NewNotFoundError("Deck")
	}
	return deck, nil
}

// DeleteDeck removes a deck after re-validating ownership. DeckCard and
// DeckLike rows cascade in the schema.
func (uc *DeckUseCase) DeleteDeck(id, ownerID int64) error {
	if _, err := uc.GetDeckByID(id, ownerID); err != nil {
		return err
	}

	if err := uc.deckRepo.Delete(id); err != nil {
		uc.logger.Error("Failed to delete deck",
			zap.Int64("deck_id", id),
			zap.Error(err))
		return domain.NewDatabaseError("delete deck", err)
	}

	uc.logger.Info("Deck deleted",
		zap.Int64("deck_id", id),
		zap.Int64("owner_id", ownerID))
	return nil
}

// GetStats returns aggregate deck counts
func (uc *DeckUseCase) GetStats() (*domain.DeckStats, error) {
	totalDecks, err := uc.deckRepo.Count()
	if err != nil {
		return nil, domain.NewDatabaseError("count decks", err)
	}

	publicDecks, err := uc.deckRepo.CountPublic()
	if err != nil {
		return nil, domain.NewDatabaseError("count public decks", err)
	}

	totalCards, err := uc.cardRepo.Count()
	if err != nil {
		return nil, domain.NewDatabaseError("count cards", err)
	}

	avgElixir, err := uc.deckRepo.AverageElixir()
	if err != nil {
		return nil, domain.NewDatabaseError("average deck elixir", err)
	}

	return &domain.DeckStats{
		TotalDecks:    totalDecks,
		PublicDecks:   publicDecks,
		PrivateDecks:  totalDecks - publicDecks,
		TotalCards:    totalCards,
		AvgDeckElixir: roundElixir(avgElixir),
	}, nil
}

// normalizePage applies the default page size and clamps negatives
func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// roundElixir rounds to one decimal, half away from zero
func roundElixir(v float64) float64 {
	return math.Round(v*10) / 10
}
