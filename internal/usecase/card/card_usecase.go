package card

import (
	"github.com/pcruz7/deckbuilder/internal/domain"
	"github.com/pcruz7/deckbuilder/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// CardUseCase implements domain.CardUseCase. The catalog is static
// reference data, so everything here is read-only.
type CardUseCase struct {
	cardRepo domain.CardRepository
	logger   *logger.Logger
}

// NewCardUseCase creates a new card use case
func NewCardUseCase(cardRepo domain.CardRepository, logger *logger.Logger) domain.CardUseCase {
	return &CardUseCase{
		cardRepo: cardRepo,
		logger:   logger,
	}
}

// ListCards returns catalog cards matching the filter
func (uc *CardUseCase) ListCards(filter domain.CardFilter) ([]*domain.Card, error) {
	cards, err := uc.cardRepo.List(filter)
	if err != nil {
		uc.logger.Error("Failed to list cards", zap.Error(err))
		return nil, domain.NewDatabaseError("list cards", err)
	}
	return cards, nil
}

// GetCardByID retrieves a single card
func (uc *CardUseCase) GetCardByID(id int64) (*domain.Card, error) {
	card, err := uc.cardRepo.GetByID(id)
	if err != nil {
		uc.logger.Error("Failed to get card",
			zap.Int64("card_id", id),
			zap.Error(err))
		return nil, domain.NewDatabaseError("get card by id", err)
	}
	if card == nil {
		return nil, domain.NewNotFoundError("Card")
	}
	return card, nil
}

// GetCardByName retrieves a single card by its unique name
func (uc *CardUseCase) GetCardByName(name string) (*domain.Card, error) {
	card, err := uc.cardRepo.GetByName(name)
	if err != nil {
		uc.logger.Error("Failed to get card",
			zap.String("card_name", name),
			zap.Error(err))
		return nil, domain.NewDatabaseError("get card by name", err)
	}
	if card == nil {
		return nil, domain.NewNotFoundError("Card")
	}
	return card, nil
}

// GetStats returns total plus per-rarity and per-type counts
func (uc *CardUseCase) GetStats() (*domain.CardStats, error) {
	total, err := uc.cardRepo.Count()
	if err != nil {
		return nil, domain.NewDatabaseError("count cards", err)
	}

	byRarity, err := uc.cardRepo.CountByRarity()
	if err != nil {
		return nil, domain.NewDatabaseError("count cards by rarity", err)
	}

	byType, err := uc.cardRepo.CountByType()
	if err != nil {
		return nil, domain.NewDatabaseError("count cards by type", err)
	}

	return &domain.CardStats{
		Total:    total,
		ByRarity: byRarity,
		ByType:   byType,
	}, nil
}
