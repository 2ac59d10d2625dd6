package card

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pcruz7/deckbuilder/internal/domain"
	"github.com/pcruz7/deckbuilder/internal/domain/mocks"
	"github.com/pcruz7/deckbuilder/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
)

func newTestUseCase(ctrl *gomock.Controller) (*CardUseCase, *mocks.MockCardRepository) {
	mockCardRepo := mocks.NewMockCardRepository(ctrl)
	useCase := &CardUseCase{
		cardRepo: mockCardRepo,
		logger:   logger.NewLogger("test", "debug"),
	}
	return useCase, mockCardRepo
}

func TestListCards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	useCase, mockCardRepo := newTestUseCase(ctrl)

	cards := []*domain.Card{
		{ID: 1, Name: "Knight", Elixir: 3, Rarity: domain.RarityCommon, Type: domain.CardTypeTroop},
		{ID: 2, Name: "Zap", Elixir: 2, Rarity: domain.RarityCommon, Type: domain.CardTypeSpell},
	}

	t.Run("No_Filter", func(t *testing.T) {
		mockCardRepo.EXPECT().List(domain.CardFilter{}).Return(cards, nil)

		got, err := useCase.ListCards(domain.CardFilter{})
		assert.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("Filtered", func(t *testing.T) {
		elixir := 3
		filter := domain.CardFilter{Rarity: domain.RarityCommon, Elixir: &elixir}
		mockCardRepo.EXPECT().List(filter).Return(cards[:1], nil)

		got, err := useCase.ListCards(filter)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, "Knight", got[0].Name)
	})

	t.Run("Repository_Error", func(t *testing.T) {
		mockCardRepo.EXPECT().List(domain.CardFilter{}).Return(nil, errors.New("connection refused"))

		got, err := useCase.ListCards(domain.CardFilter{})
		assert.Nil(t, got)
		assert.Error(t, err)
	})
}

func TestGetCardByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	useCase, mockCardRepo := newTestUseCase(ctrl)

	t.Run("Found", func(t *testing.T) {
		card := &domain.Card{ID: 1, Name: "Knight"}
		mockCardRepo.EXPECT().GetByID(int64(1)).Return(card, nil)

		got, err := useCase.GetCardByID(1)
		assert.NoError(t, err)
		assert.Equal(t, card, got)
	})

	t.Run("Missing", func(t *testing.T) {
		mockCardRepo.EXPECT().GetByID(int64(99)).Return(nil, nil)

		got, err := useCase.GetCardByID(99)
		assert.Nil(t, got)

		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeNotFound, appErr.Code)
		assert.Equal(t, "Card not found", appErr.Message)
	})
}

func TestGetStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	useCase, mockCardRepo := newTestUseCase(ctrl)

	mockCardRepo.EXPECT().Count().Return(int64(87), nil)
	mockCardRepo.EXPECT().CountByRarity().Return(map[domain.Rarity]int64{
		domain.RarityCommon:    22,
		domain.RarityRare:      17,
		domain.RarityEpic:      29,
		domain.RarityLegendary: 16,
	}, nil)
	mockCardRepo.EXPECT().CountByType().Return(map[domain.CardType]int64{
		domain.CardTypeTroop:    55,
		domain.CardTypeSpell:    22,
		domain.CardTypeBuilding: 10,
	}, nil)

	stats, err := useCase.GetStats()
	assert.NoError(t, err)
	assert.Equal(t, int64(87), stats.Total)
	assert.Equal(t, int64(22), stats.ByRarity[domain.RarityCommon])
	assert.Equal(t, int64(10), stats.ByType[domain.CardTypeBuilding])
}
