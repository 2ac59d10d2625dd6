package deck

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pcruz7/deckbuilder/internal/domain"
	"github.com/pcruz7/deckbuilder/internal/domain/mocks"
	"github.com/pcruz7/deckbuilder/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
)

type testRepos struct {
	deckRepo *mocks.MockDeckRepository
	likeRepo *mocks.MockDeckLikeRepository
	cardRepo *mocks.MockCardRepository
}

func newTestUseCase(ctrl *gomock.Controller) (*DeckUseCase, testRepos) {
	repos := testRepos{
		deckRepo: mocks.NewMockDeckRepository(ctrl),
		likeRepo: mocks.NewMockDeckLikeRepository(ctrl),
		cardRepo: mocks.NewMockCardRepository(ctrl),
	}

	useCase := &DeckUseCase{
		deckRepo: repos.deckRepo,
		likeRepo: repos.likeRepo,
		cardRepo: repos.cardRepo,
		db:       nil,
		logger:   logger.NewLogger("test", "debug"),
	}
	return useCase, repos
}

func testCardNames() []string {
	return []string{
		"Knight", "Archers", "Goblins", "Bomber",
		"Minions", "Zap", "Arrows", "Cannon",
	}
}

func testCards() []*domain.Card {
	names := testCardNames()
	elixirs := []int{3, 3, 2, 2, 3, 2, 3, 3}

	cards := make([]*domain.Card, len(names))
	for i, name := range names {
		cards[i] = &domain.Card{
			ID:     int64(i + 1),
			Name:   name,
			Elixir: elixirs[i],
			Rarity: domain.RarityCommon,
			Type:   domain.CardTypeTroop,
		}
	}
	return cards
}

func createTestDeck(ownerID int64, isPublic bool) *domain.Deck {
	return &domain.Deck{
		ID:        7,
		Name:      "Deck 1",
		Slot:      0,
		OwnerID:   ownerID,
		IsPublic:  isPublic,
		Likes:     3,
		AvgElixir: 2.6,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestGetDeckByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	useCase, repos := newTestUseCase(ctrl)
	deck := createTestDeck(123, false)

	t.Run("Owner_Gets_Deck", func(t *testing.T) {
		repos.deckRepo.EXPECT().GetByID(int64(7)).Return(deck, nil)

		got, err := useCase.GetDeckByID(7, 123)
		assert.NoError(t, err)
		assert.Equal(t, deck, got)
	})

	t.Run("Missing_Deck", func(t *testing.T) {
		repos.deckRepo.EXPECT().GetByID(int64(99)).Return(nil, nil)

		got, err := useCase.GetDeckByID(99, 123)
		assert.Nil(t, got)

		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeNotFound, appErr.Code)
		assert.Equal(t, "Deck not found", appErr.Message)
	})

	t.Run("Foreign_Deck_Indistinguishable_From_Missing", func(t *testing.T) {
		repos.deckRepo.EXPECT().GetByID(int64(7)).Return(deck, nil)

		got, foreignErr := useCase.GetDeckByID(7, 456)
		assert.Nil(t, got)

		repos.deckRepo.EXPECT().GetByID(int64(99)).Return(nil, nil)
		_, missingErr := useCase.GetDeckByID(99, 456)

		foreignApp, _ := domain.IsAppError(foreignErr)
		missingApp, _ := domain.IsAppError(missingErr)
		assert.Equal(t, missingApp.Code, foreignApp.Code)
		assert.Equal(t, missingApp.Message, foreignApp.Message)
		assert.Equal(t, missingApp.HTTPStatus, foreignApp.HTTPStatus)
	})

	t.Run("Zero_OwnerID_Skips_Ownership", func(t *testing.T) {
		repos.deckRepo.EXPECT().GetByID(int64(7)).Return(deck, nil)

		got, err := useCase.GetDeckByID(7, 0)
		assert.NoError(t, err)
		assert.Equal(t, deck, got)
	})
}

func TestGetSharedDeck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	useCase, repos := newTestUseCase(ctrl)

	t.Run("Public_Deck", func(t *testing.T) {
		deck := createTestDeck(123, true)
		repos.deckRepo.EXPECT().GetByID(int64(7)).Return(deck, nil)

		got, err := useCase.GetSharedDeck(7)
		assert.NoError(t, err)
		assert.Equal(t, deck, got)
	})

	t.Run("Private_Deck_Hidden", func(t *testing.T) {
		deck := createTestDeck(123, false)
		repos.deckRepo.EXPECT().GetByID(int64(7)).Return(deck, nil)

		got, err := useCase.GetSharedDeck(7)
		assert.Nil(t, got)

		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeNotFound, appErr.Code)
	})
}

func TestCreateDeckValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	useCase, repos := newTestUseCase(ctrl)

	longName := ""
	for len(longName) <= domain.MaxNameLength {
		longName += "x"
	}

	t.Run("Missing_Name", func(t *testing.T) {
		_, err := useCase.CreateDeck(domain.CreateDeckInput{
			Slot: 0, OwnerID: 123, CardNames: testCardNames(),
		})
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, "Deck name is required", appErr.Message)
	})

	t.Run("Name_Too_Long", func(t *testing.T) {
		_, err := useCase.CreateDeck(domain.CreateDeckInput{
			Name: longName, Slot: 0, OwnerID: 123, CardNames: testCardNames(),
		})
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeValidation, appErr.Code)
	})

	t.Run("Slot_Out_Of_Range", func(t *testing.T) {
		for _, slot := range []int{-1, 5, 42} {
			_, err := useCase.CreateDeck(domain.CreateDeckInput{
				Name: "My Deck", Slot: slot, OwnerID: 123, CardNames: testCardNames(),
			})
			appErr, ok := domain.IsAppError(err)
			assert.True(t, ok)
			assert.Equal(t, "Slot must be between 0 and 4", appErr.Message)
		}
	})

	t.Run("Wrong_Card_Count", func(t *testing.T) {
		repos.deckRepo.EXPECT().FindBySlot(int64(123), 0, int64(0)).Return(nil, nil)

		_, err := useCase.CreateDeck(domain.CreateDeckInput{
			Name: "My Deck", Slot: 0, OwnerID: 123,
			CardNames: []string{"Knight", "Archers"},
		})
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, "Need exactly 8 cards", appErr.Message)
	})

	t.Run("Duplicate_Cards", func(t *testing.T) {
		repos.deckRepo.EXPECT().FindBySlot(int64(123), 0, int64(0)).Return(nil, nil)

		names := testCardNames()
		names[7] = names[0]
		_, err := useCase.CreateDeck(domain.CreateDeckInput{
			Name: "My Deck", Slot: 0, OwnerID: 123, CardNames: names,
		})
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, "No duplicate cards allowed", appErr.Message)
	})

	t.Run("Unknown_Card", func(t *testing.T) {
		repos.deckRepo.EXPECT().FindBySlot(int64(123), 0, int64(0)).Return(nil, nil)

		names := testCardNames()
		names[7] = "Not A Real Card"
		repos.cardRepo.EXPECT().GetByNames(names).Return(testCards()[:7], nil)

		_, err := useCase.CreateDeck(domain.CreateDeckInput{
			Name: "My Deck", Slot: 0, OwnerID: 123, CardNames: names,
		})
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, "Only found 7/8 cards", appErr.Message)
	})

	t.Run("Slot_Occupied", func(t *testing.T) {
		repos.deckRepo.EXPECT().FindBySlot(int64(123), 2, int64(0)).Return(createTestDeck(123, false), nil)

		_, err := useCase.CreateDeck(domain.CreateDeckInput{
			Name: "My Deck", Slot: 2, OwnerID: 123, CardNames: testCardNames(),
		})
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeConflict, appErr.Code)
		assert.Equal(t, "Slot 2 already occupied", appErr.Message)
	})
}

func TestUpdateDeckMetadataOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	useCase, repos := newTestUseCase(ctrl)
	existing := createTestDeck(123, false)

	t.Run("Publish_Deck", func(t *testing.T) {
		isPublic := true
		repos.deckRepo.EXPECT().GetByID(int64(7)).Return(existing, nil)
		repos.deckRepo.EXPECT().UpdateFields(int64(7), map[string]interface{}{
			"is_public": true,
		}).Return(nil)
		repos.deckRepo.EXPECT().GetByID(int64(7)).Return(createTestDeck(123, true), nil)

		updated, err := useCase.UpdateDeck(7, domain.UpdateDeckInput{IsPublic: &isPublic}, 123)
		assert.NoError(t, err)
		assert.True(t, updated.IsPublic)
	})

	t.Run("Rename_And_Describe", func(t *testing.T) {
		name := "Hog Cycle"
		description := "Fast cycle deck"
		repos.deckRepo.EXPECT().GetByID(int64(7)).Return(existing, nil)
		repos.deckRepo.EXPECT().UpdateFields(int64(7), map[string]interface{}{
			"name":        "Hog Cycle",
			"description": "Fast cycle deck",
		}).Return(nil)
		repos.deckRepo.EXPECT().GetByID(int64(7)).Return(existing, nil)

		_, err := useCase.UpdateDeck(7, domain.UpdateDeckInput{
			Name:        &name,
			Description: &description,
		}, 123)
		assert.NoError(t, err)
	})

	t.Run("Empty_Name_Rejected", func(t *testing.T) {
		name := ""
		repos.deckRepo.EXPECT().GetByID(int64(7)).Return(existing, nil)

		_, err := useCase.UpdateDeck(7, domain.UpdateDeckInput{Name: &name}, 123)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeValidation, appErr.Code)
	})

	t.Run("Slot_Move_Checks_Target", func(t *testing.T) {
		slot := 3
		repos.deckRepo.EXPECT().GetByID(int64(7)).Return(existing, nil)
		repos.deckRepo.EXPECT().FindBySlot(int64(123), 3, int64(7)).Return(createTestDeck(123, false), nil)

		_, err := useCase.UpdateDeck(7, domain.UpdateDeckInput{Slot: &slot}, 123)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeConflict, appErr.Code)
	})

	t.Run("Same_Slot_Skips_Check", func(t *testing.T) {
		slot := existing.Slot
		repos.deckRepo.EXPECT().GetByID(int64(7)).Return(existing, nil)
		repos.deckRepo.EXPECT().UpdateFields(int64(7), map[string]interface{}{
			"slot": existing.Slot,
		}).Return(nil)
		repos.deckRepo.EXPECT().GetByID(int64(7)).Return(existing, nil)

		_, err := useCase.UpdateDeck(7, domain.UpdateDeckInput{Slot: &slot}, 123)
		assert.NoError(t, err)
	})

	t.Run("Foreign_Deck", func(t *testing.T) {
		name := "Stolen"
		repos.deckRepo.EXPECT().GetByID(int64(7)).Return(existing, nil)

		_, err := useCase.UpdateDeck(7, domain.UpdateDeckInput{Name: &name}, 456)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeNotFound, appErr.Code)
	})
}

func TestDeleteDeck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	useCase, repos := newTestUseCase(ctrl)
	existing := createTestDeck(123, false)

	t.Run("Success", func(t *testing.T) {
		repos.deckRepo.EXPECT().GetByID(int64(7)).Return(existing, nil)
		repos.deckRepo.EXPECT().Delete(int64(7)).Return(nil)

		assert.NoError(t, useCase.DeleteDeck(7, 123))
	})

	t.Run("Foreign_Deck", func(t *testing.T) {
		repos.deckRepo.EXPECT().GetByID(int64(7)).Return(existing, nil)

		err := useCase.DeleteDeck(7, 456)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeNotFound, appErr.Code)
	})

	t.Run("Repository_Error", func(t *testing.T) {
		repos.deckRepo.EXPECT().GetByID(int64(7)).Return(existing, nil)
		repos.deckRepo.EXPECT().Delete(int64(7)).Return(errors.New("connection refused"))

		assert.Error(t, useCase.DeleteDeck(7, 123))
	})
}

func TestLikeDeckGates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	useCase, repos := newTestUseCase(ctrl)

	t.Run("Private_Deck_Not_Likeable", func(t *testing.T) {
		repos.deckRepo.EXPECT().GetByID(int64(7)).Return(createTestDeck(123, false), nil)

		_, err := useCase.LikeDeck(7, 456)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeNotFound, appErr.Code)
	})

	t.Run("Already_Liked", func(t *testing.T) {
		repos.deckRepo.EXPECT().GetByID(int64(7)).Return(createTestDeck(123, true), nil)
		repos.likeRepo.EXPECT().Exists(int64(7), int64(456)).Return(true, nil)

		_, err := useCase.LikeDeck(7, 456)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeValidation, appErr.Code)
		assert.Equal(t, "Already liked", appErr.Message)
	})

	t.Run("Missing_Deck", func(t *testing.T) {
		repos.deckRepo.EXPECT().GetByID(int64(99)).Return(nil, nil)

		_, err := useCase.LikeDeck(99, 456)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeNotFound, appErr.Code)
	})
}

func TestListDecks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	useCase, repos := newTestUseCase(ctrl)
	decks := []*domain.Deck{createTestDeck(123, true)}

	t.Run("Public_Defaults_Page", func(t *testing.T) {
		repos.deckRepo.EXPECT().ListPublic(defaultListLimit, 0).Return(decks, nil)

		got, err := useCase.ListPublicDecks(0, -1)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("Owned_Passes_Page", func(t *testing.T) {
		repos.deckRepo.EXPECT().ListByOwner(int64(123), 10, 20).Return(decks, nil)

		got, err := useCase.ListOwnedDecks(123, 10, 20)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestGetStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	useCase, repos := newTestUseCase(ctrl)

	repos.deckRepo.EXPECT().Count().Return(int64(10), nil)
	repos.deckRepo.EXPECT().CountPublic().Return(int64(4), nil)
	repos.cardRepo.EXPECT().Count().Return(int64(87), nil)
	repos.deckRepo.EXPECT().AverageElixir().Return(3.5625, nil)

	stats, err := useCase.GetStats()
	assert.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalDecks)
	assert.Equal(t, int64(4), stats.PublicDecks)
	assert.Equal(t, int64(6), stats.PrivateDecks)
	assert.Equal(t, int64(87), stats.TotalCards)
	assert.Equal(t, 3.6, stats.AvgDeckElixir)
}

func TestAverageElixirRounding(t *testing.T) {
	tests := []struct {
		elixirs []int
		want    float64
	}{
		{[]int{3, 3, 2, 2, 3, 2, 3, 3}, 2.6}, // 21/8 = 2.625
		{[]int{4, 4, 4, 4, 4, 4, 4, 4}, 4.0},
		{[]int{1, 1, 1, 1, 1, 1, 1, 2}, 1.1}, // 9/8 = 1.125
		{[]int{9, 9, 9, 9, 9, 9, 9, 9}, 9.0},
		{[]int{2, 2, 2, 2, 3, 3, 3, 3}, 2.5}, // 20/8 = 2.5 exactly
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt.elixirs), func(t *testing.T) {
			cards := make([]*domain.Card, len(tt.elixirs))
			for i, e := range tt.elixirs {
				cards[i] = &domain.Card{ID: int64(i + 1), Elixir: e}
			}
			assert.Equal(t, tt.want, averageElixir(cards))
		})
	}
}

func TestResolveCardsPreservesOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	useCase, repos := newTestUseCase(ctrl)

	names := testCardNames()
	shuffled := testCards()
	// repository returns catalog order, not input order
	shuffled[0], shuffled[7] = shuffled[7], shuffled[0]
	repos.cardRepo.EXPECT().GetByNames(names).Return(shuffled, nil)

	cards, err := useCase.resolveCards(names)
	assert.NoError(t, err)
	for i, name := range names {
		assert.Equal(t, name, cards[i].Name)
	}
}
