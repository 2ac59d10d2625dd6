package builder

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI is an in-memory DeckAPI recording persistence calls.
type fakeAPI struct {
	cards  []Card
	decks  map[int64]Deck
	nextID int64

	creates int
	updates int
	deletes int
}

func newFakeAPI() *fakeAPI {
	cards := make([]Card, 0, 10)
	names := []string{"Knight", "Archers", "Goblins", "Bomber", "Minions", "Zap", "Arrows", "Cannon", "Giant", "Witch"}
	rarities := []string{"COMMON", "COMMON", "COMMON", "COMMON", "COMMON", "COMMON", "COMMON", "COMMON", "RARE", "EPIC"}
	for i, name := range names {
		cards = append(cards, Card{
			ID:     int64(i + 1),
			Name:   name,
			Elixir: i%5 + 1,
			Rarity: rarities[i],
			Type:   "TROOP",
		})
	}
	return &fakeAPI{
		cards:  cards,
		decks:  make(map[int64]Deck),
		nextID: 1,
	}
}

func (f *fakeAPI) Register(name, email, password string) (*AuthResult, error) {
	return &AuthResult{Token: "t"}, nil
}

func (f *fakeAPI) Login(email, password string) (*AuthResult, error) {
	return &AuthResult{Token: "t"}, nil
}

func (f *fakeAPI) GetAllCards() ([]Card, error) {
	return f.cards, nil
}

func (f *fakeAPI) GetUserDecks() ([]Deck, error) {
	decks := make([]Deck, 0, len(f.decks))
	for _, d := range f.decks {
		decks = append(decks, d)
	}
	return decks, nil
}

func (f *fakeAPI) GetPublicDecks() ([]Deck, error) {
	return nil, nil
}

func (f *fakeAPI) GetSharedDeck(id int64) (*Deck, error) {
	return nil, fmt.Errorf("not public")
}

func (f *fakeAPI) CreateDeck(input DeckInput) (*Deck, error) {
	f.creates++
	deck := f.deckFromInput(f.nextID, input)
	f.decks[deck.ID] = deck
	f.nextID++
	return &deck, nil
}

func (f *fakeAPI) UpdateDeck(id int64, input DeckInput) (*Deck, error) {
	f.updates++
	deck := f.deckFromInput(id, input)
	f.decks[id] = deck
	return &deck, nil
}

func (f *fakeAPI) DeleteDeck(id int64) error {
	f.deletes++
	delete(f.decks, id)
	return nil
}

func (f *fakeAPI) LikeDeck(id int64) (int, error) {
	return 1, nil
}

func (f *fakeAPI) deckFromInput(id int64, input DeckInput) Deck {
	deck := Deck{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Slot:        input.Slot,
		IsPublic:    input.IsPublic,
	}
	for pos, name := range input.CardNames {
		for _, c := range f.cards {
			if c.Name == name {
				deck.Cards = append(deck.Cards, DeckCard{Position: pos, Card: c})
				break
			}
		}
	}
	return deck
}

func loadedSession(t *testing.T) (*Session, *fakeAPI) {
	t.Helper()
	api := newFakeAPI()
	session := NewSession(api)
	require.NoError(t, session.Load())
	return session, api
}

func fillDeck(t *testing.T, s *Session, count int) {
	t.Helper()
	collection := s.Collection()
	added := 0
	for _, card := range collection {
		if added == count {
			break
		}
		if err := s.Select(card); err != nil {
			continue
		}
		require.NoError(t, s.Use())
		added++
	}
	require.Equal(t, count, added)
}

func TestAutoPersistOnEighthCard(t *testing.T) {
	session, api := loadedSession(t)

	fillDeck(t, session, 7)
	assert.Equal(t, 0, api.creates)

	fillDeck(t, session, 1)
	assert.Equal(t, 8, len(session.ActiveDeck()))
	assert.Equal(t, 1, api.creates)
	assert.NotZero(t, session.DeckID(0))

	saved := api.decks[session.DeckID(0)]
	assert.Equal(t, "Deck 1", saved.Name)
	assert.Equal(t, 0, saved.Slot)
	assert.False(t, saved.IsPublic)
	assert.Len(t, saved.Cards, 8)
}

func TestNinthCardEntersReplaceMode(t *testing.T) {
	session, api := loadedSession(t)

	fillDeck(t, session, 8)

	extra := session.Collection()[8]
	require.NoError(t, session.Select(extra))
	require.NoError(t, session.Use())

	assert.True(t, session.ReplaceMode())
	assert.Equal(t, 8, len(session.ActiveDeck()))
	assert.Equal(t, 1, api.creates)

	target := session.ActiveDeck()[0]
	require.NoError(t, session.Replace(target))

	assert.False(t, session.ReplaceMode())
	assert.Nil(t, session.Selected())
	deck := session.ActiveDeck()
	assert.Equal(t, extra.ID, deck[0].ID)
	assert.Equal(t, 1, api.updates)
}

func TestSelectCardAlreadyInDeck(t *testing.T) {
	session, _ := loadedSession(t)

	fillDeck(t, session, 3)

	inDeck := session.ActiveDeck()[0]
	assert.ErrorIs(t, session.Select(inDeck), ErrCardInDeck)
}

func TestRemoveDoesNotPersist(t *testing.T) {
	session, api := loadedSession(t)

	fillDeck(t, session, 8)
	assert.Equal(t, 1, api.creates)

	session.Remove(session.ActiveDeck()[0])
	assert.Equal(t, 7, len(session.ActiveDeck()))
	assert.Equal(t, 1, api.creates)
	assert.Equal(t, 0, api.updates)

	// refilling to 8 updates the existing deck rather than creating
	fillDeck(t, session, 1)
	assert.Equal(t, 1, api.creates)
	assert.Equal(t, 1, api.updates)
}

func TestClearDeletesPersistedDeck(t *testing.T) {
	session, api := loadedSession(t)

	fillDeck(t, session, 8)
	id := session.DeckID(0)
	require.NotZero(t, id)

	require.NoError(t, session.Clear())
	assert.Empty(t, session.ActiveDeck())
	assert.Zero(t, session.DeckID(0))
	assert.Equal(t, 1, api.deletes)
	_, exists := api.decks[id]
	assert.False(t, exists)
}

func TestClearUnsavedSlotSkipsDelete(t *testing.T) {
	session, api := loadedSession(t)

	fillDeck(t, session, 4)
	require.NoError(t, session.Clear())
	assert.Equal(t, 0, api.deletes)
}

func TestSwitchSlotResetsSelection(t *testing.T) {
	session, _ := loadedSession(t)

	card := session.Collection()[0]
	require.NoError(t, session.Select(card))
	require.NotNil(t, session.Selected())

	require.NoError(t, session.SwitchSlot(2))
	assert.Equal(t, 2, session.ActiveSlot())
	assert.Nil(t, session.Selected())
	assert.False(t, session.ReplaceMode())

	assert.Error(t, session.SwitchSlot(5))
	assert.Error(t, session.SwitchSlot(-1))
}

func TestLoadPlacesDecksBySlot(t *testing.T) {
	api := newFakeAPI()

	names := make([]string, 8)
	for i := 0; i < 8; i++ {
		names[i] = api.cards[i].Name
	}
	deck, err := api.CreateDeck(DeckInput{Name: "Deck 3", Slot: 2, CardNames: names})
	require.NoError(t, err)

	session := NewSession(api)
	require.NoError(t, session.Load())

	assert.Equal(t, deck.ID, session.DeckID(2))
	require.NoError(t, session.SwitchSlot(2))

	placed := session.ActiveDeck()
	require.Len(t, placed, 8)
	for i, name := range names {
		assert.Equal(t, name, placed[i].Name)
	}
}

func TestShare(t *testing.T) {
	session, api := loadedSession(t)

	t.Run("Incomplete_Deck", func(t *testing.T) {
		_, err := session.Share("My Deck", "", true)
		assert.Error(t, err)
	})

	fillDeck(t, session, 8)

	t.Run("Blank_Name", func(t *testing.T) {
		_, err := session.Share("   ", "", true)
		assert.Error(t, err)
	})

	t.Run("Publishes", func(t *testing.T) {
		saved, err := session.Share("Hog Cycle", "Fast cycle deck", true)
		require.NoError(t, err)
		assert.True(t, saved.IsPublic)
		assert.Equal(t, "Hog Cycle", saved.Name)
		assert.Equal(t, saved.ID, session.DeckID(0))
		assert.True(t, api.decks[saved.ID].IsPublic)
	})
}

func TestCollectionSorting(t *testing.T) {
	session, _ := loadedSession(t)

	t.Run("Name_Asc", func(t *testing.T) {
		session.SetSort(SortByName, OrderAsc)
		sorted := session.Collection()
		for i := 1; i < len(sorted); i++ {
			assert.LessOrEqual(t, sorted[i-1].Name, sorted[i].Name)
		}
	})

	t.Run("Elixir_Desc", func(t *testing.T) {
		session.SetSort(SortByElixir, OrderDesc)
		sorted := session.Collection()
		for i := 1; i < len(sorted); i++ {
			assert.GreaterOrEqual(t, sorted[i-1].Elixir, sorted[i].Elixir)
		}
	})

	t.Run("Rarity_Desc_Default", func(t *testing.T) {
		session.SetSort(SortByRarity, OrderDesc)
		sorted := session.Collection()
		assert.Equal(t, "EPIC", sorted[0].Rarity)
		assert.Equal(t, "RARE", sorted[1].Rarity)
	})
}

func TestAvgElixir(t *testing.T) {
	session, _ := loadedSession(t)

	assert.Equal(t, 0.0, session.AvgElixir())

	session.SetSort(SortByName, OrderAsc)
	fillDeck(t, session, 4)

	total := 0
	for _, c := range session.ActiveDeck() {
		total += c.Elixir
	}
	want := float64(total) / 4
	assert.InDelta(t, want, session.AvgElixir(), 0.05)
}

func TestUseWithoutSelection(t *testing.T) {
	session, _ := loadedSession(t)
	assert.ErrorIs(t, session.Use(), ErrNoSelection)
}

func TestReplaceOutsideReplaceMode(t *testing.T) {
	session, _ := loadedSession(t)
	fillDeck(t, session, 8)
	assert.ErrorIs(t, session.Replace(session.ActiveDeck()[0]), ErrNotReplaceMode)
}

func TestSessionNotLoaded(t *testing.T) {
	session := NewSession(newFakeAPI())
	assert.ErrorIs(t, session.Select(Card{ID: 1}), ErrNotLoaded)
	assert.ErrorIs(t, session.Use(), ErrNotLoaded)
}
