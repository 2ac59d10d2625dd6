package builder

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// SortBy selects the collection sort field.
type SortBy string

const (
	SortByName   SortBy = "name"
	SortByElixir SortBy = "elixir"
	SortByRarity SortBy = "rarity"
)

// SortOrder selects the collection sort direction.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

const (
	// SlotCount is the number of deck slots per user.
	SlotCount = 5
	// DeckSize is the number of cards in a complete deck.
	DeckSize = 8
)

var rarityRank = map[string]int{
	"COMMON":    0,
	"RARE":      1,
	"EPIC":      2,
	"LEGENDARY": 3,
}

var (
	// ErrNotLoaded is returned when the session is used before Load.
	ErrNotLoaded = errors.New("builder: session not loaded")
	// ErrNoSelection is returned when an operation needs a selected card.
	ErrNoSelection = errors.New("builder: no card selected")
	// ErrNotReplaceMode is returned when a replace is attempted outside replace mode.
	ErrNotReplaceMode = errors.New("builder: not in replace mode")
	// ErrCardInDeck is returned when selecting a card already placed in the active deck.
	ErrCardInDeck = errors.New("builder: card already in deck")
)

// Session is an in-memory deck building workspace over the remote API.
// A complete slot is persisted automatically; incomplete slots live only
// in memory. Not safe for concurrent use.
type Session struct {
	api DeckAPI

	catalog []Card
	loaded  bool

	slots   [SlotCount][]Card
	deckIDs [SlotCount]int64
	active  int

	selected    *Card
	replaceMode bool

	sortBy SortBy
	order  SortOrder
}

// NewSession creates a session over the given API. Collection sorting
// defaults to rarity descending.
func NewSession(api DeckAPI) *Session {
	return &Session{
		api:    api,
		sortBy: SortByRarity,
		order:  OrderDesc,
	}
}

// Load fetches the card catalog and the user's persisted decks, placing
// each deck into its slot with card positions preserved.
func (s *Session) Load() error {
	cards, err := s.api.GetAllCards()
	if err != nil {
		return fmt.Errorf("builder: load cards: %w", err)
	}
	s.catalog = cards

	byName := make(map[string]Card, len(cards))
	for _, c := range cards {
		byName[c.Name] = c
	}

	decks, err := s.api.GetUserDecks()
	if err != nil {
		return fmt.Errorf("builder: load decks: %w", err)
	}

	s.slots = [SlotCount][]Card{}
	s.deckIDs = [SlotCount]int64{}

	for _, deck := range decks {
		if deck.Slot < 0 || deck.Slot >= SlotCount {
			continue
		}
		placed := append([]DeckCard(nil), deck.Cards...)
		sort.Slice(placed, func(i, j int) bool {
			return placed[i].Position < placed[j].Position
		})

		var slotCards []Card
		for _, dc := range placed {
			if card, ok := byName[dc.Card.Name]; ok {
				slotCards = append(slotCards, card)
			}
		}
		s.slots[deck.Slot] = slotCards
		s.deckIDs[deck.Slot] = deck.ID
	}

	s.loaded = true
	return nil
}

// SetSort changes the collection sort field and direction.
func (s *Session) SetSort(by SortBy, order SortOrder) {
	s.sortBy = by
	s.order = order
}

// Collection returns the catalog sorted by the current sort settings.
func (s *Session) Collection() []Card {
	sorted := append([]Card(nil), s.catalog...)

	sort.SliceStable(sorted, func(i, j int) bool {
		var less bool
		switch s.sortBy {
		case SortByName:
			less = strings.Compare(sorted[i].Name, sorted[j].Name) < 0
		case SortByElixir:
			less = sorted[i].Elixir < sorted[j].Elixir
		default:
			less = rarityRank[sorted[i].Rarity] < rarityRank[sorted[j].Rarity]
		}
		if s.order == OrderDesc {
			return !less && !equalByField(sorted[i], sorted[j], s.sortBy)
		}
		return less
	})

	return sorted
}

func equalByField(a, b Card, by SortBy) bool {
	switch by {
	case SortByName:
		return a.Name == b.Name
	case SortByElixir:
		return a.Elixir == b.Elixir
	default:
		return rarityRank[a.Rarity] == rarityRank[b.Rarity]
	}
}

// ActiveSlot returns the index of the slot being edited.
func (s *Session) ActiveSlot() int {
	return s.active
}

// ActiveDeck returns the cards in the slot being edited.
func (s *Session) ActiveDeck() []Card {
	return append([]Card(nil), s.slots[s.active]...)
}

// DeckID returns the persisted deck id for a slot, 0 when unsaved.
func (s *Session) DeckID(slot int) int64 {
	if slot < 0 || slot >= SlotCount {
		return 0
	}
	return s.deckIDs[slot]
}

// Selected returns the currently selected card, nil when none.
func (s *Session) Selected() *Card {
	return s.selected
}

// ReplaceMode reports whether the session is waiting for a card to replace.
func (s *Session) ReplaceMode() bool {
	return s.replaceMode
}

// SwitchSlot changes the active slot and resets selection state.
func (s *Session) SwitchSlot(slot int) error {
	if slot < 0 || slot >= SlotCount {
		return fmt.Errorf("builder: slot %d out of range", slot)
	}
	s.active = slot
	s.selected = nil
	s.replaceMode = false
	return nil
}

// Select picks a card from the collection. Cards already in the active
// deck cannot be selected.
func (s *Session) Select(card Card) error {
	if !s.loaded {
		return ErrNotLoaded
	}
	if s.inActiveDeck(card) {
		return ErrCardInDeck
	}
	s.selected = &card
	s.replaceMode = false
	return nil
}

// CancelSelection clears the selection and leaves replace mode.
func (s *Session) CancelSelection() {
	s.selected = nil
	s.replaceMode = false
}

// Use places the selected card into the active deck. On a full deck it
// enters replace mode instead. Completing the deck persists it.
func (s *Session) Use() error {
	if !s.loaded {
		return ErrNotLoaded
	}
	if s.selected == nil {
		return ErrNoSelection
	}

	if len(s.slots[s.active]) >= DeckSize {
		s.replaceMode = true
		return nil
	}

	card := *s.selected
	s.slots[s.active] = append(s.slots[s.active], card)
	s.selected = nil

	if len(s.slots[s.active]) == DeckSize {
		return s.persist(s.active)
	}
	return nil
}

// Replace swaps a card in the full active deck for the selected card and
// persists the result.
func (s *Session) Replace(target Card) error {
	if !s.loaded {
		return ErrNotLoaded
	}
	if !s.replaceMode {
		return ErrNotReplaceMode
	}
	if s.selected == nil {
		return ErrNoSelection
	}

	deck := s.slots[s.active]
	replaced := false
	for i, card := range deck {
		if card.ID == target.ID {
			deck[i] = *s.selected
			replaced = true
			break
		}
	}
	if !replaced {
		return fmt.Errorf("builder: card %q not in deck", target.Name)
	}

	s.selected = nil
	s.replaceMode = false

	return s.persist(s.active)
}

// Remove takes a card out of the active deck. The persisted copy, if
// any, is left alone until the deck is completed again.
func (s *Session) Remove(card Card) {
	deck := s.slots[s.active]
	out := deck[:0]
	for _, c := range deck {
		if c.ID != card.ID {
			out = append(out, c)
		}
	}
	s.slots[s.active] = out
	s.selected = nil
}

// Clear empties the active slot and deletes its persisted deck.
func (s *Session) Clear() error {
	s.slots[s.active] = nil

	if id := s.deckIDs[s.active]; id != 0 {
		if err := s.api.DeleteDeck(id); err != nil {
			return fmt.Errorf("builder: delete deck: %w", err)
		}
		s.deckIDs[s.active] = 0
	}
	return nil
}

// Share renames the active deck and sets its visibility, persisting it.
// The deck must be complete.
func (s *Session) Share(name, description string, isPublic bool) (*Deck, error) {
	deck := s.slots[s.active]
	if len(deck) != DeckSize {
		return nil, fmt.Errorf("builder: deck has %d/%d cards", len(deck), DeckSize)
	}
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("builder: deck name required")
	}
	if description == "" {
		description = fmt.Sprintf("Deck slot %d", s.active+1)
	}

	input := DeckInput{
		Name:        name,
		Description: description,
		CardNames:   cardNames(deck),
		Slot:        s.active,
		IsPublic:    isPublic,
	}

	var (
		saved *Deck
		err   error
	)
	if id := s.deckIDs[s.active]; id != 0 {
		saved, err = s.api.UpdateDeck(id, input)
	} else {
		saved, err = s.api.CreateDeck(input)
	}
	if err != nil {
		return nil, err
	}

	s.deckIDs[s.active] = saved.ID
	return saved, nil
}

// AvgElixir returns the active deck's average elixir cost rounded to one
// decimal, 0 for an empty deck.
func (s *Session) AvgElixir() float64 {
	deck := s.slots[s.active]
	if len(deck) == 0 {
		return 0
	}
	total := 0
	for _, card := range deck {
		total += card.Elixir
	}
	avg := float64(total) / float64(len(deck))
	return math.Round(avg*10) / 10
}

// persist saves a complete slot, creating or updating as needed.
func (s *Session) persist(slot int) error {
	deck := s.slots[slot]
	if len(deck) != DeckSize {
		return nil
	}

	input := DeckInput{
		Name:        fmt.Sprintf("Deck %d", slot+1),
		Description: fmt.Sprintf("Deck slot %d", slot+1),
		CardNames:   cardNames(deck),
		Slot:        slot,
		IsPublic:    false,
	}

	if id := s.deckIDs[slot]; id != 0 {
		if _, err := s.api.UpdateDeck(id, input); err != nil {
			return fmt.Errorf("builder: update deck: %w", err)
		}
		return nil
	}

	saved, err := s.api.CreateDeck(input)
	if err != nil {
		return fmt.Errorf("builder: create deck: %w", err)
	}
	s.deckIDs[slot] = saved.ID
	return nil
}

func (s *Session) inActiveDeck(card Card) bool {
	for _, c := range s.slots[s.active] {
		if c.ID == card.ID {
			return true
		}
	}
	return false
}

func cardNames(cards []Card) []string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.Name
	}
	return names
}
