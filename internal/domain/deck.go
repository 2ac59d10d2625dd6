package domain

import (
	"time"

	"gorm.io/gorm"
)

// Deck layout constants
const (
	CardsPerDeck         = 8
	DeckSlots            = 5
	MaxNameLength        = 100
	MaxDescriptionLength = 500
)

// Deck is a named set of exactly 8 cards occupying one of a user's 5 slots
type Deck struct {
	ID          int64     `json:"id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	Name        string    `json:"name" gorm:"not null;type:varchar(100)"`
	Description string    `json:"description" gorm:"type:varchar(500)"`
	AvgElixir   float64   `json:"avgElixir" gorm:"type:numeric(4,1);not null;default:0"`
	IsPublic    bool      `json:"isPublic" gorm:"not null;default:false"`
	Likes       int       `json:"likes" gorm:"not null;default:0"`
	Slot        int       `json:"slot" gorm:"not null;uniqueIndex:idx_decks_owner_slot"`
	OwnerID     int64     `json:"ownerId" gorm:"not null;type:bigint;uniqueIndex:idx_decks_owner_slot"`
	CreatedAt   time.Time `json:"createdAt" gorm:"not null"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"not null"`

	Cards []DeckCard `json:"cards" gorm:"foreignKey:DeckID;constraint:OnDelete:CASCADE"`
	Owner User       `json:"owner" gorm:"foreignKey:OwnerID"`
}

// TableName specifies the table name for Deck
func (d Deck) TableName() string {
	return "decks"
}

// DeckCard associates a catalog card with a deck at a display position 0..7.
// Rows are dropped and recreated wholesale on any card-list update.
type DeckCard struct {
	ID       int64 `json:"-" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	DeckID   int64 `json:"-" gorm:"not null;type:bigint;uniqueIndex:idx_deck_cards_deck_position"`
	CardID   int64 `json:"-" gorm:"not null;type:bigint"`
	Position int   `json:"position" gorm:"not null;uniqueIndex:idx_deck_cards_deck_position"`

	Card Card `json:"card" gorm:"foreignKey:CardID"`
}

// TableName specifies the table name for DeckCard
func (dc DeckCard) TableName() string {
	return "deck_cards"
}

// DeckLike records that a user liked a deck. At most one row per (deck, user).
type DeckLike struct {
	ID        int64     `json:"-" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	DeckID    int64     `json:"deckId" gorm:"not null;type:bigint;uniqueIndex:idx_deck_likes_deck_user"`
	UserID    int64     `json:"userId" gorm:"not null;type:bigint;uniqueIndex:idx_deck_likes_deck_user"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null"`
}

// TableName specifies the table name for DeckLike
func (dl DeckLike) TableName() string {
	return "deck_likes"
}

// DeckStats holds aggregate deck counts
type DeckStats struct {
	TotalDecks    int64   `json:"totalDecks"`
	PublicDecks   int64   `json:"publicDecks"`
	PrivateDecks  int64   `json:"privateDecks"`
	TotalCards    int64   `json:"totalCards"`
	AvgDeckElixir float64 `json:"avgDeckElixir"`
}

// CreateDeckInput carries everything needed to create a deck
type CreateDeckInput struct {
	Name        string
	Description string
	Slot        int
	IsPublic    bool
	CardNames   []string
	OwnerID     int64
}

// UpdateDeckInput carries a partial deck update. Nil fields are left
// untouched; a non-nil CardNames replaces the whole card list.
type UpdateDeckInput struct {
	Name        *string
	Description *string
	Slot        *int
	IsPublic    *bool
	CardNames   []string
}

// DeckRepository defines the interface for deck data
type DeckRepository interface {
	GetByID(id int64) (*Deck, error)
	FindBySlot(ownerID int64, slot int, excludeID int64) (*Deck, error)
	ListPublic(limit, offset int) ([]*Deck, error)
	ListByOwner(ownerID int64, limit, offset int) ([]*Deck, error)
	Create(deck *Deck) error
	Update(deck *Deck) error
	UpdateFields(id int64, fields map[string]interface{}) error
	Delete(id int64) error
	DeleteCards(deckID int64) error
	CreateCards(cards []DeckCard) error
	IncrementLikes(id int64) (int, error)
	Count() (int64, error)
	CountPublic() (int64, error)
	AverageElixir() (float64, error)
	WithTransaction(tx *gorm.DB) DeckRepository
}

// DeckLikeRepository defines the interface for like data
type DeckLikeRepository interface {
	Exists(deckID, userID int64) (bool, error)
	Create(like *DeckLike) error
	WithTransaction(tx *gorm.DB) DeckLikeRepository
}

// DeckUseCase defines the interface for deck business logic
type DeckUseCase interface {
	ListPublicDecks(limit, offset int) ([]*Deck, error)
	ListOwnedDecks(ownerID int64, limit, offset int) ([]*Deck, error)
	GetDeckByID(id, ownerID int64) (*Deck, error)
	CreateDeck(input CreateDeckInput) (*Deck, error)
	UpdateDeck(id int64, input UpdateDeckInput, ownerID int64) (*Deck, error)
	DeleteDeck(id, ownerID int64) error
	GetSharedDeck(id int64) (*Deck, error)
	LikeDeck(deckID, userID int64) (int, error)
	GetStats() (*DeckStats, error)
}
