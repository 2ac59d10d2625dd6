package repository

import (
	"errors"
	"time"

	"github.com/pcruz7/deckbuilder/internal/domain"

	"gorm.io/gorm"
)

// DeckRepository implements domain.DeckRepository
type DeckRepository struct {
	db *gorm.DB
}

// NewDeckRepository creates a new deck repository
func NewDeckRepository(db *gorm.DB) domain.DeckRepository {
	return &DeckRepository{db: db}
}

// WithTransaction returns a repository bound to the given transaction
func (r *DeckRepository) WithTransaction(tx *gorm.DB) domain.DeckRepository {
	return &DeckRepository{db: tx}
}

// withAssociations preloads the ordered card list and the owner summary
func (r *DeckRepository) withAssociations() *gorm.DB {
	return r.db.
		Preload("Cards", func(db *gorm.DB) *gorm.DB {
			return db.Order("deck_cards.position ASC")
		}).
		Preload("Cards.Card").
		Preload("Owner")
}

// GetByID retrieves a deck with its cards and owner
func (r *DeckRepository) GetByID(id int64) (*domain.Deck, error) {
	var deck domain.Deck
	result := r.withAssociations().Where("id = ?", id).First(&deck)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &deck, nil
}

// FindBySlot retrieves the deck occupying a slot for an owner, if any.
// excludeID skips the deck itself during slot-change updates; pass 0 to
// match any deck.
func (r *DeckRepository) FindBySlot(ownerID int64, slot int, excludeID int64) (*domain.Deck, error) {
	query := r.db.Where("owner_id = ? AND slot = ?", ownerID, slot)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var deck domain.Deck
	result := query.First(&deck)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &deck, nil
}

// ListPublic retrieves public decks ordered by likes then recency
func (r *DeckRepository) ListPublic(limit, offset int) ([]*domain.Deck, error) {
	var decks []*domain.Deck
	err := r.withAssociations().
		Where("is_public = ?", true).
		Order("likes DESC").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&decks).Error
	if err != nil {
		return nil, err
	}
	return decks, nil
}

// ListByOwner retrieves all decks of an owner ordered by likes then recency
func (r *DeckRepository) ListByOwner(ownerID int64, limit, offset int) ([]*domain.Deck, error) {
	var decks []*domain.Deck
	err := r.withAssociations().
		Where("owner_id = ?", ownerID).
		Order("likes DESC").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&decks).Error
	if err != nil {
		return nil, err
	}
	return decks, nil
}

// Create inserts a deck together with its card associations
func (r *DeckRepository) Create(deck *domain.Deck) error {
	deck.CreatedAt = time.Now()
	deck.UpdatedAt = time.Now()
	return r.db.Create(deck).Error
}

// Update saves all deck fields
func (r *DeckRepository) Update(deck *domain.Deck) error {
	deck.UpdatedAt = time.Now()
	return r.db.Save(deck).Error
}

// UpdateFields patches only the given columns
func (r *DeckRepository) UpdateFields(id int64, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	return r.db.Model(&domain.Deck{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// Delete removes a deck; deck_cards and deck_likes cascade in the schema
func (r *DeckRepository) Delete(id int64) error {
	return r.db.Delete(&domain.Deck{}, id).Error
}

// DeleteCards removes all card associations of a deck
func (r *DeckRepository) DeleteCards(deckID int64) error {
	return r.db.Where("deck_id = ?", deckID).Delete(&domain.DeckCard{}).Error
}

// CreateCards inserts a batch of card associations
func (r *DeckRepository) CreateCards(cards []domain.DeckCard) error {
	return r.db.Create(&cards).Error
}

// IncrementLikes bumps the denormalized counter and returns the new value
func (r *DeckRepository) IncrementLikes(id int64) (int, error) {
	err := r.db.Model(&domain.Deck{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + 1")).Error
	if err != nil {
		return 0, err
	}

	var likes int
	err = r.db.Model(&domain.Deck{}).
		Where("id = ?", id).
		Select("likes").
		Scan(&likes).Error
	return likes, err
}

// Count returns the total number of decks
func (r *DeckRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Deck{}).Count(&count).Error
	return count, err
}

// CountPublic returns the number of public decks
func (r *DeckRepository) CountPublic() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Deck{}).Where("is_public = ?", true).Count(&count).Error
	return count, err
}

// AverageElixir returns the mean avg_elixir across all decks, 0 when there
// are none
func (r *DeckRepository) AverageElixir() (float64, error) {
	var avg *float64
	err := r.db.Model(&domain.Deck{}).
		Select("AVG(avg_elixir)").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}
