package repository

import (
	"errors"

	"github.com/pcruz7/deckbuilder/internal/domain"

	"gorm.io/gorm"
)

// rarityOrder sorts catalog listings by descending rarity. Postgres would
// otherwise order the enum strings alphabetically.
const rarityOrder = "CASE rarity " +
	"WHEN 'LEGENDARY' THEN 0 " +
	"WHEN 'EPIC' THEN 1 " +
	"WHEN 'RARE' THEN 2 " +
	"WHEN 'COMMON' THEN 3 END"

// CardRepository implements domain.CardRepository
type CardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a new card repository
func NewCardRepository(db *gorm.DB) domain.CardRepository {
	return &CardRepository{db: db}
}

// GetByID retrieves a card by ID
func (r *CardRepository) GetByID(id int64) (*domain.Card, error) {
	var card domain.Card
	result := r.db.Where("id = ?", id).First(&card)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &card, nil
}

// GetByName retrieves a card by its unique name
func (r *CardRepository) GetByName(name string) (*domain.Card, error) {
	var card domain.Card
	result := r.db.Where("name = ?", name).First(&card)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &card, nil
}

// GetByNames retrieves all cards whose names appear in the list
func (r *CardRepository) GetByNames(names []string) ([]*domain.Card, error) {
	var cards []*domain.Card
	if err := r.db.Where("name IN ?", names).Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// List retrieves cards matching the filter, ordered by descending rarity,
// ascending elixir, ascending name
func (r *CardRepository) List(filter domain.CardFilter) ([]*domain.Card, error) {
	query := r.db.Model(&domain.Card{})

	if filter.Rarity != "" {
		query = query.Where("rarity = ?", filter.Rarity)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Elixir != nil {
		query = query.Where("elixir = ?", *filter.Elixir)
	}

	var cards []*domain.Card
	err := query.
		Order(rarityOrder).
		Order("elixir ASC").
		Order("name ASC").
		Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}

// Count returns the total number of catalog cards
func (r *CardRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Card{}).Count(&count).Error
	return count, err
}

// CountByRarity returns card counts grouped by rarity
func (r *CardRepository) CountByRarity() (map[domain.Rarity]int64, error) {
	var rows []struct {
		Rarity domain.Rarity
		Count  int64
	}
	err := r.db.Model(&domain.Card{}).
		Select("rarity, count(*) as count").
		Group("rarity").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.Rarity]int64, len(rows))
	for _, row := range rows {
		counts[row.Rarity] = row.Count
	}
	return counts, nil
}

// CountByType returns card counts grouped by type
func (r *CardRepository) CountByType() (map[domain.CardType]int64, error) {
	var rows []struct {
		Type  domain.CardType
		Count int64
	}
	err := r.db.Model(&domain.Card{}).
		Select("type, count(*) as count").
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.CardType]int64, len(rows))
	for _, row := range rows {
		counts[row.Type] = row.Count
	}
	return counts, nil
}

// Create inserts a catalog card. Used only by the seeder.
func (r *CardRepository) Create(card *domain.Card) error {
	return r.db.Create(card).Error
}
