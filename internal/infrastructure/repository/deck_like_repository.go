package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/pcruz7/deckbuilder/internal/domain"

	"gorm.io/gorm"
)

// DeckLikeRepository implements domain.DeckLikeRepository
type DeckLikeRepository struct {
	db *gorm.DB
}

// NewDeckLikeRepository creates a new deck like repository
func NewDeckLikeRepository(db *gorm.DB) domain.DeckLikeRepository {
	return &DeckLikeRepository{db: db}
}

// WithTransaction returns a repository bound to the given transaction
func (r *DeckLikeRepository) WithTransaction(tx *gorm.DB) domain.DeckLikeRepository {
	return &DeckLikeRepository{db: tx}
}

// Exists reports whether the user already liked the deck
func (r *DeckLikeRepository) Exists(deckID, userID int64) (bool, error) {
	var like domain.DeckLike
	result := r.db.Where("deck_id = ? AND user_id = ?", deckID, userID).First(&like)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, result.Error
	}
	return true, nil
}

// Create records a like. The unique (deck_id, user_id) index rejects
// duplicates that race past the Exists pre-check.
func (r *DeckLikeRepository) Create(like *domain.DeckLike) error {
	like.CreatedAt = time.Now()
	return r.db.Create(like).Error
}

// IsDuplicateKeyError reports whether an error came from a unique
// constraint violation. The store's indexes are the authority for
// slot occupancy and like uniqueness; the application pre-checks only
// produce friendlier messages.
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// pgconn.PgError code 23505 surfaces in the message when the gorm
	// translator is not active
	return strings.Contains(err.Error(), "23505") ||
		strings.Contains(err.Error(), "duplicate key")
}
