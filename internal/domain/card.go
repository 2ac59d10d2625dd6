package domain

// Rarity classifies how hard a card is to obtain
type Rarity string

const (
	RarityCommon    Rarity = "COMMON"
	RarityRare      Rarity = "RARE"
	RarityEpic      Rarity = "EPIC"
	RarityLegendary Rarity = "LEGENDARY"
)

// CardType classifies how a card is played
type CardType string

const (
	CardTypeTroop    CardType = "TROOP"
	CardTypeSpell    CardType = "SPELL"
	CardTypeBuilding CardType = "BUILDING"
)

// Card is an immutable catalog entry, seeded once and read-only at runtime
type Card struct {
	ID          int64    `json:"id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	Name        string   `json:"name" gorm:"uniqueIndex;not null;type:varchar(64)"`
	Elixir      int      `json:"elixir" gorm:"not null"`
	Rarity      Rarity   `json:"rarity" gorm:"type:varchar(16);not null"`
	Type        CardType `json:"type" gorm:"type:varchar(16);not null"`
	Description string   `json:"description" gorm:"type:varchar(512)"`
	ImageURL    string   `json:"imageUrl" gorm:"type:varchar(256)"`
}

// TableName specifies the table name for Card
func (c Card) TableName() string {
	return "cards"
}

// CardFilter narrows catalog listings. Zero values mean no filtering.
type CardFilter struct {
	Rarity Rarity
	Type   CardType
	Elixir *int
}

// CardStats holds aggregate catalog counts
type CardStats struct {
	Total    int64              `json:"total"`
	ByRarity map[Rarity]int64   `json:"byRarity"`
	ByType   map[CardType]int64 `json:"byType"`
}

// CardRepository defines the interface for catalog data
type CardRepository interface {
	GetByID(id int64) (*Card, error)
	GetByName(name string) (*Card, error)
	GetByNames(names []string) ([]*Card, error)
	List(filter CardFilter) ([]*Card, error)
	Count() (int64, error)
	CountByRarity() (map[Rarity]int64, error)
	CountByType() (map[CardType]int64, error)
	Create(card *Card) error
}

// CardUseCase defines the interface for catalog business logic
type CardUseCase interface {
	ListCards(filter CardFilter) ([]*Card, error)
	GetCardByID(id int64) (*Card, error)
	GetCardByName(name string) (*Card, error)
	GetStats() (*CardStats, error)
}
