package seeder

import (
	"log"

	"github.com/pcruz7/deckbuilder/internal/domain"
	"github.com/pcruz7/deckbuilder/internal/infrastructure/hash"
)

// Seeder handles database seeding operations
type Seeder struct {
	userRepo domain.UserRepository
	cardRepo domain.CardRepository
	hasher   hash.PasswordHasher
}

// NewSeeder creates a new seeder instance
func NewSeeder(userRepo domain.UserRepository, cardRepo domain.CardRepository, hasher hash.PasswordHasher) *Seeder {
	return &Seeder{
		userRepo: userRepo,
		cardRepo: cardRepo,
		hasher:   hasher,
	}
}

// SeedCards loads the card catalog, skipping cards already present
func (s *Seeder) SeedCards() error {
	log.Printf("Seeding cards...")

	created := 0
	for _, c := range catalog {
		existing, err := s.cardRepo.GetByName(c.name)
		if err != nil {
			log.Printf("Error checking existing card %q, skipping.", c.name)
			continue
		}
		if existing != nil {
			continue
		}

		card := &domain.Card{
			Name:        c.name,
			Elixir:      c.elixir,
			Rarity:      c.rarity,
			Type:        c.cardType,
			Description: c.description,
			ImageURL:    cardImageURL(c.name),
		}
		if err := s.cardRepo.Create(card); err != nil {
			log.Printf("Error creating card %q.", c.name)
			return err
		}
		created++
	}

	log.Printf("Card seeding completed, created %d cards", created)
	return nil
}

// SeedDevUser creates a development account when it does not exist yet
func (s *Seeder) SeedDevUser() error {
	log.Printf("Seeding development user...")

	existing, err := s.userRepo.GetByEmail("dev@dev.com")
	if err != nil {
		return err
	}
	if existing != nil {
		log.Printf("Development user already exists, skipping.")
		return nil
	}

	hashed, err := s.hasher.Hash("devdev")
	if err != nil {
		return err
	}

	user := &domain.User{
		Name:     "dev",
		Email:    "dev@dev.com",
		Password: hashed,
	}
	if err := s.userRepo.Create(user); err != nil {
		return err
	}

	log.Printf("Development user created")
	return nil
}
