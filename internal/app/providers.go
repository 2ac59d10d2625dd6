package app

import (
	"github.com/pcruz7/deckbuilder/internal/config"
	"github.com/pcruz7/deckbuilder/internal/domain"
	"github.com/pcruz7/deckbuilder/internal/http/handlers"
	"github.com/pcruz7/deckbuilder/internal/http/middleware"
	"github.com/pcruz7/deckbuilder/internal/infrastructure/auth"
	"github.com/pcruz7/deckbuilder/internal/infrastructure/hash"
	"github.com/pcruz7/deckbuilder/internal/infrastructure/logger"
	"github.com/pcruz7/deckbuilder/internal/infrastructure/repository"
	cardusecase "github.com/pcruz7/deckbuilder/internal/usecase/card"
	deckusecase "github.com/pcruz7/deckbuilder/internal/usecase/deck"
	userusecase "github.com/pcruz7/deckbuilder/internal/usecase/user"
	"gorm.io/gorm"
)

// InitLogger creates a new logger instance
func (a *application) InitLogger() *logger.Logger {
	return logger.NewLogger(config.GetEnvironment(), a.config.Log.Level)
}

func (a *application) InitJWTService() auth.JWTService {
	cfg := &config.JWTConfig{
		Secret: a.config.JWT.Secret,
		Expiry: a.config.JWT.Expiry,
	}
	return auth.NewJWTService(cfg)
}

func (a *application) InitPasswordHasher() hash.PasswordHasher {
	return hash.NewPasswordHasher()
}

func (a *application) InitUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewUserRepository(db)
}

func (a *application) InitCardRepository(db *gorm.DB) domain.CardRepository {
	return repository.NewCardRepository(db)
}

func (a *application) InitDeckRepository(db *gorm.DB) domain.DeckRepository {
	return repository.NewDeckRepository(db)
}

func (a *application) InitDeckLikeRepository(db *gorm.DB) domain.DeckLikeRepository {
	return repository.NewDeckLikeRepository(db)
}

func (a *application) InitUserUseCase(
	ur domain.UserRepository,
	jwt auth.JWTService,
	hasher hash.PasswordHasher,
	log *logger.Logger,
) domain.UserUseCase {
	return userusecase.NewUserUseCase(ur, jwt, hasher, log)
}

func (a *application) InitCardUseCase(cr domain.CardRepository, log *logger.Logger) domain.CardUseCase {
	return cardusecase.NewCardUseCase(cr, log)
}

func (a *application) InitDeckUseCase(
	dr domain.DeckRepository,
	lr domain.DeckLikeRepository,
	cr domain.CardRepository,
	db *gorm.DB,
	log *logger.Logger,
) domain.DeckUseCase {
	return deckusecase.NewDeckUseCase(dr, lr, cr, db, log)
}

func (a *application) InitAuthHandler(uc domain.UserUseCase) *handlers.AuthHandler {
	return handlers.NewAuthHandler(uc)
}

func (a *application) InitCardHandler(cc domain.CardUseCase) *handlers.CardHandler {
	return handlers.NewCardHandler(cc)
}

func (a *application) InitDeckHandler(dc domain.DeckUseCase) *handlers.DeckHandler {
	return handlers.NewDeckHandler(dc)
}

func (a *application) InitErrorHandler(log *logger.Logger) *middleware.ErrorHandler {
	return middleware.NewErrorHandler(log)
}
