package app

import (
	"context"

	"github.com/pcruz7/deckbuilder/internal/domain"
	"github.com/pcruz7/deckbuilder/internal/http"
	"github.com/pcruz7/deckbuilder/internal/http/handlers"
	"github.com/pcruz7/deckbuilder/internal/http/middleware"
	"github.com/pcruz7/deckbuilder/internal/infrastructure/database"
	"github.com/pcruz7/deckbuilder/internal/infrastructure/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// InitHTTPServer initializes the HTTP server with all dependencies
func (a *application) InitHTTPServer(
	userUseCase domain.UserUseCase,
	authHandler *handlers.AuthHandler,
	cardHandler *handlers.CardHandler,
	deckHandler *handlers.DeckHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
) *http.Server {
	port := a.config.Server.Port
	if port == "" {
		port = "8080" // default port
	}

	return http.NewServer(
		userUseCase,
		authHandler,
		cardHandler,
		deckHandler,
		errorHandler,
		log,
		a.config.CORS.AllowOrigins,
		port,
	)
}

// RegisterHooks ties the HTTP server and the store handle to the fx
// lifecycle: serve on start, close the pool on shutdown
func (a *application) RegisterHooks(
	lc fx.Lifecycle,
	server *http.Server,
	db *database.Database,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := server.Start(); err != nil {
					log.Fatal("HTTP server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			_ = log.Sync()
			return db.Close()
		},
	})
}
