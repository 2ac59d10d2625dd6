package app

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/pcruz7/deckbuilder/internal/config"
	"go.uber.org/fx"
)

// Application provides application level setup
type Application interface {
	Setup()
	GetContext() context.Context
}

// application represents context and configure file
type application struct {
	ctx    context.Context
	config *config.Config
}

// NewApplication creates a new application
func NewApplication(ctx context.Context) Application {
	return &application{ctx: ctx}
}

// GetContext returns application context
func (a *application) GetContext() context.Context {
	return a.ctx
}

// Setup creates a new fx application with all modules
func (a *application) Setup() {
	fmt.Println("[x] Starting Deck Builder Service...")

	path := flag.String("e", "./config", "env file directory")
	flag.Parse()

	err := a.setupViper(*path)
	if err != nil {
		log.Panic(err.Error())
	}

	app := fx.New(
		fx.Provide(
			a.InitLogger,
			a.InitDatabase,
			a.InitJWTService,
			a.InitPasswordHasher,
			a.InitUserRepository,
			a.InitCardRepository,
			a.InitDeckRepository,
			a.InitDeckLikeRepository,
			a.InitUserUseCase,
			a.InitCardUseCase,
			a.InitDeckUseCase,
			a.InitAuthHandler,
			a.InitCardHandler,
			a.InitDeckHandler,
			a.InitErrorHandler,
			a.InitHTTPServer,
		),
		fx.Invoke(a.RegisterHooks),
	)

	app.Run()
}
