package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pcruz7/deckbuilder/internal/domain"
	"github.com/pcruz7/deckbuilder/internal/http/handlers"
	"github.com/pcruz7/deckbuilder/internal/http/middleware"
	"github.com/pcruz7/deckbuilder/internal/infrastructure/logger"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Server represents the HTTP server
type Server struct {
	router      *gin.Engine
	userUseCase domain.UserUseCase
	authHandler *handlers.AuthHandler
	cardHandler *handlers.CardHandler
	deckHandler *handlers.DeckHandler
	port        string
	startedAt   time.Time
}

// NewServer creates a new HTTP server
func NewServer(
	userUseCase domain.UserUseCase,
	authHandler *handlers.AuthHandler,
	cardHandler *handlers.CardHandler,
	deckHandler *handlers.DeckHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
	allowOrigins []string,
	port string,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	corsConfig := cors.DefaultConfig()
	if len(allowOrigins) > 0 {
		corsConfig.AllowOrigins = allowOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")

	router.Use(errorHandler.RequestIDMiddleware())
	router.Use(errorHandler.TimeoutMiddleware(30 * time.Second))
	router.Use(errorHandler.RecoveryMiddleware())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(cors.New(corsConfig))

	server := &Server{
		router:      router,
		userUseCase: userUseCase,
		authHandler: authHandler,
		cardHandler: cardHandler,
		deckHandler: deckHandler,
		port:        port,
		startedAt:   time.Now(),
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"uptime":    time.Since(s.startedAt).Seconds(),
		})
	})

	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := s.router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", s.authHandler.Register)
			authRoutes.POST("/login", s.authHandler.Login)
			authRoutes.GET("/me", middleware.Authenticate(s.userUseCase), s.authHandler.Me)
		}

		cardRoutes := api.Group("/cards")
		{
			cardRoutes.GET("/stats", s.cardHandler.Stats)
			cardRoutes.GET("", s.cardHandler.List)
			cardRoutes.GET("/:id", s.cardHandler.Get)
		}

		deckRoutes := api.Group("/decks")
		{
			// public paths
			deckRoutes.GET("/stats", s.deckHandler.Stats)
			deckRoutes.GET("/shared/:id", s.deckHandler.Shared)

			// optional authentication: public-only vs owner-scoped listing
			deckRoutes.GET("", middleware.OptionalAuthenticate(s.userUseCase), s.deckHandler.List)

			protected := deckRoutes.Group("")
			protected.Use(middleware.Authenticate(s.userUseCase))
			{
				protected.POST("", s.deckHandler.Create)
				protected.GET("/:id", s.deckHandler.Get)
				protected.PUT("/:id", s.deckHandler.Update)
				protected.DELETE("/:id", s.deckHandler.Delete)
				protected.POST("/:id/like", s.deckHandler.Like)
			}
		}
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.port)
	return s.router.Run(addr)
}
