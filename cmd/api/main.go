// Package main Deck Builder API
//
// Deck Builder is a card-deck-building service: users register, assemble
// decks of 8 cards into 5 slots, and optionally publish decks publicly
// where other users can view and like them.
//
//	Schemes: http, https
//	Host: localhost:8080
//	BasePath: /api
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- bearer
package main

import (
	"context"

	_ "github.com/pcruz7/deckbuilder/docs"
	"github.com/pcruz7/deckbuilder/internal/app"
)

// @title Deck Builder API Service
// @version 1.0
// @description Card-deck-building service with public deck sharing and likes.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	ctx := context.Background()
	application := app.NewApplication(ctx)
	application.Setup()
}
