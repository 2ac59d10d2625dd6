package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pcruz7/deckbuilder/internal/domain"
	"github.com/pcruz7/deckbuilder/internal/http/middleware"
)

// AuthHandler handles HTTP requests for authentication operations
type AuthHandler struct {
	userUseCase domain.UserUseCase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userUseCase domain.UserUseCase) *AuthHandler {
	return &AuthHandler{userUseCase: userUseCase}
}

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Name     string `json:"name" example:"Ana"`
	Email    string `json:"email" example:"ana@example.com"`
	Password string `json:"password" example:"secret1"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" example:"ana@example.com"`
	Password string `json:"password" example:"secret1"`
}

// Register handles account creation
// @Summary Register a new user
// @Description Create an account and return the user with a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} domain.AuthResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.NewValidationError("Invalid request body"))
		return
	}

	result, err := h.userUseCase.Register(req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, result)
}

// Login handles credential authentication
// @Summary Login
// @Description Authenticate credentials and return the user with a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} domain.AuthResult
// @Failure 400 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.NewValidationError("Invalid request body"))
		return
	}

	result, err := h.userUseCase.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, result)
}

// Me returns the token-resolved current user
// @Summary Current user
// @Description Return the user resolved from the bearer token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.PublicUser
// @Failure 400 {object} ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, domain.NewAuthenticationError("Invalid token"))
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"user": user})
}
