package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pcruz7/deckbuilder/internal/domain"
)

const userContextKey = "current_user"

// CurrentUser returns the token-resolved user attached by Authenticate or
// OptionalAuthenticate
func CurrentUser(c *gin.Context) (*domain.PublicUser, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*domain.PublicUser)
	return user, ok
}

// bearerToken extracts the token from the Authorization header
func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(header, "Bearer "), true
}

// Authenticate protects a route. The token is resolved to a fresh user
// projection from the store on every request.
func Authenticate(userUseCase domain.UserUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "No token provided",
			})
			return
		}

		user, err := userUseCase.VerifyToken(token)
		if err != nil {
			status := http.StatusBadRequest
			if appErr, isApp := domain.IsAppError(err); isApp {
				status = appErr.HTTPStatus
			}
			c.AbortWithStatusJSON(status, gin.H{
				"status":  "error",
				"message": "Invalid token",
			})
			return
		}

		c.Set(userContextKey, user)
		c.Set("user_id", user.ID)
		c.Next()
	}
}

// OptionalAuthenticate attaches the user when a valid token is supplied
// and silently continues otherwise. The handler decides what an absent
// identity means.
func OptionalAuthenticate(userUseCase domain.UserUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if user, err := userUseCase.VerifyToken(token); err == nil {
				c.Set(userContextKey, user)
				c.Set("user_id", user.ID)
			}
		}
		c.Next()
	}
}
