package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pcruz7/deckbuilder/internal/domain"
	"github.com/stretchr/testify/assert"
)

// stubUserUseCase resolves one fixed token to one fixed user.
type stubUserUseCase struct {
	validToken string
	user       *domain.PublicUser
}

func (s *stubUserUseCase) Register(name, email, password string) (*domain.AuthResult, error) {
	panic("not used")
}

func (s *stubUserUseCase) Login(email, password string) (*domain.AuthResult, error) {
	panic("not used")
}

func (s *stubUserUseCase) VerifyToken(token string) (*domain.PublicUser, error) {
	if token == s.validToken {
		return s.user, nil
	}
	return nil, domain.NewAuthenticationError("Invalid token")
}

func newStub() *stubUserUseCase {
	return &stubUserUseCase{
		validToken: "good-token",
		user:       &domain.PublicUser{ID: 123, Name: "test_user", Email: "test@example.com"},
	}
}

func TestAuthenticate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantUser   bool
	}{
		{
			name:       "No header blocked",
			authHeader: "",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Malformed header blocked",
			authHeader: "Token abc",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Invalid token blocked",
			authHeader: "Bearer wrong-token",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Valid token passes",
			authHeader: "Bearer good-token",
			wantStatus: http.StatusOK,
			wantUser:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(Authenticate(newStub()))

			var gotUser *domain.PublicUser
			router.GET("/protected", func(c *gin.Context) {
				gotUser, _ = CurrentUser(c)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantUser {
				assert.NotNil(t, gotUser)
				assert.Equal(t, int64(123), gotUser.ID)
			} else {
				assert.Nil(t, gotUser)
			}
		})
	}
}

func TestOptionalAuthenticate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		authHeader string
		wantUser   bool
	}{
		{
			name:       "No header continues anonymous",
			authHeader: "",
		},
		{
			name:       "Invalid token continues anonymous",
			authHeader: "Bearer wrong-token",
		},
		{
			name:       "Valid token attaches user",
			authHeader: "Bearer good-token",
			wantUser:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(OptionalAuthenticate(newStub()))

			var gotUser *domain.PublicUser
			var found bool
			router.GET("/decks", func(c *gin.Context) {
				gotUser, found = CurrentUser(c)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/decks", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantUser, found)
			if tt.wantUser {
				assert.Equal(t, int64(123), gotUser.ID)
			}
		})
	}
}
