package user

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pcruz7/deckbuilder/internal/config"
	"github.com/pcruz7/deckbuilder/internal/domain"
	"github.com/pcruz7/deckbuilder/internal/domain/mocks"
	"github.com/pcruz7/deckbuilder/internal/infrastructure/auth"
	"github.com/pcruz7/deckbuilder/internal/infrastructure/hash"
	"github.com/pcruz7/deckbuilder/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
)

func newTestUseCase(userRepo domain.UserRepository) *UserUseCase {
	jwtSvc := auth.NewJWTService(&config.JWTConfig{
		Secret: "test-secret",
		Expiry: time.Hour,
	})

	return &UserUseCase{
		userRepo: userRepo,
		jwtSvc:   jwtSvc,
		hasher:   hash.NewPasswordHasher(),
		logger:   logger.NewLogger("test", "debug"),
	}
}

func createTestUser(t *testing.T, password string) *domain.User {
	t.Helper()

	hashed, err := hash.NewPasswordHasher().Hash(password)
	assert.NoError(t, err)

	return &domain.User{
		ID:        123,
		Name:      "test_user",
		Email:     "test@example.com",
		Password:  hashed,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestRegisterValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	useCase := newTestUseCase(mockUserRepo)

	tests := []struct {
		name      string
		userName  string
		email     string
		password  string
		wantError string
	}{
		{
			name:      "Missing_Name",
			email:     "a@b.com",
			password:  "secret123",
			wantError: "Need name, email and password",
		},
		{
			name:      "Missing_Email",
			userName:  "someone",
			password:  "secret123",
			wantError: "Need name, email and password",
		},
		{
			name:      "Missing_Password",
			userName:  "someone",
			email:     "a@b.com",
			wantError: "Need name, email and password",
		},
		{
			name:      "Short_Password",
			userName:  "someone",
			email:     "a@b.com",
			password:  "abc",
			wantError: "Password too short (min 6 chars)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := useCase.Register(tt.userName, tt.email, tt.password)
			assert.Nil(t, result)

			appErr, ok := domain.IsAppError(err)
			assert.True(t, ok)
			assert.Equal(t, domain.ErrCodeValidation, appErr.Code)
			assert.Equal(t, tt.wantError, appErr.Message)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	useCase := newTestUseCase(mockUserRepo)

	existing := createTestUser(t, "secret123")
	mockUserRepo.EXPECT().GetByEmail("test@example.com").Return(existing, nil)

	result, err := useCase.Register("someone", "test@example.com", "secret123")
	assert.Nil(t, result)

	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodeConflict, appErr.Code)
	assert.Equal(t, "Email already in use", appErr.Message)
}

func TestRegisterSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	useCase := newTestUseCase(mockUserRepo)

	mockUserRepo.EXPECT().GetByEmail("new@example.com").Return(nil, nil)
	mockUserRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *domain.User) error {
		assert.Equal(t, "newcomer", u.Name)
		assert.Equal(t, "new@example.com", u.Email)
		assert.NotEqual(t, "secret123", u.Password)
		u.ID = 42
		return nil
	})

	result, err := useCase.Register("newcomer", "new@example.com", "secret123")
	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, int64(42), result.User.ID)
	assert.Equal(t, "newcomer", result.User.Name)
	assert.NotEmpty(t, result.Token)
}

func TestLoginSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	useCase := newTestUseCase(mockUserRepo)

	existing := createTestUser(t, "secret123")
	mockUserRepo.EXPECT().GetByEmail("test@example.com").Return(existing, nil)

	result, err := useCase.Login("test@example.com", "secret123")
	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, existing.ID, result.User.ID)
	assert.NotEmpty(t, result.Token)
}

func TestLoginFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	useCase := newTestUseCase(mockUserRepo)

	existing := createTestUser(t, "secret123")

	t.Run("Unknown_Email", func(t *testing.T) {
		mockUserRepo.EXPECT().GetByEmail("nobody@example.com").Return(nil, nil)

		result, err := useCase.Login("nobody@example.com", "secret123")
		assert.Nil(t, result)

		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeAuthentication, appErr.Code)
		assert.Equal(t, "Wrong email or password", appErr.Message)
	})

	t.Run("Wrong_Password", func(t *testing.T) {
		mockUserRepo.EXPECT().GetByEmail("test@example.com").Return(existing, nil)

		result, err := useCase.Login("test@example.com", "not-the-password")
		assert.Nil(t, result)

		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, "Wrong email or password", appErr.Message)
	})

	t.Run("Missing_Credentials", func(t *testing.T) {
		result, err := useCase.Login("", "")
		assert.Nil(t, result)

		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeValidation, appErr.Code)
	})

	t.Run("Repository_Error", func(t *testing.T) {
		mockUserRepo.EXPECT().GetByEmail("test@example.com").Return(nil, errors.New("connection refused"))

		result, err := useCase.Login("test@example.com", "secret123")
		assert.Nil(t, result)
		assert.Error(t, err)
	})
}

func TestVerifyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	useCase := newTestUseCase(mockUserRepo)

	existing := createTestUser(t, "secret123")

	t.Run("Valid_Token", func(t *testing.T) {
		mockUserRepo.EXPECT().GetByEmail("test@example.com").Return(existing, nil)
		result, err := useCase.Login("test@example.com", "secret123")
		assert.NoError(t, err)

		mockUserRepo.EXPECT().GetByID(existing.ID).Return(existing, nil)

		user, err := useCase.VerifyToken(result.Token)
		assert.NoError(t, err)
		assert.Equal(t, existing.ID, user.ID)
		assert.Equal(t, existing.Email, user.Email)
	})

	t.Run("Garbage_Token", func(t *testing.T) {
		user, err := useCase.VerifyToken("not.a.token")
		assert.Nil(t, user)

		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeAuthentication, appErr.Code)
	})

	t.Run("Deleted_User", func(t *testing.T) {
		mockUserRepo.EXPECT().GetByEmail("test@example.com").Return(existing, nil)
		result, err := useCase.Login("test@example.com", "secret123")
		assert.NoError(t, err)

		mockUserRepo.EXPECT().GetByID(existing.ID).Return(nil, nil)

		user, err := useCase.VerifyToken(result.Token)
		assert.Nil(t, user)

		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, "Invalid token", appErr.Message)
	})
}
