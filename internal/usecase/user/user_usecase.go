package user

import (
	"github.com/pcruz7/deckbuilder/internal/domain"
	"github.com/pcruz7/deckbuilder/internal/infrastructure/auth"
	"github.com/pcruz7/deckbuilder/internal/infrastructure/hash"
	"github.com/pcruz7/deckbuilder/internal/infrastructure/logger"
	"go.uber.org/zap"
)

const minPasswordLength = 6

// UserUseCase implements domain.UserUseCase
type UserUseCase struct {
	userRepo domain.UserRepository
	jwtSvc   auth.JWTService
	hasher   hash.PasswordHasher
	logger   *logger.Logger
}

// NewUserUseCase creates a new user use case
func NewUserUseCase(
	userRepo domain.UserRepository,
	jwtSvc auth.JWTService,
	hasher hash.PasswordHasher,
	logger *logger.Logger,
) domain.UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		jwtSvc:   jwtSvc,
		hasher:   hasher,
		logger:   logger,
	}
}

// Register creates a new account and returns it with a fresh token
func (uc *UserUseCase) Register(name, email, password string) (*domain.AuthResult, error) {
	if name == "" || email == "" || password == "" {
		return nil, domain.NewValidationError("Need name, email and password")
	}

	if len(password) < minPasswordLength {
		return nil, domain.NewValidationError("Password too short (min 6 chars)")
	}

	existing, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		uc.logger.Error("Failed to check existing email",
			zap.String("email", email),
			zap.Error(err))
		return nil, domain.NewDatabaseError("get user by email", err)
	}
	if existing != nil {
		return nil, domain.NewConflictError("Email already in use")
	}

	hashed, err := uc.hasher.Hash(password)
	if err != nil {
		uc.logger.Error("Failed to hash password", zap.Error(err))
		return nil, domain.NewInternalError("Failed to hash password", err)
	}

	user := &domain.User{
		Name:     name,
		Email:    email,
		Password: hashed,
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user",
			zap.String("email", email),
			zap.Error(err))
		return nil, domain.NewDatabaseError("create user", err)
	}

	token, err := uc.jwtSvc.GenerateToken(user.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token",
			zap.Int64("user_id", user.ID),
			zap.Error(err))
		return nil, domain.NewInternalError("Token generation failed", err)
	}

	uc.logger.Info("User registered",
		zap.Int64("user_id", user.ID))

	return &domain.AuthResult{User: user.Public(), Token: token}, nil
}

// Login authenticates credentials and returns the user with a fresh token.
// The failure message is deliberately generic so callers cannot probe which
// emails are registered.
func (uc *UserUseCase) Login(email, password string) (*domain.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.NewValidationError("Need email and password")
	}

	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		uc.logger.Error("Failed to get user during login",
			zap.String("email", email),
			zap.Error(err))
		return nil, domain.NewDatabaseError("get user by email", err)
	}

	if user == nil || !uc.hasher.Compare(user.Password, password) {
		uc.logger.Warn("Login failed",
			zap.String("email", email))
		return nil, domain.NewAuthenticationError("Wrong email or password")
	}

	token, err := uc.jwtSvc.GenerateToken(user.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token",
			zap.Int64("user_id", user.ID),
			zap.Error(err))
		return nil, domain.NewInternalError("Token generation failed", err)
	}

	uc.logger.Info("User logged in",
		zap.Int64("user_id", user.ID))

	return &domain.AuthResult{User: user.Public(), Token: token}, nil
}

// VerifyToken resolves a bearer token back to the current user projection.
// The user is re-read from the store on every call; there is no session
// cache to invalidate.
func (uc *UserUseCase) VerifyToken(token string) (*domain.PublicUser, error) {
	claims, err := uc.jwtSvc.ValidateToken(token)
	if err != nil {
		return nil, domain.NewAuthenticationError("Invalid token")
	}

	user, err := uc.userRepo.GetByID(claims.UserID)
	if err != nil {
		uc.logger.Error("Failed to get user during token verification",
			zap.Int64("user_id", claims.UserID),
			zap.Error(err))
		return nil, domain.NewDatabaseError("get user by id", err)
	}
	if user == nil {
		return nil, domain.NewAuthenticationError("Invalid token")
	}

	return user.Public(), nil
}
