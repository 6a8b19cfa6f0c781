package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dpereira/taskflow-api/internal/domain"
	"github.com/dpereira/taskflow-api/internal/platform/logger"
	"github.com/dpereira/taskflow-api/internal/store"
)

// AuthService orchestrates registration, credential validation, token
// issuance and token-to-identity resolution.
type AuthService interface {
	// Register creates a new user with a hashed password.
	// Returns store.ErrUsernameExists if the username is already taken
	// (case-sensitive exact match).
	Register(ctx context.Context, username, password string) (*domain.User, error)

	// ValidateCredentials checks a username/password pair. An unknown
	// username and a wrong password both return ErrInvalidCredentials so
	// the two cases are indistinguishable to the caller.
	ValidateCredentials(ctx context.Context, username, password string) (*domain.User, error)

	// Login issues a signed access token for the given user.
	Login(ctx context.Context, user *domain.User) (string, error)

	// ResolveIdentity verifies a token and re-fetches the current user
	// record for its subject, rather than trusting the token claims.
	// Returns ErrInvalidToken when the subject no longer resolves to an
	// existing user, and ErrExpiredToken/ErrInvalidToken for bad tokens.
	ResolveIdentity(ctx context.Context, tokenString string) (*domain.User, error)
}

// authService is the default AuthService implementation.
type authService struct {
	userStore  store.UserStore
	jwtService JWTService
	hasher     PasswordHasher
	verifier   PasswordVerifier
	logger     *slog.Logger
}

// Ensure authService implements AuthService interface
var _ AuthService = (*authService)(nil)

// NewAuthService creates a new AuthService with the given dependencies.
func NewAuthService(
	userStore store.UserStore,
	jwtService JWTService,
	hasher PasswordHasher,
	verifier PasswordVerifier,
	logger *slog.Logger,
) AuthService {
	if logger == nil {
		logger = slog.Default()
	}

	return &authService{
		userStore:  userStore,
		jwtService: jwtService,
		hasher:     hasher,
		verifier:   verifier,
		logger:     logger.With(slog.String("component", "auth_service")),
	}
}

// Register implements AuthService.Register
func (s *authService) Register(
	ctx context.Context,
	username, password string,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(username, password)
	if err != nil {
		return nil, err
	}

	// Check-then-insert; the unique constraint on username backs this up
	// against concurrent registrations.
	if _, err := s.userStore.GetByUsername(ctx, username); err == nil {
		log.Debug("registration rejected, username taken",
			slog.String("username", username))
		return nil, store.ErrUsernameExists
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check username availability: %w", err)
	}

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = "" // plaintext must not outlive hashing

	if err := s.userStore.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Info("user registered",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username))

	return user, nil
}

// ValidateCredentials implements AuthService.ValidateCredentials
func (s *authService) ValidateCredentials(
	ctx context.Context,
	username, password string,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("login failed, unknown username")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		log.Debug("login failed, password mismatch",
			slog.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Login implements AuthService.Login
func (s *authService) Login(ctx context.Context, user *domain.User) (string, error) {
	token, err := s.jwtService.GenerateToken(ctx, user.ID, user.Username)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return token, nil
}

// ResolveIdentity implements AuthService.ResolveIdentity
func (s *authService) ResolveIdentity(
	ctx context.Context,
	tokenString string,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	claims, err := s.jwtService.ValidateToken(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	// Re-fetch the current record; a deleted or unknown subject means the
	// token no longer proves a valid identity.
	user, err := s.userStore.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("token subject no longer exists",
				slog.String("user_id", claims.UserID.String()))
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to resolve token subject: %w", err)
	}

	return user, nil
}
