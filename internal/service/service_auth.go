package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-service/internal/config"
	"github.com/MKhiriev/go-user-service/internal/crypto"
	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/internal/store"
	"github.com/MKhiriev/go-user-service/internal/utils"
	"github.com/MKhiriev/go-user-service/internal/validators"
	"github.com/MKhiriev/go-user-service/models"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials against the stored bcrypt hashes, records a
// session per successful login and manages the JWT lifecycle.
type authService struct {
	// userRepository is used to look up users by email.
	userRepository store.UserRepository

	// sessionRepository records every successful login.
	sessionRepository store.SessionRepository

	hasher    crypto.PasswordHasher
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg.
func NewAuthService(userRepository store.UserRepository, sessionRepository store.SessionRepository,
	hasher crypto.PasswordHasher, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		hasher:            hasher,
		validator:         validator,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// Login authenticates an active user and issues a token for it.
//
// Returns:
//   - ErrInvalidDataProvided if the credentials are malformed.
//   - ErrWrongCredentials if no active user has the email or the password
//     does not match.
//   - A wrapped storage error if a repository call fails.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx).With().Str("func", "authService.Login").Logger()

	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.Token{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}
	if !user.Status {
		log.Warn().Int64("id", user.ID).Msg("login attempt of a deleted user")
		return models.Token{}, ErrWrongCredentials
	}

	err = a.hasher.Compare(user.Password, credentials.Password)
	if errors.Is(err, crypto.ErrPasswordMismatch) {
		log.Warn().Int64("id", user.ID).Msg("wrong password")
		return models.Token{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("password comparison failed")
		return models.Token{}, fmt.Errorf("password comparison failed: %w", err)
	}

	if _, err = a.sessionRepository.CreateSession(ctx, user.ID); err != nil {
		log.Err(err).Int64("id", user.ID).Msg("session creation failed")
		return models.Token{}, fmt.Errorf("session creation failed: %w", err)
	}

	return a.CreateToken(ctx, user)
}

// CreateToken issues a signed JWT for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
