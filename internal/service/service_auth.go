package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/levelup-fitness/internal/config"
	"github.com/MKhiriev/levelup-fitness/internal/logger"
	"github.com/MKhiriev/levelup-fitness/internal/store"
	"github.com/MKhiriev/levelup-fitness/internal/utils"
	"github.com/MKhiriev/levelup-fitness/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, password changes,
// and the JWT token lifecycle using a UserRepository for persistence and
// Argon2id for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account. The optional contact email from
// the signup form is stored as given; an empty one stays empty.
//
// The plaintext password is hashed with Argon2id before it reaches storage;
// the plaintext itself is never persisted or logged.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if Login is empty.
//   - ErrEmptyPassword if Password is empty.
//   - store.ErrLoginAlreadyExists (wrapped) if the login is taken.
func (a *authService) RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if creds.Login == "" {
		log.Error().Msg("registration with empty login")
		return models.User{}, ErrInvalidDataProvided
	}
	if creds.Password == "" {
		log.Error().Str("login", creds.Login).Msg("registration with empty password")
		return models.User{}, ErrEmptyPassword
	}

	authHash, err := utils.HashPassword(creds.Password)
	if err != nil {
		log.Err(err).Str("login", creds.Login).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{Login: creds.Login, Email: creds.Email, AuthHash: authHash})
	if err != nil {
		log.Err(err).Str("login", creds.Login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Unknown login and wrong password produce the same ErrInvalidCredentials
// value, so the response never reveals whether an account exists.
//
// Accounts whose stored digest is still the legacy unsalted SHA-256 form are
// upgraded to Argon2id in place after a successful verification; an upgrade
// failure is logged but does not fail the login.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if creds.Login == "" || creds.Password == "" {
		log.Error().Msg("login with empty credentials")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, models.User{Login: creds.Login})
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("login", creds.Login).Msg("login attempt for unknown user")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("login", creds.Login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	match, err := utils.VerifyPassword(creds.Password, foundUser.AuthHash)
	if err != nil {
		log.Err(err).Int64("user_id", foundUser.UserID).Msg("stored password hash is malformed")
		return models.User{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !match {
		log.Warn().Int64("user_id", foundUser.UserID).Str("login", foundUser.Login).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	if utils.IsLegacyHash(foundUser.AuthHash) {
		a.upgradeLegacyHash(ctx, foundUser.UserID, creds.Password)
	}

	return foundUser, nil
}

// ChangePassword replaces the authenticated user's password.
//
// The checks run in a fixed order so the settings page shows a stable error:
//  1. empty new password → ErrEmptyPassword
//  2. new/confirm mismatch → ErrPasswordMismatch
//  3. wrong current password → ErrWrongCurrentPassword
//
// The stored hash is left untouched unless every check passes.
func (a *authService) ChangePassword(ctx context.Context, userID int64, change models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	if change.NewPassword == "" {
		return ErrEmptyPassword
	}
	if change.NewPassword != change.ConfirmPassword {
		return ErrPasswordMismatch
	}

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return fmt.Errorf("user search by id failed: %w", err)
	}

	match, err := utils.VerifyPassword(change.CurrentPassword, foundUser.AuthHash)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("stored password hash is malformed")
		return fmt.Errorf("password verification failed: %w", err)
	}
	if !match {
		log.Warn().Int64("user_id", userID).Msg("change password with wrong current password")
		return ErrWrongCurrentPassword
	}

	authHash, err := utils.HashPassword(change.NewPassword)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := a.userRepository.UpdateAuthHash(ctx, userID, authHash); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("auth hash update failed")
		return fmt.Errorf("auth hash update failed: %w", err)
	}

	return nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
//
// Returns the decoded token model on success or ErrTokenIsExpiredOrInvalid on
// any validation failure.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// upgradeLegacyHash re-hashes the verified plaintext with Argon2id and
// stores the result. Best effort: the user is already authenticated, so a
// failed upgrade only means the next login repeats the attempt.
func (a *authService) upgradeLegacyHash(ctx context.Context, userID int64, password string) {
	log := logger.FromContext(ctx)

	authHash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("legacy hash upgrade: hashing failed")
		return
	}

	if err := a.userRepository.UpdateAuthHash(ctx, userID, authHash); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("legacy hash upgrade: update failed")
		return
	}

	log.Info().Int64("user_id", userID).Msg("legacy password hash upgraded")
}
