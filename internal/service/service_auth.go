package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-model-vault/internal/config"
	"github.com/MKhiriev/go-model-vault/internal/logger"
	"github.com/MKhiriev/go-model-vault/internal/store"
	"github.com/MKhiriev/go-model-vault/internal/utils"
	"github.com/MKhiriev/go-model-vault/internal/validators"
	"github.com/MKhiriev/go-model-vault/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// credentialsValidator checks register and login payloads before any
	// hashing or persistence happens.
	credentialsValidator validators.Validator

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
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:       userRepository,
		credentialsValidator: validators.NewCredentialsValidator(),
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		tokenDuration:        cfg.TokenDuration,
		logger:               logger,
	}
}

// Register creates a new user account.
//
// The payload is validated first (email shape, password length, required
// fields), then the password is hashed with bcrypt and persistence is
// delegated to the UserRepository. The plain-text password never leaves this
// method.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - A *validators.ValidationError listing every rejected field.
//   - store.ErrEmailAlreadyExists when the email is taken.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.credentialsValidator.Validate(ctx, request); err != nil {
		log.Error().Str("email", request.Email).Msg("invalid registration data provided")
		return models.User{}, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:    request.Email,
		Password: string(passwordHash),
		Username: request.Username,
	})
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// The payload is validated, the account is looked up by email, and the
// supplied password is compared against the stored bcrypt hash.
//
// Returns the authenticated user record or:
//   - A *validators.ValidationError for a malformed payload.
//   - ErrWrongCredentials for an unknown email or a wrong password. The two
//     cases are indistinguishable on purpose.
//   - Any other lookup failure wrapped, keeping its store-level identity.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.credentialsValidator.Validate(ctx, request); err != nil {
		log.Error().Str("email", request.Email).Msg("invalid login data provided")
		return models.User{}, err
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user search by email failed")
		// Only a missing account counts as bad credentials; an infrastructure
		// failure must not masquerade as a rejected login.
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrWrongCredentials
		}
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(request.Password)); err != nil {
		log.Error().
			Int64("id", foundUser.ID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim and the user's email as a custom claim, and
// expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, user.Email, a.tokenDuration, a.tokenSignKey)
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
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// Authenticate parses the token and confirms the account it names still
// exists. A token that outlived its account yields ErrUnknownUser, so a
// deleted user cannot keep acting through a previously issued token.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.Token{}, err
	}

	if _, err = a.userRepository.FindUserByID(ctx, token.UserID); err != nil {
		log.Error().Int64("user_id", token.UserID).Msg("token names an unknown user")
		return models.Token{}, ErrUnknownUser
	}

	return token, nil
}
