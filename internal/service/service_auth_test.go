package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-model-vault/internal/config"
	"github.com/MKhiriev/go-model-vault/internal/logger"
	"github.com/MKhiriev/go-model-vault/internal/store"
	"github.com/MKhiriev/go-model-vault/internal/validators"
	"github.com/MKhiriev/go-model-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(repo *mockUserRepository) AuthService {
	return NewAuthService(repo, config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "model-vault",
		TokenDuration: time.Hour,
	}, logger.NewLogger("test"))
}

func bcryptHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_Register_Success(t *testing.T) {
	var createdUser models.User
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			createdUser = user
			user.ID = 1
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	registered, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    "john@example.com",
		Password: "secret1",
		Username: "john",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.ID)
	assert.Equal(t, "john@example.com", registered.Email)

	// The stored password must be a bcrypt hash of the plain text, never the
	// plain text itself.
	assert.NotEqual(t, "secret1", createdUser.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(createdUser.Password), []byte("secret1")))
}

func TestAuthService_Register_ValidationFailure(t *testing.T) {
	repoCalled := false
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			repoCalled = true
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    "not-an-email",
		Password: "abc",
		Username: "john",
	})

	var vErr *validators.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{validators.MsgInvalidEmail, validators.MsgPasswordTooShort}, vErr.Messages)
	assert.False(t, repoCalled, "nothing may reach the repository on invalid input")
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    "taken@example.com",
		Password: "secret1",
		Username: "john",
	})
	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	hash := bcryptHash(t, "secret1")
	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{ID: 1, Email: email, Password: hash, Username: "john"}, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "john@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	require.ErrorIs(t, err, ErrWrongCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash := bcryptHash(t, "secret1")
	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{ID: 1, Email: email, Password: hash}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "john@example.com",
		Password: "not-the-password",
	})
	require.ErrorIs(t, err, ErrWrongCredentials)
}

func TestAuthService_Login_RepositoryFailurePropagates(t *testing.T) {
	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, store.ErrExecutingQuery
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "john@example.com",
		Password: "secret1",
	})

	// A database outage is not a credentials problem.
	require.ErrorIs(t, err, store.ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrWrongCredentials)
}

func TestAuthService_Login_ErrorsAreIndistinguishable(t *testing.T) {
	hash := bcryptHash(t, "secret1")

	unknownRepo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	wrongPasswordRepo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{ID: 1, Email: email, Password: hash}, nil
		},
	}

	_, errUnknown := newTestAuthService(unknownRepo).Login(context.Background(), models.LoginRequest{
		Email: "ghost@example.com", Password: "x",
	})
	_, errWrongPassword := newTestAuthService(wrongPasswordRepo).Login(context.Background(), models.LoginRequest{
		Email: "john@example.com", Password: "x",
	})

	// Identical errors, so responses cannot be used to probe registered emails.
	require.Equal(t, errUnknown, errWrongPassword)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	repo := &mockUserRepository{
		findByIDFn: func(ctx context.Context, userID int64) (models.User, error) {
			return models.User{ID: userID, Email: "john@example.com"}, nil
		},
	}
	svc := newTestAuthService(repo)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{ID: 42, Email: "john@example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.Authenticate(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, "john@example.com", parsed.Email)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.ParseToken(context.Background(), "not.a.jwt")
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	other := NewAuthService(&mockUserRepository{}, config.Auth{
		TokenSignKey:  "a-different-key",
		TokenIssuer:   "model-vault",
		TokenDuration: time.Hour,
	}, logger.NewLogger("test"))

	token, err := other.CreateToken(context.Background(), models.User{ID: 1, Email: "a@b.io"})
	require.NoError(t, err)

	svc := newTestAuthService(&mockUserRepository{})
	_, err = svc.ParseToken(context.Background(), token.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_Authenticate_DeletedUser(t *testing.T) {
	repo := &mockUserRepository{
		findByIDFn: func(ctx context.Context, userID int64) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(repo)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{ID: 42, Email: "gone@example.com"})
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, token.SignedString)
	require.ErrorIs(t, err, ErrUnknownUser)
}

func TestAuthService_CreateToken_Expiry(t *testing.T) {
	short := NewAuthService(&mockUserRepository{}, config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "model-vault",
		TokenDuration: -time.Minute, // already expired on issue
	}, logger.NewLogger("test"))

	token, err := short.CreateToken(context.Background(), models.User{ID: 1, Email: "a@b.io"})
	require.NoError(t, err)

	_, err = short.ParseToken(context.Background(), token.SignedString)
	assert.True(t, errors.Is(err, ErrTokenIsExpiredOrInvalid))
}
