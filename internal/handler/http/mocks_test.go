package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-model-vault/internal/config"
	"github.com/MKhiriev/go-model-vault/internal/logger"
	"github.com/MKhiriev/go-model-vault/internal/service"
	"github.com/MKhiriev/go-model-vault/models"
)

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn     func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, request models.LoginRequest) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
	authenticateFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "stub.jwt.token", UserID: user.ID, Email: user.Email}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) Authenticate(ctx context.Context, tokenString string) (models.Token, error) {
	return m.authenticateFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Mock: service.ModelService
// ─────────────────────────────────────────────

type mockModelService struct {
	listFn     func(ctx context.Context, page int, limit int) ([]models.Model3D, models.Pagination, error)
	getFn      func(ctx context.Context, modelID int64) (models.Model3D, error)
	uploadFn   func(ctx context.Context, userID int64, upload models.Model3DUpload) (models.Model3D, error)
	updateFn   func(ctx context.Context, userID int64, modelID int64, update models.Model3DUpdate) (models.Model3D, error)
	deleteFn   func(ctx context.Context, userID int64, modelID int64) error
	rateFn     func(ctx context.Context, userID int64, modelID int64, request models.RateRequest) (models.Rating, error)
	searchFn   func(ctx context.Context, query string, tag string) ([]models.Model3D, error)
	topRatedFn func(ctx context.Context, limit int) ([]models.RatedModel3D, error)
}

func (m *mockModelService) List(ctx context.Context, page int, limit int) ([]models.Model3D, models.Pagination, error) {
	return m.listFn(ctx, page, limit)
}

func (m *mockModelService) Get(ctx context.Context, modelID int64) (models.Model3D, error) {
	return m.getFn(ctx, modelID)
}

func (m *mockModelService) Upload(ctx context.Context, userID int64, upload models.Model3DUpload) (models.Model3D, error) {
	return m.uploadFn(ctx, userID, upload)
}

func (m *mockModelService) Update(ctx context.Context, userID int64, modelID int64, update models.Model3DUpdate) (models.Model3D, error) {
	return m.updateFn(ctx, userID, modelID, update)
}

func (m *mockModelService) Delete(ctx context.Context, userID int64, modelID int64) error {
	return m.deleteFn(ctx, userID, modelID)
}

func (m *mockModelService) Rate(ctx context.Context, userID int64, modelID int64, request models.RateRequest) (models.Rating, error) {
	return m.rateFn(ctx, userID, modelID, request)
}

func (m *mockModelService) Search(ctx context.Context, query string, tag string) ([]models.Model3D, error) {
	return m.searchFn(ctx, query, tag)
}

func (m *mockModelService) TopRated(ctx context.Context, limit int) ([]models.RatedModel3D, error) {
	return m.topRatedFn(ctx, limit)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks. Nil mocks are
// allowed for routes the test never exercises.
func newTestHandler(t *testing.T, auth service.AuthService, modelSvc service.ModelService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:  auth,
		ModelService: modelSvc,
	}
	return NewHandler(svcs, config.Files{
		Backend:       config.FileBackendLocal,
		UploadsDir:    t.TempDir(),
		ThumbnailsDir: t.TempDir(),
	}, logger.Nop())
}

// authenticatedToken is the identity injected by the happy-path auth mock.
var authenticatedToken = models.Token{UserID: 3, Email: "alice@example.com"}

// allowAllAuth returns an AuthService mock that accepts any bearer token as
// user 3.
func allowAllAuth() *mockAuthService {
	return &mockAuthService{
		authenticateFn: func(ctx context.Context, tokenString string) (models.Token, error) {
			return authenticatedToken, nil
		},
	}
}
