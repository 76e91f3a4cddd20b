package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-model-vault/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn      func(ctx context.Context, user models.User) (models.User, error)
	findByEmailFn func(ctx context.Context, email string) (models.User, error)
	findByIDFn    func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, userID)
	}
	return models.User{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.ModelRepository
// ─────────────────────────────────────────────

type mockModelRepository struct {
	getModelsFn   func(ctx context.Context, limit int, offset int) ([]models.Model3D, error)
	countFn       func(ctx context.Context) (int64, error)
	getByIDFn     func(ctx context.Context, modelID int64) (models.Model3D, error)
	createFn      func(ctx context.Context, model models.Model3D) (models.Model3D, error)
	updateFn      func(ctx context.Context, modelID int64, update models.Model3DUpdate) (models.Model3D, error)
	deleteFn      func(ctx context.Context, modelID int64) error
	searchFn      func(ctx context.Context, query string, tag string) ([]models.Model3D, error)
	getTopRatedFn func(ctx context.Context, limit int) ([]models.RatedModel3D, error)
}

func (m *mockModelRepository) GetModels(ctx context.Context, limit int, offset int) ([]models.Model3D, error) {
	if m.getModelsFn != nil {
		return m.getModelsFn(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockModelRepository) CountModels(ctx context.Context) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

func (m *mockModelRepository) GetModelByID(ctx context.Context, modelID int64) (models.Model3D, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, modelID)
	}
	return models.Model3D{}, nil
}

func (m *mockModelRepository) CreateModel(ctx context.Context, model models.Model3D) (models.Model3D, error) {
	if m.createFn != nil {
		return m.createFn(ctx, model)
	}
	return model, nil
}

func (m *mockModelRepository) UpdateModel(ctx context.Context, modelID int64, update models.Model3DUpdate) (models.Model3D, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, modelID, update)
	}
	return models.Model3D{}, nil
}

func (m *mockModelRepository) DeleteModel(ctx context.Context, modelID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, modelID)
	}
	return nil
}

func (m *mockModelRepository) SearchModels(ctx context.Context, query string, tag string) ([]models.Model3D, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, query, tag)
	}
	return nil, nil
}

func (m *mockModelRepository) GetTopRated(ctx context.Context, limit int) ([]models.RatedModel3D, error) {
	if m.getTopRatedFn != nil {
		return m.getTopRatedFn(ctx, limit)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: store.RatingRepository
// ─────────────────────────────────────────────

type mockRatingRepository struct {
	upsertFn func(ctx context.Context, rating models.Rating) (models.Rating, error)
}

func (m *mockRatingRepository) UpsertRating(ctx context.Context, rating models.Rating) (models.Rating, error) {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, rating)
	}
	return rating, nil
}

// ─────────────────────────────────────────────
// Mock: store.FileStorage
// ─────────────────────────────────────────────

type mockFileStorage struct {
	uploadFn         func(ctx context.Context, fileName string, content io.Reader, size int64) error
	uploadFromPathFn func(ctx context.Context, fileName string, path string) error
	getURLFn         func(fileName string) string
	deleteFn         func(ctx context.Context, fileName string) error
}

func (m *mockFileStorage) UploadFile(ctx context.Context, fileName string, content io.Reader, size int64) error {
	if m.uploadFn != nil {
		return m.uploadFn(ctx, fileName, content, size)
	}
	return nil
}

func (m *mockFileStorage) UploadFileFromPath(ctx context.Context, fileName string, path string) error {
	if m.uploadFromPathFn != nil {
		return m.uploadFromPathFn(ctx, fileName, path)
	}
	return nil
}

func (m *mockFileStorage) GetFileURL(fileName string) string {
	if m.getURLFn != nil {
		return m.getURLFn(fileName)
	}
	return "/uploads/" + fileName
}

func (m *mockFileStorage) DeleteFile(ctx context.Context, fileName string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, fileName)
	}
	return nil
}
