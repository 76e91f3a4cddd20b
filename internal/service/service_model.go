package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-model-vault/internal/logger"
	"github.com/MKhiriev/go-model-vault/internal/store"
	"github.com/MKhiriev/go-model-vault/internal/utils"
	"github.com/MKhiriev/go-model-vault/internal/validators"
	"github.com/MKhiriev/go-model-vault/models"
)

const (
	// MaxUploadSize caps a single model file at 50 MB.
	MaxUploadSize = 50 << 20

	// DefaultPage and DefaultLimit are the pagination defaults applied when
	// a listing request carries no usable page parameters.
	DefaultPage  = 1
	DefaultLimit = 10

	// DefaultTopRatedLimit is the chart size when the caller does not ask
	// for a specific one.
	DefaultTopRatedLimit = 10

	// defaultThumbnailURL is attached to every new model until a dedicated
	// thumbnail is set through an update.
	defaultThumbnailURL = "/thumbnails/default.png"
)

// allowedModelExtensions is the 3D file format allow-list applied to every
// upload, keyed by lowercased extension.
var allowedModelExtensions = map[string]struct{}{
	".stl":  {},
	".obj":  {},
	".fbx":  {},
	".gltf": {},
	".glb":  {},
}

// modelService is the concrete implementation of ModelService. It owns the
// business rules around models: pagination, the upload allow-list and size
// cap, ownership checks, rating bounds, and keeping file storage consistent
// with the metadata rows.
type modelService struct {
	modelRepository  store.ModelRepository
	ratingRepository store.RatingRepository
	fileStorage      store.FileStorage
	ratingValidator  validators.Validator
	logger           *logger.Logger
}

// NewModelService constructs a ModelService wired to the given repositories
// and file storage backend.
func NewModelService(modelRepository store.ModelRepository, ratingRepository store.RatingRepository, fileStorage store.FileStorage, logger *logger.Logger) ModelService {
	return &modelService{
		modelRepository:  modelRepository,
		ratingRepository: ratingRepository,
		fileStorage:      fileStorage,
		ratingValidator:  validators.NewRatingValidator(),
		logger:           logger,
	}
}

// List returns one page of models together with pagination metadata.
// Out-of-range page and limit values fall back to the defaults, so a request
// for page -3 quietly becomes a request for page 1.
func (m *modelService) List(ctx context.Context, page int, limit int) ([]models.Model3D, models.Pagination, error) {
	log := logger.FromContext(ctx)

	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	offset := (page - 1) * limit

	result, err := m.modelRepository.GetModels(ctx, limit, offset)
	if err != nil {
		log.Err(err).Int("page", page).Int("limit", limit).Msg("listing models failed")
		return nil, models.Pagination{}, fmt.Errorf("listing models failed: %w", err)
	}

	total, err := m.modelRepository.CountModels(ctx)
	if err != nil {
		log.Err(err).Msg("counting models failed")
		return nil, models.Pagination{}, fmt.Errorf("counting models failed: %w", err)
	}

	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}

	return result, models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}, nil
}

// Get returns a single model by id, or store.ErrModelNotFound.
func (m *modelService) Get(ctx context.Context, modelID int64) (models.Model3D, error) {
	return m.modelRepository.GetModelByID(ctx, modelID)
}

// Upload stores the uploaded file under a fresh unique name, then persists
// the metadata row pointing at it.
//
// Enforced rules:
//   - a file must be present (ErrNoFileProvided),
//   - its extension must be on the 3D format allow-list (ErrUnsupportedFileType),
//   - its size must not exceed MaxUploadSize (ErrFileTooLarge).
//
// When the metadata insert fails after the file was already written, the file
// is removed again on a best-effort basis so storage does not accumulate
// orphans.
func (m *modelService) Upload(ctx context.Context, userID int64, upload models.Model3DUpload) (models.Model3D, error) {
	log := logger.FromContext(ctx)

	if upload.Content == nil || upload.OriginalName == "" {
		return models.Model3D{}, ErrNoFileProvided
	}

	ext := strings.ToLower(filepath.Ext(upload.OriginalName))
	if _, ok := allowedModelExtensions[ext]; !ok {
		log.Error().Str("file_name", upload.OriginalName).Msg("rejected upload with unsupported file type")
		return models.Model3D{}, fmt.Errorf("%w: %s", ErrUnsupportedFileType, ext)
	}

	if upload.Size > MaxUploadSize {
		log.Error().Str("file_name", upload.OriginalName).Int64("size", upload.Size).Msg("rejected upload over size cap")
		return models.Model3D{}, ErrFileTooLarge
	}

	storedName := utils.StoredFileName(upload.OriginalName)

	if err := m.fileStorage.UploadFile(ctx, storedName, upload.Content, upload.Size); err != nil {
		log.Err(err).Str("file_name", storedName).Msg("storing uploaded file failed")
		return models.Model3D{}, fmt.Errorf("storing uploaded file failed: %w", err)
	}

	saved, err := m.modelRepository.CreateModel(ctx, models.Model3D{
		Title:        upload.Title,
		Description:  upload.Description,
		FileName:     storedName,
		FileURL:      m.fileStorage.GetFileURL(storedName),
		ThumbnailURL: defaultThumbnailURL,
		UserID:       userID,
		Tags:         upload.Tags,
	})
	if err != nil {
		log.Err(err).Str("file_name", storedName).Msg("persisting model metadata failed, removing stored file")

		if deleteErr := m.fileStorage.DeleteFile(ctx, storedName); deleteErr != nil {
			log.Err(deleteErr).Str("file_name", storedName).Msg("removing stored file after failed insert also failed")
		}

		return models.Model3D{}, fmt.Errorf("persisting model metadata failed: %w", err)
	}

	return saved, nil
}

// Update applies a partial update to a model owned by userID. Absent fields
// are left untouched; an entirely empty update returns the current record
// without touching the database. The owner is checked first, so a non-owner
// learns the model exists but cannot change it.
func (m *modelService) Update(ctx context.Context, userID int64, modelID int64, update models.Model3DUpdate) (models.Model3D, error) {
	log := logger.FromContext(ctx)

	model, err := m.modelRepository.GetModelByID(ctx, modelID)
	if err != nil {
		return models.Model3D{}, err
	}

	if model.UserID != userID {
		log.Error().
			Int64("model_id", modelID).
			Int64("owner_id", model.UserID).
			Int64("user_id", userID).
			Msg("update rejected: not the owner")
		return models.Model3D{}, ErrNotOwner
	}

	if update.IsEmpty() {
		return model, nil
	}

	updated, err := m.modelRepository.UpdateModel(ctx, modelID, update)
	if err != nil {
		log.Err(err).Int64("model_id", modelID).Msg("updating model failed")
		return models.Model3D{}, fmt.Errorf("updating model failed: %w", err)
	}

	return updated, nil
}

// Delete removes a model owned by userID. The metadata row goes first; the
// stored file is then removed on a best-effort basis, since a leftover file
// without a row is harmless while a row without a file serves broken links.
func (m *modelService) Delete(ctx context.Context, userID int64, modelID int64) error {
	log := logger.FromContext(ctx)

	model, err := m.modelRepository.GetModelByID(ctx, modelID)
	if err != nil {
		return err
	}

	if model.UserID != userID {
		log.Error().
			Int64("model_id", modelID).
			Int64("owner_id", model.UserID).
			Int64("user_id", userID).
			Msg("delete rejected: not the owner")
		return ErrNotOwner
	}

	if err = m.modelRepository.DeleteModel(ctx, modelID); err != nil {
		log.Err(err).Int64("model_id", modelID).Msg("deleting model failed")
		return fmt.Errorf("deleting model failed: %w", err)
	}

	if deleteErr := m.fileStorage.DeleteFile(ctx, model.FileName); deleteErr != nil {
		log.Err(deleteErr).Str("file_name", model.FileName).Msg("removing stored file of deleted model failed")
	}

	return nil
}

// Rate records userID's rating of a model and returns the stored row. The
// value is validated before any persistence call, the model's existence is
// confirmed, and the rating is upserted so a second opinion replaces the
// first.
func (m *modelService) Rate(ctx context.Context, userID int64, modelID int64, request models.RateRequest) (models.Rating, error) {
	log := logger.FromContext(ctx)

	if err := m.ratingValidator.Validate(ctx, request); err != nil {
		log.Error().Int("value", request.Value).Msg("invalid rating value provided")
		return models.Rating{}, err
	}

	if _, err := m.modelRepository.GetModelByID(ctx, modelID); err != nil {
		return models.Rating{}, err
	}

	saved, err := m.ratingRepository.UpsertRating(ctx, models.Rating{
		UserID:  userID,
		ModelID: modelID,
		Value:   request.Value,
	})
	if err != nil {
		log.Err(err).Int64("model_id", modelID).Msg("saving rating failed")
		return models.Rating{}, fmt.Errorf("saving rating failed: %w", err)
	}

	return saved, nil
}

// Search returns models matching the free-text query and/or exact tag. With
// neither filter set every model matches, mirroring an unfiltered catalogue
// search.
func (m *modelService) Search(ctx context.Context, query string, tag string) ([]models.Model3D, error) {
	return m.modelRepository.SearchModels(ctx, strings.TrimSpace(query), strings.TrimSpace(tag))
}

// TopRated returns up to limit models ordered by average rating.
func (m *modelService) TopRated(ctx context.Context, limit int) ([]models.RatedModel3D, error) {
	if limit < 1 {
		limit = DefaultTopRatedLimit
	}

	return m.modelRepository.GetTopRated(ctx, limit)
}
