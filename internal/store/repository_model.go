package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-model-vault/internal/logger"
	"github.com/MKhiriev/go-model-vault/models"
	"github.com/lib/pq"
)

// modelRepository is the PostgreSQL-backed implementation of
// [ModelRepository]. It executes all model-metadata CRUD operations directly
// against the "models" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (model_id, user_id, search query, etc.).
type modelRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewModelRepository constructs a [ModelRepository] backed by the provided
// database connection and logger.
func NewModelRepository(db *DB, logger *logger.Logger) ModelRepository {
	logger.Debug().Msg("creating model repository")
	return &modelRepository{
		db:     db,
		logger: logger,
	}
}

// GetModels retrieves one page of model records ordered by id.
//
// Returns an empty slice when the page is past the end of the table.
func (r *modelRepository) GetModels(ctx context.Context, limit int, offset int) ([]models.Model3D, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := r.db.QueryContext(ctx, getModels, limit, offset)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "modelRepository.GetModels").
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to execute query for getting models page")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	return scanModels(ctx, rows)
}

// CountModels returns the total number of model records.
func (r *modelRepository) CountModels(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var total int64
	row := r.db.QueryRowContext(ctx, countModels)

	if err := row.Scan(&total); err != nil {
		log.Err(err).Str("func", "modelRepository.CountModels").Msg("failed to count models")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return total, nil
}

// GetModelByID retrieves a single model record.
// Returns [ErrModelNotFound] when no such model exists.
func (r *modelRepository) GetModelByID(ctx context.Context, modelID int64) (models.Model3D, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getModelByID, modelID)

	model, err := scanModel(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Model3D{}, ErrModelNotFound
		}

		log.Err(err).
			Str("func", "modelRepository.GetModelByID").
			Int64("model_id", modelID).
			Msg("failed to scan model row")
		return models.Model3D{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return model, nil
}

// CreateModel persists new model metadata and returns the fully populated
// [models.Model3D] with the server-assigned ID.
func (r *modelRepository) CreateModel(ctx context.Context, model models.Model3D) (models.Model3D, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createModel,
		model.Title, model.Description, model.FileName, model.FileURL, model.ThumbnailURL, model.UserID, pq.Array(model.Tags))

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "modelRepository.CreateModel").
			Int64("user_id", model.UserID).
			Msg("error: row is nil")
		return models.Model3D{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	saved, err := scanModel(row)
	if err != nil {
		log.Err(err).
			Str("func", "modelRepository.CreateModel").
			Int64("user_id", model.UserID).
			Msg("failed to scan created model row")
		return models.Model3D{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// UpdateModel applies the non-nil fields of update to a single model row and
// returns the updated record via RETURNING.
//
// The query is built dynamically via [buildUpdateModelQuery]; the owner
// column is never part of the SET list, so ownership cannot change here.
// Returns [ErrModelNotFound] when the target row does not exist.
func (r *modelRepository) UpdateModel(ctx context.Context, modelID int64, update models.Model3DUpdate) (models.Model3D, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateModelQuery(ctx, modelID, update)
	if err != nil {
		log.Err(err).
			Str("func", "modelRepository.UpdateModel").
			Int64("model_id", modelID).
			Msg("failed to create query")
		return models.Model3D{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	updated, scanErr := scanModel(row)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Model3D{}, ErrModelNotFound
		}

		log.Err(scanErr).
			Str("func", "modelRepository.UpdateModel").
			Int64("model_id", modelID).
			Msg("failed to scan updated model row")
		return models.Model3D{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return updated, nil
}

// DeleteModel removes a model row. Associated ratings go with it via the
// ON DELETE CASCADE constraint. Returns [ErrModelNotFound] when no row was
// deleted.
func (r *modelRepository) DeleteModel(ctx context.Context, modelID int64) error {
	log := logger.FromContext(ctx)

	result, execErr := r.db.ExecContext(ctx, deleteModel, modelID)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "modelRepository.DeleteModel").
			Int64("model_id", modelID).
			Msg("failed to execute delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "modelRepository.DeleteModel").
			Int64("model_id", modelID).
			Msg("failed to get affected rows count")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected == 0 {
		return ErrModelNotFound
	}

	return nil
}

// SearchModels retrieves models matching the given substring query and/or
// tag. Both filters are optional.
//
// The query is built dynamically via [buildSearchModelsQuery].
func (r *modelRepository) SearchModels(ctx context.Context, searchQuery string, tag string) ([]models.Model3D, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchModelsQuery(ctx, searchQuery, tag)
	if err != nil {
		log.Err(err).
			Str("func", "modelRepository.SearchModels").
			Str("query", searchQuery).
			Str("tag", tag).
			Msg("failed to create query")
		return nil, err
	}

	rows, queryErr := r.db.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "modelRepository.SearchModels").
			Str("query", searchQuery).
			Str("tag", tag).
			Msg("failed to execute search query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	return scanModels(ctx, rows)
}

// GetTopRated retrieves up to limit models ordered by average rating,
// highest first. Models without any ratings carry a zero rating.
func (r *modelRepository) GetTopRated(ctx context.Context, limit int) ([]models.RatedModel3D, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := r.db.QueryContext(ctx, getTopRated, limit)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "modelRepository.GetTopRated").
			Int("limit", limit).
			Msg("failed to execute top-rated query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	results := make([]models.RatedModel3D, 0, limit)

	for rows.Next() {
		var item models.RatedModel3D

		scanErr := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Description,
			&item.FileName,
			&item.FileURL,
			&item.ThumbnailURL,
			&item.UserID,
			pq.Array(&item.Tags),
			&item.Rating,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "modelRepository.GetTopRated").
				Msg("failed to scan rated model row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "modelRepository.GetTopRated").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// rowScanner is the common subset of *sql.Row and *sql.Rows needed by
// scanModel.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanModel scans a single model row in the canonical column order.
func scanModel(row rowScanner) (models.Model3D, error) {
	var model models.Model3D

	err := row.Scan(
		&model.ID,
		&model.Title,
		&model.Description,
		&model.FileName,
		&model.FileURL,
		&model.ThumbnailURL,
		&model.UserID,
		pq.Array(&model.Tags),
	)
	if err != nil {
		return models.Model3D{}, err
	}

	return model, nil
}

// scanModels drains a multi-row result set of model records.
func scanModels(ctx context.Context, rows *sql.Rows) ([]models.Model3D, error) {
	log := logger.FromContext(ctx)

	results := make([]models.Model3D, 0, 10)

	for rows.Next() {
		model, scanErr := scanModel(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "scanModels").Msg("failed to scan model row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, model)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "scanModels").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}
