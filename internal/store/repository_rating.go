package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-model-vault/internal/logger"
	"github.com/MKhiriev/go-model-vault/models"
	"github.com/jackc/pgerrcode"
)

// ratingRepository is the PostgreSQL-backed implementation of
// [RatingRepository]. A rating is keyed by (user_id, model_id), so every
// user holds at most one rating per model.
type ratingRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRatingRepository constructs a [RatingRepository] backed by the provided
// database connection and logger.
func NewRatingRepository(db *DB, logger *logger.Logger) RatingRepository {
	logger.Debug().Msg("creating rating repository")
	return &ratingRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertRating inserts the rating or replaces the user's previous value for
// the same model via ON CONFLICT DO UPDATE, and returns the stored row.
//
// Error handling:
//   - PostgreSQL check_violation (23514) → [ErrRatingOutOfRange].
//   - PostgreSQL foreign_key_violation (23503) → [ErrModelNotFound].
//   - Any other driver-level error → wrapped with [ErrExecutingQuery].
func (r *ratingRepository) UpsertRating(ctx context.Context, rating models.Rating) (models.Rating, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, upsertRating, rating.UserID, rating.ModelID, rating.Value)

	if rowErr := row.Err(); rowErr != nil {
		log.Err(rowErr).
			Str("func", "ratingRepository.UpsertRating").
			Int64("user_id", rating.UserID).
			Int64("model_id", rating.ModelID).
			Int("value", rating.Value).
			Msg("failed to upsert rating")

		switch postgresError(rowErr) {
		case pgerrcode.CheckViolation:
			return models.Rating{}, ErrRatingOutOfRange
		case pgerrcode.ForeignKeyViolation:
			return models.Rating{}, ErrModelNotFound
		default:
			return models.Rating{}, fmt.Errorf("%w: %w", ErrExecutingQuery, rowErr)
		}
	}

	var saved models.Rating
	if scanErr := row.Scan(&saved.UserID, &saved.ModelID, &saved.Value); scanErr != nil {
		log.Err(scanErr).
			Str("func", "ratingRepository.UpsertRating").
			Int64("user_id", rating.UserID).
			Int64("model_id", rating.ModelID).
			Msg("failed to scan upserted rating row")

		// Constraint violations can surface from Scan depending on when the
		// driver flushes the statement.
		switch postgresError(scanErr) {
		case pgerrcode.CheckViolation:
			return models.Rating{}, ErrRatingOutOfRange
		case pgerrcode.ForeignKeyViolation:
			return models.Rating{}, ErrModelNotFound
		default:
			return models.Rating{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
	}

	return saved, nil
}
