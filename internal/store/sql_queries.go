package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-model-vault/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

const (
	createUser = `INSERT INTO users (email, password, username)
    VALUES ($1, $2, $3)
    RETURNING id, email, password, username, created_at;`

	findUserByEmail = `SELECT id, email, password, username, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, email, password, username, created_at
    FROM users
    WHERE id = $1;`

	modelColumns = `id, title, description, file_name, file_url, thumbnail_url, user_id, tags`

	getModels = `SELECT ` + modelColumns + `
    FROM models
    ORDER BY id
    LIMIT $1 OFFSET $2;`

	countModels = `SELECT COUNT(*) FROM models;`

	getModelByID = `SELECT ` + modelColumns + `
    FROM models
    WHERE id = $1;`

	createModel = `INSERT INTO models (title, description, file_name, file_url, thumbnail_url, user_id, tags)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING ` + modelColumns + `;`

	deleteModel = `DELETE FROM models WHERE id = $1;`

	getTopRated = `SELECT m.id, m.title, m.description, m.file_name, m.file_url, m.thumbnail_url, m.user_id, m.tags,
        COALESCE(AVG(r.value), 0) AS rating
    FROM models m
    LEFT JOIN ratings r ON r.model_id = m.id
    GROUP BY m.id
    ORDER BY rating DESC
    LIMIT $1;`

	upsertRating = `INSERT INTO ratings (user_id, model_id, value)
    VALUES ($1, $2, $3)
    ON CONFLICT (user_id, model_id) DO UPDATE SET value = EXCLUDED.value
    RETURNING user_id, model_id, value;`
)

// buildUpdateModelQuery builds a dynamic UPDATE for the non-nil fields of
// update, targeting a single model row. The updated row is returned via a
// RETURNING clause so the caller can hand the canonical representation back
// without a second round-trip. Returns ErrBuildingSQLQuery when the update
// carries no fields at all.
func buildUpdateModelQuery(ctx context.Context, modelID int64, update models.Model3DUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, fmt.Errorf("%w: update contains no fields", ErrBuildingSQLQuery)
	}

	builder := sq.Update("models").PlaceholderFormat(sq.Dollar)

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.FileName != nil {
		builder = builder.Set("file_name", *update.FileName)
	}
	if update.FileURL != nil {
		builder = builder.Set("file_url", *update.FileURL)
	}
	if update.ThumbnailURL != nil {
		builder = builder.Set("thumbnail_url", *update.ThumbnailURL)
	}
	if update.Tags != nil {
		builder = builder.Set("tags", pq.Array(*update.Tags))
	}

	query, args, err := builder.
		Where(sq.Eq{"id": modelID}).
		Suffix("RETURNING " + modelColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSearchModelsQuery builds the model search. searchQuery matches title or
// description as a case-insensitive substring, tag must appear verbatim among
// the model's tags. Both filters are optional and combined with AND; with
// neither set the query returns every model.
func buildSearchModelsQuery(ctx context.Context, searchQuery string, tag string) (string, []any, error) {
	builder := sq.Select(
		"id", "title", "description", "file_name", "file_url", "thumbnail_url", "user_id", "tags",
	).
		From("models").
		PlaceholderFormat(sq.Dollar)

	if searchQuery != "" {
		pattern := "%" + searchQuery + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"description": pattern},
		})
	}

	if tag != "" {
		builder = builder.Where(sq.Expr("? = ANY(tags)", tag))
	}

	query, args, err := builder.OrderBy("id").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
