package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/zodin-dev/symphony/internal/logger"
	"github.com/zodin-dev/symphony/internal/models"
)

// kindSpec maps a media kind onto its table and play counter column. Tracks
// count listens, videos count views; both are exposed as "plays".
type kindSpec struct {
	table   string
	idCol   string
	counter string
}

var kindSpecs = map[models.MediaKind]kindSpec{
	models.MediaTrack: {table: "tracks", idCol: "track_id", counter: "listens"},
	models.MediaVideo: {table: "videos", idCol: "video_id", counter: "views"},
}

func specFor(kind models.MediaKind) (kindSpec, error) {
	spec, ok := kindSpecs[kind]
	if !ok {
		return kindSpec{}, fmt.Errorf("unknown media kind %q", kind)
	}
	return spec, nil
}

type MediaReadRepository struct {
	db *sqlx.DB
}

func NewMediaReadRepository(db *sqlx.DB) *MediaReadRepository {
	return &MediaReadRepository{db: db}
}

// GetByTitle looks an item up by its natural key. Titles are unique per kind.
func (r *MediaReadRepository) GetByTitle(ctx context.Context, kind models.MediaKind, title string) (*models.MediaDB, error) {
	spec, err := specFor(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s AS id, author_id, title, description, filename, %s AS plays, created_at
		FROM %s
		WHERE title = $1
	`, spec.idCol, spec.counter, spec.table)

	var item models.MediaDB
	if err := sqlx.GetContext(ctx, ext(ctx, r.db), &item, query, title); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Log.Errorw("failed to get media by title", "kind", kind, "title", title, "error", err)
		return nil, err
	}
	return &item, nil
}

// ListByAuthors returns items whose author is in authorIDs, most recent
// first, with a stable id tiebreak.
func (r *MediaReadRepository) ListByAuthors(ctx context.Context, kind models.MediaKind, authorIDs []uuid.UUID, offset, limit int) ([]models.MediaDB, error) {
	spec, err := specFor(kind)
	if err != nil {
		return nil, err
	}
	if len(authorIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(fmt.Sprintf(`
		SELECT %s AS id, author_id, title, description, filename, %s AS plays, created_at
		FROM %s
		WHERE author_id IN (?)
		ORDER BY created_at DESC, %s DESC
		OFFSET ? LIMIT ?
	`, spec.idCol, spec.counter, spec.table, spec.idCol), authorIDs, offset, limit)
	if err != nil {
		return nil, err
	}

	e := ext(ctx, r.db)
	query = e.Rebind(query)

	var items []models.MediaDB
	if err := sqlx.SelectContext(ctx, e, &items, query, args...); err != nil {
		logger.Log.Errorw("failed to list media", "kind", kind, "authors", len(authorIDs), "error", err)
		return nil, err
	}
	return items, nil
}

type MediaWriteRepository struct {
	db *sqlx.DB
}

func NewMediaWriteRepository(db *sqlx.DB) *MediaWriteRepository {
	return &MediaWriteRepository{db: db}
}

// Save inserts a new item. Returns false without error when the title is
// already taken within the kind; the unique constraint resolves concurrent
// uploads of the same title.
func (r *MediaWriteRepository) Save(ctx context.Context, kind models.MediaKind, authorID uuid.UUID, title, description, filename string) (uuid.UUID, bool, error) {
	spec, err := specFor(kind)
	if err != nil {
		return uuid.Nil, false, err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, author_id, title, description, filename, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (title) DO NOTHING
	`, spec.table, spec.idCol)
	id := uuid.New()
	args := []any{id, authorID, title, description, filename}

	res, err := ext(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return uuid.Nil, false, err
	}
	return id, rowsAffected == 1, nil
}

func (r *MediaWriteRepository) Delete(ctx context.Context, kind models.MediaKind, id uuid.UUID) error {
	spec, err := specFor(kind)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, spec.table, spec.idCol)

	_, err = ext(ctx, r.db).ExecContext(ctx, query, id)
	if err != nil {
		logger.Log.Errorw("failed to delete media", "kind", kind, "id", id, "error", err)
	}
	return err
}

// IncrementPlays bumps the play counter in a single UPDATE, so concurrent
// plays never lose updates.
func (r *MediaWriteRepository) IncrementPlays(ctx context.Context, kind models.MediaKind, id uuid.UUID) error {
	spec, err := specFor(kind)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`UPDATE %s SET %s = %s + 1 WHERE %s = $1`, spec.table, spec.counter, spec.counter, spec.idCol)

	_, err = ext(ctx, r.db).ExecContext(ctx, query, id)
	if err != nil {
		logger.Log.Errorw("failed to increment plays", "kind", kind, "id", id, "error", err)
	}
	return err
}
