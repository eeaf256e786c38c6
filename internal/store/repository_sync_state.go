package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-shopping-sync/internal/logger"
	"github.com/MKhiriev/go-shopping-sync/models"
)

// cursorRepository keeps the client cursor in the sync_state key/value table.
type cursorRepository struct {
	q  queryer
	db *DB
}

// NewCursorRepository constructs a [CursorRepository] on db's pool.
func NewCursorRepository(db *DB) CursorRepository {
	return &cursorRepository{q: db.DB, db: db}
}

func (r *cursorRepository) GetCursor(ctx context.Context) (models.Cursor, error) {
	query, args, err := buildSelectCursorQuery(r.db.builder, models.LastSyncTimestampKey)
	if err != nil {
		return models.Cursor{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var cursor models.Cursor
	err = r.q.QueryRowContext(ctx, query, args...).Scan(&cursor.Key, &cursor.Value)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Cursor{}, ErrCursorNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "cursorRepository.GetCursor").
			Msg("failed to read sync cursor")
		return models.Cursor{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return cursor, nil
}

func (r *cursorRepository) SetCursor(ctx context.Context, cursor models.Cursor) error {
	query, args, err := buildUpsertCursorQuery(r.db.builder, cursor)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "cursorRepository.SetCursor").
			Str("cursor", cursor.Value).
			Msg("failed to store sync cursor")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// pendingDeletionRepository implements [PendingDeletionRepository].
type pendingDeletionRepository struct {
	q  queryer
	db *DB
}

// NewPendingDeletionRepository constructs a [PendingDeletionRepository] on
// db's pool.
func NewPendingDeletionRepository(db *DB) PendingDeletionRepository {
	return &pendingDeletionRepository{q: db.DB, db: db}
}

func (r *pendingDeletionRepository) AddPendingDeletion(ctx context.Context, id uuid.UUID, at time.Time) error {
	query, args, err := buildInsertPendingDeletionQuery(r.db.builder, id, at)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "pendingDeletionRepository.AddPendingDeletion").
			Str("item_id", id.String()).
			Msg("failed to record pending deletion")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *pendingDeletionRepository) GetPendingDeletionIDs(ctx context.Context) ([]uuid.UUID, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPendingDeletionsQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "pendingDeletionRepository.GetPendingDeletionIDs").
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0, 8)
	for rows.Next() {
		var id uuid.UUID
		if scanErr := rows.Scan(&id); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		ids = append(ids, id)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return ids, nil
}

func (r *pendingDeletionRepository) RemovePendingDeletions(ctx context.Context, ids ...uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := buildDeletePendingDeletionsQuery(r.db.builder, ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "pendingDeletionRepository.RemovePendingDeletions").
			Int("ids_count", len(ids)).
			Msg("failed to clear pending deletions")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
