package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-shopping-sync/internal/logger"
	"github.com/MKhiriev/go-shopping-sync/models"
)

type referenceRow struct {
	id   uuid.UUID
	name string
}

// referenceRepository implements [ReferenceRepository] for any of the
// (id, name) parent tables. toRow and fromRow convert between the model and
// its row.
type referenceRepository[T models.Reference] struct {
	q       queryer
	db      *DB
	table   string
	toRow   func(T) referenceRow
	fromRow func(referenceRow) T
}

// NewCategoryRepository constructs the categories repository on db's pool.
func NewCategoryRepository(db *DB) ReferenceRepository[models.Category] {
	return newCategoryRepository(db.DB, db)
}

// NewStoreRepository constructs the stores repository on db's pool.
func NewStoreRepository(db *DB) ReferenceRepository[models.Store] {
	return newStoreRepository(db.DB, db)
}

// NewUserListRepository constructs the user lists repository on db's pool.
func NewUserListRepository(db *DB) ReferenceRepository[models.UserList] {
	return newUserListRepository(db.DB, db)
}

func newCategoryRepository(q queryer, db *DB) *referenceRepository[models.Category] {
	return &referenceRepository[models.Category]{
		q:       q,
		db:      db,
		table:   categoriesTable,
		toRow:   func(c models.Category) referenceRow { return referenceRow{id: c.ID, name: c.Name} },
		fromRow: func(r referenceRow) models.Category { return models.Category{ID: r.id, Name: r.name} },
	}
}

func newStoreRepository(q queryer, db *DB) *referenceRepository[models.Store] {
	return &referenceRepository[models.Store]{
		q:       q,
		db:      db,
		table:   storesTable,
		toRow:   func(s models.Store) referenceRow { return referenceRow{id: s.ID, name: s.Name} },
		fromRow: func(r referenceRow) models.Store { return models.Store{ID: r.id, Name: r.name} },
	}
}

func newUserListRepository(q queryer, db *DB) *referenceRepository[models.UserList] {
	return &referenceRepository[models.UserList]{
		q:       q,
		db:      db,
		table:   userListsTable,
		toRow:   func(u models.UserList) referenceRow { return referenceRow{id: u.ID, name: u.Name} },
		fromRow: func(r referenceRow) models.UserList { return models.UserList{ID: r.id, Name: r.name} },
	}
}

func (r *referenceRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllReferencesQuery(r.db.builder, r.table)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "referenceRepository.GetAll").
			Str("table", r.table).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]T, 0, 16)
	for rows.Next() {
		var row referenceRow
		if scanErr := rows.Scan(&row.id, &row.name); scanErr != nil {
			log.Err(scanErr).
				Str("func", "referenceRepository.GetAll").
				Str("table", r.table).
				Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		records = append(records, r.fromRow(row))
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

func (r *referenceRepository[T]) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	query, args, err := buildReferenceExistsQuery(r.db.builder, r.table, id)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.q.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "referenceRepository.Exists").
			Str("table", r.table).
			Str("id", id.String()).
			Msg("failed to check reference")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

func (r *referenceRepository[T]) FirstID(ctx context.Context) (uuid.UUID, error) {
	query, args, err := buildFirstReferenceIDQuery(r.db.builder, r.table)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id uuid.UUID
	err = r.q.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, fmt.Errorf("%s: %w", r.table, ErrRecordNotFound)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "referenceRepository.FirstID").
			Str("table", r.table).
			Msg("failed to get first id")
		return uuid.Nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return id, nil
}

func (r *referenceRepository[T]) Upsert(ctx context.Context, records ...T) error {
	for batch := range slices.Chunk(records, upsertBatchSize) {
		rows := make([]referenceRow, 0, len(batch))
		for _, record := range batch {
			rows = append(rows, r.toRow(record))
		}

		query, args, err := buildUpsertReferencesQuery(r.db.builder, r.table, rows)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "referenceRepository.Upsert").
				Str("table", r.table).
				Int("records_count", len(records)).
				Msg("failed to upsert records")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}
