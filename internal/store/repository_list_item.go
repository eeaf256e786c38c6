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

// listItemRepository is the SQL implementation of [ListItemRepository]. It
// runs on either the pool or a transaction, depending on q.
type listItemRepository struct {
	q  queryer
	db *DB
}

// NewListItemRepository constructs a [ListItemRepository] running on the
// connection pool of db.
func NewListItemRepository(db *DB) ListItemRepository {
	return &listItemRepository{q: db.DB, db: db}
}

func (r *listItemRepository) GetListItem(ctx context.Context, id uuid.UUID) (models.ListItem, error) {
	return r.getListItem(ctx, id, "", "listItemRepository.GetListItem")
}

func (r *listItemRepository) GetListItemForUpdate(ctx context.Context, id uuid.UUID) (models.ListItem, error) {
	return r.getListItem(ctx, id, r.db.lockClause(), "listItemRepository.GetListItemForUpdate")
}

func (r *listItemRepository) getListItem(ctx context.Context, id uuid.UUID, lock, funcName string) (models.ListItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectListItemQuery(r.db.builder, id, lock)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to create query")
		return models.ListItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanListItem(r.q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ListItem{}, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Str("item_id", id.String()).
			Msg("failed to get list item")
		return models.ListItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

func (r *listItemRepository) GetAllListItems(ctx context.Context) ([]models.ListItem, error) {
	query, args, err := buildSelectAllListItemsQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryListItems(ctx, "listItemRepository.GetAllListItems", query, args)
}

func (r *listItemRepository) GetActiveListItems(ctx context.Context) ([]models.ListItem, error) {
	query, args, err := buildSelectActiveListItemsQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryListItems(ctx, "listItemRepository.GetActiveListItems", query, args)
}

func (r *listItemRepository) queryListItems(ctx context.Context, funcName, query string, args []any) ([]models.ListItem, error) {
	log := logger.FromContext(ctx)

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query for getting list items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.ListItem, 0, 50)
	for rows.Next() {
		item, scanErr := scanListItem(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan list item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

func (r *listItemRepository) InsertListItem(ctx context.Context, item models.ListItem) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertListItemQuery(r.db.builder, item)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "listItemRepository.InsertListItem").
			Str("item_id", item.ID.String()).
			Msg("failed to insert list item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *listItemRepository) UpdateListItem(ctx context.Context, item models.ListItem) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateListItemQuery(r.db.builder, item)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "listItemRepository.UpdateListItem").
			Str("item_id", item.ID.String()).
			Msg("failed to update list item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (r *listItemRepository) UpsertListItems(ctx context.Context, items ...models.ListItem) error {
	log := logger.FromContext(ctx)

	// one statement per batch keeps the bind variables under SQLite's limit
	for batch := range slices.Chunk(items, upsertBatchSize) {
		query, args, err := buildUpsertListItemsQuery(r.db.builder, batch...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "listItemRepository.UpsertListItems").
				Int("items_count", len(items)).
				Int("batch_size", len(batch)).
				Msg("failed to upsert list items")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

func (r *listItemRepository) DeleteListItem(ctx context.Context, id uuid.UUID) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteListItemQuery(r.db.builder, id)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "listItemRepository.DeleteListItem").
			Str("item_id", id.String()).
			Msg("failed to delete list item")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return rowsAffected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListItem(row rowScanner) (models.ListItem, error) {
	var item models.ListItem
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.CategoryID,
		&item.StoreID,
		&item.PurchaseType,
		&item.IsRecurring,
		&item.IsActive,
		&item.IsArchived,
		&item.UserListID,
	)
	return item, err
}
