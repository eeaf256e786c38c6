package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-shopping-sync/models"
)

const (
	listItemsTable        = "list_items"
	categoriesTable       = "categories"
	storesTable           = "stores"
	userListsTable        = "user_lists"
	syncStateTable        = "sync_state"
	pendingDeletionsTable = "pending_deletions"
)

var listItemColumns = []string{
	"id",
	"name",
	"category_id",
	"store_id",
	"purchase_type",
	"is_recurring",
	"is_active",
	"is_archived",
	"user_list_id",
}

// upsertListItemSuffix overwrites every column of an existing row.
const upsertListItemSuffix = `ON CONFLICT (id) DO UPDATE SET
	name = excluded.name,
	category_id = excluded.category_id,
	store_id = excluded.store_id,
	purchase_type = excluded.purchase_type,
	is_recurring = excluded.is_recurring,
	is_active = excluded.is_active,
	is_archived = excluded.is_archived,
	user_list_id = excluded.user_list_id`

const upsertReferenceSuffix = `ON CONFLICT (id) DO UPDATE SET name = excluded.name`

func listItemValues(item models.ListItem) []any {
	return []any{
		item.ID,
		item.Name,
		item.CategoryID,
		item.StoreID,
		item.PurchaseType,
		item.IsRecurring,
		item.IsActive,
		item.IsArchived,
		item.UserListID,
	}
}

func buildSelectListItemQuery(b sq.StatementBuilderType, id uuid.UUID, lock string) (string, []any, error) {
	query := b.Select(listItemColumns...).
		From(listItemsTable).
		Where(sq.Eq{"id": id})
	if lock != "" {
		query = query.Suffix(lock)
	}
	return query.ToSql()
}

func buildSelectAllListItemsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(listItemColumns...).
		From(listItemsTable).
		OrderBy("id").
		ToSql()
}

func buildSelectActiveListItemsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(listItemColumns...).
		From(listItemsTable).
		Where(sq.Eq{"is_active": true, "is_archived": false}).
		OrderBy("id").
		ToSql()
}

func buildInsertListItemQuery(b sq.StatementBuilderType, item models.ListItem) (string, []any, error) {
	return b.Insert(listItemsTable).
		Columns(listItemColumns...).
		Values(listItemValues(item)...).
		ToSql()
}

func buildUpdateListItemQuery(b sq.StatementBuilderType, item models.ListItem) (string, []any, error) {
	return b.Update(listItemsTable).
		SetMap(map[string]any{
			"name":          item.Name,
			"category_id":   item.CategoryID,
			"store_id":      item.StoreID,
			"purchase_type": item.PurchaseType,
			"is_recurring":  item.IsRecurring,
			"is_active":     item.IsActive,
			"is_archived":   item.IsArchived,
			"user_list_id":  item.UserListID,
		}).
		Where(sq.Eq{"id": item.ID}).
		ToSql()
}

// upsertBatchSize caps the rows of one multi-row upsert. At nine columns a
// list item batch binds 4500 variables, below SQLite's default limit.
const upsertBatchSize = 500

func buildUpsertListItemsQuery(b sq.StatementBuilderType, items ...models.ListItem) (string, []any, error) {
	query := b.Insert(listItemsTable).Columns(listItemColumns...)
	for _, item := range items {
		query = query.Values(listItemValues(item)...)
	}
	return query.Suffix(upsertListItemSuffix).ToSql()
}

func buildDeleteListItemQuery(b sq.StatementBuilderType, id uuid.UUID) (string, []any, error) {
	return b.Delete(listItemsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSelectAllReferencesQuery(b sq.StatementBuilderType, table string) (string, []any, error) {
	return b.Select("id", "name").
		From(table).
		OrderBy("id").
		ToSql()
}

func buildReferenceExistsQuery(b sq.StatementBuilderType, table string, id uuid.UUID) (string, []any, error) {
	return b.Select("1").
		From(table).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
}

func buildFirstReferenceIDQuery(b sq.StatementBuilderType, table string) (string, []any, error) {
	return b.Select("id").
		From(table).
		OrderBy("id").
		Limit(1).
		ToSql()
}

func buildUpsertReferencesQuery(b sq.StatementBuilderType, table string, rows []referenceRow) (string, []any, error) {
	query := b.Insert(table).Columns("id", "name")
	for _, row := range rows {
		query = query.Values(row.id, row.name)
	}
	return query.Suffix(upsertReferenceSuffix).ToSql()
}

func buildSelectCursorQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	return b.Select("key", "value").
		From(syncStateTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildUpsertCursorQuery(b sq.StatementBuilderType, cursor models.Cursor) (string, []any, error) {
	return b.Insert(syncStateTable).
		Columns("key", "value").
		Values(cursor.Key, cursor.Value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value").
		ToSql()
}

func buildInsertPendingDeletionQuery(b sq.StatementBuilderType, id uuid.UUID, at time.Time) (string, []any, error) {
	return b.Insert(pendingDeletionsTable).
		Columns("id", "deleted_at").
		Values(id, at).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
}

func buildSelectPendingDeletionsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("id").
		From(pendingDeletionsTable).
		OrderBy("deleted_at", "id").
		ToSql()
}

func buildDeletePendingDeletionsQuery(b sq.StatementBuilderType, ids []uuid.UUID) (string, []any, error) {
	return b.Delete(pendingDeletionsTable).
		Where(sq.Eq{"id": ids}).
		ToSql()
}
