package store

import "github.com/MKhiriev/go-shopping-sync/models"

// Repositories groups every repository bound to the same queryer: either the
// connection pool or one open transaction.
//
// Cursor and PendingDeletions exist only in the client schema.
type Repositories struct {
	ListItems        ListItemRepository
	Categories       ReferenceRepository[models.Category]
	Stores           ReferenceRepository[models.Store]
	UserLists        ReferenceRepository[models.UserList]
	Cursor           CursorRepository
	PendingDeletions PendingDeletionRepository
}

func newRepositories(q queryer, db *DB) *Repositories {
	return &Repositories{
		ListItems:        &listItemRepository{q: q, db: db},
		Categories:       newCategoryRepository(q, db),
		Stores:           newStoreRepository(q, db),
		UserLists:        newUserListRepository(q, db),
		Cursor:           &cursorRepository{q: q, db: db},
		PendingDeletions: &pendingDeletionRepository{q: q, db: db},
	}
}
