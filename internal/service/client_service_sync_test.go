package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-shopping-sync/internal/adapter"
	"github.com/MKhiriev/go-shopping-sync/internal/logger"
	"github.com/MKhiriev/go-shopping-sync/internal/mock"
	"github.com/MKhiriev/go-shopping-sync/internal/store"
	"github.com/MKhiriev/go-shopping-sync/models"
)

var (
	milkID  = uuid.MustParse("0190b3a0-0000-7000-8000-0000000000a1")
	breadID = uuid.MustParse("0190b3a0-0000-7000-8000-0000000000a2")
	eggsID  = uuid.MustParse("0190b3a0-0000-7000-8000-0000000000a3")
)

type clientSyncFixture struct {
	svc     *clientSyncService
	storage *mock.MockLocalStorage
	adapter *mock.MockServerAdapter
	pool    *mockRepos
	tx      *mockRepos
}

// newClientSyncFixture builds the orchestrator over mocks. Reads outside a
// transaction go to pool, transaction bodies run against tx.
func newClientSyncFixture(t *testing.T) *clientSyncFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &clientSyncFixture{
		storage: mock.NewMockLocalStorage(ctrl),
		adapter: mock.NewMockServerAdapter(ctrl),
		pool:    newMockRepos(ctrl),
		tx:      newMockRepos(ctrl),
	}
	f.svc = NewClientSyncService(f.storage, f.adapter, logger.Nop()).(*clientSyncService)

	f.storage.EXPECT().Repositories().Return(f.pool.repos).AnyTimes()
	f.storage.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx(f.tx.repos)).AnyTimes()

	return f
}

// expectCollect sets up the cursor read and the collector reads.
func (f *clientSyncFixture) expectCollect(cursor time.Time, items []models.ListItem, pending []uuid.UUID) {
	if cursor.IsZero() {
		f.pool.cursor.EXPECT().GetCursor(gomock.Any()).Return(models.Cursor{}, store.ErrCursorNotFound)
	} else {
		f.pool.cursor.EXPECT().GetCursor(gomock.Any()).Return(models.NewCursor(cursor), nil)
	}
	f.tx.items.EXPECT().GetAllListItems(gomock.Any()).Return(items, nil)
	f.tx.pending.EXPECT().GetPendingDeletionIDs(gomock.Any()).Return(pending, nil)
}

func asAny[T any](values []T) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}

func serverResponse(items ...models.ListItem) models.SyncResponse {
	snapshot := testSnapshot(items...)
	resp := models.NewEmptySyncResponse()
	resp.ServerUpdatesCategories = append(resp.ServerUpdatesCategories, snapshot.Categories...)
	resp.ServerUpdatesStores = append(resp.ServerUpdatesStores, snapshot.Stores...)
	resp.ServerUpdatesUserLists = append(resp.ServerUpdatesUserLists, snapshot.UserLists...)
	resp.ServerUpdatesListItems = append(resp.ServerUpdatesListItems, snapshot.ListItems...)
	resp.ServerSyncTimestamp = serverNow
	return resp
}

// ── success ──────────────────────────────────────────────────────────────────

func TestClientSync_FirstSyncAppliesSnapshotAndAdvancesCursor(t *testing.T) {
	f := newClientSyncFixture(t)
	bread := testItem(breadID.String(), "Bread")
	milk := testItem(milkID.String(), "Milk")
	resp := serverResponse(milk, bread)
	resp.ConfirmedDeletions = []uuid.UUID{eggsID}

	f.expectCollect(time.Time{}, []models.ListItem{bread}, []uuid.UUID{eggsID})
	f.adapter.EXPECT().
		Sync(gomock.Any(), models.NewSyncRequest([]models.ListItem{bread}, []uuid.UUID{eggsID}, time.Time{})).
		Return(resp, nil)

	gomock.InOrder(
		f.tx.categories.EXPECT().Upsert(gomock.Any(), asAny(resp.ServerUpdatesCategories)...).Return(nil),
		f.tx.stores.EXPECT().Upsert(gomock.Any(), asAny(resp.ServerUpdatesStores)...).Return(nil),
		f.tx.userLists.EXPECT().Upsert(gomock.Any(), asAny(resp.ServerUpdatesUserLists)...).Return(nil),
		f.tx.pending.EXPECT().RemovePendingDeletions(gomock.Any(), eggsID).Return(nil),
		f.tx.pending.EXPECT().GetPendingDeletionIDs(gomock.Any()).Return([]uuid.UUID{}, nil),
		f.tx.items.EXPECT().UpsertListItems(gomock.Any(), milk, bread).Return(nil),
		f.tx.cursor.EXPECT().GetCursor(gomock.Any()).Return(models.Cursor{}, store.ErrCursorNotFound),
		f.tx.cursor.EXPECT().SetCursor(gomock.Any(), models.NewCursor(serverNow)).Return(nil),
	)

	ok := f.svc.PerformSync(testContext())

	assert.True(t, ok)
	assert.Equal(t, SyncStateIdle, f.svc.State())
}

func TestClientSync_SendsStoredCursor(t *testing.T) {
	f := newClientSyncFixture(t)
	previous := serverNow.Add(-time.Hour)

	f.expectCollect(previous, nil, nil)
	f.adapter.EXPECT().
		Sync(gomock.Any(), models.NewSyncRequest(nil, nil, previous)).
		Return(serverResponse(), nil)
	f.tx.categories.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.tx.stores.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	f.tx.userLists.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	f.tx.pending.EXPECT().RemovePendingDeletions(gomock.Any()).Return(nil)
	f.tx.pending.EXPECT().GetPendingDeletionIDs(gomock.Any()).Return(nil, nil)
	f.tx.items.EXPECT().UpsertListItems(gomock.Any()).Return(nil)
	f.tx.cursor.EXPECT().GetCursor(gomock.Any()).Return(models.NewCursor(previous), nil)
	f.tx.cursor.EXPECT().SetCursor(gomock.Any(), models.NewCursor(serverNow)).Return(nil)

	require.NoError(t, f.svc.Sync(testContext()))
}

func TestClientSync_DoesNotResurrectItemsDeletedDuringSync(t *testing.T) {
	f := newClientSyncFixture(t)
	milk := testItem(milkID.String(), "Milk")
	bread := testItem(breadID.String(), "Bread")

	f.expectCollect(time.Time{}, []models.ListItem{milk, bread}, nil)
	f.adapter.EXPECT().Sync(gomock.Any(), gomock.Any()).Return(serverResponse(milk, bread), nil)
	f.tx.categories.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.tx.stores.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	f.tx.userLists.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	f.tx.pending.EXPECT().RemovePendingDeletions(gomock.Any()).Return(nil)
	// milk was deleted locally after the request left
	f.tx.pending.EXPECT().GetPendingDeletionIDs(gomock.Any()).Return([]uuid.UUID{milkID}, nil)
	f.tx.items.EXPECT().UpsertListItems(gomock.Any(), bread).Return(nil)
	f.tx.cursor.EXPECT().GetCursor(gomock.Any()).Return(models.Cursor{}, store.ErrCursorNotFound)
	f.tx.cursor.EXPECT().SetCursor(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, f.svc.Sync(testContext()))
}

func TestClientSync_CursorNeverMovesBackwards(t *testing.T) {
	f := newClientSyncFixture(t)
	stored := serverNow.Add(time.Hour)

	f.expectCollect(stored, nil, nil)
	f.adapter.EXPECT().Sync(gomock.Any(), gomock.Any()).Return(serverResponse(), nil)
	f.tx.categories.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.tx.stores.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	f.tx.userLists.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	f.tx.pending.EXPECT().RemovePendingDeletions(gomock.Any()).Return(nil)
	f.tx.pending.EXPECT().GetPendingDeletionIDs(gomock.Any()).Return(nil, nil)
	f.tx.items.EXPECT().UpsertListItems(gomock.Any()).Return(nil)
	f.tx.cursor.EXPECT().GetCursor(gomock.Any()).Return(models.NewCursor(stored), nil)
	// no SetCursor expected

	require.NoError(t, f.svc.Sync(testContext()))
}

// ── failures leave local state untouched ────────────────────────────────────

func TestClientSync_CollectFailure(t *testing.T) {
	f := newClientSyncFixture(t)

	f.pool.cursor.EXPECT().GetCursor(gomock.Any()).Return(models.Cursor{}, store.ErrCursorNotFound)
	f.tx.items.EXPECT().GetAllListItems(gomock.Any()).Return(nil, store.ErrExecutingQuery)

	err := f.svc.Sync(testContext())

	require.ErrorIs(t, err, store.ErrExecutingQuery)
	assert.Equal(t, "local_read", syncFailureKind(err))
}

func TestClientSync_CursorReadFailure(t *testing.T) {
	f := newClientSyncFixture(t)

	f.pool.cursor.EXPECT().GetCursor(gomock.Any()).Return(models.Cursor{}, store.ErrExecutingQuery)

	assert.False(t, f.svc.PerformSync(testContext()))
}

func TestClientSync_TransportFailure(t *testing.T) {
	f := newClientSyncFixture(t)

	f.expectCollect(time.Time{}, nil, nil)
	f.adapter.EXPECT().Sync(gomock.Any(), gomock.Any()).
		Return(models.SyncResponse{}, fmt.Errorf("%w: connection refused", adapter.ErrTransport))

	err := f.svc.Sync(testContext())

	require.ErrorIs(t, err, adapter.ErrTransport)
	assert.Equal(t, SyncStateIdle, f.svc.State())
}

func TestClientSync_ServerReportedError(t *testing.T) {
	f := newClientSyncFixture(t)

	f.expectCollect(time.Time{}, nil, nil)
	f.adapter.EXPECT().Sync(gomock.Any(), gomock.Any()).Return(models.NewErrorSyncResponse("database is locked"), nil)

	err := f.svc.Sync(testContext())

	require.ErrorIs(t, err, ErrServerReported)
	assert.Contains(t, err.Error(), "database is locked")
}

func TestClientSync_LocalApplyFailureKeepsCursor(t *testing.T) {
	f := newClientSyncFixture(t)
	milk := testItem(milkID.String(), "Milk")

	f.expectCollect(time.Time{}, nil, nil)
	f.adapter.EXPECT().Sync(gomock.Any(), gomock.Any()).Return(serverResponse(milk), nil)
	f.tx.categories.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.tx.stores.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	f.tx.userLists.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	f.tx.pending.EXPECT().RemovePendingDeletions(gomock.Any()).Return(nil)
	f.tx.pending.EXPECT().GetPendingDeletionIDs(gomock.Any()).Return(nil, nil)
	f.tx.items.EXPECT().UpsertListItems(gomock.Any(), milk).Return(store.ErrExecutingStatement)
	// no cursor calls expected

	err := f.svc.Sync(testContext())

	require.ErrorIs(t, err, ErrLocalApply)
	assert.ErrorIs(t, err, store.ErrExecutingStatement)
}

func TestClientSync_ParentFailureStopsBeforeItems(t *testing.T) {
	f := newClientSyncFixture(t)

	f.expectCollect(time.Time{}, nil, nil)
	f.adapter.EXPECT().Sync(gomock.Any(), gomock.Any()).Return(serverResponse(), nil)
	f.tx.categories.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(store.ErrExecutingStatement)

	err := f.svc.Sync(testContext())

	assert.ErrorIs(t, err, ErrLocalApply)
}

func TestClientSync_RecoversFromPanic(t *testing.T) {
	f := newClientSyncFixture(t)

	f.expectCollect(time.Time{}, nil, nil)
	f.adapter.EXPECT().Sync(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.SyncRequest) (models.SyncResponse, error) {
			panic("nil map write")
		})

	var err error
	require.NotPanics(t, func() { err = f.svc.Sync(testContext()) })

	assert.ErrorIs(t, err, ErrSyncPanicked)
	assert.Equal(t, SyncStateIdle, f.svc.State())
}

// ── state and single flight ──────────────────────────────────────────────────

func TestClientSync_ReportsStateWhileTransmitting(t *testing.T) {
	f := newClientSyncFixture(t)

	f.expectCollect(time.Time{}, nil, nil)
	f.adapter.EXPECT().Sync(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.SyncRequest) (models.SyncResponse, error) {
			assert.Equal(t, SyncStateTransmitting, f.svc.State())
			return models.SyncResponse{}, adapter.ErrTransport
		})

	assert.Equal(t, SyncStateIdle, f.svc.State())
	assert.False(t, f.svc.PerformSync(testContext()))
}

func TestClientSync_ConcurrentCallsShareOneAttempt(t *testing.T) {
	f := newClientSyncFixture(t)
	entered := make(chan struct{})
	release := make(chan struct{})

	f.expectCollect(time.Time{}, nil, nil)
	f.adapter.EXPECT().Sync(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.SyncRequest) (models.SyncResponse, error) {
			close(entered)
			<-release
			return models.SyncResponse{}, adapter.ErrTransport
		}).
		Times(1)

	const callers = 3
	results := make([]error, callers)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0] = f.svc.Sync(testContext())
	}()
	<-entered

	for i := 1; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = f.svc.Sync(testContext())
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, err := range results {
		assert.ErrorIs(t, err, adapter.ErrTransport)
	}
}

// ── helpers ──────────────────────────────────────────────────────────────────

func TestWithoutIDs(t *testing.T) {
	milk := testItem(milkID.String(), "Milk")
	bread := testItem(breadID.String(), "Bread")

	tests := []struct {
		name  string
		items []models.ListItem
		ids   []uuid.UUID
		want  []models.ListItem
	}{
		{name: "nothing pending", items: []models.ListItem{milk, bread}, want: []models.ListItem{milk, bread}},
		{name: "drops pending", items: []models.ListItem{milk, bread}, ids: []uuid.UUID{milkID, eggsID}, want: []models.ListItem{bread}},
		{name: "drops all", items: []models.ListItem{milk}, ids: []uuid.UUID{milkID}, want: []models.ListItem{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, withoutIDs(tt.items, tt.ids))
		})
	}
}

func TestSyncFailureKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: fmt.Errorf("%w: boom", ErrSyncPanicked), want: "panic"},
		{err: fmt.Errorf("%w: %w: eof", adapter.ErrTransport, adapter.ErrDecodeResponse), want: "decode"},
		{err: fmt.Errorf("%w: refused", adapter.ErrTransport), want: "transport"},
		{err: fmt.Errorf("%w: locked", ErrServerReported), want: "server_reported"},
		{err: fmt.Errorf("%w: disk full", ErrLocalApply), want: "local_apply"},
		{err: errors.New("read failed"), want: "local_read"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, syncFailureKind(tt.err))
		})
	}
}

func TestSyncState_String(t *testing.T) {
	assert.Equal(t, "idle", SyncStateIdle.String())
	assert.Equal(t, "transmitting", SyncStateTransmitting.String())
	assert.Equal(t, "advancing_cursor", SyncStateAdvancingCursor.String())
}
