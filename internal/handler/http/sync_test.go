// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-shopping-sync/internal/app"
	"github.com/MKhiriev/go-shopping-sync/internal/config"
	"github.com/MKhiriev/go-shopping-sync/internal/logger"
	"github.com/MKhiriev/go-shopping-sync/internal/service"
	"github.com/MKhiriev/go-shopping-sync/internal/store"
	"github.com/MKhiriev/go-shopping-sync/internal/utils"
	"github.com/MKhiriev/go-shopping-sync/models"
)

var serverTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// ─────────────────────────────────────────────
// Stub
// ─────────────────────────────────────────────

// stubSyncService implements service.SyncService and records the request it
// received.
type stubSyncService struct {
	calls    int
	received models.SyncRequest
	reconcile func(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error)
}

func (s *stubSyncService) Reconcile(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	s.calls++
	s.received = req
	return s.reconcile(ctx, req)
}

func newHandlerWithSyncService(svc service.SyncService, hashKey string) *Handler {
	return NewHandler(
		&service.Services{SyncService: svc, AppInfoService: &stubAppInfoService{version: "test"}},
		config.App{HashKey: hashKey},
		logger.Nop(),
	)
}

func postSync(t *testing.T, router http.Handler, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/sync", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func decodeSyncResponse(t *testing.T, rec *httptest.ResponseRecorder) models.SyncResponse {
	t.Helper()
	var resp models.SyncResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	return resp
}

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

func TestSync_Success(t *testing.T) {
	itemID := uuid.MustParse("0190b3a0-0000-7000-8000-0000000000a1")
	deletedID := uuid.MustParse("0190b3a0-0000-7000-8000-0000000000d1")

	req := models.NewSyncRequest([]models.ListItem{{ID: itemID, Name: "Milk", IsActive: true}}, []uuid.UUID{deletedID}, time.Time{})
	body, err := json.Marshal(req)
	require.NoError(t, err)

	svc := &stubSyncService{reconcile: func(_ context.Context, r models.SyncRequest) (models.SyncResponse, error) {
		resp := models.NewEmptySyncResponse()
		resp.ServerUpdatesListItems = append(resp.ServerUpdatesListItems, r.UpdatedItems...)
		resp.ConfirmedDeletions = append(resp.ConfirmedDeletions, r.DeletedItemIDs...)
		resp.ServerSyncTimestamp = serverTime
		return resp, nil
	}}

	rec := postSync(t, newHandlerWithSyncService(svc, "").Init(), body, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, 1, svc.calls)
	assert.Equal(t, req, svc.received)

	resp := decodeSyncResponse(t, rec)
	assert.Empty(t, resp.ErrorMessage)
	assert.Equal(t, []uuid.UUID{deletedID}, resp.ConfirmedDeletions)
	require.Len(t, resp.ServerUpdatesListItems, 1)
	assert.Equal(t, itemID, resp.ServerUpdatesListItems[0].ID)
	assert.True(t, serverTime.Equal(resp.ServerSyncTimestamp))
}

func TestSync_EmptyCollectionsEncodeAsArrays(t *testing.T) {
	svc := &stubSyncService{reconcile: func(context.Context, models.SyncRequest) (models.SyncResponse, error) {
		return models.NewEmptySyncResponse(), nil
	}}

	rec := postSync(t, newHandlerWithSyncService(svc, "").Init(), []byte(`{"updated_items":[],"deleted_item_ids":[],"last_sync_timestamp":"0001-01-01T00:00:00Z"}`), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	for _, field := range []string{"server_updates_list_items", "server_updates_categories", "server_updates_stores", "server_updates_user_lists", "confirmed_deletions"} {
		assert.Contains(t, rec.Body.String(), `"`+field+`":[]`)
	}
}

func TestSync_BadBody(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantMessage string
	}{
		{name: "empty body", body: "", wantMessage: app.MsgEmptyBody},
		{name: "null body", body: "null", wantMessage: app.MsgEmptyBody},
		{name: "not json", body: "not-json", wantMessage: app.MsgMalformedBody},
		{name: "wrong type", body: `{"updated_items":"milk"}`, wantMessage: app.MsgMalformedBody},
		{name: "bad timestamp", body: `{"last_sync_timestamp":"yesterday"}`, wantMessage: app.MsgMalformedBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubSyncService{}

			rec := postSync(t, newHandlerWithSyncService(svc, "").Init(), []byte(tt.body), nil)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Zero(t, svc.calls, "service must not be called")

			resp := decodeSyncResponse(t, rec)
			assert.Equal(t, tt.wantMessage, resp.ErrorMessage)
			assert.NotNil(t, resp.ServerUpdatesListItems)
			assert.NotNil(t, resp.ConfirmedDeletions)
		})
	}
}

func TestSync_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid data", err: fmt.Errorf("%w: name is required", service.ErrInvalidDataProvided), wantStatus: http.StatusBadRequest},
		{name: "dangling reference", err: fmt.Errorf("%w: category", service.ErrDanglingReference), wantStatus: http.StatusUnprocessableEntity},
		{name: "no fallback", err: service.ErrNoFallbackReference, wantStatus: http.StatusInternalServerError},
		{name: "store failure", err: fmt.Errorf("%w: %w", store.ErrExecutingQuery, errors.New("connection reset")), wantStatus: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubSyncService{reconcile: func(context.Context, models.SyncRequest) (models.SyncResponse, error) {
				return models.NewErrorSyncResponse(tt.err.Error()), tt.err
			}}

			rec := postSync(t, newHandlerWithSyncService(svc, "").Init(), sampleSyncBody(t), nil)

			require.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeSyncResponse(t, rec)
			assert.Equal(t, tt.err.Error(), resp.ErrorMessage)
			assert.Empty(t, resp.ServerUpdatesListItems)
		})
	}
}

func TestSync_IntegrityCheck(t *testing.T) {
	body := sampleSyncBody(t)
	hasher := utils.NewHasher(testHashKey)

	tests := []struct {
		name       string
		headers    map[string]string
		wantStatus int
		wantCalls  int
	}{
		{name: "signed", headers: map[string]string{utils.HashHeader: hasher.Sum(body)}, wantStatus: http.StatusOK, wantCalls: 1},
		{name: "unsigned", headers: nil, wantStatus: http.StatusBadRequest},
		{name: "tampered", headers: map[string]string{utils.HashHeader: hasher.Sum([]byte("{}"))}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubSyncService{reconcile: func(context.Context, models.SyncRequest) (models.SyncResponse, error) {
				return models.NewEmptySyncResponse(), nil
			}}

			rec := postSync(t, newHandlerWithSyncService(svc, testHashKey).Init(), body, tt.headers)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalls, svc.calls)
		})
	}
}

func TestSync_TraceIDReachesService(t *testing.T) {
	var got string
	svc := &stubSyncService{reconcile: func(ctx context.Context, _ models.SyncRequest) (models.SyncResponse, error) {
		got, _ = utils.GetTraceIDFromContext(ctx)
		return models.NewEmptySyncResponse(), nil
	}}

	rec := postSync(t, newHandlerWithSyncService(svc, "").Init(), sampleSyncBody(t), map[string]string{utils.TraceIDHeader: "trace-7"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "trace-7", got)
	assert.Equal(t, "trace-7", rec.Header().Get(utils.TraceIDHeader))
}

func TestSync_PanicInServiceIsRecovered(t *testing.T) {
	svc := &stubSyncService{reconcile: func(context.Context, models.SyncRequest) (models.SyncResponse, error) {
		panic("unexpected")
	}}

	rec := postSync(t, newHandlerWithSyncService(svc, "").Init(), sampleSyncBody(t), nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	resp := decodeSyncResponse(t, rec)
	assert.Equal(t, app.MsgInternalServerError, resp.ErrorMessage)
	assert.Empty(t, resp.ServerUpdatesListItems)
	assert.NotNil(t, resp.ServerUpdatesListItems)
	assert.Empty(t, resp.ServerUpdatesCategories)
	assert.Empty(t, resp.ServerUpdatesStores)
	assert.Empty(t, resp.ServerUpdatesUserLists)
	assert.Empty(t, resp.ConfirmedDeletions)
}

func TestSync_PanicWithErrorValueIsRecovered(t *testing.T) {
	svc := &stubSyncService{reconcile: func(context.Context, models.SyncRequest) (models.SyncResponse, error) {
		var repos map[string]int
		repos["list_items"]++
		return models.NewEmptySyncResponse(), nil
	}}

	rec := postSync(t, newHandlerWithSyncService(svc, "").Init(), sampleSyncBody(t), nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, app.MsgInternalServerError, decodeSyncResponse(t, rec).ErrorMessage)
}

func TestSync_BodyLimit(t *testing.T) {
	body := sampleSyncBody(t)

	tests := []struct {
		name       string
		limit      int64
		wantStatus int
		wantCalls  int
	}{
		{name: "within limit", limit: int64(len(body)), wantStatus: http.StatusOK, wantCalls: 1},
		{name: "over limit", limit: int64(len(body) / 2), wantStatus: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubSyncService{reconcile: func(context.Context, models.SyncRequest) (models.SyncResponse, error) {
				return models.NewEmptySyncResponse(), nil
			}}
			h := newHandlerWithSyncService(svc, "")
			h.maxBodyBytes = tt.limit

			rec := postSync(t, h.Init(), body, nil)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalls, svc.calls)
			if tt.wantStatus != http.StatusOK {
				assert.Equal(t, app.MsgBodyTooLarge, decodeSyncResponse(t, rec).ErrorMessage)
			}
		})
	}
}

func TestSync_GzipRequestAndResponse(t *testing.T) {
	svc := &stubSyncService{reconcile: func(context.Context, models.SyncRequest) (models.SyncResponse, error) {
		return models.NewEmptySyncResponse(), nil
	}}

	req := httptest.NewRequest(http.MethodPost, "/api/sync", bytes.NewReader(gzipBytes(t, sampleSyncBody(t))))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	newHandlerWithSyncService(svc, "").Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.calls)
	assert.True(t, strings.Contains(rec.Header().Get("Content-Encoding"), "gzip"))
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid data", err: service.ErrInvalidDataProvided, want: http.StatusBadRequest},
		{name: "wrapped dangling", err: fmt.Errorf("reconcile: %w", service.ErrDanglingReference), want: http.StatusUnprocessableEntity},
		{name: "no fallback", err: service.ErrNoFallbackReference, want: http.StatusInternalServerError},
		{name: "begin tx", err: store.ErrBeginningTransaction, want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("x"), want: http.StatusInternalServerError},
		{name: "panic", err: fmt.Errorf("%w: boom", ErrReconcilePanicked), want: http.StatusInternalServerError},
		{
			name: "dangling wrapping record not found",
			err:  fmt.Errorf("%w: %w", service.ErrDanglingReference, store.ErrRecordNotFound),
			want: http.StatusUnprocessableEntity,
		},
		{
			name: "invalid data wrapping store error",
			err:  errors.Join(store.ErrExecutingQuery, service.ErrInvalidDataProvided),
			want: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// repeated to catch order-dependent matching
			for i := 0; i < 50; i++ {
				assert.Equal(t, tt.want, statusFromError(tt.err))
			}
		})
	}
}
