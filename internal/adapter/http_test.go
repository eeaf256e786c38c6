// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-shopping-sync/internal/config"
	"github.com/MKhiriev/go-shopping-sync/internal/logger"
	"github.com/MKhiriev/go-shopping-sync/internal/utils"
	"github.com/MKhiriev/go-shopping-sync/models"
)

const testHashKey = "testhashkey"

// newTestAdapter points an httpServerAdapter at serverURL.
func newTestAdapter(t *testing.T, serverURL, hashKey string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: time.Second}
	appCfg := config.ClientApp{HashKey: hashKey}

	a, err := NewHTTPServerAdapter(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func testContext() context.Context {
	return logger.Nop().WithContext(context.Background())
}

func testRequest() models.SyncRequest {
	return models.NewSyncRequest(
		[]models.ListItem{{
			ID:           uuid.MustParse("0190b3a0-0000-7000-8000-0000000000a1"),
			Name:         "Milk",
			CategoryID:   uuid.MustParse("0190b3a0-0000-7000-8000-000000000001"),
			StoreID:      uuid.MustParse("0190b3a0-0000-7000-8000-000000000011"),
			PurchaseType: models.PurchaseTypeOffline,
			IsActive:     true,
			UserListID:   uuid.MustParse("0190b3a0-0000-7000-8000-000000000021"),
		}},
		[]uuid.UUID{uuid.MustParse("0190b3a0-0000-7000-8000-0000000000d1")},
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	)
}

func signature(key string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// ── NewHTTPServerAdapter ─────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
	}{
		{name: "empty", address: ""},
		{name: "blank", address: "   "},
		{name: "no host", address: "http://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: tt.address}, config.ClientApp{}, logger.Nop())
			assert.Error(t, err)
		})
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: "http://localhost:8080/", want: "http://localhost:8080"},
		{raw: " https://sync.example.com ", want: "https://sync.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Sync ─────────────────────────────────────────────────────────────────────

func TestSync_Success(t *testing.T) {
	req := testRequest()
	want := models.NewEmptySyncResponse()
	want.ServerUpdatesListItems = append(want.ServerUpdatesListItems, req.UpdatedItems...)
	want.ConfirmedDeletions = append(want.ConfirmedDeletions, req.DeletedItemIDs...)
	want.ServerSyncTimestamp = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/sync", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get(utils.TraceIDHeader))

		var got models.SyncRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, req, got)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL, "").Sync(testContext(), req)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSync_EmptyCollectionsEncodeAsArrays(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"updated_items":[],"deleted_item_ids":[],"last_sync_timestamp":"0001-01-01T00:00:00Z"}`, string(body))
		_ = json.NewEncoder(w).Encode(models.NewEmptySyncResponse())
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, "").Sync(testContext(), models.NewSyncRequest(nil, nil, time.Time{}))

	require.NoError(t, err)
}

func TestSync_SignsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, signature(testHashKey, body), r.Header.Get(utils.HashHeader))
		_ = json.NewEncoder(w).Encode(models.NewEmptySyncResponse())
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, testHashKey).Sync(testContext(), testRequest())

	require.NoError(t, err)
}

func TestSync_NoHashKey_NoSignatureHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(utils.HashHeader))
		_ = json.NewEncoder(w).Encode(models.NewEmptySyncResponse())
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, "").Sync(testContext(), testRequest())

	require.NoError(t, err)
}

func TestSync_ForwardsTraceIDFromContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "trace-42", r.Header.Get(utils.TraceIDHeader))
		_ = json.NewEncoder(w).Encode(models.NewEmptySyncResponse())
	}))
	defer srv.Close()

	ctx := utils.WithTraceID(testContext(), "trace-42")
	_, err := newTestAdapter(t, srv.URL, "").Sync(ctx, testRequest())

	require.NoError(t, err)
}

func TestSync_ServerReportedErrorIsNotTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.NewErrorSyncResponse("database is busy"))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL, "").Sync(testContext(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, "database is busy", got.ErrorMessage)
}

func TestSync_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "bad request", status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{name: "unprocessable", status: http.StatusUnprocessableEntity, wantErr: ErrUnprocessable},
		{name: "internal error", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: ErrTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_ = json.NewEncoder(w).Encode(models.NewErrorSyncResponse("rejected"))
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL, "").Sync(testContext(), testRequest())

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrTransport)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "rejected")
		})
	}
}

func TestSync_UndecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>proxy error</html>"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, "").Sync(testContext(), testRequest())

	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, ErrDecodeResponse)
}

func TestSync_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url, "").Sync(testContext(), testRequest())

	assert.ErrorIs(t, err, ErrTransport)
}

func TestSync_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	a, err := NewHTTPServerAdapter(
		config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: 20 * time.Millisecond},
		config.ClientApp{},
		logger.Nop(),
	)
	require.NoError(t, err)

	_, err = a.Sync(testContext(), testRequest())

	assert.ErrorIs(t, err, ErrTransport)
}
