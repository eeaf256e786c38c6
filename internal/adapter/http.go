package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-shopping-sync/internal/config"
	"github.com/MKhiriev/go-shopping-sync/internal/logger"
	"github.com/MKhiriev/go-shopping-sync/internal/utils"
	"github.com/MKhiriev/go-shopping-sync/models"
)

const syncPath = "/api/sync"

type httpServerAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/JSON implementation of
// [ServerAdapter]. It normalises adapterCfg.HTTPAddress into a base URL and
// signs request bodies with appCfg.HashKey when one is configured.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		hasher: utils.NewHasher(appCfg.HashKey),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Sync implements [ServerAdapter]. It POSTs req to /api/sync with the trace
// id of ctx, or a fresh one, and the HashSHA256 signature of the body.
func (h *httpServerAdapter) Sync(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	log := logger.FromContext(ctx)

	body, err := json.Marshal(req)
	if err != nil {
		return models.SyncResponse{}, fmt.Errorf("%w: encode sync request: %w", ErrTransport, err)
	}

	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = uuid.NewString()
	}

	request := h.client.R().
		SetContext(ctx).
		SetHeader(utils.TraceIDHeader, traceID).
		SetBody(body)
	if h.hasher.Enabled() {
		request.SetHeader(utils.HashHeader, h.hasher.Sum(body))
	}

	resp, err := request.Post(syncPath)
	if err != nil {
		log.Err(err).Str("func", "httpServerAdapter.Sync").Str("trace_id", traceID).Msg("sync request failed")
		return models.SyncResponse{}, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).
			Str("func", "httpServerAdapter.Sync").
			Str("trace_id", traceID).
			Int("status", resp.StatusCode()).
			Msg("server answered sync with an error status")
		return models.SyncResponse{}, err
	}

	var syncResp models.SyncResponse
	if err = json.Unmarshal(resp.Body(), &syncResp); err != nil {
		log.Err(err).Str("func", "httpServerAdapter.Sync").Str("trace_id", traceID).Msg("failed to decode sync response")
		return models.SyncResponse{}, fmt.Errorf("%w: %w: %w", ErrTransport, ErrDecodeResponse, err)
	}

	return syncResp, nil
}
