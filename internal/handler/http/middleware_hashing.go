package http

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-shopping-sync/internal/app"
	"github.com/MKhiriev/go-shopping-sync/internal/logger"
	"github.com/MKhiriev/go-shopping-sync/internal/utils"
	"github.com/MKhiriev/go-shopping-sync/models"
)

// withHashCheck rejects requests whose HashSHA256 header is missing or does
// not match the HMAC of the body. It is a pass-through when no hash key is
// configured.
func (h *Handler) withHashCheck(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.hasher.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		h.limitBody(w, r)
		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withHashCheck").Msg("failed to read request body")
			writeBodyReadError(w, err)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		signature := r.Header.Get(utils.HashHeader)
		switch {
		case signature == "":
			err = ErrMissingHash
		case !h.hasher.Verify(body, signature):
			err = ErrHashMismatch
		}
		if err != nil {
			log.Err(err).Str("func", "*Handler.withHashCheck").Str("hash from request", signature).Msg("integrity check failed")
			utils.WriteJSON(w, models.NewErrorSyncResponse(app.MsgIntegrityCheckFailed), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// maxSyncBodyBytes caps a sync request body after gzip inflation.
const maxSyncBodyBytes int64 = 32 << 20

// limitBody makes reads past the body limit fail with *http.MaxBytesError.
func (h *Handler) limitBody(w http.ResponseWriter, r *http.Request) {
	limit := h.maxBodyBytes
	if limit <= 0 {
		limit = maxSyncBodyBytes
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)
}

// writeBodyReadError answers 413 for oversized bodies and 500 otherwise.
func writeBodyReadError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		utils.WriteJSON(w, models.NewErrorSyncResponse(app.MsgBodyTooLarge), http.StatusRequestEntityTooLarge)
		return
	}
	utils.WriteJSON(w, models.NewErrorSyncResponse(app.MsgInternalServerError), http.StatusInternalServerError)
}
