// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-shopping-sync/internal/app"
	"github.com/MKhiriev/go-shopping-sync/internal/logger"
	"github.com/MKhiriev/go-shopping-sync/internal/utils"
	"github.com/MKhiriev/go-shopping-sync/models"
)

// sync handles POST /api/sync. Every answer, failures included, is a sync
// response document.
func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	h.limitBody(w, r)
	syncRequest, err := utils.DecodeJSON[models.SyncRequest](r.Body)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		log.Err(err).Str("func", "*Handler.sync").Int64("limit", tooLarge.Limit).Msg(app.MsgBodyTooLarge)
		utils.WriteJSON(w, models.NewErrorSyncResponse(app.MsgBodyTooLarge), http.StatusRequestEntityTooLarge)
		return
	}
	if err != nil {
		message := app.MsgMalformedBody
		if errors.Is(err, utils.ErrEmptyBody) {
			message = app.MsgEmptyBody
		}
		log.Err(err).Str("func", "*Handler.sync").Msg(message)
		utils.WriteJSON(w, models.NewErrorSyncResponse(message), http.StatusBadRequest)
		return
	}

	response, err := h.reconcile(r, syncRequest)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.sync").Int("status", status).Msg("synchronization failed")
		utils.WriteJSON(w, response, status)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

// reconcile runs the sync service, turning a panic into an error response
// so the client still receives a sync response document.
func (h *Handler) reconcile(r *http.Request, req models.SyncRequest) (resp models.SyncResponse, err error) {
	defer func() {
		if p := recover(); p != nil {
			logger.FromRequest(r).Error().
				Str("func", "*Handler.reconcile").
				Interface("panic", p).
				Bytes("stack", debug.Stack()).
				Msg("sync service panicked")
			resp = models.NewErrorSyncResponse(app.MsgInternalServerError)
			err = fmt.Errorf("%w: %v", ErrReconcilePanicked, p)
		}
	}()

	return h.services.SyncService.Reconcile(r.Context(), req)
}
