package http

import (
	"net/http"
)

// getServerVersion lets clients check which server build they sync against.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(h.services.AppInfoService.GetAppVersion(r.Context())))
}
