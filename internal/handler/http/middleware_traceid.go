package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-shopping-sync/internal/utils"
)

func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(utils.TraceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		ctx := h.logger.WithTraceID(traceID).WithContext(r.Context())
		ctx = utils.WithTraceID(ctx, traceID)
		r = r.WithContext(ctx)

		w.Header().Set(utils.TraceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
