package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-shopping-sync/internal/logger"
)

// withLogging writes one access log line per request through the request
// scoped logger. Server errors are logged at error level.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		status := rw.status
		if status == 0 {
			// nothing written, net/http answers 200
			status = http.StatusOK
		}

		log := logger.FromRequest(r)
		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		}

		event.
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", rw.size).
			Msg("request handled")
	})
}
