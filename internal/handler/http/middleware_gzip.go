package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-shopping-sync/internal/app"
	"github.com/MKhiriev/go-shopping-sync/internal/utils"
	"github.com/MKhiriev/go-shopping-sync/models"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(io.Discard)
	},
}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZip inflates gzip request bodies and compresses responses for
// clients that accept gzip. Sync payloads carry the whole list on every
// request, so both directions are worth compressing.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hasGzip(r.Header.Get("Content-Encoding")) && r.Body != nil {
			body, err := inflate(r.Body)
			if err != nil {
				utils.WriteJSON(w, models.NewErrorSyncResponse(app.MsgMalformedBody), http.StatusBadRequest)
				return
			}
			r.Body = body
			r.Header.Del("Content-Encoding")
		}

		if !hasGzip(r.Header.Get("Accept-Encoding")) {
			next.ServeHTTP(w, r)
			return
		}

		zw := gzipWriterPool.Get().(*gzip.Writer)
		zw.Reset(w)
		gw := &gzipResponseWriter{ResponseWriter: w, gzipWriter: zw}

		next.ServeHTTP(gw, r)

		if !gw.wroteHeader {
			// an untouched response must stay empty
			zw.Reset(io.Discard)
		}
		zw.Close()
		gzipWriterPool.Put(zw)
	})
}

func hasGzip(header string) bool {
	return strings.Contains(header, "gzip")
}

// inflate wraps body in a pooled gzip reader. The reader returns to the
// pool when the body is closed.
func inflate(body io.ReadCloser) (io.ReadCloser, error) {
	zr := gzipReaderPool.Get().(*gzip.Reader)
	if err := zr.Reset(body); err != nil {
		gzipReaderPool.Put(zr)
		return nil, err
	}

	return &wrappedReadCloser{
		Reader: zr,
		OnClose: func() {
			zr.Close()
			body.Close()
			gzipReaderPool.Put(zr)
		},
	}, nil
}

type wrappedReadCloser struct {
	io.Reader
	OnClose func()
}

func (w *wrappedReadCloser) Close() error {
	if w.OnClose != nil {
		w.OnClose()
	}
	return nil
}

type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter  *gzip.Writer
	wroteHeader bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.Header().Set("Content-Encoding", "gzip")
	w.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.gzipWriter.Write(data)
}
