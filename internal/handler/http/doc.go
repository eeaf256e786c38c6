// Package http implements the HTTP transport of the sync server.
//
// It exposes route wiring, the POST /api/sync and GET /api/version handlers,
// and middleware for request tracing, access logging, gzip compression and
// body integrity checks. Requests are delegated to the service layer.
package http
