package server

// Server is what cmd/server runs: the sync API listener.
type Server interface {
	// RunServer serves until SIGINT or SIGTERM, then shuts down.
	RunServer()

	// Shutdown drains in-flight sync requests and closes the listener.
	Shutdown()
}
