package server

// Server runs the six-cities API until it is told to stop.
type Server interface {
	// RunServer serves requests and blocks until a stop signal arrives or
	// the listener fails.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight requests
	// up to the configured shutdown timeout.
	Shutdown()
}
