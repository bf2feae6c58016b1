package server

// Server runs the marketplace transports and background workers as one
// process.
type Server interface {
	// RunServer blocks until SIGINT, SIGTERM or SIGQUIT arrives or a transport
	// fails, then shuts everything down.
	RunServer()

	// Shutdown stops every transport. Calling it more than once is a no-op.
	Shutdown()
}
