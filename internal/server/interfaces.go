package server

// Server is the lifecycle contract of the transport server.
//
// RunServer blocks until a termination signal arrives or the listener fails.
// Shutdown stops accepting connections and waits for in-flight requests.
type Server interface {
	RunServer()
	Shutdown()
}
