// Package server runs the HTTP transport of the user service.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown once SIGTERM, SIGINT or SIGQUIT is received.
package server
