// Package server wires and runs the application's HTTP server.
//
// It owns the server lifecycle: listening, signal handling and graceful
// shutdown once the run context is cancelled or a stop signal arrives.
package server
