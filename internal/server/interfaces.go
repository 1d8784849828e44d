package server

import "context"

// Server defines the lifecycle contract for the transport server managed by
// this package.
//
// Implementations are expected to block in [RunServer] until ctx is
// cancelled or a stop signal arrives, and to release resources in
// [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown(ctx context.Context) error
}
