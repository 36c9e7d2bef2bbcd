package server

import "context"

// Server defines the lifecycle contract of the application server.
//
// RunServer blocks until a stop signal arrives and shutdown completes.
// Shutdown stops accepting requests and waits for in-flight ones, bounded by
// ctx.
type Server interface {
	RunServer() error
	Shutdown(ctx context.Context) error
}

// Runner is a background job that lives as long as the server.
type Runner interface {
	Run(ctx context.Context) error
}
