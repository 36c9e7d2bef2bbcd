// Package server wires and runs the clinical-records HTTP server.
//
// It owns the server lifecycle: startup, background workers, signal handling
// and graceful shutdown, after which the storage is closed.
package server
