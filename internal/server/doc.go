// Package server wires and runs the application's transport servers.
//
// It owns the HTTP server of the REST API, the optional gRPC health server
// and the background workers, and stops all of them gracefully on
// SIGINT, SIGTERM or SIGQUIT.
package server
