// Package server owns the process lifecycle of the backend's transport
// servers. It starts the HTTP server, listens for termination signals and
// shuts everything down gracefully.
package server
