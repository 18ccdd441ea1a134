// Package server implements the daemon's HTTP JSON API: library CRUD,
// practice logging, the next-measure endpoint, and daemon status. Requests
// carry a correlation id, pass CORS headers for browser clients, and
// optionally require a bearer token.
package server
