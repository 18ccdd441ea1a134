// Package daemon composes the practice store, scheduler, and HTTP API into
// a single lifecycle with flock-based locking to prevent multiple instances
// from sharing one database.
package daemon
