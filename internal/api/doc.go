// Package api defines the transport DTOs for the practice daemon and the
// PracticeService that produces them. The daemon's HTTP handlers and the CLI
// both consume this package so local and remote modes stay in sync.
package api
