// Package client is a small HTTP client for the etude daemon API, used by
// CLI commands when a remote daemon is targeted.
package client
