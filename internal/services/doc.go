// Package services provides cross-cutting helpers shared by the store, the
// scheduler, and the API server: sentinel errors with a Wrap helper for
// classification, and context carriers for song, group, and request
// identifiers that structured logging picks up automatically.
package services
