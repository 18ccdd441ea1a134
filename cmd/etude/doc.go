// Package main hosts the etude CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into practice
// operations: scanning score libraries, logging sessions, asking for the next
// measure to work on, and daemon or configuration management. Commands talk to
// a running daemon over HTTP when --addr is set and open the local database
// directly otherwise, through a shared backend interface.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
