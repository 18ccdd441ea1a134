// Package scores maps a MusicXML score library on disk to the practice
// store.
//
// A library is a directory of song folders. Each folder holds a main score
// file plus per-measure exports named "*measure_N.musicxml" and optional
// range exports named "*measures_A-B.musicxml". The scanner reads that
// layout, the importer registers it idempotently, and the filename helpers
// translate between client-supplied paths and songs.
package scores
