package api

// dateTimeFormat is used for RFC3339 timestamps in API payloads.
const dateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Song describes a library entry in a transport-friendly format.
type Song struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Composer      string `json:"composer,omitempty"`
	Source        string `json:"source"`
	TotalMeasures int    `json:"totalMeasures"`
	CreatedAt     string `json:"createdAt,omitempty"`
}

// MeasureGroup describes one practiceable measure span.
type MeasureGroup struct {
	ID           string `json:"id"`
	SongID       int64  `json:"songId"`
	StartMeasure int    `json:"startMeasure"`
	EndMeasure   int    `json:"endMeasure"`
	Single       bool   `json:"single"`
}

// Session describes one logged practice attempt.
type Session struct {
	ID              int64  `json:"id"`
	GroupID         string `json:"groupId"`
	Rating          string `json:"rating"`
	PracticedAt     string `json:"practicedAt,omitempty"`
	DurationSeconds int    `json:"durationSeconds,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// Next describes a scheduling recommendation.
type Next struct {
	SongID        int64    `json:"songId"`
	GroupID       string   `json:"groupId,omitempty"`
	Measure       int      `json:"measure"`
	EndMeasure    int      `json:"endMeasure,omitempty"`
	IsGroup       bool     `json:"isGroup"`
	Category      string   `json:"category"`
	BestScore     int      `json:"bestScore"`
	PracticeCount int      `json:"practiceCount"`
	LastPracticed string   `json:"lastPracticed,omitempty"`
	Window        int      `json:"window"`
	Fallback      bool     `json:"fallback"`
	Files         []string `json:"files,omitempty"`
}

// LibraryStats summarizes library size.
type LibraryStats struct {
	Songs    int `json:"songs"`
	Groups   int `json:"groups"`
	Sessions int `json:"sessions"`
}

// DaemonStatus aggregates daemon runtime information for API consumers.
type DaemonStatus struct {
	Running      bool         `json:"running"`
	PID          int          `json:"pid"`
	DBPath       string       `json:"dbPath"`
	LockFilePath string       `json:"lockFilePath"`
	BindAddress  string       `json:"bindAddress,omitempty"`
	Library      LibraryStats `json:"library"`
}

// CreateSongRequest is the payload for registering a song by hand.
type CreateSongRequest struct {
	Title    string `json:"title"`
	Composer string `json:"composer"`
	Source   string `json:"source"`
}

// CreateGroupRequest is the payload for registering a measure span.
type CreateGroupRequest struct {
	SongID       int64 `json:"songId"`
	StartMeasure int   `json:"startMeasure"`
	EndMeasure   int   `json:"endMeasure"`
}

// PracticeRequest is the payload for logging a practice session. Clients
// either address a group directly or supply a filename and measure that the
// service resolves best-effort.
type PracticeRequest struct {
	SongID          int64  `json:"songId,omitempty"`
	GroupID         string `json:"groupId,omitempty"`
	Rating          string `json:"rating"`
	Filename        string `json:"filename,omitempty"`
	Measure         int    `json:"measure,omitempty"`
	DurationSeconds int    `json:"durationSeconds,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// SongListResponse wraps a collection of songs.
type SongListResponse struct {
	Songs []Song `json:"songs"`
}

// GroupListResponse wraps a collection of measure groups.
type GroupListResponse struct {
	Groups []MeasureGroup `json:"groups"`
}

// SongResponse wraps a single song.
type SongResponse struct {
	Song Song `json:"song"`
}

// GroupResponse wraps a single measure group.
type GroupResponse struct {
	Group MeasureGroup `json:"group"`
}

// SessionResponse wraps a logged session.
type SessionResponse struct {
	Session Session `json:"session"`
}

// NextResponse wraps a scheduling recommendation.
type NextResponse struct {
	Next Next `json:"next"`
}
