package api

import (
	"etude/internal/scheduler"
	"etude/internal/store"
)

// FromSong converts a library row to its API representation. The measure
// total is supplied by the caller since it lives in the groups table.
func FromSong(song *store.Song, totalMeasures int) Song {
	if song == nil {
		return Song{}
	}
	dto := Song{
		ID:            song.ID,
		Title:         song.Title,
		Composer:      song.Composer,
		Source:        song.Source,
		TotalMeasures: totalMeasures,
	}
	if !song.CreatedAt.IsZero() {
		dto.CreatedAt = song.CreatedAt.UTC().Format(dateTimeFormat)
	}
	return dto
}

// FromGroup converts a measure group row to its API representation.
func FromGroup(group *store.Group) MeasureGroup {
	if group == nil {
		return MeasureGroup{}
	}
	return MeasureGroup{
		ID:           group.ID,
		SongID:       group.SongID,
		StartMeasure: group.Start,
		EndMeasure:   group.End,
		Single:       group.IsSingle(),
	}
}

// FromGroups converts a slice of measure group rows.
func FromGroups(groups []*store.Group) []MeasureGroup {
	out := make([]MeasureGroup, 0, len(groups))
	for _, group := range groups {
		out = append(out, FromGroup(group))
	}
	return out
}

// FromSession converts a session row to its API representation.
func FromSession(session *store.Session) Session {
	if session == nil {
		return Session{}
	}
	dto := Session{
		ID:              session.ID,
		GroupID:         session.GroupID,
		Rating:          string(session.Rating),
		DurationSeconds: session.DurationSeconds,
		Notes:           session.Notes,
	}
	if !session.PracticedAt.IsZero() {
		dto.PracticedAt = session.PracticedAt.UTC().Format(dateTimeFormat)
	}
	return dto
}

// FromRecommendation converts a scheduling decision to its API
// representation, attaching the candidate score filenames for the measure.
func FromRecommendation(songID int64, rec *scheduler.Recommendation, files []string) Next {
	if rec == nil {
		return Next{SongID: songID}
	}
	dto := Next{
		SongID:        songID,
		GroupID:       rec.GroupID,
		Measure:       rec.Measure,
		EndMeasure:    rec.EndMeasure,
		IsGroup:       rec.IsGroup,
		Category:      rec.Category.String(),
		BestScore:     rec.BestScore,
		PracticeCount: rec.PracticeCount,
		Window:        rec.Window,
		Fallback:      rec.Fallback,
		Files:         files,
	}
	if !rec.LastPracticed.IsZero() {
		dto.LastPracticed = rec.LastPracticed.UTC().Format(dateTimeFormat)
	}
	return dto
}
