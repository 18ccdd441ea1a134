package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"etude/internal/api"
)

func newLogCommand(ctx *commandContext) *cobra.Command {
	var (
		groupID  string
		songID   int64
		measure  int
		filename string
		duration int
		notes    string
	)

	cmd := &cobra.Command{
		Use:   "log <rating>",
		Short: "Record a practice session (easy, medium, hard, or snooze)",
		Long: "Log records one practice attempt. Address the group directly with " +
			"--group, or give --song with --measure (or --file) and let the tracker " +
			"resolve the group, creating a single-measure group if needed.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withBackend(cmd.Context(), func(runCtx context.Context, backend practiceBackend) error {
				session, err := backend.LogPractice(runCtx, api.PracticeRequest{
					SongID:          songID,
					GroupID:         groupID,
					Rating:          args[0],
					Filename:        filename,
					Measure:         measure,
					DurationSeconds: duration,
					Notes:           notes,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Logged %s for %s\n", session.Rating, session.GroupID)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&groupID, "group", "g", "", "Measure group id (e.g. song|measure3)")
	cmd.Flags().Int64VarP(&songID, "song", "s", 0, "Song id")
	cmd.Flags().IntVarP(&measure, "measure", "m", 0, "Measure number within the song")
	cmd.Flags().StringVarP(&filename, "file", "f", "", "Score filename to resolve the song from")
	cmd.Flags().IntVar(&duration, "duration", 0, "Practice time in seconds")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form note on the attempt")
	return cmd
}
