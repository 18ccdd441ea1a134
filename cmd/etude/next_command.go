package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newNextCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "next <song-id>",
		Short: "Show the next measure or group to practice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			songID, err := parseSongID(args[0])
			if err != nil {
				return err
			}
			return ctx.withBackend(cmd.Context(), func(runCtx context.Context, backend practiceBackend) error {
				next, err := backend.Next(runCtx, songID)
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, next)
				}

				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				if next.Fallback {
					fmt.Fprintln(out, renderStatusLine("Next", statusInfo,
						"measure 1 (nothing practiceable yet)", colorize))
					return nil
				}

				target := fmt.Sprintf("measure %d", next.Measure)
				if next.IsGroup {
					target = fmt.Sprintf("measures %d-%d (%s)", next.Measure, next.EndMeasure, next.GroupID)
				}
				kind := statusKindForCategory(next.Category)
				detail := fmt.Sprintf("%s, practiced %d times", next.Category, next.PracticeCount)

				fmt.Fprintln(out, renderStatusLine("Next", kind, target, colorize))
				fmt.Fprintln(out, renderStatusLine("Progress", statusInfo, detail, colorize))
				fmt.Fprintln(out, renderStatusLine("Window", statusInfo,
					fmt.Sprintf("measures 1-%d in play", next.Window), colorize))
				if len(next.Files) > 0 {
					fmt.Fprintln(out, renderStatusLine("Score", statusInfo,
						strings.Join(next.Files, ", "), colorize))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of status lines")
	return cmd
}
