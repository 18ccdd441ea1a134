package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"etude/internal/api"
)

func newSongsCommand(ctx *commandContext) *cobra.Command {
	songsCmd := &cobra.Command{
		Use:   "songs",
		Short: "Manage the song library",
	}
	songsCmd.AddCommand(newSongsListCommand(ctx))
	songsCmd.AddCommand(newSongsAddCommand(ctx))
	return songsCmd
}

func newSongsListCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List songs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withBackend(cmd.Context(), func(runCtx context.Context, backend practiceBackend) error {
				songs, err := backend.ListSongs(runCtx)
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, api.SongListResponse{Songs: songs})
				}
				if len(songs) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No songs in the library. Run `etude scan` to import scores.")
					return nil
				}

				fmt.Fprintln(cmd.OutOrStdout(), renderSongsTable(songs))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newSongsAddCommand(ctx *commandContext) *cobra.Command {
	var source string
	var composer string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Register a song by hand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withBackend(cmd.Context(), func(runCtx context.Context, backend practiceBackend) error {
				song, err := backend.CreateSong(runCtx, api.CreateSongRequest{
					Title:    args[0],
					Composer: composer,
					Source:   source,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added song %d: %s (%s)\n", song.ID, song.Title, song.Source)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "Source slug (defaults to a dashed form of the title)")
	cmd.Flags().StringVar(&composer, "composer", "", "Composer display name")
	return cmd
}
