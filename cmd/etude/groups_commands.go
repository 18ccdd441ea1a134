package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"etude/internal/api"
)

func newGroupsCommand(ctx *commandContext) *cobra.Command {
	groupsCmd := &cobra.Command{
		Use:   "groups",
		Short: "Manage measure groups",
	}
	groupsCmd.AddCommand(newGroupsListCommand(ctx))
	groupsCmd.AddCommand(newGroupsAddCommand(ctx))
	return groupsCmd
}

func newGroupsListCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list <song-id>",
		Short: "List a song's measure groups",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			songID, err := parseSongID(args[0])
			if err != nil {
				return err
			}
			return ctx.withBackend(cmd.Context(), func(runCtx context.Context, backend practiceBackend) error {
				groups, err := backend.ListGroups(runCtx, songID)
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, api.GroupListResponse{Groups: groups})
				}
				if len(groups) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No measure groups registered for this song.")
					return nil
				}

				fmt.Fprintln(cmd.OutOrStdout(), renderGroupsTable(groups))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newGroupsAddCommand(ctx *commandContext) *cobra.Command {
	var start, end int

	cmd := &cobra.Command{
		Use:   "add <song-id>",
		Short: "Register a measure span for a song",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			songID, err := parseSongID(args[0])
			if err != nil {
				return err
			}
			if end == 0 {
				end = start
			}
			return ctx.withBackend(cmd.Context(), func(runCtx context.Context, backend practiceBackend) error {
				group, err := backend.CreateGroup(runCtx, api.CreateGroupRequest{
					SongID:       songID,
					StartMeasure: start,
					EndMeasure:   end,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added group %s (measures %d-%d)\n", group.ID, group.StartMeasure, group.EndMeasure)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&start, "start", 1, "First measure of the span")
	cmd.Flags().IntVar(&end, "end", 0, "Last measure of the span (defaults to start)")
	return cmd
}

func parseSongID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid song id %q", raw)
	}
	return id, nil
}
