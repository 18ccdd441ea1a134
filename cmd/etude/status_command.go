package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"etude/internal/client"
	"etude/internal/config"
	"etude/internal/store"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show daemon and library status",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr := ctx.daemonAddr(); addr != "" {
				return remoteStatus(cmd, ctx, addr, jsonOut)
			}
			return localStatus(cmd, ctx, jsonOut)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of status lines")
	return cmd
}

func remoteStatus(cmd *cobra.Command, ctx *commandContext, addr string, jsonOut bool) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	remote := client.New(addr, client.WithToken(cfg.Paths.APIToken))
	status, err := remote.Status(cmd.Context())
	if err != nil {
		return err
	}
	if jsonOut {
		return writeJSON(cmd, status)
	}

	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)
	fmt.Fprintln(out, renderSectionHeader("Daemon", colorize))
	runningKind := statusError
	if status.Running {
		runningKind = statusOK
	}
	fmt.Fprintln(out, renderStatusLine("Running", runningKind, yesNo(status.Running), colorize))
	fmt.Fprintln(out, renderStatusLine("PID", statusInfo, strconv.Itoa(status.PID), colorize))
	fmt.Fprintln(out, renderStatusLine("Bind", statusInfo, status.BindAddress, colorize))
	fmt.Fprintln(out, renderStatusLine("Database", statusInfo, status.DBPath, colorize))
	printLibraryLines(cmd, status.Library.Songs, status.Library.Groups, status.Library.Sessions, colorize)
	return nil
}

func localStatus(cmd *cobra.Command, ctx *commandContext, jsonOut bool) error {
	return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
		stats, err := st.Stats(cmd.Context())
		if err != nil {
			return err
		}
		health, err := st.CheckHealth(cmd.Context())
		if err != nil {
			return err
		}
		if jsonOut {
			return writeJSON(cmd, map[string]any{
				"dbPath":  st.Path(),
				"library": stats,
				"health":  health,
			})
		}

		out := cmd.OutOrStdout()
		colorize := shouldColorize(out)
		fmt.Fprintln(out, renderSectionHeader("Library", colorize))
		fmt.Fprintln(out, renderStatusLine("Database", statusInfo, st.Path(), colorize))

		integrityKind := statusError
		if health.IntegrityCheck {
			integrityKind = statusOK
		}
		fmt.Fprintln(out, renderStatusLine("Integrity", integrityKind, yesNo(health.IntegrityCheck), colorize))
		printLibraryLines(cmd, stats.Songs, stats.Groups, stats.Sessions, colorize)
		return nil
	})
}

func printLibraryLines(cmd *cobra.Command, songs, groups, sessions int, colorize bool) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderStatusLine("Songs", statusInfo, strconv.Itoa(songs), colorize))
	fmt.Fprintln(out, renderStatusLine("Groups", statusInfo, strconv.Itoa(groups), colorize))
	fmt.Fprintln(out, renderStatusLine("Sessions", statusInfo, strconv.Itoa(sessions), colorize))
}
