package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"etude/internal/config"
	"etude/internal/logging"
	"etude/internal/scores"
	"etude/internal/store"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var dirFlag string

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Import a score library into the practice database",
		Long: "Scan walks a directory of song folders containing per-measure MusicXML " +
			"exports and registers every song and measure group it finds. Rescanning " +
			"is safe; existing entries and practice history are left alone.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				dir := strings.TrimSpace(dirFlag)
				if dir == "" {
					dir = cfg.Paths.ScoresDir
				}
				if dir == "" {
					return fmt.Errorf("no scores directory configured; set paths.scores_dir or pass --dir")
				}

				logPath := filepath.Join(cfg.Paths.LogDir, "etude.log")
				logger, err := logging.New(logging.Options{
					Level:            cfg.Logging.Level,
					Format:           cfg.Logging.Format,
					OutputPaths:      []string{logPath},
					ErrorOutputPaths: []string{logPath},
				})
				if err != nil {
					return fmt.Errorf("init logger: %w", err)
				}

				summary, err := scores.Import(cmd.Context(), st, dir, logger)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Scanned %d songs in %s\n", summary.SongsScanned, dir)
				fmt.Fprintf(out, "Created %d songs and %d measure groups\n", summary.SongsCreated, summary.GroupsCreated)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&dirFlag, "dir", "d", "", "Score library directory (defaults to paths.scores_dir)")
	return cmd
}
