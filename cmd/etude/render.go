package main

import (
	"encoding/json"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"etude/internal/api"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderSongsTable lays out the song library. The id and measure-count
// columns are right-aligned so neighbouring rows line up.
func renderSongsTable(songs []api.Song) string {
	tw := newLibraryTable()
	tw.AppendHeader(table.Row{"ID", "Title", "Composer", "Source", "Measures"})
	for _, song := range songs {
		tw.AppendRow(table.Row{
			strconv.FormatInt(song.ID, 10),
			song.Title,
			song.Composer,
			song.Source,
			strconv.Itoa(song.TotalMeasures),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

// renderGroupsTable lays out a song's measure groups with their spans.
func renderGroupsTable(groups []api.MeasureGroup) string {
	tw := newLibraryTable()
	tw.AppendHeader(table.Row{"ID", "Start", "End", "Kind"})
	for _, group := range groups {
		kind := "single"
		if !group.Single {
			kind = "group"
		}
		tw.AppendRow(table.Row{
			group.ID,
			strconv.Itoa(group.StartMeasure),
			strconv.Itoa(group.EndMeasure),
			kind,
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func newLibraryTable() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	return tw
}
