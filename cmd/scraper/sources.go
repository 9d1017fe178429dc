package main

import (
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List configured sources, keywords, and collection windows",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Source", "Subreddit", "Keywords"})
		for _, s := range cfg.Sources {
			t.AppendRow(table.Row{s.Name, "r/" + s.Subreddit, strings.Join(s.Keywords, ", ")})
		}
		t.Render()

		w := table.NewWriter()
		w.SetOutputMirror(os.Stdout)
		w.SetStyle(table.StyleLight)
		w.AppendHeader(table.Row{"Window", "Start", "End"})
		for _, win := range cfg.Windows {
			w.AppendRow(table.Row{
				win.Name,
				win.Start.UTC().Format(time.RFC3339),
				win.End.UTC().Format(time.RFC3339),
			})
		}
		w.Render()

		return nil
	},
}
