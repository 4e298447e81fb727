package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/sysdesign/internal/catalog"
	"github.com/abhisek/sysdesign/internal/progress"
	"github.com/abhisek/sysdesign/internal/ui/components"
	"github.com/abhisek/sysdesign/internal/ui/theme"
)

const statsWidth = 64

func newStatsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "stats",
		Short: "Show learning statistics",
		Args:  cobra.NoArgs,
		RunE: withSession(func(cmd *cobra.Command, s *session, args []string) error {
			stats := s.tracker.GetStats()

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(stats)
			}

			lipgloss.Fprintln(cmd.OutOrStdout(), renderStats(stats))
			return nil
		}),
	}
	c.Flags().Bool("json", false, "Print statistics as JSON")
	return c
}

// renderStats lays out the overall bar, per-category bars, and status counts.
func renderStats(stats progress.ProgressStats) string {
	out := theme.Title.Render("Roadmap progress") + "\n\n"

	overall := components.ProgressBar{
		Label:      "Overall",
		LabelWidth: 16,
		Percent:    stats.Percent(),
		Counts:     fmt.Sprintf("%d/%d", stats.ByStatus[progress.StatusCompleted], stats.Total),
		Width:      statsWidth,
	}
	out += overall.View() + "\n\n"

	for _, cat := range catalog.AllCategories() {
		cs := stats.ByCategory[cat]
		bar := components.ProgressBar{
			Label:      cat.DisplayName(),
			LabelWidth: 16,
			Percent:    cs.Percent(),
			Counts:     fmt.Sprintf("%d/%d", cs.Completed, cs.Total),
			Width:      statsWidth,
		}
		out += bar.View() + "\n"
	}

	out += "\n"
	for _, st := range progress.AllStatuses() {
		out += "  " + padRight(theme.Status(st), 16) + fmt.Sprintf(" %d\n", stats.ByStatus[st])
	}
	return out
}

// padRight pads styled text to width visible cells.
func padRight(s string, width int) string {
	if pad := width - lipgloss.Width(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
