package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/sysdesign/internal/catalog"
	"github.com/abhisek/sysdesign/internal/ui/theme"
)

func newTopicsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "topics",
		Short: "List roadmap topics with their status (optionally filtered by category)",
		Args:  cobra.NoArgs,
		RunE: withSession(func(cmd *cobra.Command, s *session, args []string) error {
			category, _ := cmd.Flags().GetString("category")

			var nodes []catalog.TopicNode
			if category != "" {
				cat := catalog.Category(category)
				if !cat.Valid() {
					return fmt.Errorf("unknown category %q", category)
				}
				nodes = s.catalog.ByCategory(cat)
			} else {
				nodes = s.catalog.Nodes()
			}

			w := cmd.OutOrStdout()
			lipgloss.Fprintf(w, "%-22s  %-34s  %-16s  %s\n", "ID", "Title", "Category", "Status")
			lipgloss.Fprintln(w, strings.Repeat("─", 90))

			for _, n := range nodes {
				title := n.Title
				if len(title) > 34 {
					title = title[:31] + "..."
				}
				lipgloss.Fprintf(w, "%-22s  %-34s  %-16s  %s\n",
					n.ID, title, n.Category.DisplayName(),
					theme.Status(s.tracker.GetStatus(n.ID)))
			}

			lipgloss.Fprintf(w, "\n%d topics\n", len(nodes))
			return nil
		}),
	}
	c.Flags().String("category", "", "Filter by category (fundamentals, building-blocks, patterns, problems)")
	return c
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a topic's details and status",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(func(cmd *cobra.Command, s *session, args []string) error {
			n, err := s.catalog.Node(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			lipgloss.Fprintln(w, theme.Title.Render(n.Title))
			lipgloss.Fprintln(w, lipgloss.NewStyle().
				Foreground(theme.CategoryColor(n.Category)).
				Render(n.Category.DisplayName())+"  "+theme.Status(s.tracker.GetStatus(n.ID)))

			if n.Summary != "" {
				lipgloss.Fprintln(w)
				lipgloss.Fprintln(w, theme.Body.Render(n.Summary))
			}
			if n.Content != "" {
				lipgloss.Fprintln(w)
				lipgloss.Fprintln(w, theme.Body.Render(n.Content))
			}
			if len(n.Tips) > 0 {
				lipgloss.Fprintln(w)
				lipgloss.Fprintln(w, theme.Heading.Render("Tips"))
				for _, tip := range n.Tips {
					lipgloss.Fprintln(w, "  • "+tip)
				}
			}
			if len(n.Related) > 0 {
				lipgloss.Fprintln(w)
				lipgloss.Fprintln(w, theme.Heading.Render("Related"))
				for _, id := range n.Related {
					lipgloss.Fprintln(w, "  "+padRight(id, 22)+"  "+theme.Status(s.tracker.GetStatus(id)))
				}
			}
			if next := s.catalog.Next(n.ID); len(next) > 0 {
				lipgloss.Fprintln(w)
				lipgloss.Fprintln(w, theme.Heading.Render("Leads to"))
				for _, id := range next {
					lipgloss.Fprintln(w, "  "+id)
				}
			}
			if len(n.Quiz) > 0 {
				lipgloss.Fprintln(w)
				lipgloss.Fprintln(w, theme.Hint.Render(fmt.Sprintf("%d quiz question(s)", len(n.Quiz))))
			}
			return nil
		}),
	}
}
