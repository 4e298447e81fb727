package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/sysdesign/internal/progress"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id>",
		Short: "Print a topic's status",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(func(cmd *cobra.Command, s *session, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), s.tracker.GetStatus(args[0]))
			return nil
		}),
	}
}

func newSetCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "set <id> <status>",
		Short: "Set a topic's status (locked, not-started, in-progress, completed)",
		Args:  cobra.ExactArgs(2),
		RunE: withSession(func(cmd *cobra.Command, s *session, args []string) error {
			id := args[0]
			status, err := progress.ParseStatus(args[1])
			if err != nil {
				return err
			}

			force, _ := cmd.Flags().GetBool("force")
			if !force && !s.catalog.Has(id) {
				return fmt.Errorf("unknown topic %q (use --force to record it anyway)", id)
			}

			if err := s.tracker.SetStatus(cmd.Context(), id, status); err != nil {
				return err
			}
			if s.tracker.Degraded() {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: progress storage unavailable; change kept for this run only")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s → %s\n", id, status)
			return nil
		}),
	}
	c.Flags().Bool("force", false, "Record a status for an id that is not in the catalog")
	return c
}
