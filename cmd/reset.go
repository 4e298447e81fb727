package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "reset",
		Short: "Reset all progress",
		Args:  cobra.NoArgs,
		RunE: withSession(func(cmd *cobra.Command, s *session, args []string) error {
			if yes, _ := cmd.Flags().GetBool("yes"); !yes {
				return fmt.Errorf("refusing to reset progress without --yes")
			}
			s.tracker.ResetAll(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "All progress cleared.")
			return nil
		}),
	}
	c.Flags().Bool("yes", false, "Confirm clearing every topic's status")
	return c
}
