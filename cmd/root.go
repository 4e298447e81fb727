package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/sysdesign/internal/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sysdesign",
		Short: "System design learning roadmap",
		Long:  "sysdesign — browse a system design roadmap and track which topics you have covered.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configFile, _ := cmd.Flags().GetString("config")
			if err := config.ReadFile(configFile); err != nil {
				return err
			}
			config.BindEnv()
			return nil
		},
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Config file (default .sysdesign.yaml in the working or home directory)")
	flags.String("storage", "", "Storage backend: sqlite, file, redis or memory (overrides SYSDESIGN_STORAGE)")
	flags.String("db", "", "Path to SQLite database file (overrides SYSDESIGN_DB env var)")
	flags.String("catalog", "", "Path to a YAML roadmap catalog (default: built-in roadmap)")
	flags.String("log-level", "", "Log level: debug, info, warn or error")

	_ = viper.BindPFlag("storage", flags.Lookup("storage"))
	_ = viper.BindPFlag("db", flags.Lookup("db"))
	_ = viper.BindPFlag("catalog", flags.Lookup("catalog"))
	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))

	root.AddCommand(newTopicsCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newStatusCmd())
	root.AddCommand(newSetCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newResetCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func Execute() error {
	return newRootCmd().Execute()
}
