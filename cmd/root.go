package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// version is overridden at build time with -ldflags "-X songmanager/cmd.version=..."
	version = "dev"

	configPath string
)

var rootCmd = &cobra.Command{
	Use:           "songs",
	Short:         "Song catalogue REST service",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file (default ./config.yaml or ./config/config.yaml)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
