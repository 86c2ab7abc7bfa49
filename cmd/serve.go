package cmd

import (
	"fmt"

	"songmanager/config"

	"github.com/spf13/cobra"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "override server.port")
	rootCmd.AddCommand(serveCmd)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if servePort != "" {
		cfg.Server.Port = servePort
	}
	if cfg.App.Version == "" || version != "dev" {
		cfg.App.Version = version
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	app, err := NewBuilder(cfg).Build()
	if err != nil {
		return err
	}
	return app.Run(cmd.Context())
}
