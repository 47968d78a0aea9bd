package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Siddhant-K-code/mcp-devcontainer/internal/config"
	"github.com/Siddhant-K-code/mcp-devcontainer/internal/logger"
	"github.com/Siddhant-K-code/mcp-devcontainer/pkg/version"
)

var (
	cfgPath string
	cfg     *config.Config
)

func main() {
	root := &cobra.Command{
		Use:   "mcp-devcontainer",
		Short: "Generate and manage devcontainer configurations from plain text",
		Long: `mcp-devcontainer turns free-text descriptions of a development
environment into devcontainer.json configurations, and serves the same
capability to MCP clients over stdio.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cfgPath)
			if err != nil {
				return err
			}

			logCfg := logger.DefaultConfig()
			logCfg.Level = logger.ParseLevel(cfg.LogLevel)
			logCfg.Format = cfg.LogFormat
			logger.Init(logCfg)

			return cfg.EnsureDirectories()
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file")

	root.AddCommand(
		newServeCmd(),
		newGenerateCmd(),
		newUpdateCmd(),
		newTemplatesCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("mcp-devcontainer %s\n", version.Version)
		},
	}
}
