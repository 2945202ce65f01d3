package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/meeting-flow/internal/config"
	"github.com/nguyentantai21042004/meeting-flow/internal/logger"
)

// appContext is filled in by the root command before any subcommand runs.
type appContext struct {
	configPath string
	cfg        *config.Config
	log        logger.Logger
}

func newRootCommand() *cobra.Command {
	app := &appContext{}

	rootCmd := &cobra.Command{
		Use:           "meetingctl",
		Short:         "Turn meeting recordings into transcripts, summaries and Trello cards",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(app.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			app.cfg = cfg
			app.log = logger.New(cfg.Logging.Level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&app.configPath, "config", "c", "config.yaml", "Configuration file path")

	rootCmd.AddCommand(newProcessCommand(app))
	rootCmd.AddCommand(newWatchCommand(app))
	rootCmd.AddCommand(newHealthCommand(app))

	return rootCmd
}
