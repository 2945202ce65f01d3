package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/meeting-flow/internal/config"
	"github.com/nguyentantai21042004/meeting-flow/internal/upload"
	"github.com/nguyentantai21042004/meeting-flow/internal/watcher"
)

func newWatchCommand(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Process every recording dropped into the inbox directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			log := app.log

			if err := ensureDirectories(app.cfg); err != nil {
				return err
			}

			r := newRenderer(cmd.OutOrStdout())
			ctrl := app.newController(r)
			defer ctrl.Close()

			handle := func(ctx context.Context, filePath string) error {
				req, err := upload.Open(filePath)
				if err != nil {
					return err
				}
				r.Reset(req.Filename)
				return runSession(ctx, app, ctrl, filePath, req, app.cfg.Dispatch.Auto, true)
			}

			w, err := watcher.New(app.cfg.Paths.Inbox, handle, log, 0)
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			defer w.Stop()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			errChan := make(chan error, 1)
			go func() {
				if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
					errChan <- err
				}
			}()

			log.Info(ctx, "========================================")
			log.Info(ctx, "Meeting inbox is ready!")
			log.Info(ctx, "Service: %s", app.cfg.API.BaseURL)
			log.Info(ctx, "Inbox: %s", app.cfg.Paths.Inbox)
			log.Info(ctx, "Reports: %s", app.cfg.Paths.Reports)
			log.Info(ctx, "Auto-dispatch to Trello: %v", app.cfg.Dispatch.Auto)
			log.Info(ctx, "Press Ctrl+C to stop")
			log.Info(ctx, "========================================")

			select {
			case <-sigChan:
				log.Info(ctx, "Shutdown signal received")
			case err := <-errChan:
				log.Error(ctx, "Watcher error: %v", err)
				return err
			}

			log.Info(ctx, "Shutting down gracefully...")
			return nil
		},
	}
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	for _, dir := range []string{cfg.Paths.Inbox, cfg.Paths.Reports} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
