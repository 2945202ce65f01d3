package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/meeting-flow/internal/report"
	"github.com/nguyentantai21042004/meeting-flow/internal/upload"
	"github.com/nguyentantai21042004/meeting-flow/internal/workflow"
)

func newProcessCommand(app *appContext) *cobra.Command {
	var dispatch bool
	var export bool

	cmd := &cobra.Command{
		Use:   "process <audio-file>",
		Short: "Upload a recording and show its transcript, summary and action items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			path := args[0]
			if !upload.IsAudioFile(path) {
				app.log.Warn(ctx, "%s is not one of %s; sending anyway", filepath.Base(path), strings.Join(upload.SupportedFormats, ", "))
			}
			req, err := upload.Open(path)
			if err != nil {
				return err
			}

			r := newRenderer(cmd.OutOrStdout())
			ctrl := app.newController(r)
			defer ctrl.Close()

			return runSession(ctx, app, ctrl, path, req, dispatch || app.cfg.Dispatch.Auto, export)
		},
	}

	cmd.Flags().BoolVar(&dispatch, "dispatch", false, "Send the extracted action items to Trello")
	cmd.Flags().BoolVar(&export, "export", false, "Write Markdown and docx reports to paths.reports")

	return cmd
}

// runSession drives one submission (and optional dispatch) through ctrl.
func runSession(ctx context.Context, app *appContext, ctrl workflow.Controller, path string, req upload.Request, dispatch, export bool) error {
	if !ctrl.SubmitAudio(ctx, req) {
		return fmt.Errorf("%s: another recording is still processing", req.Filename)
	}

	s := ctrl.Snapshot()
	if s.Result == nil {
		return fmt.Errorf("%s: processing failed", req.Filename)
	}

	if export {
		if _, err := report.New(app.cfg.Paths.Reports, app.log).Write(ctx, path, *s.Result); err != nil {
			return err
		}
	}

	if !dispatch {
		return nil
	}
	if !ctrl.DispatchActionItems(ctx) {
		app.log.Info(ctx, "No action items to send to Trello")
		return nil
	}
	if s := ctrl.Snapshot(); s.DispatchPhase == workflow.DispatchFailed {
		return fmt.Errorf("%s: sending action items failed", req.Filename)
	}
	return nil
}
