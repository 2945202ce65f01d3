package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newHealthCommand(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the meeting service and its agents are available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			h, err := app.newClient().Health(ctx)
			if err != nil {
				return fmt.Errorf("health check %s: %w", app.cfg.API.BaseURL, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, h.Message)
			fmt.Fprintln(out, renderTable(
				[]string{"Agent", "Available"},
				[][]string{
					{"transcription", yesNo(h.Agents.Transcription)},
					{"summarization", yesNo(h.Agents.Summarization)},
					{"trello", yesNo(h.Agents.Trello)},
				},
				[]columnAlignment{alignLeft, alignLeft},
			))
			return nil
		},
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
