package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jask/cwmkit/internal/sysconfig"
	"github.com/jask/cwmkit/internal/tui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Show the settings dialog in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		s, err := a.newSession(ctx)
		if err != nil {
			return err
		}
		title := "System Settings"
		if prev, err := a.runs.Latest(ctx, sysconfig.Name); err != nil {
			a.logger.Printf("previous run: %v", err)
		} else if prev != nil {
			title += fmt.Sprintf(" · last closed with %s on %s", prev.Result, prev.FinishedAt.Local().Format(time.DateTime))
		}
		result, err := tui.Run(ctx, s.dialog, tui.Options{
			Title:   title,
			Keys:    a.cfg.UI.Keys,
			Logger:  a.logger,
			Sources: []tui.DefinitionSource{s.widgets.Tabs},
		})
		if err != nil {
			return err
		}
		if err := a.finish(ctx, s, string(result)); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "dialog closed: %s\n", result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
