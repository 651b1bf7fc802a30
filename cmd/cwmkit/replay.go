package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/cwmkit/engine"
)

var replayCmd = &cobra.Command{
	Use:   "replay [step...]",
	Short: "Drive the settings dialog from scripted events",
	Long: `Replays events against the settings dialog without a terminal.
Each step is either a widget id, which presses it, or id=value, which sets
the widget value and reports the change. Lists are comma separated.

  cwmkit replay network hostname=router dhcp=false address=10.0.0.1 next`,
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
		script := &engine.Script{Host: s.store, Steps: engine.ParseSteps(args)}
		result, err := s.dialog.Run(ctx, script)
		if errors.Is(err, engine.ErrScriptExhausted) {
			return fmt.Errorf("script ended before the dialog was closed")
		}
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
	rootCmd.AddCommand(replayCmd)
}
