package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var (
	configPath string
	tabStyle   string
)

var rootCmd = &cobra.Command{
	Use:   "cwmkit",
	Short: "Tabbed system settings dialog built from composable widgets",
	Long: `cwmkit shows the system settings dialog in the terminal. Every widget
loads its value from the settings database when shown and stores it back
when the dialog is confirmed.

Available commands:
  run      - Show the dialog in the terminal
  replay   - Drive the dialog from scripted events
  values   - Inspect or reset stored settings
  history  - List recent dialog runs
  config   - Show or persist the effective configuration`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath != "" {
			return os.Setenv("CWMKIT_CONFIG", configPath)
		}
		return nil
	},
}

// Execute runs the command line. It is called once by main.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $HOME/.config/cwmkit/config.toml)")
	rootCmd.PersistentFlags().StringVar(&tabStyle, "tabs", "", "tab bar style: auto, native or buttons")
}
