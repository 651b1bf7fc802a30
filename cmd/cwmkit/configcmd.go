package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/cwmkit/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or persist the effective configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := effectiveConfig()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "database.path   = %s\n", cfg.Database.Path)
		fmt.Fprintf(out, "log.path        = %s\n", cfg.Log.Path)
		fmt.Fprintf(out, "ui.tab_style    = %s\n", cfg.UI.TabStyle)
		fmt.Fprintf(out, "ui.glyph_arrow  = %s\n", cfg.UI.GlyphArrow)
		for action, keys := range cfg.UI.Keys {
			fmt.Fprintf(out, "ui.keys.%s = %v\n", action, keys)
		}
		return nil
	},
}

var configSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Write the effective configuration, including --tabs, to the config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := effectiveConfig()
		if err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", config.Path())
		return nil
	},
}

// effectiveConfig loads the config file and applies command line overrides.
func effectiveConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	if tabStyle != "" {
		cfg.UI.TabStyle = tabStyle
	}
	return cfg, nil
}

func init() {
	configCmd.AddCommand(configShowCmd, configSaveCmd)
	rootCmd.AddCommand(configCmd)
}
