package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jask/cwmkit/internal/database"
	"github.com/jask/cwmkit/internal/sysconfig"
	"github.com/jask/cwmkit/internal/tui"
)

var historyLimit int

var valuesCmd = &cobra.Command{
	Use:   "values",
	Short: "Inspect or reset stored settings",
}

var valuesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every stored setting",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		values, err := a.values.List(ctx)
		if err != nil {
			return err
		}
		table := tui.Table{Headers: []string{"KEY", "VALUE", "UPDATED"}}
		for _, v := range values {
			table.Rows = append(table.Rows, []string{v.Key, v.Value, v.UpdatedAt.Local().Format(time.DateTime)})
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), table.Render(0))
		return err
	},
}

var valuesResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore every setting to its default",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := database.ResetDefaults(ctx, a.db, sysconfig.Defaults); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "restored %d defaults\n", len(sysconfig.Defaults))
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent dialog runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		runs, err := a.runs.Recent(ctx, sysconfig.Name, historyLimit)
		if err != nil {
			return err
		}
		table := tui.Table{Headers: []string{"RUN", "RESULT", "STARTED", "DURATION"}}
		for _, r := range runs {
			table.Rows = append(table.Rows, []string{
				r.ID[:min(len(r.ID), 8)],
				r.Result,
				r.StartedAt.Local().Format(time.DateTime),
				r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond).String(),
			})
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), table.Render(0))
		return err
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "number of runs to show")
	valuesCmd.AddCommand(valuesListCmd, valuesResetCmd)
	rootCmd.AddCommand(valuesCmd, historyCmd)
}
