package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/alexanderramin/atajados/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialize the configuration file",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			RunE: func(cmd *cobra.Command, args []string) error {
				if app.Config == nil {
					return errors.New("no configuration loaded")
				}
				c := app.Config
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "config file:   %s\n", app.ConfigPath)
				fmt.Fprintf(out, "db_path:       %s\n", c.DBPath)
				fmt.Fprintf(out, "photo_dir:     %s\n", c.PhotoDir)
				fmt.Fprintf(out, "log_level:     %s\n", c.LogLevel)
				fmt.Fprintf(out, "hours_per_day: %d\n", c.HoursPerDay)
				fmt.Fprintf(out, "gantt_width:   %d\n", c.GanttWidth)
				return nil
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Write the effective configuration to the config file if it does not exist",
			RunE: func(cmd *cobra.Command, args []string) error {
				if app.Config == nil || app.ConfigPath == "" {
					return errors.New("no configuration loaded")
				}
				if _, err := os.Stat(app.ConfigPath); err == nil {
					return fmt.Errorf("config file %s already exists", app.ConfigPath)
				}
				if err := config.Save(app.ConfigPath, app.Config); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", app.ConfigPath)
				return nil
			},
		},
	)

	return cmd
}
