package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"momentum/internal/storage"
	"momentum/internal/ui"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change settings",
	}
	cmd.AddCommand(newSettingsShowCmd(), newSettingsSetCmd())
	return cmd
}

func newSettingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			settings := svc.Store().Settings()
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Tasks per level", settings.TasksPerLevel))
			return nil
		},
	}
}

func newSettingsSetCmd() *cobra.Command {
	var tasksPerLevel int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings (recomputes the level)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("tasks-per-level") {
				return errors.New("nothing to set")
			}
			if tasksPerLevel <= 0 {
				return errors.New("tasks-per-level must be positive")
			}

			svc, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			settings, err := svc.UpdateSettings(storage.SettingsPatch{TasksPerLevel: &tasksPerLevel})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Tasks per level", settings.TasksPerLevel))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Level", svc.Store().UserStats().Level))
			return nil
		},
	}

	cmd.Flags().IntVar(&tasksPerLevel, "tasks-per-level", storage.DefaultTasksPerLevel, "Completed tasks required per level")

	return cmd
}
