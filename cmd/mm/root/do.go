package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"momentum/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a task (or reopen a completed one)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveID(args[0], taskIDs(svc))
			if err != nil {
				return err
			}
			res, err := svc.ToggleTask(id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !res.Completed {
				fmt.Fprintf(out, "%s %s\n", ui.Warn.Render("↩ Reopened"), res.Task.Title)
				return nil
			}
			fmt.Fprintf(out, "%s %s %s\n",
				ui.Good.Render(ui.IconDone+" Done"), res.Task.Title,
				ui.Muted.Render(fmt.Sprintf("(+%d pts)", res.PointsAwarded)))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d days", ui.IconFlame, res.DailyStreak)))
			if res.LevelUp {
				fmt.Fprintf(out, "%s %s\n", ui.BadgeLevelUp, ui.Muted.Render(fmt.Sprintf("level %d → %d", res.LevelBefore, res.LevelAfter)))
			}
			return nil
		},
	}

	return cmd
}
