package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"momentum/internal/engine"
	"momentum/internal/ui"
)

func newHabitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage habits",
	}
	cmd.AddCommand(newHabitAddCmd(), newHabitCheckCmd(), newHabitListCmd())
	return cmd
}

func newHabitAddCmd() *cobra.Command {
	var (
		description string
		icon        string
		category    string
		points      int
		goal        int
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a habit",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			habit, err := svc.CreateHabit(engine.CreateHabitInput{
				Name:        args[0],
				Description: description,
				Icon:        icon,
				Category:    category,
				Points:      points,
				TargetGoal:  goal,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.Good.Render(ui.IconPlus+" Added"), habit.Icon, habit.Name,
				ui.Muted.Render(fmt.Sprintf("(#%s, %d pts)", shortID(habit.ID), habit.Points)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "desc", "D", "", "Description")
	cmd.Flags().StringVar(&icon, "icon", ui.IconHabit, "Icon glyph")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category label")
	cmd.Flags().IntVar(&points, "points", 5, "Points awarded per completion")
	cmd.Flags().IntVar(&goal, "goal", 1, "Target completions per day")

	return cmd
}

func newHabitCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <id>",
		Short: "Log a habit completion for today",
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

			id, err := resolveID(args[0], habitIDs(svc))
			if err != nil {
				return err
			}
			res, err := svc.CompleteHabit(id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s %s %s\n",
				ui.Good.Render(ui.IconDone+" Checked"), res.Habit.Icon, res.Habit.Name,
				ui.Muted.Render(fmt.Sprintf("(+%d pts)", res.PointsAwarded)))
			fmt.Fprintln(out, ui.LabelValue("Habit streak", res.Streak))
			if res.CompletedToday > 1 {
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("Completed %d times today", res.CompletedToday)))
			}
			return nil
		},
	}
}

func newHabitListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List habits",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			st := svc.Store()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconHabit, "Habits"))
			habits := st.Habits()
			if len(habits) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no habits)"))
				return nil
			}
			for _, h := range habits {
				line := fmt.Sprintf("%s %s %s %s",
					ui.Muted.Render(shortID(h.ID)), h.Icon, h.Name,
					ui.Muted.Render(fmt.Sprintf("streak %d", h.Streak)))
				if n := st.CountHabitCompletionsToday(h.ID); n > 0 {
					line += " " + ui.Good.Render(fmt.Sprintf("done x%d today", n))
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}
