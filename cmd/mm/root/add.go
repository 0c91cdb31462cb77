package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"momentum/internal/engine"
	"momentum/internal/ui"
)

func newAddCmd() *cobra.Command {
	var (
		description string
		due         string
		category    string
		priority    string
		points      int
		projectID   string
		repeat      string
		customDays  int
		movableDays int
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			in := engine.CreateTaskInput{
				Title:             args[0],
				Description:       description,
				DueDate:           due,
				Category:          category,
				Priority:          engine.ParsePriority(priority),
				Points:            points,
				RepeatType:        engine.RepeatType(repeat),
				CustomRepeatDays:  customDays,
				MovableRepeatDays: movableDays,
			}
			if projectID != "" {
				id, err := resolveID(projectID, projectIDs(svc))
				if err != nil {
					return err
				}
				in.ProjectID = &id
			}

			task, err := svc.CreateTask(in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.Good.Render(ui.IconPlus+" Added"), ui.IconTask, task.Title,
				ui.Muted.Render(fmt.Sprintf("(#%s, %d pts)", shortID(task.ID), task.Points)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "desc", "D", "", "Description")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category label")
	cmd.Flags().StringVarP(&priority, "priority", "p", "medium", "Priority (low|medium|high)")
	cmd.Flags().IntVar(&points, "points", 10, "Points awarded on completion")
	cmd.Flags().StringVar(&projectID, "project", "", "Project id (or unique prefix)")
	cmd.Flags().StringVarP(&repeat, "repeat", "r", "none", "Repeat (none|daily|weekly|monthly|yearly|custom|movable)")
	cmd.Flags().IntVar(&customDays, "every", 0, "Custom repeat interval in days")
	cmd.Flags().IntVar(&movableDays, "movable-days", 0, "Movable repeat interval in days")

	return cmd
}
