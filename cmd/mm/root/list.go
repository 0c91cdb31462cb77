package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"momentum/internal/ui"
)

func newListCmd() *cobra.Command {
	var all bool
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			st := svc.Store()
			projects := map[string]string{}
			for _, p := range st.Projects() {
				projects[p.ID] = p.Name
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTask, "Tasks"))
			shown := 0
			for _, t := range st.Tasks() {
				if !all && t.Completed {
					continue
				}
				if category != "" && t.Category != category {
					continue
				}
				mark := "[ ]"
				if t.Completed {
					mark = "[x]"
				}
				line := fmt.Sprintf("%s %s %s %s", ui.Muted.Render(shortID(t.ID)), mark, t.Title, ui.PriorityText(t.Priority))
				if t.DueDate != "" {
					line += ui.Muted.Render(" due " + t.DueDate)
				}
				if t.RepeatType != "" && t.RepeatType != "none" {
					line += " " + ui.IconHabit
				}
				if t.ProjectID != nil {
					if name, ok := projects[*t.ProjectID]; ok {
						line += " " + ui.Muted.Render(ui.IconProject+" "+name)
					}
				}
				fmt.Fprintln(out, line)
				shown++
			}
			if shown == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no tasks)"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include completed tasks")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category")

	return cmd
}
