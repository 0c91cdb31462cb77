package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"momentum/internal/engine"
	"momentum/internal/ui"
)

func newProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}
	cmd.AddCommand(newProjectAddCmd(), newProjectListCmd(), newProjectRmCmd())
	return cmd
}

func newProjectAddCmd() *cobra.Command {
	var description string
	var color string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a project",
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

			project, err := svc.CreateProject(engine.CreateProjectInput{
				Name:        args[0],
				Description: description,
				Color:       color,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.Good.Render(ui.IconPlus+" Added"), ui.IconProject, project.Name,
				ui.Muted.Render("(#"+shortID(project.ID)+")"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "desc", "D", "", "Description")
	cmd.Flags().StringVar(&color, "color", "blue", "Color label")

	return cmd
}

func newProjectListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			st := svc.Store()
			counts := map[string]int{}
			for _, t := range st.Tasks() {
				if t.ProjectID != nil {
					counts[*t.ProjectID]++
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconProject, "Projects"))
			projects := st.Projects()
			if len(projects) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no projects)"))
				return nil
			}
			for _, p := range projects {
				fmt.Fprintf(out, "%s %s %s\n",
					ui.Muted.Render(shortID(p.ID)), p.Name,
					ui.Muted.Render(fmt.Sprintf("(%s, %d tasks)", p.Color, counts[p.ID])))
			}
			return nil
		},
	}
}

func newProjectRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a project (its tasks survive, unassigned)",
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

			id, err := resolveID(args[0], projectIDs(svc))
			if err != nil {
				return err
			}
			if err := svc.Store().DeleteProject(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s project %s\n", ui.Warn.Render("Deleted"), shortID(id))
			return nil
		},
	}
}
