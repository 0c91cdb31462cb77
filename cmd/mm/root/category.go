package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"momentum/internal/ui"
)

func newCategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage category labels",
	}
	cmd.AddCommand(newCategoryAddCmd(), newCategoryListCmd())
	return cmd
}

func newCategoryAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <domain> <name>",
		Short: "Add a category (domain: tasks|habits|finance)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("domain and name are required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			added, err := svc.Store().AddCategory(args[0], args[1])
			if err != nil {
				return err
			}
			if !added {
				return fmt.Errorf("category %q not added (unknown domain, empty, or duplicate)", args[1])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s to %s\n", ui.Good.Render(ui.IconPlus+" Added"), args[1], args[0])
			return nil
		},
	}
}

func newCategoryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories by domain",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			for _, domain := range []string{"tasks", "habits", "finance"} {
				fmt.Fprintln(out, ui.H2.Render(domain))
				for _, name := range svc.Store().Categories(domain) {
					fmt.Fprintf(out, "- %s\n", name)
				}
			}
			return nil
		},
	}
}
