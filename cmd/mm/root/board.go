package root

import (
	"github.com/spf13/cobra"

	"momentum/internal/tui"
)

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Interactive dashboard (TUI)",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()
			return tui.RunBoard(svc, cmd.OutOrStdout())
		},
	}
}
