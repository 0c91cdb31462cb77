package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"momentum/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "mm",
	Short:         "Momentum — local-first personal productivity tracker",
	Long:          "Momentum tracks tasks, projects, habits, and finances in a single local snapshot,\nwith points, levels, and daily streaks to keep you moving.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newDoCmd(),
		newListCmd(),
		newProjectCmd(),
		newHabitCmd(),
		newFinanceCmd(),
		newRewardCmd(),
		newStatusCmd(),
		newBoardCmd(),
		newCategoryCmd(),
		newSettingsCmd(),
		newExportCmd(),
		newImportCmd(),
		newClearCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
