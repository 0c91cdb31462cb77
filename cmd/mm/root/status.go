package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"momentum/internal/storage"
	"momentum/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show points, level, streak, and achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			st := svc.Store()
			stats := st.UserStats()
			settings := st.Settings()
			perLevel := settings.TasksPerLevel
			if perLevel <= 0 {
				perLevel = storage.DefaultTasksPerLevel
			}

			completed := 0
			for _, t := range st.Tasks() {
				if t.Completed {
					completed++
				}
			}
			toNext := perLevel - completed%perLevel

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Status"))
			fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d (%d tasks to next)", stats.Level, toNext)))
			fmt.Fprintln(out, ui.LabelValue("Total points", stats.TotalPoints))
			streak := fmt.Sprintf("%s %d days", ui.IconFlame, stats.DailyStreak)
			if stats.LastActivityDate != nil {
				streak += ui.Muted.Render(" (last activity " + *stats.LastActivityDate + ")")
			}
			fmt.Fprintln(out, ui.LabelValue("Daily streak", streak))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📊 Points by source"))
			b := stats.PointsBreakdown
			fmt.Fprintf(out, "- %s %d\n", ui.Key.Render("tasks:"), b.Tasks)
			fmt.Fprintf(out, "- %s %d\n", ui.Key.Render("projects:"), b.Projects)
			fmt.Fprintf(out, "- %s %d\n", ui.Key.Render("habits:"), b.Habits)
			fmt.Fprintf(out, "- %s %d\n", ui.Key.Render("streak bonus:"), b.StreakBonus)
			fmt.Fprintln(out, "")

			achievements := svc.Achievements()
			earned := 0
			for _, a := range achievements {
				if a.Earned {
					earned++
				}
			}
			fmt.Fprintln(out, ui.H2.Render(fmt.Sprintf("%s Achievements (%d/%d)", ui.IconTrophy, earned, len(achievements))))
			for _, a := range achievements {
				if !a.Earned {
					continue
				}
				fmt.Fprintf(out, "- %s %s %s\n", a.Icon, a.Name, ui.Muted.Render(a.Description))
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.Muted.Render("Last updated "+st.LastUpdated().Format("2006-01-02 15:04:05")))
			return nil
		},
	}

	return cmd
}
