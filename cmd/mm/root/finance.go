package root

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"momentum/internal/engine"
	"momentum/internal/storage"
	"momentum/internal/ui"
)

func newFinanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finance",
		Short: "Track expenses, revenue, and charges",
	}
	cmd.AddCommand(newFinanceAddCmd(), newFinanceListCmd())
	return cmd
}

func newFinanceAddCmd() *cobra.Command {
	var (
		kind      string
		date      string
		category  string
		recurring string
	)

	cmd := &cobra.Command{
		Use:   "add <description> <amount>",
		Short: "Add a finance entry",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("description and amount are required")
			}
			if _, err := strconv.ParseFloat(args[1], 64); err != nil {
				return errors.New("amount must be a number")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			amount, _ := strconv.ParseFloat(args[1], 64)
			item, err := svc.CreateFinanceItem(engine.CreateFinanceInput{
				Kind:        engine.FinanceKind(kind),
				Description: args[0],
				Amount:      amount,
				Date:        date,
				Category:    category,
				Recurring:   recurring,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.Good.Render(ui.IconPlus+" Added"), ui.IconMoney, item.Description,
				ui.Muted.Render(fmt.Sprintf("(%s %.2f, #%s)", kind, item.Amount, shortID(item.ID))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "expense", "Entry kind (expense|revenue|charge)")
	cmd.Flags().StringVar(&date, "date", "", "Entry date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category label")
	cmd.Flags().StringVar(&recurring, "recurring", "", "Recurring label (informational, e.g. monthly)")

	return cmd
}

func newFinanceListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List finance entries with totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			st := svc.Store()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconMoney, "Finance"))

			sections := []struct {
				title string
				items []storage.FinanceItem
			}{
				{"Revenue", st.Revenue()},
				{"Expenses", st.Expenses()},
				{"Charges", st.Charges()},
			}
			for _, sec := range sections {
				fmt.Fprintln(out, ui.H2.Render(sec.title))
				if len(sec.items) == 0 {
					fmt.Fprintln(out, ui.Muted.Render("(none)"))
					continue
				}
				total := 0.0
				for _, item := range sec.items {
					total += item.Amount
					line := fmt.Sprintf("%s %s %.2f", ui.Muted.Render(shortID(item.ID)), item.Description, item.Amount)
					if item.Date != "" {
						line += ui.Muted.Render(" on " + item.Date)
					}
					if item.Recurring != "" {
						line += ui.Muted.Render(" (" + item.Recurring + ")")
					}
					fmt.Fprintln(out, line)
				}
				fmt.Fprintln(out, ui.LabelValue("Total", fmt.Sprintf("%.2f", total)))
			}
			return nil
		},
	}
}
