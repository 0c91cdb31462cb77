package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"momentum/internal/engine"
	"momentum/internal/ui"
)

func newRewardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reward",
		Short: "Spend earned points in the reward shop",
	}
	cmd.AddCommand(newRewardAddCmd(), newRewardListCmd(), newRewardBuyCmd())
	return cmd
}

func newRewardAddCmd() *cobra.Command {
	var (
		description string
		cost        int
		once        bool
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a reward",
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

			in := engine.CreateRewardInput{
				Name:        args[0],
				Description: description,
				Cost:        cost,
			}
			if once {
				repeatable := false
				in.Repeatable = &repeatable
			}
			reward, err := svc.CreateReward(in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.Good.Render(ui.IconPlus+" Added"), ui.IconReward, reward.Name,
				ui.Muted.Render(fmt.Sprintf("(#%s, %d pts)", shortID(reward.ID), reward.Cost)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "desc", "D", "", "Description")
	cmd.Flags().IntVar(&cost, "cost", 50, "Point cost")
	cmd.Flags().BoolVar(&once, "once", false, "Allow only a single purchase")

	return cmd
}

func newRewardListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List rewards and purchases",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			st := svc.Store()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconReward, "Rewards"))
			fmt.Fprintln(out, ui.LabelValue("Points available", st.UserStats().TotalPoints))

			rewards := st.Rewards()
			if len(rewards) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no rewards)"))
			}
			for _, r := range rewards {
				line := fmt.Sprintf("%s %s %s", ui.Muted.Render(shortID(r.ID)), r.Name,
					ui.Gold.Render(fmt.Sprintf("%d pts", r.Cost)))
				if !r.Repeatable {
					line += " " + ui.Muted.Render("(one-time)")
				}
				if r.Purchased {
					line += " " + ui.Good.Render("purchased")
				}
				fmt.Fprintln(out, line)
			}

			history := st.PurchaseHistory()
			if len(history) > 0 {
				fmt.Fprintln(out, ui.H2.Render("History"))
				for _, p := range history {
					fmt.Fprintf(out, "%s %s %s\n",
						ui.Muted.Render(p.PurchaseDate.Format("2006-01-02")), p.RewardName,
						ui.Muted.Render(fmt.Sprintf("(-%d pts)", p.Cost)))
				}
			}
			return nil
		},
	}
}

func newRewardBuyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy <id>",
		Short: "Purchase a reward with earned points",
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

			id, err := resolveID(args[0], rewardIDs(svc))
			if err != nil {
				return err
			}
			purchase, err := svc.PurchaseReward(id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Gold.Render(ui.IconReward+" Purchased"), purchase.RewardName,
				ui.Muted.Render(fmt.Sprintf("(-%d pts, %d left)", purchase.Cost, svc.Store().UserStats().TotalPoints)))
			return nil
		},
	}
}
