package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dietlog/dietlog/internal/app"
	"github.com/dietlog/dietlog/internal/calc"
	"github.com/dietlog/dietlog/internal/service"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show consumed calories, target, and remaining for the working date",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(sess *app.Session) error {
			status, err := service.DaySummary(sess.Foods, sess.Logs, sess.Profile, sess.WorkingDate)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s\n", status.Date)
			fmt.Fprintf(out, "Consumed: %s kcal\n", formatCalories(status.ConsumedCalories))
			if !status.HasTarget {
				fmt.Fprintln(out, "No calorie target: set a profile and a daily weight/activity record first.")
				return nil
			}
			fmt.Fprintf(out, "BMR (%s): %s kcal\n", status.Calculator, formatCalories(status.BMR))
			fmt.Fprintf(out, "Target: %s kcal\n", formatCalories(status.TargetCalories))
			fmt.Fprintf(out, "Remaining: %s kcal\n", formatCalories(status.Remaining))
			return nil
		})
	},
}

var calculatorsCmd = &cobra.Command{
	Use:   "calculators",
	Short: "List registered calorie calculation strategies",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range calc.Names() {
			c, err := calc.Lookup(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", c.Name(), c.Description())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd, calculatorsCmd)
}
