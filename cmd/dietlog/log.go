package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dietlog/dietlog/internal/app"
	"github.com/dietlog/dietlog/internal/command"
	"github.com/dietlog/dietlog/internal/model"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Manage consumption logs for the working date",
}

var logAddCmd = &cobra.Command{
	Use:   "add <food-id> <servings>",
	Short: "Log servings of a food on the working date",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		servings, err := parseServingsArg(args[1])
		if err != nil {
			return err
		}
		return withSession(func(sess *app.Session) error {
			summary, err := sess.Manager.Run(&command.AddLogEntry{
				Foods: sess.Foods,
				Logs:  sess.Logs,
				Date:  sess.WorkingDate,
				Entry: model.NewLogEntry(args[0], servings),
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), summary)
			return nil
		})
	},
}

var logDeleteCmd = &cobra.Command{
	Use:   "delete <index>",
	Short: "Delete the entry at an index on the working date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndexArg(args[0])
		if err != nil {
			return err
		}
		return withSession(func(sess *app.Session) error {
			summary, err := sess.Manager.Run(&command.DeleteLogEntry{
				Logs:  sess.Logs,
				Date:  sess.WorkingDate,
				Index: index,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), summary)
			return nil
		})
	},
}

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries for the working date",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(sess *app.Session) error {
			entries := sess.Logs.Entries(sess.WorkingDate)
			if len(entries) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No entries on %s.\n", sess.WorkingDate)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "INDEX\tFOOD\tSERVINGS\tKCAL\tLOGGED")
			for i, e := range entries {
				calories, err := sess.Foods.ResolveCalories(e.FoodID)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%v\t%s\t%s\n",
					i, e.FoodID, e.Servings, formatCalories(calories*e.Servings), e.LoggedAt.Local().Format("15:04"))
			}
			return nil
		})
	},
}

var logTotalCmd = &cobra.Command{
	Use:   "total",
	Short: "Show total calories for the working date",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(sess *app.Session) error {
			total, err := sess.Logs.TotalCalories(sess.WorkingDate, sess.Foods.ResolveCalories)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s kcal\n", sess.WorkingDate, formatCalories(total))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logAddCmd, logDeleteCmd, logListCmd, logTotalCmd)
}
