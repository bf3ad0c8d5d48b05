package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dietlog/dietlog/internal/app"
)

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Undo the most recent operation in this session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(sess *app.Session) error {
			description, err := sess.Manager.UndoLast()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Undid: %s\n", description)
			return nil
		})
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List undoable operations, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(sess *app.Session) error {
			history := sess.Manager.History()
			if len(history) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to undo.")
				return nil
			}
			for i, description := range history {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", i+1, description)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(undoCmd, historyCmd)
}
