package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dietlog/dietlog/internal/app"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the dietlog data directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// Opening a session creates the backend's files or schema, and
		// saving writes them out even when everything is empty.
		sess, err := app.Open(cfg)
		if err != nil {
			return err
		}
		defer sess.Close()
		if err := sess.Save(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized dietlog data (%s backend) in %s\n", cfg.Backend, cfg.DataDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
