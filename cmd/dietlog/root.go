package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dietlog/dietlog/internal/app"
)

var (
	flagDataDir string
	flagBackend string
	flagDate    string
)

// activeSession is non-nil while the interactive shell runs; every command
// then operates on the same session so the undo history spans commands.
var activeSession *app.Session

var rootCmd = &cobra.Command{
	Use:   "dietlog",
	Short: "dietlog tracks foods, consumption, and calorie targets from your terminal",
	Long: "dietlog is a local-first diet tracking CLI with a composable food database,\n" +
		"per-date consumption logs, anthropometric calorie targets, and undoable edits.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Data directory (default: user config dir)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Storage backend: textfile or sqlite (default: from config)")
	rootCmd.PersistentFlags().StringVar(&flagDate, "date", "", "Working date YYYY-MM-DD (default: today)")
}

func loadConfig() (app.Config, error) {
	dataDir := flagDataDir
	if dataDir == "" {
		var err error
		dataDir, err = app.DefaultDataDir()
		if err != nil {
			return app.Config{}, err
		}
	}
	cfg, err := app.LoadConfig(dataDir)
	if err != nil {
		return app.Config{}, err
	}
	if flagBackend != "" {
		cfg.Backend = flagBackend
		if err := cfg.Validate(); err != nil {
			return app.Config{}, err
		}
	}
	return cfg, nil
}

// withSession runs fn against the shell's session when one is active, or a
// fresh session for a one-shot invocation. State is saved after every
// successful command.
func withSession(run func(*app.Session) error) error {
	if activeSession != nil {
		if err := applyWorkingDate(activeSession); err != nil {
			return err
		}
		if err := run(activeSession); err != nil {
			return err
		}
		return activeSession.Save()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sess, err := app.Open(cfg)
	if err != nil {
		return err
	}
	defer sess.Close()

	if err := applyWorkingDate(sess); err != nil {
		return err
	}
	if err := run(sess); err != nil {
		return err
	}
	return sess.Save()
}

// applyWorkingDate moves the --date flag value into the session, consuming
// it so a shell session is not stuck with a stale flag on later lines.
func applyWorkingDate(sess *app.Session) error {
	if flagDate == "" {
		return nil
	}
	err := sess.SetWorkingDate(flagDate)
	flagDate = ""
	return err
}
