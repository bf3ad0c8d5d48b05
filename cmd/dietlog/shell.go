package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dietlog/dietlog/internal/app"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Run an interactive session",
	Long: "Run a read-evaluate loop against one long-lived session. Each line is a\n" +
		"dietlog command without the program name; the undo history spans the whole\n" +
		"session. Extra commands: date <YYYY-MM-DD> changes the working date, exit\n" +
		"leaves the shell.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if activeSession != nil {
			return fmt.Errorf("already inside a shell")
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

		activeSession = sess
		defer func() { activeSession = nil }()

		in := cmd.InOrStdin()
		out := cmd.OutOrStdout()
		scanner := bufio.NewScanner(in)
		for {
			fmt.Fprintf(out, "dietlog %s> ", sess.WorkingDate)
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			fields, err := splitShellLine(line)
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			switch fields[0] {
			case "exit", "quit":
				return sess.Save()
			case "date":
				if len(fields) != 2 {
					fmt.Fprintln(out, "usage: date <YYYY-MM-DD>")
					continue
				}
				if err := sess.SetWorkingDate(fields[1]); err != nil {
					fmt.Fprintf(out, "error: %v\n", err)
				}
				continue
			case "shell":
				fmt.Fprintln(out, "error: already inside a shell")
				continue
			}
			if err := dispatchShellLine(cmd.Root(), fields, out); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read shell input: %w", err)
		}
		return sess.Save()
	},
}

// dispatchShellLine runs one parsed line through the cobra tree against the
// active session.
func dispatchShellLine(root *cobra.Command, fields []string, out io.Writer) error {
	resetFlags(root)
	root.SetArgs(fields)
	root.SetOut(out)
	root.SetErr(out)
	return root.Execute()
}

// resetFlags returns every flag in the command tree to its default value.
// pflag values persist between Execute calls, and slice flags accumulate,
// so one line's flags would otherwise leak into the next.
func resetFlags(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// splitShellLine tokenizes a line, honoring double-quoted strings so names
// with spaces survive.
func splitShellLine(line string) ([]string, error) {
	fields := make([]string, 0, 8)
	var current strings.Builder
	inQuote := false
	pending := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			pending = true
		case r == ' ' || r == '\t':
			if inQuote {
				current.WriteRune(r)
			} else if pending {
				fields = append(fields, current.String())
				current.Reset()
				pending = false
			}
		default:
			current.WriteRune(r)
			pending = true
		}
	}
	if inQuote {
		return nil, fmt.Errorf("unterminated quote")
	}
	if pending {
		fields = append(fields, current.String())
	}
	return fields, nil
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
