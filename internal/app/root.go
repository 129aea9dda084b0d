// Package app contains the Cobra command tree for codelaunch.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/codelaunch/internal/logging"
	"github.com/blackwell-systems/codelaunch/internal/output"
	"github.com/blackwell-systems/codelaunch/internal/picker"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "codelaunch",
	Short: "Reopen recent VS Code projects from the terminal",
	Long: `codelaunch reads the "recently opened" list that VS Code keeps on disk
(state.vscdb, or storage.json on older installs), shows it as a searchable
list and reopens the chosen project in a new editor window.

Run 'codelaunch' with no arguments for the interactive picker. Type / to
filter, enter to open, r to reload, q to quit.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runPicker,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/codelaunch/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}

func runPicker(cmd *cobra.Command, args []string) error {
	// Without a terminal there is nothing to drive the picker; print instead.
	if flagJSON || !output.IsTerminal() {
		return runList(cmd, args)
	}

	s, err := newSession(logging.ModeTUI)
	if err != nil {
		return err
	}
	defer s.Close()

	loc, _ := s.locate()
	l, err := s.launcher(loc)
	if err != nil {
		return err
	}

	return picker.Run(picker.Options{
		Title: "Recent Projects",
		Load: func() []picker.Row {
			return picker.Rows(s.load())
		},
		Launch: func(path string) error {
			return l.Launch(commandContext(cmd), path)
		},
	})
}
