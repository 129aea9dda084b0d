package app

import (
	"encoding/json"
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/codelaunch/internal/logging"
	"github.com/blackwell-systems/codelaunch/internal/output"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check whether codelaunch can find and open recent projects",
	Long: `Run a series of health checks: the recently-opened store is found and
readable, it yields projects, and the editor command is on PATH. Prints a
pass/fail line for each check and a summary of how many checks passed.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// doctorCheck holds the result of a single health check.
type doctorCheck struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// doctorOutput is the JSON-serializable result of the doctor command.
type doctorOutput struct {
	Checks      []doctorCheck `json:"checks"`
	PassedCount int           `json:"passed"`
	TotalCount  int           `json:"total"`
}

// lookPath is swapped in tests.
var lookPath = exec.LookPath

func runDoctor(cmd *cobra.Command, args []string) error {
	s, err := newSession(logging.ModeCLI)
	if err != nil {
		return err
	}
	defer s.Close()

	var checks []doctorCheck

	loc, found := s.locate()
	if !found {
		checks = append(checks, doctorCheck{
			Name:    "Recently-opened store",
			Message: fmt.Sprintf("none of %d known locations exist (see 'codelaunch locate')", len(s.locator.Candidates())),
		})
	} else {
		checks = append(checks, doctorCheck{Name: "Recently-opened store", Passed: true, Message: loc.Path})

		set, err := s.extractor.Load(loc)
		switch {
		case err != nil:
			checks = append(checks, doctorCheck{Name: "Store readable", Message: err.Error()})
		case set.Len() == 0:
			checks = append(checks, doctorCheck{Name: "Store readable", Passed: true, Message: "readable, but no local projects recorded"})
		default:
			checks = append(checks, doctorCheck{Name: "Store readable", Passed: true, Message: fmt.Sprintf("%d projects", set.Len())})
		}
	}

	l, err := s.launcher(loc)
	if err != nil {
		checks = append(checks, doctorCheck{Name: "Editor command", Message: err.Error()})
	} else if path, err := lookPath(l.Command[0]); err != nil {
		checks = append(checks, doctorCheck{Name: "Editor command", Message: fmt.Sprintf("%s: %s not found on PATH", l, l.Command[0])})
	} else {
		checks = append(checks, doctorCheck{Name: "Editor command", Passed: true, Message: fmt.Sprintf("%s (%s)", l, path)})
	}

	passed := 0
	for _, c := range checks {
		if c.Passed {
			passed++
		}
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(doctorOutput{Checks: checks, PassedCount: passed, TotalCount: len(checks)})
	}

	fmt.Fprintln(out, output.Section("Doctor"))
	fmt.Fprintln(out)
	for _, c := range checks {
		indicator := output.StyleWarning.Render("✗")
		if c.Passed {
			indicator = output.StyleSuccess.Render("✓")
		}
		fmt.Fprintf(out, "  %s  %-24s %s\n", indicator, output.StyleBold.Render(c.Name), output.StyleMuted.Render(c.Message))
	}
	fmt.Fprintln(out)

	summary := fmt.Sprintf("%d/%d checks passed", passed, len(checks))
	if passed == len(checks) {
		fmt.Fprintf(out, " %s\n\n", output.StyleSuccess.Render(summary))
	} else {
		fmt.Fprintf(out, " %s\n\n", output.StyleWarning.Render(summary))
	}
	return nil
}
