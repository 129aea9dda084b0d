package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/codelaunch/internal/logging"
	"github.com/blackwell-systems/codelaunch/internal/output"
	"github.com/blackwell-systems/codelaunch/internal/picker"
)

var openCmd = &cobra.Command{
	Use:   "open <query>",
	Short: "Open the recent project matching a query",
	Long: `Open filters recent projects the same way the picker does and opens the
match in a new editor window. When several projects match, one whose name
equals the query (ignoring case) is preferred; otherwise the matches are
listed and nothing is opened.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	s, err := newSession(logging.ModeCLI)
	if err != nil {
		return err
	}
	defer s.Close()

	query := strings.Join(args, " ")
	loc, _ := s.locate()
	rows := visibleRows(picker.Rows(s.load()), query)

	target, err := pickOne(rows, query)
	if err != nil {
		return err
	}

	l, err := s.launcher(loc)
	if err != nil {
		return err
	}
	if err := l.Launch(commandContext(cmd), target.Path); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", output.StyleSuccess.Render("Opened"), target.Path)
	return err
}

// pickOne resolves the filtered rows to a single project.
func pickOne(rows []picker.Row, query string) (picker.Row, error) {
	switch len(rows) {
	case 0:
		return picker.Row{}, fmt.Errorf("no recent project matches %q", query)
	case 1:
		return rows[0], nil
	}

	var exact []picker.Row
	for _, r := range rows {
		if strings.EqualFold(r.Name, query) {
			exact = append(exact, r)
		}
	}
	if len(exact) == 1 {
		return exact[0], nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d recent projects match %q, be more specific:", len(rows), query)
	for _, r := range rows {
		sb.WriteString("\n  ")
		sb.WriteString(r.Path)
	}
	return picker.Row{}, errors.New(sb.String())
}
