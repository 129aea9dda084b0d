package app

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/codelaunch/internal/logging"
	"github.com/blackwell-systems/codelaunch/internal/output"
	"github.com/blackwell-systems/codelaunch/internal/picker"
)

var (
	listFlagFilter string
	listFlagFull   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print recent projects",
	Long: `List prints every recently opened project, sorted by path. Long paths are
shortened unless --full is given. --filter keeps rows whose name or path
contains the given text, ignoring case.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listFlagFilter, "filter", "", "Only show projects matching this text")
	listCmd.Flags().BoolVar(&listFlagFull, "full", false, "Show full paths")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := newSession(logging.ModeCLI)
	if err != nil {
		return err
	}
	defer s.Close()

	rows := visibleRows(picker.Rows(s.load()), listFlagFilter)
	out := cmd.OutOrStdout()

	if flagJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	if len(rows) == 0 {
		_, err := fmt.Fprintln(out, output.StyleMuted.Render("No recent projects found."))
		return err
	}

	tbl := output.NewTable("Name", "Path").SetStyle(0, output.StyleBold)
	for _, r := range rows {
		p := r.Short
		if listFlagFull {
			p = r.Path
		}
		tbl.AddRow(r.Name, p)
	}
	_, err = tbl.WriteTo(out)
	return err
}

// visibleRows applies the picker filter and drops hidden rows.
func visibleRows(rows []picker.Row, term string) []picker.Row {
	mask := picker.Filter(rows, term)
	out := make([]picker.Row, 0, len(rows))
	for i, r := range rows {
		if mask[i] {
			out = append(out, r)
		}
	}
	return out
}
