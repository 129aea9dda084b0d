package app

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/codelaunch/internal/config"
	"github.com/blackwell-systems/codelaunch/internal/logging"
	"github.com/blackwell-systems/codelaunch/internal/output"
	"github.com/blackwell-systems/codelaunch/internal/vscode"
)

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Show where the recently-opened list is read from",
	Long: `Locate prints every path probed for the editor's recently-opened store,
in priority order, marks the ones that exist and reports which one is used
and how many projects it yields.`,
	Args: cobra.NoArgs,
	RunE: runLocate,
}

func init() {
	rootCmd.AddCommand(locateCmd)
}

type candidateOutput struct {
	vscode.Location
	Exists bool `json:"exists"`
}

type locateOutput struct {
	Family     string            `json:"family"`
	Config     string            `json:"config"`
	Candidates []candidateOutput `json:"candidates"`
	Selected   *vscode.Location  `json:"selected,omitempty"`
	Projects   int               `json:"projects"`
	Error      string            `json:"error,omitempty"`
}

func runLocate(cmd *cobra.Command, args []string) error {
	s, err := newSession(logging.ModeCLI)
	if err != nil {
		return err
	}
	defer s.Close()

	res := locateOutput{
		Family: s.locator.Family.String(),
		Config: config.ConfigFile(flagConfig),
	}
	for _, c := range s.locator.Candidates() {
		res.Candidates = append(res.Candidates, candidateOutput{
			Location: c,
			Exists:   s.locator.Exists(c),
		})
	}

	loc, ok := s.locate()
	if ok {
		res.Selected = &loc
		set, err := s.extractor.Load(loc)
		res.Projects = set.Len()
		if err != nil {
			res.Error = err.Error()
		}
	} else {
		res.Error = vscode.ErrLocationNotFound.Error()
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Fprintln(out, output.Section("Candidates"))
	fmt.Fprintln(out)
	for _, c := range res.Candidates {
		p := c.Path
		if res.Selected != nil && c.Path == res.Selected.Path {
			p = output.StyleBold.Render(p)
		} else if !c.Exists {
			p = output.StyleMuted.Render(p)
		}
		fmt.Fprintf(out, "  %s  %s\n", output.Mark(c.Exists), p)
	}
	if len(res.Candidates) == 0 {
		fmt.Fprintln(out, output.StyleWarning.Render("  no known locations for this platform"))
	}

	fmt.Fprintln(out, output.Section("Result"))
	fmt.Fprintln(out)
	fmt.Fprintln(out, output.Field("platform", res.Family))
	fmt.Fprintln(out, output.Field("config", res.Config))
	if res.Selected != nil {
		fmt.Fprintln(out, output.Field("store", res.Selected.Path))
		fmt.Fprintln(out, output.Field("kind", res.Selected.Kind.String()))
		fmt.Fprintln(out, output.Field("editor", res.Selected.Flavor.Name))
	}
	fmt.Fprintln(out, output.Field("projects", fmt.Sprintf("%d", res.Projects)))
	if res.Error != "" {
		fmt.Fprintln(out, output.Field("error", output.StyleError.Render(res.Error)))
	}
	fmt.Fprintln(out)
	return nil
}
