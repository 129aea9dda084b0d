// Package picker turns a project set into display rows and provides the
// interactive list used to choose a project.
package picker

import (
	"path"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/blackwell-systems/codelaunch/internal/vscode"
)

// Separator joins path segments in normalized project paths on every
// platform.
const Separator = "/"

const (
	shortenMinLen      = 60
	shortenMinSegments = 5
	shortenKeepTail    = 3
)

// Row is one displayable project.
type Row struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Short string `json:"short"`
}

// Rows builds rows for every member of set, ordered by path.
func Rows(set vscode.ProjectSet) []Row {
	sorted := set.Sorted()
	rows := make([]Row, 0, len(sorted))
	for _, p := range sorted {
		rows = append(rows, NewRow(p))
	}
	return rows
}

// NewRow builds the row for a single path.
func NewRow(p string) Row {
	return Row{
		Name:  path.Base(p),
		Path:  p,
		Short: ShortenPath(p, Separator),
	}
}

// ShortenPath elides the middle of long paths, keeping the first segment and
// the last three: /home/.../src/team/project.
func ShortenPath(p, sep string) string {
	if utf8.RuneCountInString(p) < shortenMinLen {
		return p
	}
	parts := strings.Split(p, sep)
	if len(parts) < shortenMinSegments {
		return p
	}
	tail := parts[len(parts)-shortenKeepTail:]
	return parts[0] + sep + "..." + sep + strings.Join(tail, sep)
}

// Matches reports whether term occurs, ignoring case, in the row's name
// followed by its path. An empty term matches every row.
func Matches(r Row, term string) bool {
	_, ok := matchIndex([]rune(r.Name+r.Path), []rune(term))
	return ok
}

// Filter returns a visibility mask for rows. Rows are hidden, never removed.
func Filter(rows []Row, term string) []bool {
	visible := make([]bool, len(rows))
	for i, r := range rows {
		visible[i] = Matches(r, term)
	}
	return visible
}

// matchIndex returns the rune offset of the first case-insensitive
// occurrence of term in target.
func matchIndex(target, term []rune) (int, bool) {
	if len(term) == 0 {
		return 0, true
	}
	for i := 0; i+len(term) <= len(target); i++ {
		found := true
		for j, r := range term {
			if unicode.ToLower(target[i+j]) != unicode.ToLower(r) {
				found = false
				break
			}
		}
		if found {
			return i, true
		}
	}
	return 0, false
}
