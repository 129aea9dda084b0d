package output

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders aligned columns. Widths are measured on the raw cell text,
// so column styles never disturb alignment.
type Table struct {
	headers []string
	styles  []lipgloss.Style
	rows    [][]string
	widths  []int
}

// NewTable creates a new table with the given column headers.
func NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	styles := make([]lipgloss.Style, len(headers))
	for i, h := range headers {
		widths[i] = visualLen(h)
		styles[i] = lipgloss.NewStyle()
	}
	return &Table{
		headers: headers,
		styles:  styles,
		widths:  widths,
	}
}

// SetStyle styles every data cell of column col.
func (t *Table) SetStyle(col int, style lipgloss.Style) *Table {
	if col >= 0 && col < len(t.styles) {
		t.styles[col] = style
	}
	return t
}

// AddRow adds a row of values. Missing values render empty and extra values
// are ignored.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.headers))
	for i := range t.headers {
		if i < len(values) {
			row[i] = values[i]
		}
		if w := visualLen(row[i]); w > t.widths[i] {
			t.widths[i] = w
		}
	}
	t.rows = append(t.rows, row)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render returns the formatted table. The last column is not padded, so
// long paths leave no trailing blanks.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	var sb strings.Builder
	t.writeLine(&sb, t.headers, func(int) lipgloss.Style { return StyleHeader })

	sep := make([]string, len(t.widths))
	for i, w := range t.widths {
		sep[i] = strings.Repeat("─", w)
	}
	t.writeLine(&sb, sep, func(int) lipgloss.Style { return StyleMuted })

	for _, row := range t.rows {
		t.writeLine(&sb, row, func(i int) lipgloss.Style { return t.styles[i] })
	}
	return sb.String()
}

// WriteTo writes the rendered table to w.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.Render())
	return int64(n), err
}

func (t *Table) writeLine(sb *strings.Builder, cells []string, style func(int) lipgloss.Style) {
	last := len(cells) - 1
	for i, cell := range cells {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(style(i).Render(cell))
		if i < last {
			sb.WriteString(strings.Repeat(" ", t.widths[i]-visualLen(cell)))
		}
	}
	sb.WriteString("\n")
}

// visualLen is the printed width of s, ignoring ANSI escape sequences.
func visualLen(s string) int {
	return lipgloss.Width(s)
}
