package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisualLen(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"plain", "alpha", 5},
		{"empty", "", 0},
		{"colored", "\x1b[31mred\x1b[0m", 3},
		{"stacked sequences", "\x1b[1m\x1b[34m/home/u\x1b[0m", 7},
		{"wide runes", "日本", 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, visualLen(tc.input))
		})
	}
}

func TestTable_Render(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("Name", "Path")
	tbl.AddRow("alpha", "/home/u/src/alpha")
	tbl.AddRow("alpha-tools", "/home/.../u/work/alpha-tools")

	lines := strings.Split(strings.TrimRight(tbl.Render(), "\n"), "\n")

	require.Len(t, lines, 4)
	assert.Equal(t, "Name         Path", lines[0])
	assert.Equal(t, strings.Repeat("─", 11)+"  "+strings.Repeat("─", 28), lines[1])
	assert.Equal(t, "alpha        /home/u/src/alpha", lines[2])
	assert.Equal(t, "alpha-tools  /home/.../u/work/alpha-tools", lines[3])
	assert.Equal(t, 2, tbl.Len())
}

func TestTable_NoTrailingBlanks(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("Name", "Path")
	tbl.AddRow("a", "/a")
	tbl.AddRow("b", "/a/much/longer/path")

	for _, line := range strings.Split(tbl.Render(), "\n") {
		assert.Equal(t, strings.TrimRight(line, " "), line)
	}
}

func TestTable_StyledColumnAligns(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	// Fake an escape-wrapping style to check widths ignore it.
	marked := lipgloss.NewStyle().Transform(func(s string) string {
		return "\x1b[1m" + s + "\x1b[0m"
	})
	tbl := NewTable("Name", "Path").SetStyle(0, marked)
	tbl.AddRow("p1", "/p1")
	tbl.AddRow("project", "/project")

	lines := strings.Split(strings.TrimRight(tbl.Render(), "\n"), "\n")

	require.Len(t, lines, 4)
	assert.Equal(t, "\x1b[1mp1\x1b[0m       /p1", lines[2])
	assert.Equal(t, visualLen(lines[2]), visualLen("p1       /p1"))
}

func TestTable_ShortAndLongRows(t *testing.T) {
	tbl := NewTable("Name", "Path")
	tbl.AddRow("only-name")
	tbl.AddRow("x", "/x", "ignored")

	lines := strings.Split(strings.TrimRight(tbl.Render(), "\n"), "\n")

	require.Len(t, lines, 4)
	assert.NotContains(t, lines[3], "ignored")
}

func TestTable_EmptyHeaders(t *testing.T) {
	assert.Empty(t, NewTable().Render())
}

func TestTable_WriteTo(t *testing.T) {
	tbl := NewTable("Name")
	tbl.AddRow("alpha")

	var buf bytes.Buffer
	n, err := tbl.WriteTo(&buf)

	require.NoError(t, err)
	assert.Equal(t, tbl.Render(), buf.String())
	assert.Equal(t, int64(buf.Len()), n)
}

func TestSetNoColor(t *testing.T) {
	SetNoColor(true)
	assert.True(t, IsNoColor())
	assert.NotContains(t, StyleHeader.Render("test"), "\x1b[")
	assert.False(t, StyleHeader.GetBold())

	SetNoColor(false)
	assert.False(t, IsNoColor())
	assert.True(t, StyleHeader.GetBold())
	assert.Equal(t, ColorPrimary, StyleHeader.GetForeground())
}
