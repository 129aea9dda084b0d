package picker

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() []Row {
	return []Row{
		NewRow("/projects/Alpha"),
		NewRow("/projects/Beta"),
		NewRow("/work/clients/Gamma"),
	}
}

// step feeds msg to the model and returns the updated model.
func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func loadedModel(t *testing.T, opts Options) Model {
	t.Helper()
	m := New(opts)
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	msg := m.Init()()
	m, _ = step(t, m, msg)
	return m
}

func TestModel_InitLoadsRows(t *testing.T) {
	calls := 0
	m := loadedModel(t, Options{Load: func() []Row { calls++; return sampleRows() }})

	assert.Equal(t, 1, calls)
	assert.Equal(t, sampleRows(), m.Rows())
	assert.Contains(t, m.View(), "Alpha")
}

func TestModel_ViewBeforeLoad(t *testing.T) {
	m := New(Options{})
	assert.Contains(t, m.View(), "Loading")
}

func TestModel_EnterLaunchesSelected(t *testing.T) {
	var launched []string
	m := loadedModel(t, Options{
		Load:   sampleRows,
		Launch: func(p string) error { launched = append(launched, p); return nil },
	})

	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, launchedMsg{}, msg)

	assert.Equal(t, []string{"/projects/Alpha"}, launched)
	m, _ = step(t, m, msg)
	assert.Contains(t, m.View(), "Opened /projects/Alpha")
}

func TestModel_LaunchFailureKeepsRunning(t *testing.T) {
	m := loadedModel(t, Options{
		Load:   sampleRows,
		Launch: func(string) error { return errors.New("code: executable not found") },
	})

	_, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	msg := cmd()
	m, _ = step(t, m, msg)

	assert.Contains(t, m.View(), "Failed to open")
	assert.Len(t, m.Rows(), 3)
}

func TestModel_ReloadSwapsRows(t *testing.T) {
	batches := [][]Row{sampleRows(), {NewRow("/only/one")}}
	calls := 0
	m := loadedModel(t, Options{Load: func() []Row {
		rows := batches[calls]
		calls++
		return rows
	}})
	require.Len(t, m.Rows(), 3)

	_, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	require.NotNil(t, cmd)
	m, _ = step(t, m, cmd())

	assert.Equal(t, []Row{NewRow("/only/one")}, m.Rows())
}

func TestModel_FilterHidesRows(t *testing.T) {
	m := loadedModel(t, Options{Load: sampleRows})

	m.list.SetFilterText("clients")

	visible := m.VisibleRows()
	require.Len(t, visible, 1)
	assert.Equal(t, "Gamma", visible[0].Name)
	assert.Len(t, m.Rows(), 3, "filtered rows are hidden, not removed")
}

func TestModel_EmptyLoad(t *testing.T) {
	m := loadedModel(t, Options{Load: func() []Row { return nil }})

	assert.Empty(t, m.Rows())
	assert.Contains(t, m.View(), "No recent projects found")
}

func TestSubstringFilter(t *testing.T) {
	targets := []string{"Alpha/projects/Alpha", "Beta/projects/Beta", "Gamma/work/Gamma"}

	ranks := SubstringFilter("PROJ", targets)

	require.Len(t, ranks, 2)
	assert.Equal(t, 0, ranks[0].Index)
	assert.Equal(t, []int{6, 7, 8, 9}, ranks[0].MatchedIndexes)
	assert.Equal(t, 1, ranks[1].Index)
	assert.Len(t, SubstringFilter("", targets), 3)
}
