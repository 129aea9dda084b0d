package picker

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blackwell-systems/codelaunch/internal/output"
)

// item adapts a Row to the list.DefaultItem interface.
type item struct {
	Row
}

func (i item) Title() string       { return i.Name }
func (i item) Description() string { return i.Short }
func (i item) FilterValue() string { return i.Name + i.Path }

// SubstringFilter is a list.FilterFunc with Matches semantics: a
// case-insensitive substring match that keeps the original order.
func SubstringFilter(term string, targets []string) []list.Rank {
	needle := []rune(term)
	var ranks []list.Rank
	for i, t := range targets {
		start, ok := matchIndex([]rune(t), needle)
		if !ok {
			continue
		}
		matched := make([]int, len(needle))
		for j := range needle {
			matched[j] = start + j
		}
		ranks = append(ranks, list.Rank{Index: i, MatchedIndexes: matched})
	}
	return ranks
}

// Options wires the model to its collaborators.
type Options struct {
	// Load rebuilds the rows from the store. It is called on start and on
	// every reload.
	Load func() []Row
	// Launch opens a project path in the editor.
	Launch func(path string) error
	Title  string
}

type keyMap struct {
	Open   key.Binding
	Reload key.Binding
}

var keys = keyMap{
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
}

type loadedMsg struct {
	rows []Row
}

type launchedMsg struct {
	path string
	err  error
}

// Model is the bubbletea model for the project list.
type Model struct {
	list   list.Model
	opts   Options
	loaded bool
}

// New builds the picker model.
func New(opts Options) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(output.ColorWhite).
		BorderLeftForeground(output.ColorPrimary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(output.ColorMuted).
		BorderLeftForeground(output.ColorPrimary)
	delegate.Styles.FilterMatch = lipgloss.NewStyle().
		Foreground(output.ColorWarning).
		Bold(true)

	l := list.New(nil, delegate, 0, 0)
	l.Title = opts.Title
	if l.Title == "" {
		l.Title = "Recent Projects"
	}
	l.Styles.Title = output.StyleHeader.Padding(0, 1)
	l.SetStatusBarItemName("project", "projects")
	l.SetFilteringEnabled(true)
	l.Filter = SubstringFilter
	l.StatusMessageLifetime = 5 * time.Second
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Open, keys.Reload}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	return Model{list: l, opts: opts}
}

// Init loads the initial rows.
func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) loadCmd() tea.Cmd {
	load := m.opts.Load
	return func() tea.Msg {
		if load == nil {
			return loadedMsg{}
		}
		return loadedMsg{rows: load()}
	}
}

func (m Model) launchCmd(path string) tea.Cmd {
	launch := m.opts.Launch
	return func() tea.Msg {
		if launch == nil {
			return launchedMsg{path: path, err: fmt.Errorf("no launcher configured")}
		}
		return launchedMsg{path: path, err: launch(path)}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil

	case loadedMsg:
		m.loaded = true
		items := make([]list.Item, len(msg.rows))
		for i, r := range msg.rows {
			items[i] = item{Row: r}
		}
		cmd := m.list.SetItems(items)
		if len(items) == 0 {
			return m, tea.Batch(cmd, m.list.NewStatusMessage(output.StyleMuted.Render("No recent projects found")))
		}
		return m, cmd

	case launchedMsg:
		if msg.err != nil {
			return m, m.list.NewStatusMessage(output.StyleError.Render("Failed to open: " + msg.err.Error()))
		}
		return m, m.list.NewStatusMessage(output.StyleSuccess.Render("Opened " + msg.path))

	case tea.KeyMsg:
		// While typing a filter every key belongs to the filter input.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, keys.Open):
			if it, ok := m.list.SelectedItem().(item); ok {
				return m, m.launchCmd(it.Path)
			}
			return m, nil
		case key.Matches(msg, keys.Reload):
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the list.
func (m Model) View() string {
	if !m.loaded {
		return output.StyleMuted.Render("Loading recent projects...")
	}
	return m.list.View()
}

// Rows returns the rows currently loaded, ignoring any active filter.
func (m Model) Rows() []Row {
	items := m.list.Items()
	rows := make([]Row, 0, len(items))
	for _, it := range items {
		if r, ok := it.(item); ok {
			rows = append(rows, r.Row)
		}
	}
	return rows
}

// VisibleRows returns the rows passing the active filter.
func (m Model) VisibleRows() []Row {
	items := m.list.VisibleItems()
	rows := make([]Row, 0, len(items))
	for _, it := range items {
		if r, ok := it.(item); ok {
			rows = append(rows, r.Row)
		}
	}
	return rows
}

// Run starts the interactive picker on the terminal.
func Run(opts Options) error {
	_, err := tea.NewProgram(New(opts), tea.WithAltScreen()).Run()
	return err
}
