package tui

import (
	"context"
	"errors"
	"strings"

	"movie-locations/internal/mapview"
	"movie-locations/internal/mapview/termmap"
	"movie-locations/internal/search"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

const (
	maxSidebarWidth = 44
	inputHeight     = 3
	helpHeight      = 1
	frameSize       = 2
	legendHeight    = 1
)

// taskDoneMsg carries the outcome of a search task back to the UI loop.
type taskDoneMsg struct {
	result search.Result
}

// runTask runs t off the UI loop.
func runTask(t search.Task) tea.Cmd {
	return func() tea.Msg {
		return taskDoneMsg{result: t()}
	}
}

// Model is the browser screen: the query input and the results or detail
// panel on the left, the map on the right. It is also the view the search
// controller renders into.
type Model struct {
	ctrl *search.Controller
	keys keyMap

	input   textinput.Model
	query   string
	results list.Model

	showResults bool
	detail      search.Detail
	showDetail  bool
	status      string

	viewport *termmap.Map
	width    int
	height   int
}

// New builds the screen around an annotator whose viewport is a terminal map.
func New(ctx context.Context, api search.API, annotator *mapview.Annotator, logger zerolog.Logger) (*Model, error) {
	vp, ok := annotator.Viewport().(*termmap.Map)
	if !ok {
		return nil, errors.New("tui: annotator has no terminal viewport")
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "search movie titles"
	ti.PlaceholderStyle = placeholderStyle
	_ = ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()

	m := &Model{
		keys:     defaultKeyMap(),
		input:    ti,
		results:  newResultList(),
		viewport: vp,
	}
	m.ctrl = search.NewController(ctx, api, m, annotator, logger)
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case taskDoneMsg:
		m.ctrl.Deliver(msg.result)
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.ctrl.Close()
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.results.CursorUp()
		return nil
	case key.Matches(msg, m.keys.Down):
		m.results.CursorDown()
		return nil
	case key.Matches(msg, m.keys.Select):
		item, ok := m.results.SelectedItem().(resultItem)
		if !m.showResults || !ok {
			return nil
		}
		return runTask(m.ctrl.ResultSelected(item.entry.ID))
	case key.Matches(msg, m.keys.PanUp):
		m.viewport.Pan(0, -1)
		return nil
	case key.Matches(msg, m.keys.PanDown):
		m.viewport.Pan(0, 1)
		return nil
	case key.Matches(msg, m.keys.PanLeft):
		m.viewport.Pan(-1, 0)
		return nil
	case key.Matches(msg, m.keys.PanRight):
		m.viewport.Pan(1, 0)
		return nil
	case key.Matches(msg, m.keys.ZoomIn):
		m.viewport.ZoomBy(1)
		return nil
	case key.Matches(msg, m.keys.ZoomOut):
		m.viewport.ZoomBy(-1)
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.query {
		m.query = v
		m.status = ""
		return tea.Batch(cmd, runTask(m.ctrl.QueryChanged(v)))
	}
	return cmd
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height

	sidebar := min(maxSidebarWidth, width/2)
	m.input.Width = max(sidebar-frameSize-4, 1)
	m.results.SetSize(max(sidebar-frameSize-2, 1), max(height-inputHeight-helpHeight-frameSize, 1))
	m.viewport.SetSize(width-sidebar-frameSize, height-helpHeight-frameSize-legendHeight)
}

func (m *Model) sidebarWidth() int {
	if m.width == 0 {
		return maxSidebarWidth
	}
	return min(maxSidebarWidth, m.width/2)
}

// ShowResults replaces the results list and displays it, empty or not.
func (m *Model) ShowResults(entries []search.Entry) {
	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, resultItem{entry: e})
	}
	_ = m.results.SetItems(items)
	m.results.Select(0)
	m.showResults = true
	m.status = ""
}

func (m *Model) HideResults() {
	m.showResults = false
}

func (m *Model) ShowDetail(d search.Detail) {
	m.detail = d
	m.showDetail = true
	m.status = ""
}

func (m *Model) HideDetail() {
	m.showDetail = false
}

func (m *Model) ShowError(msg string) {
	m.status = msg
}

func (m *Model) View() string {
	sidebar := m.sidebarWidth()
	inner := sidebar - frameSize

	parts := []string{inputStyle.Width(inner).Render(m.input.View())}
	if m.showResults {
		parts = append(parts, panelStyle.Width(inner).Render(m.results.View()))
	}
	if m.showDetail {
		parts = append(parts, panelStyle.Width(inner).Render(m.renderDetail()))
	}
	if m.status != "" {
		parts = append(parts, errorStyle.Render(m.status))
	}

	left := lipgloss.NewStyle().Width(sidebar).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, m.viewport.Render())
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderHelp())
}

func (m *Model) renderDetail() string {
	d := m.detail
	lines := []string{
		titleStyle.Render(d.Title) + " " + yearStyle.Render(d.ReleaseYear),
		"",
		labelStyle.Render("Director: ") + d.Director,
		labelStyle.Render("Production: ") + d.ProductionCompany,
		labelStyle.Render("Writer: ") + d.Writer,
		labelStyle.Render("Actors: ") + d.Actors,
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderHelp() string {
	var parts []string
	for _, b := range m.keys.help() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}
