package tui

import (
	"fmt"
	"io"

	"movie-locations/internal/search"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// resultItem wraps a search entry for the list component.
type resultItem struct {
	entry search.Entry
}

func (i resultItem) FilterValue() string { return i.entry.Label }

// resultDelegate renders one entry per line with a bar next to the cursor.
type resultDelegate struct{}

func (d resultDelegate) Height() int                             { return 1 }
func (d resultDelegate) Spacing() int                            { return 0 }
func (d resultDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d resultDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ri, ok := item.(resultItem)
	if !ok {
		return
	}

	label := ri.entry.Label
	width := m.Width() - 2
	if r := []rune(label); width > 3 && len(r) > width {
		label = string(r[:width-3]) + "..."
	}

	if index == m.Index() {
		_, _ = fmt.Fprintf(w, "%s %s", selectedBorderStyle.Render("┃"), selectedStyle.Render(label))
		return
	}
	_, _ = fmt.Fprintf(w, "  %s", normalStyle.Render(label))
}

func newResultList() list.Model {
	l := list.New(nil, resultDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.DisableQuitKeybindings()
	return l
}
