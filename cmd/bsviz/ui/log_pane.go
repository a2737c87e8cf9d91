package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultLogHeight = 6

// LogPaneModel shows the step narration in a scrollable viewport that
// follows the newest line.
type LogPaneModel struct {
	viewport viewport.Model
	styles   Styles
	lines    []string
	width    int
	height   int
}

// NewLogPaneModel creates an empty log pane.
func NewLogPaneModel(styles Styles) LogPaneModel {
	vp := viewport.New(76, defaultLogHeight)
	return LogPaneModel{
		viewport: vp,
		styles:   styles,
		width:    80,
		height:   defaultLogHeight,
	}
}

// SetSize updates the size of the viewport.
func (m *LogPaneModel) SetSize(w, h int) {
	if h < 1 {
		h = defaultLogHeight
	}
	m.width = w
	m.height = h
	m.viewport.Width = w - 4 // Border and padding
	m.viewport.Height = h
	m.refresh()
}

// SetStyles swaps the styles after a theme change.
func (m *LogPaneModel) SetStyles(s Styles) {
	m.styles = s
}

// SetLines replaces the narration and scrolls to the latest entry.
func (m *LogPaneModel) SetLines(lines []string) {
	m.lines = lines
	m.refresh()
}

func (m *LogPaneModel) refresh() {
	if len(m.lines) == 0 {
		m.viewport.SetContent(m.styles.Muted.Render("Press enter to start a search."))
		return
	}
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()
}

// Update forwards scroll keys to the viewport.
func (m LogPaneModel) Update(msg tea.Msg) (LogPaneModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the pane with its border.
func (m LogPaneModel) View() string {
	title := m.styles.Title.Render("Search Log")
	return title + "\n" + m.styles.Panel.Width(m.width-2).Render(m.viewport.View())
}
