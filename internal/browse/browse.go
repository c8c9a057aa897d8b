// Package browse provides an interactive terminal browser over pair reports:
// a pair list on the left, the selected pair's rendered report on the right.
// All comparison work happens before the program starts; the browser is a
// pure view.
package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jbmorgado/resdiff/pkg/render"
	"github.com/jbmorgado/resdiff/pkg/report"
)

// Run launches the interactive browser over already computed pair reports.
func Run(pairs []report.Pair, theme render.Theme) error {
	program := tea.NewProgram(newModel(pairs, theme), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

type model struct {
	pairs    []report.Pair
	theme    render.Theme
	selected int
	viewport viewport.Model
	ready    bool

	width       int // terminal width
	height      int // terminal height
	listWidth   int // width allocated to the pair list
	detailWidth int // width allocated to the detail pane
}

func newModel(pairs []report.Pair, theme render.Theme) model {
	vp := viewport.New(0, 0)
	vp.SetContent("Select a pair to view its report")
	return model{pairs: pairs, theme: theme, viewport: vp}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.refreshViewport()
			}
		case "down", "j":
			if m.selected < len(m.pairs)-1 {
				m.selected++
				m.refreshViewport()
			}
		case "pgup":
			m.viewport.ViewUp()
		case "pgdown":
			m.viewport.ViewDown()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.listWidth = m.calculateListWidth()
		if m.listWidth > m.width/2 {
			m.listWidth = m.width / 2
		}
		m.detailWidth = m.width - m.listWidth - 3
		m.viewport.Width = m.detailWidth - 4
		m.viewport.Height = m.height - 6
		m.ready = true
		m.refreshViewport()
	}
	return m, nil
}

func (m *model) calculateListWidth() int {
	// Room for icon, title, and box chrome.
	width := 22
	for _, p := range m.pairs {
		if w := len(p.Title()) + 8; w > width {
			width = w
		}
	}
	return width
}

func (m *model) refreshViewport() {
	if m.selected < 0 || m.selected >= len(m.pairs) {
		return
	}
	detail := render.NewTerminal(m.theme, m.viewport.Width)
	m.viewport.SetContent(detail.Render(m.pairs[m.selected : m.selected+1]))
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	listStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	detailStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	helpStyle   = lipgloss.NewStyle().Faint(true).Padding(0, 1)
)

func (m model) View() string {
	if !m.ready {
		return "Loading..."
	}

	title := titleStyle.Render("resdiff — " + m.summaryLine())

	contentHeight := m.height - 6
	if contentHeight < 5 {
		contentHeight = 5
	}

	listPanel := listStyle.
		Width(m.listWidth).
		Height(contentHeight).
		Render(m.renderList(contentHeight))

	detailPanel := detailStyle.
		Width(m.detailWidth).
		Height(contentHeight).
		Render(m.viewport.View())

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, detailPanel)
	help := helpStyle.Render("↑/↓ navigate · pgup/pgdn scroll · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, panels, help)
}

func (m model) summaryLine() string {
	equal := 0
	for _, p := range m.pairs {
		if p.Result.Mismatch == nil && p.Result.Equal {
			equal++
		}
	}
	return fmt.Sprintf("%d pairs, %d equal", len(m.pairs), equal)
}

func (m model) renderList(height int) string {
	var lines []string
	for i, p := range m.pairs {
		icon := m.theme.Icons.Equal
		style := m.theme.Success
		if p.Result.Mismatch != nil || !p.Result.Equal {
			icon = m.theme.Icons.Unequal
			style = m.theme.Error
		}
		line := style.Render(icon) + " " + p.Title()
		if i == m.selected {
			line = m.theme.Bold.Render("▶ ") + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
