package logview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const minWidth = 12

type Style struct {
	Border lipgloss.Style // foreground colors the frame
	Title  lipgloss.Style
	Text   lipgloss.Style
}

func DefaultStyle() Style {
	dim := lipgloss.Color("8")
	return Style{
		Border: lipgloss.NewStyle().Foreground(dim),
		Title:  lipgloss.NewStyle().Foreground(dim),
		Text:   lipgloss.NewStyle(),
	}
}

// Model renders a Log in a rounded frame. The frame takes two rows and four
// columns on top of the content.
//
// The view follows the newest line until the user scrolls up with the mouse
// wheel, and follows again once scrolled back to the bottom.
type Model struct {
	log    *Log
	vp     viewport.Model
	width  int
	follow bool
	style  Style
}

func New(log *Log, style Style) Model {
	m := Model{log: log, style: style, follow: true, vp: viewport.New(0, 0)}
	return m.SetSize(40, 1)
}

// SetSize sets the outer width and the number of content rows.
func (m Model) SetSize(width, height int) Model {
	m.width = max(width, minWidth)
	m.vp.Width = m.width - 4
	m.vp.Height = max(height, 1)
	return m.refresh()
}

// Following reports whether the view sticks to the newest line.
func (m Model) Following() bool { return m.follow }

func (m Model) Init() tea.Cmd { return nil }

// Update takes widget-local mouse coordinates.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case AppendedMsg:
		m = m.refresh()
	case tea.WindowSizeMsg:
		m = m.SetSize(msg.Width, m.vp.Height)
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			break
		}
		switch msg.Button { //nolint:exhaustive
		case tea.MouseButtonWheelUp:
			m.vp.LineUp(1)
		case tea.MouseButtonWheelDown:
			m.vp.LineDown(1)
		default:
			return m, nil
		}
		m.follow = m.vp.AtBottom()
	}
	return m, nil
}

func (m Model) refresh() Model {
	lines := m.log.Lines()
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, m.vp.Width, "…")
	}
	m.vp.SetContent(strings.Join(lines, "\n"))
	if m.follow {
		m.vp.GotoBottom()
	}
	return m
}

func (m Model) View() string {
	b := lipgloss.RoundedBorder()
	left := m.style.Border.Render(b.Left)
	right := m.style.Border.Render(b.Right)

	rows := strings.Split(m.vp.View(), "\n")
	body := make([]string, 0, len(rows)+2)
	body = append(body, m.topBorder(b))
	for _, r := range rows {
		if w := ansi.StringWidth(r); w < m.vp.Width {
			r += strings.Repeat(" ", m.vp.Width-w)
		}
		body = append(body, left+" "+m.style.Text.Render(r)+" "+right)
	}
	body = append(body, m.style.Border.Render(b.BottomLeft+strings.Repeat(b.Bottom, m.width-2)+b.BottomRight))
	return strings.Join(body, "\n")
}

// topBorder draws the top edge with the line count right-aligned in it.
func (m Model) topBorder(b lipgloss.Border) string {
	title := fmt.Sprintf(" Logger (%d) ", m.log.Len())
	title = ansi.Truncate(title, m.width-3, "")
	fill := m.width - 3 - ansi.StringWidth(title)
	if fill < 0 {
		fill = 0
	}
	return m.style.Border.Render(b.TopLeft+strings.Repeat(b.Top, fill)) +
		m.style.Title.Render(title) +
		m.style.Border.Render(b.Top+b.TopRight)
}
