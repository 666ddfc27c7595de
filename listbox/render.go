package listbox

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type Style struct {
	// Frame wraps the title and rows; its border and padding are honored by
	// mouse hit-testing.
	Frame lipgloss.Style
	Title lipgloss.Style

	Marker      lipgloss.Style
	Index       lipgloss.Style
	Item        lipgloss.Style
	Selected    lipgloss.Style
	Highlighted lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Frame:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Title:       lipgloss.NewStyle().Bold(true),
		Marker:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		Index:       lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		Item:        lipgloss.NewStyle(),
		Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		Highlighted: lipgloss.NewStyle().Background(lipgloss.Color("1")),
	}
}

// View renders the visible rows as "> 1. item" for the selection and
// "  2. item" otherwise.
func (m Model) View() string {
	st := m.cfg.Style
	rows := make([]string, 0, m.visibleRows()+1)
	if m.cfg.Title != "" {
		rows = append(rows, st.Title.Render(m.truncate(m.cfg.Title)))
	}

	end := m.l.start + m.visibleRows()
	for i := m.l.start; i < end; i++ {
		rows = append(rows, m.renderRow(i))
	}
	return st.Frame.Render(strings.Join(rows, "\n"))
}

func (m Model) renderRow(i int) string {
	st := m.cfg.Style
	selected := i == m.l.selected

	marker := "  "
	if selected {
		marker = "> "
	}
	var num string
	if m.cfg.ShowIndices {
		num = strconv.Itoa(i+1) + ". "
	}

	item := m.l.items[i]
	if w := m.cfg.Width; w > 0 {
		item = ansi.Truncate(item, max(w-len(marker)-len(num), 0), "…")
	}

	itemStyle := st.Item
	if selected {
		itemStyle = st.Selected
	}
	if i == m.l.highlighted {
		itemStyle = itemStyle.Inherit(st.Highlighted)
	}

	if selected {
		marker = st.Marker.Render(marker)
	}
	if num != "" {
		num = st.Index.Render(num)
	}
	return marker + num + itemStyle.Render(item)
}

func (m Model) truncate(s string) string {
	if m.cfg.Width <= 0 {
		return s
	}
	return ansi.Truncate(s, m.cfg.Width, "…")
}
