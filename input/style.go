package input

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/sprig/buffer"
)

// Style controls the input's rendering.
type Style struct {
	// Field paints padding and the unused width.
	Field       lipgloss.Style
	Text        lipgloss.Style
	Placeholder lipgloss.Style

	// One style per cursor shape.
	Underline lipgloss.Style
	Block     lipgloss.Style
	Line      lipgloss.Style
}

func DefaultStyle() Style {
	bg := lipgloss.Color("#444444")
	text := lipgloss.NewStyle().Background(bg)
	return Style{
		Field:       lipgloss.NewStyle().Background(bg),
		Text:        text,
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("#ABA7B9")).Background(bg),
		Underline:   text.Underline(true).Foreground(lipgloss.Color("36")),
		Block:       lipgloss.NewStyle().Background(lipgloss.Color("2")),
		Line:        text.Foreground(lipgloss.Color("36")),
	}
}

func (s Style) cursor(shape buffer.Shape, bold bool) lipgloss.Style {
	var st lipgloss.Style
	switch shape {
	case buffer.ShapeBlock:
		st = s.Block
	case buffer.ShapeLine:
		st = s.Line
	default:
		st = s.Underline
	}
	if bold {
		st = st.Bold(true)
	}
	return st
}
