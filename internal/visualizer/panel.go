package visualizer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// panel is a bordered box with a title set into its top edge.
type panel struct {
	title       string
	titleStyle  lipgloss.Style
	borderStyle lipgloss.Style
}

// render draws the panel at exactly width x height cells. body lines may
// already be styled; they are clipped to the inner width and padded.
// Panels too small for a border come back blank.
func (p panel) render(width, height int, body []string) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	if width < 2 || height < 2 {
		return blankLines(width, height)
	}

	b := lipgloss.NormalBorder()
	inner := width - 2
	lines := make([]string, 0, height)

	title := ansi.Truncate(p.title, inner, "")
	top := p.borderStyle.Render(b.TopLeft) +
		p.titleStyle.Render(title) +
		p.borderStyle.Render(strings.Repeat(b.Top, inner-ansi.StringWidth(title))+b.TopRight)
	lines = append(lines, top)

	side := p.borderStyle.Render(b.Left)
	rside := p.borderStyle.Render(b.Right)
	for i := range height - 2 {
		var row string
		if i < len(body) {
			row = fit(body[i], inner)
		} else {
			row = strings.Repeat(" ", inner)
		}
		lines = append(lines, side+row+rside)
	}

	lines = append(lines, p.borderStyle.Render(b.BottomLeft+strings.Repeat(b.Bottom, inner)+b.BottomRight))
	return lines
}

// fit clips or pads s to exactly width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// center places s in the middle of width cells, clipping from the right.
func center(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	pad := width - ansi.StringWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func blankLines(width, height int) []string {
	lines := make([]string, height)
	for i := range lines {
		lines[i] = strings.Repeat(" ", max(width, 0))
	}
	return lines
}
