package visualizer

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/climp-spectrum/internal/spectrum"
)

var barChars = []rune(" ▁▂▃▄▅▆▇█")

var valueFg = lipgloss.Color("#FFFFFF")

// Bar is one laid-out band of the chart.
type Bar struct {
	Label     string
	Magnitude float64
	Height    int // display units, 0..DisplayCap
	Tier      Tier
}

func barsFor(snap spectrum.Snapshot) []Bar {
	bars := make([]Bar, spectrum.BandCount)
	for i, v := range snap.Bands {
		// Color follows the true magnitude; height is capped.
		bars[i] = Bar{
			Label:     spectrum.Label(i),
			Magnitude: v,
			Height:    DisplayHeight(v),
			Tier:      TierFor(v),
		}
	}
	return bars
}

// barChart draws bars into a width x height area: bar rows on top, one label
// row at the bottom. Each bar owns a barWidth slot whose last cell is left
// blank. Bars past the right edge are clipped.
type barChart struct {
	bars     []Bar
	barWidth int
	label    lipgloss.Style
}

func (c barChart) render(width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	cells, gap := barSlot(c.barWidth)
	spacer := strings.Repeat(" ", gap)
	rows := height - 1
	lines := make([]string, 0, height)

	for r := range rows {
		fromBottom := rows - 1 - r
		var line strings.Builder
		for _, b := range c.bars {
			line.WriteString(c.cell(b, cells, rows, fromBottom))
			line.WriteString(spacer)
		}
		lines = append(lines, fit(line.String(), width))
	}

	var labels strings.Builder
	for _, b := range c.bars {
		labels.WriteString(c.label.Render(center(b.Label, cells)))
		labels.WriteString(spacer)
	}
	lines = append(lines, fit(labels.String(), width))
	return lines
}

// cell renders one bar's slice of a row, width cells wide. Heights use
// eighth-cell glyphs against ChartCeiling; the bottom row carries the value
// when it fits.
func (c barChart) cell(b Bar, width, rows, fromBottom int) string {
	ticks := b.Height * rows * 8 / ChartCeiling
	full, rem := ticks/8, ticks%8

	var ch rune
	switch {
	case fromBottom < full:
		ch = barChars[len(barChars)-1]
	case fromBottom == full:
		ch = barChars[rem]
	default:
		ch = barChars[0]
	}

	style := lipgloss.NewStyle().Foreground(b.Tier.Color())
	value := strconv.Itoa(b.Height)
	if fromBottom != 0 || b.Height == 0 || len(value) > width {
		return style.Render(strings.Repeat(string(ch), width))
	}

	pad := width - len(value)
	left := pad / 2
	vs := lipgloss.NewStyle().Foreground(valueFg).Background(b.Tier.Color())
	return style.Render(strings.Repeat(string(ch), left)) +
		vs.Render(value) +
		style.Render(strings.Repeat(string(ch), pad-left))
}
