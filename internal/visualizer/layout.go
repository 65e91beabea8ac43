package visualizer

import "math"

const (
	// MinBarWidth keeps bars legible in narrow terminals.
	MinBarWidth = 3

	// ChartCeiling is the value at the top edge of the bar chart.
	ChartCeiling = 1000
	// DisplayCap is the tallest a bar may be drawn, leaving headroom under
	// ChartCeiling however loud the signal.
	DisplayCap   = 800

	infoPanelHeight = 3
	// minChartHeight is kept for the chart before the info panel may grow.
	minChartHeight = 10

	// Terminals taller than this get a one-cell margin around the layout.
	smallTerminalHeight = 45
)

// BarWidth returns the width of each bar when bands bars share width cells.
// One extra bar's worth of width is held back as breathing room.
func BarWidth(width, bands int) int {
	if width <= 0 || bands < 0 {
		return MinBarWidth
	}
	return max(MinBarWidth, width/(bands+1))
}

// barSlot splits one bar's width into drawn cells and the blank gap that
// follows them. The gap is only given up when nothing would be left to draw.
func barSlot(barWidth int) (cells, gap int) {
	if barWidth-1 < 1 {
		return max(barWidth, 0), 0
	}
	return barWidth - 1, 1
}

// DisplayHeight maps a magnitude onto the chart's 0..ChartCeiling scale,
// capped at DisplayCap.
func DisplayHeight(v float64) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	h := math.Round(v * ChartCeiling)
	if h >= DisplayCap {
		return DisplayCap
	}
	return int(h)
}

// PeakPercent converts a peak magnitude to a whole percentage in [0,100].
func PeakPercent(peak float64) int {
	if math.IsNaN(peak) || peak <= 0 {
		return 0
	}
	if peak >= 1 {
		return 100
	}
	return int(math.Round(peak * 100))
}

// layoutMargin is the outer margin for a region of the given height.
func layoutMargin(height int) int {
	if height > smallTerminalHeight {
		return 1
	}
	return 0
}
