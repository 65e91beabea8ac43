// Package visualizer renders spectrum capture state into a terminal frame.
package visualizer

import (
	"fmt"
	"strings"
	"time"

	"github.com/olivier-w/climp-spectrum/internal/spectrum"
)

const (
	infoTitle     = "Audio Visualization"
	noCaptureText = "No audio capture available"
	waitingText   = "Waiting for audio input..."
	capturingText = "[>] Capturing audio"
	pausedText    = "[||] Paused"
	chartTitleFmt = "Spectrum | %d FPS | Press q to exit"
)

// Region is the drawable area for one frame, in cells.
type Region struct {
	Width  int
	Height int
}

// Options is the read-only configuration a frame is rendered with.
type Options struct {
	Theme    Theme
	TickRate time.Duration
	Platform Platform
}

// Frame is the result of one render call.
type Frame struct {
	Mode        spectrum.Mode
	View        string
	Bars        []Bar
	BarWidth    int
	PeakPercent int
	Hint        string
	FPS         int
}

// FPS is the frame-rate hint shown to the user for a tick interval. It is
// informational only.
func FPS(tick time.Duration) int {
	ms := tick.Milliseconds()
	if ms <= 0 {
		return 0
	}
	return int(1000 / ms)
}

// Render draws state into region. It keeps nothing from the call; the
// snapshot inside state is a copy.
func Render(region Region, state spectrum.CaptureState, opts Options) Frame {
	st := opts.Theme.styles()
	fps := FPS(opts.TickRate)
	f := Frame{Mode: state.Mode(), FPS: fps}

	margin := layoutMargin(region.Height)
	if region.Width <= 2*margin {
		margin = 0
	}
	width := max(region.Width-2*margin, 0)
	avail := max(region.Height-2*margin, 0)
	f.BarWidth = BarWidth(width, spectrum.BandCount)

	info := panel{title: infoTitle, titleStyle: st.inactive, borderStyle: st.inactive}
	chart := panel{title: fmt.Sprintf(chartTitleFmt, fps), titleStyle: st.inactive, borderStyle: st.inactive}

	var infoBody, chartBody []string
	if snap, ok := state.Snapshot(); ok {
		status := capturingText
		if state.Mode() == spectrum.Paused {
			status = pausedText
		}
		f.PeakPercent = PeakPercent(snap.Peak)
		infoBody = []string{
			st.text.Render(status) + "  " + st.inactive.Render(fmt.Sprintf("Peak: %d%%", f.PeakPercent)),
		}

		f.Bars = barsFor(snap)
	} else {
		f.Hint = opts.Platform.Hint()
		infoBody = []string{
			st.text.Render(noCaptureText),
			"",
			st.text.Render(f.Hint),
		}
		chartBody = []string{st.text.Render(waitingText)}
	}

	// The info panel grows to fit its body only while the chart keeps
	// minChartHeight rows. Regions too small for both clip the chart.
	infoH := max(infoPanelHeight, len(infoBody)+2)
	infoH = max(min(infoH, avail-minChartHeight), infoPanelHeight)
	infoH = min(infoH, avail)
	chartH := avail - infoH
	if f.Bars != nil {
		bc := barChart{bars: f.Bars, barWidth: f.BarWidth, label: st.text}
		chartBody = bc.render(max(width-2, 0), max(chartH-2, 0))
	}

	lines := make([]string, 0, max(region.Height, 0))
	lines = append(lines, blankLines(region.Width, min(margin, region.Height))...)
	pad := strings.Repeat(" ", margin)
	for _, l := range info.render(width, infoH, infoBody) {
		lines = append(lines, pad+l+pad)
	}
	for _, l := range chart.render(width, chartH, chartBody) {
		lines = append(lines, pad+l+pad)
	}
	if margin > 0 && len(lines) < region.Height {
		lines = append(lines, blankLines(region.Width, region.Height-len(lines))...)
	}

	f.View = strings.Join(lines, "\n")
	return f
}
