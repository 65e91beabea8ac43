package visualizer

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/olivier-w/climp-spectrum/internal/spectrum"
)

func testOptions() Options {
	return Options{
		Theme:    DefaultTheme(),
		TickRate: 16 * time.Millisecond,
		Platform: PlatformLinux,
	}
}

func testSnapshot(t *testing.T, peak float64, bands ...float64) spectrum.Snapshot {
	t.Helper()
	full := make([]float64, spectrum.BandCount)
	copy(full, bands)
	s, ok := spectrum.New(full, peak)
	if !ok {
		t.Fatalf("test snapshot violates contract: %v peak %v", bands, peak)
	}
	return s
}

func plainLines(view string) []string {
	return strings.Split(ansi.Strip(view), "\n")
}

func assertDimensions(t *testing.T, f Frame, r Region) {
	t.Helper()
	lines := plainLines(f.View)
	if len(lines) != r.Height {
		t.Fatalf("expected %d lines, got %d", r.Height, len(lines))
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w != r.Width {
			t.Fatalf("line %d: expected width %d, got %d: %q", i, r.Width, w, l)
		}
	}
}

func TestRenderNoSignal(t *testing.T) {
	r := Region{Width: 80, Height: 24}
	f := Render(r, spectrum.Inactive(), testOptions())

	if f.Mode != spectrum.NoSignal {
		t.Fatalf("expected no-signal mode, got %s", f.Mode)
	}
	if len(f.Bars) != 0 {
		t.Fatalf("expected zero bars, got %d", len(f.Bars))
	}
	if f.Hint != PlatformLinux.Hint() {
		t.Fatalf("expected linux hint, got %q", f.Hint)
	}

	view := ansi.Strip(f.View)
	for _, want := range []string{noCaptureText, PlatformLinux.Hint(), waitingText, infoTitle} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
	for _, other := range []Platform{PlatformWindows, PlatformMacOS, PlatformOther} {
		if strings.Contains(view, other.Hint()) {
			t.Fatalf("unexpected %s hint in view", other)
		}
	}
	if strings.Contains(view, "Peak:") || strings.ContainsRune(view, '█') {
		t.Fatalf("expected no status or bars in no-signal view:\n%s", view)
	}
	assertDimensions(t, f, r)
}

func TestRenderNoSignalUsesConfiguredPlatform(t *testing.T) {
	opts := testOptions()
	opts.Platform = PlatformMacOS
	f := Render(Region{Width: 80, Height: 24}, spectrum.Inactive(), opts)
	if !strings.Contains(ansi.Strip(f.View), "BlackHole") {
		t.Fatalf("expected macOS hint in view:\n%s", ansi.Strip(f.View))
	}
}

func TestRenderCapturing(t *testing.T) {
	snap := testSnapshot(t, 0.873, 0.30, 0.90)
	r := Region{Width: 80, Height: 24}
	f := Render(r, spectrum.Active(snap), testOptions())

	if f.Mode != spectrum.Capturing {
		t.Fatalf("expected capturing mode, got %s", f.Mode)
	}
	if len(f.Bars) != spectrum.BandCount {
		t.Fatalf("expected %d bars, got %d", spectrum.BandCount, len(f.Bars))
	}
	if f.PeakPercent != 87 {
		t.Fatalf("expected peak 87, got %d", f.PeakPercent)
	}
	if f.Hint != "" {
		t.Fatalf("expected no hint while capturing, got %q", f.Hint)
	}

	if b := f.Bars[0]; b.Height != 300 || b.Tier != TierYellowGreen || b.Label != "Sub" {
		t.Fatalf("unexpected first bar: %+v", b)
	}
	if b := f.Bars[1]; b.Height != 800 || b.Tier != TierRed || b.Magnitude != 0.90 {
		t.Fatalf("expected capped red second bar, got %+v", b)
	}
	if b := f.Bars[11]; b.Label != "Ultra" || b.Height != 0 {
		t.Fatalf("unexpected last bar: %+v", b)
	}

	view := ansi.Strip(f.View)
	for _, want := range []string{capturingText, "Peak: 87%", "Spectrum | 62 FPS | Press q to exit", "800", "300"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
	assertDimensions(t, f, r)
}

func TestRenderPaused(t *testing.T) {
	snap := testSnapshot(t, 0.5, 0.5)
	f := Render(Region{Width: 80, Height: 24}, spectrum.Held(snap), testOptions())
	view := ansi.Strip(f.View)
	if !strings.Contains(view, pausedText) {
		t.Fatalf("expected paused status in view:\n%s", view)
	}
	if len(f.Bars) != spectrum.BandCount {
		t.Fatalf("expected bars while paused, got %d", len(f.Bars))
	}
}

func TestRenderBarsLeaveHeadroom(t *testing.T) {
	bands := make([]float64, spectrum.BandCount)
	for i := range bands {
		bands[i] = 1
	}
	snap := testSnapshot(t, 1, bands...)
	r := Region{Width: 80, Height: 24}
	f := Render(r, spectrum.Active(snap), testOptions())

	lines := plainLines(f.View)
	// lines[3] is the chart's top border; lines[4] its first inner row.
	if strings.ContainsAny(lines[4], "▁▂▃▄▅▆▇█") {
		t.Fatalf("expected empty top chart row, got %q", lines[4])
	}
	if !strings.Contains(lines[len(lines)-3], "█") {
		t.Fatalf("expected full bar cells near the bottom, got %q", lines[len(lines)-3])
	}
}

func TestRenderLabelsUnderBars(t *testing.T) {
	snap := testSnapshot(t, 0.2, 0.2)
	f := Render(Region{Width: 160, Height: 30}, spectrum.Active(snap), testOptions())
	lines := plainLines(f.View)
	labelRow := lines[len(lines)-2]
	for _, l := range spectrum.Labels {
		if !strings.Contains(labelRow, l) {
			t.Fatalf("expected label %q in %q", l, labelRow)
		}
	}
}

func TestRenderNarrowTerminalDegrades(t *testing.T) {
	snap := testSnapshot(t, 0.6, 0.6, 0.6, 0.6)
	for _, r := range []Region{{Width: 20, Height: 14}, {Width: 48, Height: 20}, {Width: 3, Height: 3}} {
		f := Render(r, spectrum.Active(snap), testOptions())
		if f.BarWidth < MinBarWidth {
			t.Fatalf("%+v: bar width %d below floor", r, f.BarWidth)
		}
		if len(f.Bars) != spectrum.BandCount {
			t.Fatalf("%+v: expected %d bars, got %d", r, spectrum.BandCount, len(f.Bars))
		}
		assertDimensions(t, f, r)
	}
}

func TestRenderKeepsGapBetweenBars(t *testing.T) {
	snap := testSnapshot(t, 0.8, 0.8, 0.8, 0.8)
	for _, w := range []int{80, 120, 130, 156} {
		r := Region{Width: w, Height: 24}
		f := Render(r, spectrum.Active(snap), testOptions())
		lines := plainLines(f.View)
		// lines[len-4] is a full-height bar row above the value row.
		row := []rune(lines[len(lines)-4])
		cells, _ := barSlot(f.BarWidth)
		for b := range 3 {
			start := 1 + b*f.BarWidth
			for i := start; i < start+cells; i++ {
				if row[i] != '█' {
					t.Fatalf("width %d: expected bar %d cell at column %d, got %q in %q", w, b, i, row[i], string(row))
				}
			}
			if gap := start + cells; row[gap] != ' ' {
				t.Fatalf("width %d: expected blank column %d after bar %d, got %q in %q", w, gap, b, row[gap], string(row))
			}
		}
		assertDimensions(t, f, r)
	}
}

func TestRenderChartKeepsMinimumHeight(t *testing.T) {
	r := Region{Width: 80, Height: 13}
	f := Render(r, spectrum.Inactive(), testOptions())
	lines := plainLines(f.View)
	// Info panel stays at three rows; the chart border starts right after.
	if !strings.HasPrefix(lines[3], "┌Spectrum") {
		t.Fatalf("expected chart to start on row 3, got %q", lines[3])
	}
	if got := len(lines) - 3; got != minChartHeight {
		t.Fatalf("expected chart height %d, got %d", minChartHeight, got)
	}
	assertDimensions(t, f, r)

	// With room to spare, the info panel grows to show the hint.
	tall := Render(Region{Width: 80, Height: 24}, spectrum.Inactive(), testOptions())
	if !strings.Contains(ansi.Strip(tall.View), PlatformLinux.Hint()) {
		t.Fatal("expected hint when the chart has room")
	}
}

func TestRenderScenarioWidth48(t *testing.T) {
	f := Render(Region{Width: 48, Height: 20}, spectrum.Active(testSnapshot(t, 0)), testOptions())
	if f.BarWidth != 3 {
		t.Fatalf("expected bar width 3, got %d", f.BarWidth)
	}
}

func TestRenderTallTerminalHasMargin(t *testing.T) {
	r := Region{Width: 100, Height: 50}
	f := Render(r, spectrum.Inactive(), testOptions())
	lines := plainLines(f.View)
	if strings.TrimSpace(lines[0]) != "" || strings.TrimSpace(lines[len(lines)-1]) != "" {
		t.Fatal("expected blank margin rows")
	}
	if !strings.HasPrefix(lines[1], " ┌") {
		t.Fatalf("expected left margin before border, got %q", lines[1])
	}
	assertDimensions(t, f, r)
}

func TestRenderEmptyRegion(t *testing.T) {
	f := Render(Region{}, spectrum.Inactive(), testOptions())
	if f.View != "" {
		t.Fatalf("expected empty view, got %q", f.View)
	}
}

func TestFPS(t *testing.T) {
	tests := []struct {
		tick time.Duration
		want int
	}{
		{16 * time.Millisecond, 62},
		{250 * time.Millisecond, 4},
		{1000 * time.Millisecond, 1},
		{3 * time.Second, 0},
		{0, 0},
	}
	for _, tt := range tests {
		if got := FPS(tt.tick); got != tt.want {
			t.Fatalf("FPS(%v): expected %d, got %d", tt.tick, tt.want, got)
		}
	}
}
