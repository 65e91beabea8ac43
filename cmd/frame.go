package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/olivier-w/climp-spectrum/internal/source"
	"github.com/olivier-w/climp-spectrum/internal/spectrum"
	"github.com/olivier-w/climp-spectrum/internal/visualizer"
)

var (
	frWidth      int
	frHeight     int
	frNoSignal   bool
	frPaused     bool
	frBands      string
	frPeak       float64
	frDemoFrames int
	frDemoSeed   uint64
	frLegend     bool
)

var frameCmd = &cobra.Command{
	Use:   "frame",
	Short: "Render a single frame to stdout",
	Long: `Render one frame and exit. Useful for scripts and for checking layout
at a given terminal size.

Examples:
  climp-spectrum frame --no-signal --platform macos
  climp-spectrum frame --bands 0.9,0.8,0.6,0.5,0.4,0.3,0.3,0.2,0.2,0.1,0.1,0.05
  climp-spectrum frame -W 48 -H 20 --demo-frames 120
  climp-spectrum frame --legend`,
	Args: cobra.NoArgs,
	RunE: runFrame,
}

func init() {
	f := frameCmd.Flags()
	f.IntVarP(&frWidth, "width", "W", 0, "frame width in cells (default: terminal width)")
	f.IntVarP(&frHeight, "height", "H", 0, "frame height in cells (default: terminal height)")
	f.BoolVar(&frNoSignal, "no-signal", false, "render the no-signal screen")
	f.BoolVar(&frPaused, "paused", false, "render the snapshot as paused")
	f.StringVar(&frBands, "bands", "", "comma-separated band magnitudes, lowest band first")
	f.Float64Var(&frPeak, "peak", -1, "peak magnitude (default: loudest band)")
	f.IntVar(&frDemoFrames, "demo-frames", 60, "demo frames to advance when --bands is not given")
	f.Uint64Var(&frDemoSeed, "demo-seed", 1, "demo source seed")
	f.BoolVar(&frLegend, "legend", false, "print band names and magnitudes after the frame")
}

func runFrame(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, closeLog, err := openLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	opts, err := cfg.RenderOptions()
	if err != nil {
		return err
	}

	state, err := frameState(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	region := frameRegion()
	log.Debug("rendering frame", "region", region, "mode", state.Mode())

	frame := visualizer.Render(region, state, opts)
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintln(out, frame.View); err != nil {
		return err
	}
	if frLegend {
		return writeLegend(out, state)
	}
	return nil
}

// writeLegend lists each band's short label, long name and magnitude.
func writeLegend(w io.Writer, state spectrum.CaptureState) error {
	snap, ok := state.Snapshot()
	for i := range spectrum.BandCount {
		var err error
		if ok {
			_, err = fmt.Fprintf(w, "%-6s %-11s %.2f\n", spectrum.Label(i), spectrum.Name(i), snap.Bands[i])
		} else {
			_, err = fmt.Fprintf(w, "%-6s %-11s -\n", spectrum.Label(i), spectrum.Name(i))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func frameState(warn io.Writer) (spectrum.CaptureState, error) {
	if frNoSignal {
		return spectrum.Inactive(), nil
	}

	var bands []float64
	var peak float64
	if frBands != "" {
		var err error
		if bands, err = parseBands(frBands); err != nil {
			return spectrum.CaptureState{}, err
		}
		for _, v := range bands {
			peak = max(peak, v)
		}
	} else {
		demo := source.NewDemo(0, frDemoSeed)
		for range max(frDemoFrames, 1) {
			bands, peak = demo.Next()
		}
	}
	if frPeak >= 0 {
		peak = frPeak
	}

	snap, ok := spectrum.New(bands, peak)
	if !ok {
		fmt.Fprintf(warn, "warning: expected %d band magnitudes in [0,1]; input was clamped\n", spectrum.BandCount)
	}
	return spectrum.Resolve(!frPaused, &snap), nil
}

func parseBands(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	bands := make([]float64, 0, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("band %d: %w", i, err)
		}
		bands = append(bands, v)
	}
	return bands, nil
}

// frameRegion uses explicit flags first, then the terminal size, then 80x24.
func frameRegion() visualizer.Region {
	w, h := 80, 24
	if tw, th, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		w, h = tw, th
	}
	if frWidth > 0 {
		w = frWidth
	}
	if frHeight > 0 {
		h = frHeight
	}
	return visualizer.Region{Width: w, Height: h}
}
