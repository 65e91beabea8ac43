package visualizer

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Tier is a color class for a magnitude. Higher tiers are more intense.
type Tier uint8

const (
	TierGreen       Tier = iota // below 0.25
	TierYellowGreen             // 0.25 up to 0.50
	TierYellow                  // 0.50 up to 0.65
	TierOrange                  // 0.65 up to 0.75
	TierRed                     // 0.75 and above
)

// Tiers lists every tier from quietest to loudest.
var Tiers = [...]Tier{TierGreen, TierYellowGreen, TierYellow, TierOrange, TierRed}

type colorRGB struct {
	R uint8
	G uint8
	B uint8
}

func (c colorRGB) hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

var tierColors = [...]colorRGB{
	TierGreen:       {R: 0, G: 200, B: 0},
	TierYellowGreen: {R: 180, G: 200, B: 0},
	TierYellow:      {R: 255, G: 200, B: 0},
	TierOrange:      {R: 255, G: 140, B: 0},
	TierRed:         {R: 255, G: 50, B: 0},
}

// TierFor classifies a magnitude. Values outside [0,1] land in whichever
// tier they numerically satisfy; NaN is treated as silence.
func TierFor(v float64) Tier {
	switch {
	case math.IsNaN(v), v < 0.25:
		return TierGreen
	case v < 0.50:
		return TierYellowGreen
	case v < 0.65:
		return TierYellow
	case v < 0.75:
		return TierOrange
	default:
		return TierRed
	}
}

// Color returns the tier's foreground color.
func (t Tier) Color() lipgloss.Color {
	if int(t) >= len(tierColors) {
		t = TierRed
	}
	return lipgloss.Color(tierColors[t].hex())
}

func (t Tier) String() string {
	switch t {
	case TierGreen:
		return "green"
	case TierYellowGreen:
		return "yellow-green"
	case TierYellow:
		return "yellow"
	case TierOrange:
		return "orange"
	default:
		return "red"
	}
}
