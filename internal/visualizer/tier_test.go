package visualizer

import (
	"math"
	"testing"
)

func TestTierForBoundaries(t *testing.T) {
	tests := []struct {
		v    float64
		want Tier
	}{
		{0, TierGreen},
		{0.2499, TierGreen},
		{0.25, TierYellowGreen},
		{0.30, TierYellowGreen},
		{0.4999, TierYellowGreen},
		{0.50, TierYellow},
		{0.6499, TierYellow},
		{0.65, TierOrange},
		{0.7499, TierOrange},
		{0.75, TierRed},
		{0.90, TierRed},
		{1.0, TierRed},
		{1.4, TierRed},
		{-3, TierGreen},
		{math.NaN(), TierGreen},
	}
	for _, tt := range tests {
		if got := TierFor(tt.v); got != tt.want {
			t.Fatalf("TierFor(%v): expected %s, got %s", tt.v, tt.want, got)
		}
	}
}

func TestTierForMonotonic(t *testing.T) {
	prev := TierFor(-1)
	for i := -100; i <= 1200; i++ {
		v := float64(i) / 1000
		got := TierFor(v)
		if got < prev {
			t.Fatalf("tier decreased at %v: %s after %s", v, got, prev)
		}
		prev = got
	}
}

func TestTierForOnlyKnownTiers(t *testing.T) {
	seen := map[Tier]bool{}
	for i := -100; i <= 1200; i++ {
		seen[TierFor(float64(i)/1000)] = true
	}
	if len(seen) != len(Tiers) {
		t.Fatalf("expected %d distinct tiers, got %d", len(Tiers), len(seen))
	}
	for tier := range seen {
		if tier > TierRed {
			t.Fatalf("unexpected tier %d", tier)
		}
	}
}

func TestTierColors(t *testing.T) {
	want := map[Tier]string{
		TierGreen:       "#00C800",
		TierYellowGreen: "#B4C800",
		TierYellow:      "#FFC800",
		TierOrange:      "#FF8C00",
		TierRed:         "#FF3200",
	}
	for tier, hex := range want {
		if got := string(tier.Color()); got != hex {
			t.Fatalf("%s: expected %s, got %s", tier, hex, got)
		}
	}
}
