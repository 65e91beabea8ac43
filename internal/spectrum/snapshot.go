// Package spectrum defines the per-frame spectrum data consumed by the renderer.
package spectrum

import "math"

// BandCount is the number of frequency bands in every snapshot.
const BandCount = 12

// Labels are the short band names shown under each bar, lowest frequency first.
var Labels = [BandCount]string{
	"Sub", "Bass", "Low", "LMid", "Mid", "UMid", "High", "HiMd", "Pres", "Bril", "Air", "Ultra",
}

// Names are the long band names, in the same order as Labels.
var Names = [BandCount]string{
	"Sub", "Bass", "Low", "Low-Mid", "Mid", "Upper-Mid",
	"High", "High-Mid", "Presence", "Brilliance", "Air", "Ultra",
}

// Snapshot is one frame of normalized band magnitudes. It is a value type:
// copies never share memory with the producer.
type Snapshot struct {
	Bands [BandCount]float64
	Peak  float64
}

// New builds a snapshot from producer data. Magnitudes are clamped to
// [0,1], extra bands are dropped and missing bands read as zero. ok is false
// when the input broke the contract in any of those ways.
func New(bands []float64, peak float64) (s Snapshot, ok bool) {
	ok = len(bands) == BandCount
	n := min(len(bands), BandCount)
	for i := range n {
		v, inRange := Clamp(bands[i])
		s.Bands[i] = v
		ok = ok && inRange
	}
	p, inRange := Clamp(peak)
	s.Peak = p
	return s, ok && inRange
}

// Clamp limits v to [0,1]. NaN maps to 0. inRange reports whether v was
// already a valid magnitude.
func Clamp(v float64) (out float64, inRange bool) {
	switch {
	case math.IsNaN(v):
		return 0, false
	case v < 0:
		return 0, false
	case v > 1:
		return 1, false
	}
	return v, true
}

// Label returns the short label for band i, or "?" outside the band range.
func Label(i int) string {
	if i < 0 || i >= BandCount {
		return "?"
	}
	return Labels[i]
}

// Name returns the long name of band i, or "?" when i is out of range.
func Name(i int) string {
	if i < 0 || i >= BandCount {
		return "?"
	}
	return Names[i]
}
