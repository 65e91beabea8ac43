package source

import (
	"math"
	"math/rand/v2"

	"github.com/charmbracelet/harmonica"
	"github.com/olivier-w/climp-spectrum/internal/spectrum"
)

const (
	demoSpringFreq    = 9.0
	demoSpringDamping = 0.55
	demoBeatFrames    = 24 // a kick roughly every half second at 50 fps
)

// bandSprings eases every band toward its target so the demo moves like a
// smoothed analyser rather than jumping between random values.
type bandSprings struct {
	spring harmonica.Spring
	pos    [spectrum.BandCount]float64
	vel    [spectrum.BandCount]float64
}

func (s *bandSprings) settle(targets *[spectrum.BandCount]float64) {
	for i, target := range targets {
		s.pos[i], s.vel[i] = s.spring.Update(s.pos[i], s.vel[i], target)
	}
}

// Demo synthesises a plausible music spectrum: a bass-heavy tilt, a
// periodic kick and random movement in the upper bands. It stands in for a
// real capture pipeline.
type Demo struct {
	rng     *rand.Rand
	springs bandSprings
	targets [spectrum.BandCount]float64
	frame   int
	bands   []float64
}

// NewDemo creates a demo producer stepped fps times a second. A zero seed
// picks a random one.
func NewDemo(fps int, seed uint64) *Demo {
	if fps <= 0 {
		fps = 50
	}
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Demo{
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		springs: bandSprings{spring: harmonica.NewSpring(harmonica.FPS(fps), demoSpringFreq, demoSpringDamping)},
		bands:   make([]float64, spectrum.BandCount),
	}
}

// Next implements Producer. The returned slice is reused on every call.
func (d *Demo) Next() ([]float64, float64) {
	if d.frame%4 == 0 {
		d.retarget()
	}
	d.frame++
	d.springs.settle(&d.targets)

	peak := 0.0
	for i, v := range d.springs.pos {
		v = math.Min(math.Max(v, 0), 1)
		d.bands[i] = v
		peak = math.Max(peak, v)
	}
	return d.bands, peak
}

func (d *Demo) retarget() {
	kick := d.frame%demoBeatFrames < 4
	for i := range d.targets {
		// Energy falls off toward the high bands.
		tilt := 0.75 - 0.45*float64(i)/float64(spectrum.BandCount-1)
		v := tilt * (0.55 + 0.45*d.rng.Float64())
		if kick && i < 3 {
			v = 0.85 + 0.15*d.rng.Float64()
		}
		if d.rng.IntN(10) == 0 {
			v *= 0.3
		}
		d.targets[i] = v
	}
}
