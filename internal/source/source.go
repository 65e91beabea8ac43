// Package source provides the producers that hand capture state to the
// renderer each tick.
package source

import "github.com/olivier-w/climp-spectrum/internal/spectrum"

// Source yields the capture state for the current frame.
type Source interface {
	Capture() spectrum.CaptureState
}

// Func adapts a plain function to Source.
type Func func() spectrum.CaptureState

// Capture calls f.
func (f Func) Capture() spectrum.CaptureState { return f() }

// None is a source with no signal, ever.
func None() Source {
	return Func(spectrum.Inactive)
}

// Pauser is implemented by sources that can freeze their last frame.
type Pauser interface {
	TogglePause() bool
}

// Disconnector is implemented by sources whose signal can be dropped and
// restored.
type Disconnector interface {
	ToggleSignal() bool
}
