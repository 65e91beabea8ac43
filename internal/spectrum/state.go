package spectrum

// Mode says which render path a CaptureState selects.
type Mode uint8

const (
	// NoSignal means there is no snapshot; the hint screen is drawn.
	NoSignal Mode = iota
	// Capturing means the snapshot is live.
	Capturing
	// Paused means the snapshot is the last one before capture stopped.
	Paused
)

func (m Mode) String() string {
	switch m {
	case Capturing:
		return "capturing"
	case Paused:
		return "paused"
	default:
		return "no signal"
	}
}

// CaptureState is the single signal a producer hands the renderer each
// frame. A snapshot is present exactly when the mode is Capturing or Paused.
type CaptureState struct {
	mode Mode
	snap Snapshot
}

// Active reports a live snapshot.
func Active(s Snapshot) CaptureState {
	return CaptureState{mode: Capturing, snap: s}
}

// Held reports a snapshot that is no longer updating.
func Held(s Snapshot) CaptureState {
	return CaptureState{mode: Paused, snap: s}
}

// Inactive reports that no signal is available.
func Inactive() CaptureState {
	return CaptureState{}
}

// Resolve collapses an independent capture flag and optional snapshot into
// one state. A missing snapshot always means NoSignal, whatever the flag says.
func Resolve(active bool, snap *Snapshot) CaptureState {
	switch {
	case snap == nil:
		return Inactive()
	case active:
		return Active(*snap)
	default:
		return Held(*snap)
	}
}

// Mode returns the render path this state selects.
func (c CaptureState) Mode() Mode { return c.mode }

// Snapshot returns the frame data and whether there is any.
func (c CaptureState) Snapshot() (Snapshot, bool) {
	if c.mode == NoSignal {
		return Snapshot{}, false
	}
	return c.snap, true
}
