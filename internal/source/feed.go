package source

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/olivier-w/climp-spectrum/internal/spectrum"
)

// Feed holds the latest snapshot published by a producer goroutine. Readers
// always get a copy, so producers may reuse their buffers freely.
type Feed struct {
	mu           sync.RWMutex
	snap         spectrum.Snapshot
	hasSnap      bool
	active       bool
	disconnected bool
	warned       bool
	log          *slog.Logger
}

// NewFeed creates an active feed with no snapshot yet.
func NewFeed(log *slog.Logger) *Feed {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Feed{active: true, log: log}
}

// Publish stores a new frame. Malformed input is clamped; the first
// violation is logged. Frames published while paused or disconnected are
// dropped.
func (f *Feed) Publish(bands []float64, peak float64) {
	snap, ok := spectrum.New(bands, peak)

	f.mu.Lock()
	defer f.mu.Unlock()

	if !ok && !f.warned {
		f.warned = true
		f.log.Warn("producer sent malformed spectrum; clamping",
			"bands", len(bands), "want", spectrum.BandCount, "peak", peak)
	}
	if !f.active || f.disconnected {
		return
	}
	f.snap = snap
	f.hasSnap = true
}

// Capture implements Source.
func (f *Feed) Capture() spectrum.CaptureState {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var snap *spectrum.Snapshot
	if f.hasSnap && !f.disconnected {
		s := f.snap
		snap = &s
	}
	return spectrum.Resolve(f.active, snap)
}

// TogglePause freezes or resumes the feed and reports whether it is paused.
func (f *Feed) TogglePause() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.active = !f.active
	f.log.Debug("feed pause toggled", "paused", !f.active)
	return !f.active
}

// ToggleSignal drops or restores the signal and reports whether it is
// disconnected. Dropping the signal forgets the last snapshot.
func (f *Feed) ToggleSignal() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.disconnected = !f.disconnected
	if f.disconnected {
		f.hasSnap = false
		f.snap = spectrum.Snapshot{}
	}
	f.log.Debug("feed signal toggled", "disconnected", f.disconnected)
	return f.disconnected
}

// Producer computes one analysis frame.
type Producer interface {
	Next() (bands []float64, peak float64)
}

// Run publishes a frame from p every interval until ctx is done.
func (f *Feed) Run(ctx context.Context, p Producer, interval time.Duration) {
	if interval <= 0 {
		interval = 20 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	f.log.Debug("feed producer started", "interval", interval)
	for {
		select {
		case <-ctx.Done():
			f.log.Debug("feed producer stopped", "err", ctx.Err())
			return
		case <-ticker.C:
			bands, peak := p.Next()
			f.Publish(bands, peak)
		}
	}
}
