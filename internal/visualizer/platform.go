package visualizer

import (
	"fmt"
	"runtime"
	"strings"
)

// Platform selects the remediation hint shown when there is no signal.
type Platform uint8

const (
	PlatformOther   Platform = iota // unknown host; generic hint
	PlatformLinux                   // PipeWire or PulseAudio monitor
	PlatformWindows                 // WASAPI loopback
	PlatformMacOS                   // needs a virtual loopback driver
)

var hints = map[Platform]string{
	PlatformLinux:   "Hint: Ensure PipeWire or PulseAudio is running with a monitor device",
	PlatformWindows: "Hint: Audio loopback should work automatically on Windows",
	PlatformMacOS:   "Hint: macOS requires a virtual audio device like BlackHole",
	PlatformOther:   "Hint: Audio capture may not be supported on this platform",
}

// HostPlatform maps runtime.GOOS to a Platform.
func HostPlatform() Platform {
	return platformForGOOS(runtime.GOOS)
}

func platformForGOOS(goos string) Platform {
	switch goos {
	case "linux":
		return PlatformLinux
	case "windows":
		return PlatformWindows
	case "darwin":
		return PlatformMacOS
	default:
		return PlatformOther
	}
}

// ParsePlatform accepts a platform name or GOOS value. An empty name means
// the host platform.
func ParsePlatform(name string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return HostPlatform(), nil
	case "linux":
		return PlatformLinux, nil
	case "windows":
		return PlatformWindows, nil
	case "macos", "darwin":
		return PlatformMacOS, nil
	case "other":
		return PlatformOther, nil
	}
	return PlatformOther, fmt.Errorf("unknown platform %q (want linux, windows, macos or other)", name)
}

// Hint returns the single remediation line for the platform.
func (p Platform) Hint() string {
	if h, ok := hints[p]; ok {
		return h
	}
	return hints[PlatformOther]
}

func (p Platform) String() string {
	switch p {
	case PlatformLinux:
		return "linux"
	case PlatformWindows:
		return "windows"
	case PlatformMacOS:
		return "macos"
	default:
		return "other"
	}
}
