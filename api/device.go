package puzzlecore

// Orientation is the current display orientation.
type Orientation int

const (
	OrientationPortrait Orientation = iota
	OrientationLandscape
)

// String returns the display name of the orientation.
func (o Orientation) String() string {
	switch o {
	case OrientationPortrait:
		return "Portrait"
	case OrientationLandscape:
		return "Landscape"
	default:
		return "Unknown"
	}
}

// OrientationFromSize derives the orientation from window dimensions.
// Square windows count as portrait.
func OrientationFromSize(width, height int) Orientation {
	if width > height {
		return OrientationLandscape
	}
	return OrientationPortrait
}

// DeviceConfig holds the parts of the device configuration that affect
// puzzle input settings.
type DeviceConfig struct {
	Orientation Orientation
	HasDpad     bool // A gamepad or other directional pad is attached
}

const arrowKeysKeySuffix = "ArrowKeys"

// ArrowKeysPrefName returns the pref key controlling on-screen arrow keys
// for a backend. Portrait and landscape are stored separately.
func ArrowKeysPrefName(name BackendName, cfg DeviceConfig) string {
	key := name.String() + arrowKeysKeySuffix
	if cfg.Orientation == OrientationLandscape {
		key += "Landscape"
	}
	return key
}

// ArrowKeysDefault returns the default for the arrow keys pref. With a
// d-pad attached the on-screen keys are redundant and default to off.
func ArrowKeysDefault(r *Registry, name BackendName, cfg DeviceConfig) bool {
	if cfg.HasDpad {
		return false
	}
	b, ok := r.Lookup(name)
	return ok && b.ArrowsDefault
}
