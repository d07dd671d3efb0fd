package standalone

// AppState represents the current state of the application
type AppState int

const (
	// StateChooser lists the puzzles
	StateChooser AppState = iota
	// StateSettings shows general or per-puzzle settings
	StateSettings
	// StateError shows a startup error (corrupted prefs)
	StateError
)

// String returns the string representation of the state
func (s AppState) String() string {
	switch s {
	case StateChooser:
		return "Chooser"
	case StateSettings:
		return "Settings"
	case StateError:
		return "Error"
	default:
		return "Unknown"
	}
}
