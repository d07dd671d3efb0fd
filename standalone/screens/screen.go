package screens

import (
	"github.com/user-none/puzzlebox/standalone/types"
)

// Re-export interfaces from types package so callers only import screens
type (
	ScreenCallback = types.ScreenCallback
	FocusRestorer  = types.FocusRestorer
	FocusManager   = types.FocusManager
)
