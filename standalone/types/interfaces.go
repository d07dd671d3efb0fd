// Package types provides shared interfaces used across UI packages.
// This package exists to avoid import cycles between screens and sub-packages.
package types

import (
	"github.com/ebitenui/ebitenui/widget"
	puzzlecore "github.com/user-none/puzzlebox/api"
)

// Direction constants for navigation
const (
	DirNone  = 0
	DirUp    = 1
	DirDown  = 2
	DirLeft  = 3
	DirRight = 4
)

// Navigation zone types
const (
	NavZoneHorizontal = "horizontal" // Left/Right navigates, Up/Down exits zone
	NavZoneVertical   = "vertical"   // Up/Down navigates, Left/Right exits zone
	NavZoneGrid       = "grid"       // 2D grid navigation
)

// Navigation index constants
const (
	NavIndexPreserve = -1 // Try to preserve column/row position
	NavIndexFirst    = -2 // Go to first item
	NavIndexLast     = -3 // Go to last item
)

// MenuItem identifies an options menu or action bar item.
type MenuItem int

const (
	MenuItemNone MenuItem = iota
	MenuItemHome          // Up/back affordance in the action bar
)

// ScreenCallback provides callbacks for screen navigation
type ScreenCallback interface {
	SwitchToChooser()
	SwitchToSettings(backend string) // Empty backend opens general settings
	Exit()
	GetWindowWidth() int // For responsive layout calculations
	RequestRebuild()     // Request UI rebuild after state changes
}

// FocusRestorer is implemented by screens that support focus restoration after rebuilds
type FocusRestorer interface {
	GetPendingFocusButton() *widget.Button
	ClearPendingFocus()
}

// FocusManager registers focusable buttons and navigation zones.
// Implemented by BaseScreen, used by row builders.
type FocusManager interface {
	RegisterFocusButton(key string, btn *widget.Button)
	SetPendingFocus(key string)
	SetScrollWidgets(sc *widget.ScrollContainer, slider *widget.Slider)
	RestoreScrollPosition()
	RegisterNavZone(name string, zoneType string, keys []string, columns int)
	SetNavTransition(fromZone string, direction int, toZone string, toIndex int)
}

// Chrome is the window decoration a settings screen forwards its
// lifecycle and action bar calls to.
type Chrome interface {
	SetDisplayHomeAsUpEnabled(enabled bool)
	OnPostCreate()
	OnPostResume()
	OnStop()
	OnDestroy()
	SetTitle(title string)
	OnConfigurationChanged(cfg puzzlecore.DeviceConfig)
	InflateMenu(items []MenuItem)
	SetContentView(view *widget.Container)
	InvalidateOptionsMenu()
}

// Clipboard places text on the system clipboard. label describes the
// content for platforms that show one.
type Clipboard interface {
	SetText(label, text string) error
}

// Toaster shows short transient messages.
type Toaster interface {
	ShowDefault(message string)
}

// BackupNotifier is told when persisted settings changed and should be
// backed up.
type BackupNotifier interface {
	DataChanged()
}

// FeedbackLauncher opens the feedback flow.
type FeedbackLauncher interface {
	LaunchFeedback()
}
