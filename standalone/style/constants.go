package style

import "time"

// Logical-pixel reference values. The exported vars are recalculated by
// SetDPIScale.
const (
	baseDefaultPadding        = 16
	baseDefaultSpacing        = 16
	baseSmallSpacing          = 8
	baseTinySpacing           = 4
	baseLargeSpacing          = 24
	baseScrollbarWidth        = 20
	baseButtonPaddingSmall    = 8
	baseButtonPaddingMedium   = 12
	baseChooserCardMinWidth   = 160
	baseSettingsLabelMinWidth = 220
	baseOverlayPadding        = 12
	baseOverlayMargin         = 8

	// Font-dependent (at 14pt, scale = 1.0)
	baseSettingsRowHeight = 38
	baseChooserRowHeight  = 40
	baseMaxLargeFontSize  = 36
)

// Layout vars used across screens, DPI-scaled at runtime via SetDPIScale.
var (
	DefaultPadding = baseDefaultPadding
	DefaultSpacing = baseDefaultSpacing
	SmallSpacing   = baseSmallSpacing
	TinySpacing    = baseTinySpacing
	LargeSpacing   = baseLargeSpacing

	ScrollbarWidth = baseScrollbarWidth

	ButtonPaddingSmall  = baseButtonPaddingSmall
	ButtonPaddingMedium = baseButtonPaddingMedium

	// Chooser grid cards
	ChooserCardMinWidth = baseChooserCardMinWidth

	// Settings rows: label column width
	SettingsLabelMinWidth = baseSettingsLabelMinWidth

	// Notification overlay
	OverlayPadding = baseOverlayPadding
	OverlayMargin  = baseOverlayMargin
)

// Font-dependent layout values
var (
	SettingsRowHeight = baseSettingsRowHeight
	ChooserRowHeight  = baseChooserRowHeight
)

// Gamepad navigation timing constants
const (
	NavInitialDelay  = 400 * time.Millisecond // Delay before repeat starts
	NavStartInterval = 200 * time.Millisecond // Initial repeat interval
	NavMinInterval   = 25 * time.Millisecond  // Fastest repeat (cap)
	NavAcceleration  = 20 * time.Millisecond  // Speed increase per repeat
)

// Mouse wheel scroll sensitivity
const ScrollWheelSensitivity = 0.05

// Toast duration
const NotificationDuration = 3 * time.Second
