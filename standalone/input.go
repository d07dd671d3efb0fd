package standalone

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/user-none/puzzlebox/standalone/style"
	"github.com/user-none/puzzlebox/standalone/types"
)

// UINavigation represents the result of UI input polling
type UINavigation struct {
	Direction    int  // types.DirNone, DirUp, DirDown, DirLeft or DirRight
	Activate     bool // A/Cross button just pressed
	Back         bool // Escape or B/Circle just pressed
	OpenSettings bool // Start button just pressed (chooser only)
	FocusChanged bool // True if navigation caused focus change this frame
}

// InputManager handles all input for UI navigation.
// It tracks gamepad state, handles repeat navigation, and provides
// a clean interface for UI code to query input state.
type InputManager struct {
	// Navigation state for repeat handling
	direction    int           // 0=none, 1=up, 2=down, 3=left, 4=right
	startTime    time.Time     // When direction was first pressed
	lastMove     time.Time     // When last move occurred
	repeatDelay  time.Duration // Current repeat interval
	focusChanged bool          // Track if focus changed this frame
}

// NewInputManager creates a new input manager
func NewInputManager() *InputManager {
	return &InputManager{
		repeatDelay: style.NavStartInterval,
	}
}

// Update polls global keys. Should be called once per frame.
// Returns whether F11 (fullscreen toggle) was pressed.
func (im *InputManager) Update() (fullscreenToggle bool) {
	return inpututil.IsKeyJustPressed(ebiten.KeyF11)
}

// HasDpad reports whether a gamepad with a directional pad is attached.
func (im *InputManager) HasDpad() bool {
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			return true
		}
	}
	return false
}

// GetUINavigation polls keyboard arrows and the first gamepad's d-pad and
// left stick, applying hold-to-repeat, plus the A/B/Start buttons.
func (im *InputManager) GetUINavigation() UINavigation {
	var result UINavigation

	navUp := ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	navDown := ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	navLeft := ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	navRight := ebiten.IsKeyPressed(ebiten.KeyArrowRight)

	gamepadIDs := ebiten.AppendGamepadIDs(nil)
	hasGamepad := len(gamepadIDs) > 0
	var gamepadID ebiten.GamepadID
	if hasGamepad {
		gamepadID = gamepadIDs[0]

		// Analog stick uses a 0.5 threshold
		axisY := ebiten.StandardGamepadAxisValue(gamepadID, ebiten.StandardGamepadAxisLeftStickVertical)
		axisX := ebiten.StandardGamepadAxisValue(gamepadID, ebiten.StandardGamepadAxisLeftStickHorizontal)

		navUp = navUp || axisY < -0.5 || ebiten.IsStandardGamepadButtonPressed(gamepadID, ebiten.StandardGamepadButtonLeftTop)
		navDown = navDown || axisY > 0.5 || ebiten.IsStandardGamepadButtonPressed(gamepadID, ebiten.StandardGamepadButtonLeftBottom)
		navLeft = navLeft || axisX < -0.5 || ebiten.IsStandardGamepadButtonPressed(gamepadID, ebiten.StandardGamepadButtonLeftLeft)
		navRight = navRight || axisX > 0.5 || ebiten.IsStandardGamepadButtonPressed(gamepadID, ebiten.StandardGamepadButtonLeftRight)
	}

	dir, moved := im.advance(desiredDirection(navUp, navDown, navLeft, navRight), time.Now())
	im.focusChanged = moved
	if moved {
		result.Direction = dir
	}
	result.FocusChanged = moved

	// Escape maps to the action bar's home item
	result.Back = inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	if hasGamepad {
		// Enter/Space activation is handled by ebitenui
		result.Activate = inpututil.IsStandardGamepadButtonJustPressed(gamepadID, ebiten.StandardGamepadButtonRightBottom)
		result.Back = result.Back || inpututil.IsStandardGamepadButtonJustPressed(gamepadID, ebiten.StandardGamepadButtonRightRight)
		result.OpenSettings = inpututil.IsStandardGamepadButtonJustPressed(gamepadID, ebiten.StandardGamepadButtonCenterRight)
	}

	return result
}

// desiredDirection picks one direction from the held inputs. Vertical
// takes priority for menu-like behavior.
func desiredDirection(up, down, left, right bool) int {
	switch {
	case up:
		return types.DirUp
	case down:
		return types.DirDown
	case left:
		return types.DirLeft
	case right:
		return types.DirRight
	}
	return types.DirNone
}

// advance updates the repeat state for the held direction and reports
// whether focus should move this frame. A new direction moves at once;
// a held one repeats after NavInitialDelay, accelerating to NavMinInterval.
func (im *InputManager) advance(dir int, now time.Time) (int, bool) {
	if dir == types.DirNone {
		im.direction = types.DirNone
		im.repeatDelay = style.NavStartInterval
		return types.DirNone, false
	}

	if dir != im.direction {
		im.direction = dir
		im.startTime = now
		im.lastMove = now
		im.repeatDelay = style.NavStartInterval
		return dir, true
	}

	if now.Sub(im.startTime) < style.NavInitialDelay || now.Sub(im.lastMove) < im.repeatDelay {
		return types.DirNone, false
	}
	im.lastMove = now
	im.repeatDelay -= style.NavAcceleration
	if im.repeatDelay < style.NavMinInterval {
		im.repeatDelay = style.NavMinInterval
	}
	return dir, true
}
