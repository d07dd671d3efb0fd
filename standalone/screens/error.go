package screens

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/user-none/puzzlebox/standalone/style"
	"github.com/user-none/puzzlebox/standalone/types"
)

// ErrorMode distinguishes between types of prefs errors
type ErrorMode int

const (
	// ErrorModeCorrupted indicates the JSON file could not be parsed
	ErrorModeCorrupted ErrorMode = iota
	// ErrorModeInvalid indicates the JSON parsed but contains invalid values
	ErrorModeInvalid
)

// maxErrorDetails caps listed validation errors so the buttons stay on screen
const maxErrorDetails = 5

// ErrorActions are the recovery choices offered by the error screen.
// A nil action hides its button.
type ErrorActions struct {
	Delete  func() // Corrupted: start with empty prefs
	Restore func() // Corrupted: load the latest backup snapshot
	Reset   func() // Invalid: reset bad values to defaults
}

// ErrorScreen displays startup errors for a corrupted or invalid prefs file
type ErrorScreen struct {
	BaseScreen

	callback ScreenCallback
	strings  Strings
	filename string
	mode     ErrorMode
	details  []string
	actions  ErrorActions
}

// NewErrorScreen creates a new error screen
func NewErrorScreen(callback ScreenCallback, strs Strings) *ErrorScreen {
	s := &ErrorScreen{callback: callback, strings: strs}
	s.InitBase()
	return s
}

// SetCorrupted shows the unreadable-file variant
func (s *ErrorScreen) SetCorrupted(filename string, actions ErrorActions) {
	s.filename = filename
	s.mode = ErrorModeCorrupted
	s.details = nil
	s.actions = actions
}

// SetInvalid shows the invalid-values variant with the given details
func (s *ErrorScreen) SetInvalid(filename string, details []string, actions ErrorActions) {
	s.filename = filename
	s.mode = ErrorModeInvalid
	s.details = details
	s.actions = actions
}

// Mode returns the variant being shown
func (s *ErrorScreen) Mode() ErrorMode {
	return s.mode
}

// Build creates the error screen UI
func (s *ErrorScreen) Build() *widget.Container {
	s.ClearFocusButtons()

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(style.Background)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	content := style.CenteredContainer(style.DefaultSpacing)

	var buttons []string
	if s.mode == ErrorModeInvalid {
		content.AddChild(centeredText(s.strings.String("error_invalid_title"), style.Text))
		content.AddChild(centeredText(s.strings.Format("error_invalid_message", s.filename), style.Text))
		for i, detail := range s.details {
			if i >= maxErrorDetails {
				content.AddChild(centeredText(s.strings.Format("error_more", len(s.details)-maxErrorDetails), style.TextSecondary))
				break
			}
			content.AddChild(centeredText(detail, style.TextSecondary))
		}
		content.AddChild(centeredText(s.strings.String("error_invalid_help"), style.TextSecondary))
		buttons = s.addButtons(content, []errorButton{{"error-reset", "error_reset", s.actions.Reset}})
	} else {
		content.AddChild(centeredText(s.strings.String("error_corrupted_title"), style.Text))
		content.AddChild(centeredText(s.strings.Format("error_corrupted_message", s.filename), style.Text))
		content.AddChild(centeredText(s.strings.String("error_corrupted_help"), style.TextSecondary))
		buttons = s.addButtons(content, []errorButton{
			{"error-restore", "error_restore", s.actions.Restore},
			{"error-delete", "error_delete", s.actions.Delete},
		})
	}

	rootContainer.AddChild(content)
	s.RegisterNavZone("buttons", types.NavZoneHorizontal, buttons, 0)
	return rootContainer
}

type errorButton struct {
	key      string
	labelKey string
	action   func()
}

// addButtons adds the action buttons followed by Exit and returns their keys
func (s *ErrorScreen) addButtons(container *widget.Container, defs []errorButton) []string {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(style.DefaultSpacing),
		)),
	)

	defs = append(defs, errorButton{"error-exit", "quit", s.callback.Exit})
	var keys []string
	for _, d := range defs {
		if d.action == nil {
			continue
		}
		action := d.action
		btn := style.TextButton(s.strings.String(d.labelKey), style.ButtonPaddingMedium, func(args *widget.ButtonClickedEventArgs) {
			action()
		})
		s.RegisterFocusButton(d.key, btn)
		row.AddChild(btn)
		keys = append(keys, d.key)
	}
	container.AddChild(row)
	return keys
}

func centeredText(label string, c color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, style.FontFace(), c),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
	)
}

// OnEnter focuses the first recovery action
func (s *ErrorScreen) OnEnter() {
	if s.mode == ErrorModeInvalid {
		s.SetDefaultFocus("error-reset")
	} else if s.actions.Restore != nil {
		s.SetDefaultFocus("error-restore")
	} else {
		s.SetDefaultFocus("error-delete")
	}
}
