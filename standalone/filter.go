package standalone

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/user-none/puzzlebox/standalone/style"
)

// FilterOverlay captures typed text to filter the puzzle chooser. It is
// drawn at the bottom-left, opposite the notification toast.
type FilterOverlay struct {
	label     string
	text      string
	active    bool              // Currently capturing keyboard input
	onChanged func(text string) // Callback when text changes

	bg *ebiten.Image
}

// NewFilterOverlay creates a filter overlay. label prefixes the typed text.
func NewFilterOverlay(label string, onChanged func(text string)) *FilterOverlay {
	return &FilterOverlay{
		label:     label,
		onChanged: onChanged,
	}
}

// Text returns the current filter
func (f *FilterOverlay) Text() string {
	return f.text
}

// IsVisible returns true if there is filter text to show
func (f *FilterOverlay) IsVisible() bool {
	return f.text != ""
}

// IsActive returns true if the overlay is capturing keyboard input
func (f *FilterOverlay) IsActive() bool {
	return f.active
}

// Activate starts capturing keyboard input
func (f *FilterOverlay) Activate() {
	f.active = true
}

// Clear removes the filter and stops capturing
func (f *FilterOverlay) Clear() {
	changed := f.text != ""
	f.text = ""
	f.active = false
	if changed && f.onChanged != nil {
		f.onChanged(f.text)
	}
}

// HandleInput processes keyboard input while active.
// Returns true if input was consumed and should not reach navigation.
func (f *FilterOverlay) HandleInput() bool {
	if !f.active {
		return false
	}

	// Arrow keys and Enter stop capturing but keep the filter
	for _, k := range []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyArrowLeft, ebiten.KeyArrowRight, ebiten.KeyEnter} {
		if ebiten.IsKeyPressed(k) {
			f.active = false
			return false
		}
	}

	f.edit(ebiten.AppendInputChars(nil), inpututil.IsKeyJustPressed(ebiten.KeyBackspace))
	return true
}

// edit applies typed characters and backspace to the filter text
func (f *FilterOverlay) edit(chars []rune, backspace bool) {
	next := f.text
	if backspace && next != "" {
		r := []rune(next)
		next = string(r[:len(r)-1])
	}
	for _, c := range chars {
		// Skip the '/' that opened the filter
		if c == '/' && next == "" {
			continue
		}
		next += string(c)
	}
	if next == f.text {
		return
	}
	f.text = next
	if f.onChanged != nil {
		f.onChanged(f.text)
	}
}

// Draw renders the overlay at bottom-left
func (f *FilterOverlay) Draw(screen *ebiten.Image) {
	if !f.IsVisible() && !f.active {
		return
	}

	displayText := f.label + f.text
	if f.active {
		displayText += "_"
	}

	textWidth, textHeight := text.Measure(displayText, *style.FontFace(), 0)

	padding := style.OverlayPadding
	bgWidth := int(textWidth) + padding*2
	bgHeight := int(textHeight) + padding*2

	margin := style.OverlayMargin
	bgX := margin
	bgY := screen.Bounds().Dy() - bgHeight - margin

	if f.bg == nil || f.bg.Bounds().Dx() < bgWidth || f.bg.Bounds().Dy() < bgHeight {
		f.bg = ebiten.NewImage(bgWidth, bgHeight)
	}
	f.bg.Clear()
	overlayBg := style.OverlayBackground
	overlayBg.A = 153 // 60% opacity
	f.bg.Fill(overlayBg)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(bgX), float64(bgY))
	screen.DrawImage(f.bg.SubImage(image.Rect(0, 0, bgWidth, bgHeight)).(*ebiten.Image), opts)

	textOpts := &text.DrawOptions{}
	textOpts.GeoM.Translate(float64(bgX+padding), float64(bgY+padding))
	textOpts.ColorScale.ScaleWithColor(style.Text)
	text.Draw(screen, displayText, *style.FontFace(), textOpts)
}
