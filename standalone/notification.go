package standalone

import (
	"image"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/user-none/puzzlebox/standalone/style"
)

// Notification displays a temporary message in the bottom-right corner.
// Show may be called from any goroutine; Draw runs on the main thread.
type Notification struct {
	mu        sync.Mutex
	message   string
	startTime time.Time
	duration  time.Duration
	now       func() time.Time

	// Reused across frames to avoid per-frame allocations
	background *ebiten.Image
}

// NewNotification creates a new notification system
func NewNotification() *Notification {
	return &Notification{now: time.Now}
}

// Show displays a notification message, replacing any visible one
func (n *Notification) Show(message string, duration time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.message = message
	n.startTime = n.now()
	n.duration = duration
}

// ShowDefault displays a notification for the default duration
func (n *Notification) ShowDefault(message string) {
	n.Show(message, style.NotificationDuration)
}

// Message returns the visible message, or "" when nothing is shown
func (n *Notification) Message() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.visibleLocked() {
		return ""
	}
	return n.message
}

// IsVisible returns whether the notification is currently visible
func (n *Notification) IsVisible() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.visibleLocked()
}

func (n *Notification) visibleLocked() bool {
	return n.message != "" && n.now().Sub(n.startTime) < n.duration
}

// Clear removes the current notification
func (n *Notification) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.message = ""
}

// Draw renders the notification
func (n *Notification) Draw(screen *ebiten.Image) {
	n.mu.Lock()
	if !n.visibleLocked() {
		n.mu.Unlock()
		return
	}
	message := n.message
	n.mu.Unlock()

	bounds := screen.Bounds()
	padding := style.OverlayPadding
	margin := style.OverlayMargin

	maxTextWidth := float64(bounds.Dx() - margin*2 - padding*2)
	if maxTextWidth > 0 {
		message, _ = style.TruncateToWidth(message, *style.FontFace(), maxTextWidth)
	}
	textWidth, textHeight := text.Measure(message, *style.FontFace(), 0)

	bgWidth := int(textWidth) + padding*2
	bgHeight := int(textHeight) + padding*2
	bgX := bounds.Dx() - bgWidth - margin
	bgY := bounds.Dy() - bgHeight - margin

	if n.background == nil || n.background.Bounds().Dx() < bgWidth || n.background.Bounds().Dy() < bgHeight {
		n.background = ebiten.NewImage(bgWidth, bgHeight)
	}
	n.background.Clear()
	overlayBg := style.OverlayBackground
	overlayBg.A = 153 // 60% opacity
	n.background.Fill(overlayBg)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(bgX), float64(bgY))
	screen.DrawImage(n.background.SubImage(image.Rect(0, 0, bgWidth, bgHeight)).(*ebiten.Image), opts)

	textOpts := &text.DrawOptions{}
	textOpts.GeoM.Translate(float64(bgX+padding), float64(bgY+padding))
	textOpts.ColorScale.ScaleWithColor(style.Text)
	text.Draw(screen, message, *style.FontFace(), textOpts)
}
