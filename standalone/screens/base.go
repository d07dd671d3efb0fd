package screens

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/user-none/puzzlebox/standalone/types"
)

// NavZone is an ordered group of focusable buttons
type NavZone struct {
	Type    string   // types.NavZoneHorizontal, types.NavZoneVertical, or types.NavZoneGrid
	Keys    []string // Row-major for grids
	Columns int      // Grid zones only
}

// NavTransition says where focus goes when it leaves a zone
type NavTransition struct {
	ToZone  string
	ToIndex int // Index in target zone, or one of the types.NavIndex constants
}

// BaseScreen provides scroll preservation, focus restoration across
// rebuilds, and zone based keyboard/gamepad navigation. Embed it in
// screen structs.
type BaseScreen struct {
	scrollContainer *widget.ScrollContainer
	vSlider         *widget.Slider
	scrollTop       float64

	focusButtons map[string]*widget.Button
	pendingFocus string

	navZones       map[string]*NavZone
	navTransitions map[string]map[int]*NavTransition
	buttonToZone   map[string]string
}

// InitBase initializes the base screen state. Call from the constructor.
func (b *BaseScreen) InitBase() {
	b.ClearFocusButtons()
}

// ClearFocusButtons drops all registered buttons and zones.
// Call at the start of Build().
func (b *BaseScreen) ClearFocusButtons() {
	b.focusButtons = make(map[string]*widget.Button)
	b.navZones = make(map[string]*NavZone)
	b.navTransitions = make(map[string]map[int]*NavTransition)
	b.buttonToZone = make(map[string]string)
}

// SetScrollWidgets stores the scroll widgets built by the current Build().
func (b *BaseScreen) SetScrollWidgets(scrollContainer *widget.ScrollContainer, vSlider *widget.Slider) {
	b.scrollContainer = scrollContainer
	b.vSlider = vSlider
}

// SaveScrollPosition remembers the scroll offset before a rebuild.
func (b *BaseScreen) SaveScrollPosition() {
	if b.scrollContainer != nil {
		b.scrollTop = b.scrollContainer.ScrollTop
	}
}

// RestoreScrollPosition reapplies the remembered scroll offset.
func (b *BaseScreen) RestoreScrollPosition() {
	if b.scrollContainer == nil || b.scrollTop <= 0 {
		return
	}
	b.setScrollTop(b.scrollTop)
}

// ResetScroll forgets the remembered scroll offset.
func (b *BaseScreen) ResetScroll() {
	b.scrollTop = 0
}

func (b *BaseScreen) setScrollTop(top float64) {
	b.scrollContainer.ScrollTop = top
	if b.vSlider != nil {
		b.vSlider.Current = int(top * 1000)
	}
}

// RegisterFocusButton registers a button under key for focus restoration
// and navigation.
func (b *BaseScreen) RegisterFocusButton(key string, btn *widget.Button) {
	if b.focusButtons == nil {
		b.focusButtons = make(map[string]*widget.Button)
	}
	b.focusButtons[key] = btn
}

// SetPendingFocus sets the key of the button to focus after rebuild.
func (b *BaseScreen) SetPendingFocus(key string) {
	b.pendingFocus = key
}

// SetDefaultFocus sets the pending focus only if none is pending.
func (b *BaseScreen) SetDefaultFocus(key string) {
	if b.pendingFocus == "" {
		b.pendingFocus = key
	}
}

// SaveFocusState records the currently focused registered button as the
// pending focus, unless a focus is already pending.
func (b *BaseScreen) SaveFocusState(focused widget.Focuser) {
	if b.pendingFocus != "" || focused == nil {
		return
	}
	if key := b.keyFor(focused); key != "" {
		b.pendingFocus = key
	}
}

// GetPendingFocusButton returns the button to focus after rebuild, or nil.
func (b *BaseScreen) GetPendingFocusButton() *widget.Button {
	if b.pendingFocus == "" {
		return nil
	}
	return b.focusButtons[b.pendingFocus]
}

// ClearPendingFocus clears the pending focus state.
func (b *BaseScreen) ClearPendingFocus() {
	b.pendingFocus = ""
}

func (b *BaseScreen) keyFor(focused widget.Focuser) string {
	w := focused.GetWidget()
	if w == nil {
		return ""
	}
	for key, btn := range b.focusButtons {
		if btn.GetWidget() == w {
			return key
		}
	}
	return ""
}

// RegisterNavZone registers a navigation zone. columns is used by grid
// zones only.
func (b *BaseScreen) RegisterNavZone(name string, zoneType string, keys []string, columns int) {
	b.navZones[name] = &NavZone{Type: zoneType, Keys: keys, Columns: columns}
	for _, key := range keys {
		b.buttonToZone[key] = name
	}
}

// SetNavTransition defines where focus goes when leaving fromZone in direction.
func (b *BaseScreen) SetNavTransition(fromZone string, direction int, toZone string, toIndex int) {
	if b.navTransitions[fromZone] == nil {
		b.navTransitions[fromZone] = make(map[int]*NavTransition)
	}
	b.navTransitions[fromZone][direction] = &NavTransition{ToZone: toZone, ToIndex: toIndex}
}

// EnsureFocusedVisible scrolls minimally so the focused button is inside
// the view. Buttons outside the scroll content should be filtered by
// inScroll; nil accepts every button.
func (b *BaseScreen) EnsureFocusedVisible(focused widget.Focuser, inScroll func(*widget.Button) bool) {
	if focused == nil || b.scrollContainer == nil {
		return
	}
	btn, ok := focused.(*widget.Button)
	if !ok || (inScroll != nil && !inScroll(btn)) {
		return
	}

	rect := btn.GetWidget().Rect
	view := b.scrollContainer.ViewRect()
	content := b.scrollContainer.ContentRect()
	maxScroll := content.Dy() - view.Dy()
	if maxScroll <= 0 {
		return
	}

	offset := int(b.scrollContainer.ScrollTop * float64(maxScroll))
	top := rect.Min.Y - view.Min.Y
	bottom := rect.Max.Y - view.Min.Y

	switch {
	case top < 0:
		offset += top
	case bottom > view.Dy():
		offset += bottom - view.Dy()
	default:
		return
	}
	if offset < 0 {
		offset = 0
	}
	if offset > maxScroll {
		offset = maxScroll
	}
	b.setScrollTop(float64(offset) / float64(maxScroll))
}

// FindFocusInDirection returns the button to move focus to from current,
// or nil when there is nowhere to go.
func (b *BaseScreen) FindFocusInDirection(current widget.Focuser, direction int) *widget.Button {
	if current == nil || len(b.focusButtons) == 0 {
		return nil
	}
	key := b.keyFor(current)
	if key == "" {
		return nil
	}

	zoneName, ok := b.buttonToZone[key]
	if !ok {
		return nil
	}
	zone := b.navZones[zoneName]
	if zone == nil {
		return nil
	}
	index := indexOf(zone.Keys, key)
	if index < 0 {
		return nil
	}

	next, leave := stepInZone(zone, index, direction)
	if leave {
		return b.transition(zoneName, zone, index, direction)
	}
	if next < 0 {
		return nil
	}
	return b.focusButtons[zone.Keys[next]]
}

// stepInZone moves index one step in direction. leave reports that the
// step crosses the zone boundary.
func stepInZone(zone *NavZone, index, direction int) (next int, leave bool) {
	total := len(zone.Keys)

	switch zone.Type {
	case types.NavZoneHorizontal, types.NavZoneVertical:
		back, fwd := types.DirLeft, types.DirRight
		if zone.Type == types.NavZoneVertical {
			back, fwd = types.DirUp, types.DirDown
		}
		switch direction {
		case back:
			if index > 0 {
				return index - 1, false
			}
			return -1, true
		case fwd:
			if index < total-1 {
				return index + 1, false
			}
			return -1, true
		case types.DirNone:
			return -1, false
		}
		return -1, true

	case types.NavZoneGrid:
		cols := zone.Columns
		if cols <= 0 {
			cols = 1
		}
		row, col := index/cols, index%cols
		rows := (total + cols - 1) / cols
		switch direction {
		case types.DirLeft:
			if col > 0 {
				return index - 1, false
			}
		case types.DirRight:
			if col < cols-1 && index+1 < total {
				return index + 1, false
			}
		case types.DirUp:
			if row > 0 {
				return index - cols, false
			}
		case types.DirDown:
			if row < rows-1 && index+cols < total {
				return index + cols, false
			}
		default:
			return -1, false
		}
		return -1, true
	}
	return -1, false
}

func (b *BaseScreen) transition(fromName string, from *NavZone, fromIndex, direction int) *widget.Button {
	tr := b.navTransitions[fromName][direction]
	if tr == nil {
		return nil
	}
	to := b.navZones[tr.ToZone]
	if to == nil || len(to.Keys) == 0 {
		return nil
	}

	target := 0
	switch {
	case tr.ToIndex == types.NavIndexFirst:
	case tr.ToIndex == types.NavIndexLast:
		target = len(to.Keys) - 1
	case tr.ToIndex == types.NavIndexPreserve:
		target = preservedIndex(fromIndex, from, to, direction)
	case tr.ToIndex < len(to.Keys):
		target = tr.ToIndex
	}
	return b.focusButtons[to.Keys[target]]
}

// preservedIndex picks the entry in to that keeps the user's position:
// the same column between grids, a proportional slot from a grid into a
// horizontal row, and otherwise the near end in the direction of travel.
func preservedIndex(fromIndex int, from, to *NavZone, direction int) int {
	n := len(to.Keys)

	if from.Type == types.NavZoneGrid && from.Columns > 0 {
		col := fromIndex % from.Columns
		switch {
		case to.Type == types.NavZoneHorizontal:
			ratio := float64(col) / float64(from.Columns)
			return int(ratio*float64(n-1) + 0.5)
		case to.Type == types.NavZoneGrid && to.Columns > 0 && col < to.Columns:
			if direction != types.DirUp {
				return col
			}
			idx := ((n-1)/to.Columns)*to.Columns + col
			if idx >= n {
				idx = n - 1
			}
			return idx
		}
	}

	if from.Type == types.NavZoneHorizontal && to.Type == types.NavZoneHorizontal {
		if fromIndex < n {
			return fromIndex
		}
		return n - 1
	}

	if direction == types.DirUp || direction == types.DirLeft {
		return n - 1
	}
	return 0
}

func indexOf(keys []string, key string) int {
	for i, k := range keys {
		if k == key {
			return i
		}
	}
	return -1
}
