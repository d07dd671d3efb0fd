package screens

import (
	"image/color"
	"sort"
	"strings"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	puzzlecore "github.com/user-none/puzzlebox/api"
	"github.com/user-none/puzzlebox/standalone/screens/settings"
	"github.com/user-none/puzzlebox/standalone/storage"
	"github.com/user-none/puzzlebox/standalone/style"
	"github.com/user-none/puzzlebox/standalone/types"
)

// chooserDefaultWindowWidth is used for layout before the window reports a size.
const chooserDefaultWindowWidth = 800

// ChooserEntry is one puzzle shown in the chooser.
type ChooserEntry struct {
	Name        puzzlecore.BackendName
	DisplayName string
}

// ChooserScreen lists the puzzles as a list or grid, per the chooserStyle
// preference. Picking one opens its settings.
type ChooserScreen struct {
	BaseScreen

	callback ScreenCallback
	store    *storage.Prefs
	registry *puzzlecore.Registry
	strings  Strings

	entries []ChooserEntry
	filter  string
}

// NewChooserScreen creates the chooser
func NewChooserScreen(callback ScreenCallback, store *storage.Prefs, registry *puzzlecore.Registry, strs Strings) *ChooserScreen {
	s := &ChooserScreen{
		callback: callback,
		store:    store,
		registry: registry,
		strings:  strs,
	}
	s.InitBase()
	s.loadEntries()
	return s
}

// loadEntries resolves display names and sorts by them
func (s *ChooserScreen) loadEntries() {
	all := s.registry.All()
	s.entries = make([]ChooserEntry, 0, len(all))
	for _, b := range all {
		s.entries = append(s.entries, ChooserEntry{
			Name:        b.Name,
			DisplayName: s.strings.String(b.DisplayNameKey),
		})
	}
	sort.SliceStable(s.entries, func(i, j int) bool {
		return s.entries[i].DisplayName < s.entries[j].DisplayName
	})
}

// Entries returns the puzzles in display order.
func (s *ChooserScreen) Entries() []ChooserEntry {
	return s.entries
}

// SetFilter limits the chooser to puzzles whose display name contains
// text, ignoring case. An empty text shows every puzzle.
func (s *ChooserScreen) SetFilter(text string) {
	if text == s.filter {
		return
	}
	s.filter = text
	s.ResetScroll()
	s.callback.RequestRebuild()
}

// Visible returns the entries that match the current filter.
func (s *ChooserScreen) Visible() []ChooserEntry {
	if s.filter == "" {
		return s.entries
	}
	needle := strings.ToLower(s.filter)
	var out []ChooserEntry
	for _, e := range s.entries {
		if strings.Contains(strings.ToLower(e.DisplayName), needle) {
			out = append(out, e)
		}
	}
	return out
}

// Style returns the stored chooser style, falling back to the default
// for unknown values.
func (s *ChooserScreen) Style() string {
	v := s.store.GetString(settings.KeyChooserStyle, settings.ListDefault(settings.KeyChooserStyle))
	if v != settings.ChooserStyleGrid {
		return settings.ChooserStyleList
	}
	return v
}

func entryKey(name puzzlecore.BackendName) string {
	return "puzzle-" + name.String()
}

// Build creates the chooser screen UI
func (s *ChooserScreen) Build() *widget.Container {
	s.SaveScrollPosition()
	s.ClearFocusButtons()

	rootContainer := style.ScreenContainer()
	inner := style.ScreenContentContainer([]bool{false, true}) // toolbar=fixed, puzzles=stretch

	inner.AddChild(s.buildToolbar())

	columns := 1
	var content *widget.Container
	if s.Style() == settings.ChooserStyleGrid {
		content, columns = s.buildGrid()
	} else {
		content = s.buildList()
	}

	scrollContainer, vSlider, wrapper := style.ScrollableContainer(style.ScrollableOpts{
		Content: content,
		BgColor: style.Background,
	})
	s.SetScrollWidgets(scrollContainer, vSlider)
	s.RestoreScrollPosition()
	inner.AddChild(wrapper)

	rootContainer.AddChild(inner)
	s.setupNavigation(columns)
	return rootContainer
}

func (s *ChooserScreen) buildToolbar() *widget.Container {
	toolbar := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(3),
			widget.GridLayoutOpts.Stretch([]bool{false, true, false}, nil),
			widget.GridLayoutOpts.Spacing(style.SmallSpacing, 0),
		)),
	)

	left := style.ButtonRow()
	for _, v := range []string{settings.ChooserStyleList, settings.ChooserStyleGrid} {
		value := v
		key := "toolbar-" + value
		btn := style.ToggleButton(s.strings.String(settings.KeyChooserStyle+"_"+value), s.Style() == value, func(args *widget.ButtonClickedEventArgs) {
			s.store.PutString(settings.KeyChooserStyle, value)
			s.SetPendingFocus(key)
			s.callback.RequestRebuild()
		})
		s.RegisterFocusButton(key, btn)
		left.AddChild(btn)
	}
	toolbar.AddChild(left)

	toolbar.AddChild(style.ScreenTitle(s.strings.String("choose_puzzle")))

	right := style.ButtonRow()
	settingsButton := style.TextButton(s.strings.String("settings"), style.ButtonPaddingSmall, func(args *widget.ButtonClickedEventArgs) {
		s.SetPendingFocus("toolbar-settings")
		s.callback.SwitchToSettings("")
	})
	s.RegisterFocusButton("toolbar-settings", settingsButton)
	right.AddChild(settingsButton)

	quitButton := style.TextButton(s.strings.String("quit"), style.ButtonPaddingSmall, func(args *widget.ButtonClickedEventArgs) {
		s.callback.Exit()
	})
	s.RegisterFocusButton("toolbar-quit", quitButton)
	right.AddChild(quitButton)
	toolbar.AddChild(right)

	return toolbar
}

// entryButton creates the clickable row or card for one puzzle
func (s *ChooserScreen) entryButton(entry ChooserEntry, idle color.Color, minWidth, minHeight int) *widget.Button {
	name := entry.Name
	btn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(idle),
			Hover:   image.NewNineSliceColor(style.PrimaryHover),
			Pressed: image.NewNineSliceColor(style.Primary),
		}),
		widget.ButtonOpts.Text(entry.DisplayName, style.FontFace(), style.ButtonTextColor()),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(style.ButtonPaddingSmall)),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
			widget.WidgetOpts.MinSize(minWidth, minHeight),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			s.SetPendingFocus(entryKey(name))
			s.callback.SwitchToSettings(name.String())
		}),
	)
	s.RegisterFocusButton(entryKey(name), btn)
	return btn
}

func (s *ChooserScreen) buildList() *widget.Container {
	list := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(0),
		)),
	)
	for i, e := range s.Visible() {
		list.AddChild(s.entryButton(e, style.AlternatingRowColor(i), 0, style.ChooserRowHeight))
	}
	return list
}

// buildGrid lays the puzzles out as cards and returns the column count
func (s *ChooserScreen) buildGrid() (*widget.Container, int) {
	windowWidth := s.callback.GetWindowWidth()
	if windowWidth < 400 {
		windowWidth = chooserDefaultWindowWidth
	}
	availableWidth := windowWidth - style.DefaultPadding*2 - style.ScrollbarWidth
	columns := style.GridColumns(availableWidth, style.ChooserCardMinWidth, style.SmallSpacing)
	cardWidth := (availableWidth - (columns-1)*style.SmallSpacing) / columns

	stretch := make([]bool, columns)
	for i := range stretch {
		stretch[i] = true
	}
	grid := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(columns),
			widget.GridLayoutOpts.Spacing(style.SmallSpacing, style.SmallSpacing),
			widget.GridLayoutOpts.Stretch(stretch, nil),
		)),
	)
	for _, e := range s.Visible() {
		grid.AddChild(s.entryButton(e, style.Surface, cardWidth, style.ChooserRowHeight*2))
	}
	return grid, columns
}

func (s *ChooserScreen) setupNavigation(columns int) {
	s.RegisterNavZone("toolbar", types.NavZoneHorizontal, []string{
		"toolbar-" + settings.ChooserStyleList,
		"toolbar-" + settings.ChooserStyleGrid,
		"toolbar-settings",
		"toolbar-quit",
	}, 0)

	visible := s.Visible()
	if len(visible) == 0 {
		return
	}
	keys := make([]string, len(visible))
	for i, e := range visible {
		keys[i] = entryKey(e.Name)
	}
	zoneType := types.NavZoneVertical
	if columns > 1 {
		zoneType = types.NavZoneGrid
	}
	s.RegisterNavZone("content", zoneType, keys, columns)
	s.SetNavTransition("toolbar", types.DirDown, "content", types.NavIndexPreserve)
	s.SetNavTransition("content", types.DirUp, "toolbar", types.NavIndexPreserve)
}

// OnEnter is called when the screen becomes visible. Focus returns to the
// last opened puzzle when there is one.
func (s *ChooserScreen) OnEnter() {
	s.SetDefaultFocus("toolbar-settings")
}

// EnsureFocusedVisible keeps the focused puzzle in view
func (s *ChooserScreen) EnsureFocusedVisible(focused widget.Focuser) {
	s.BaseScreen.EnsureFocusedVisible(focused, func(btn *widget.Button) bool {
		for key, b := range s.focusButtons {
			if b == btn {
				return strings.HasPrefix(key, "puzzle-")
			}
		}
		return false
	})
}
