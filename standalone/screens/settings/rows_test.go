package settings

import (
	"testing"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/user-none/puzzlebox/standalone/storage"
	"github.com/user-none/puzzlebox/standalone/types"
)

type fakeFocus struct {
	buttons     map[string]*widget.Button
	zones       map[string][]string
	transitions map[string]map[int]string
}

func newFakeFocus() *fakeFocus {
	return &fakeFocus{
		buttons:     make(map[string]*widget.Button),
		zones:       make(map[string][]string),
		transitions: make(map[string]map[int]string),
	}
}

func (f *fakeFocus) RegisterFocusButton(key string, btn *widget.Button) { f.buttons[key] = btn }
func (f *fakeFocus) SetPendingFocus(key string)                         {}
func (f *fakeFocus) SetScrollWidgets(*widget.ScrollContainer, *widget.Slider) {
}
func (f *fakeFocus) RestoreScrollPosition() {}
func (f *fakeFocus) RegisterNavZone(name string, zoneType string, keys []string, columns int) {
	f.zones[name] = keys
}
func (f *fakeFocus) SetNavTransition(from string, dir int, to string, toIndex int) {
	if f.transitions[from] == nil {
		f.transitions[from] = make(map[int]string)
	}
	f.transitions[from][dir] = to
}

type nopCallback struct{ rebuilds int }

func (c *nopCallback) SwitchToChooser()        {}
func (c *nopCallback) SwitchToSettings(string) {}
func (c *nopCallback) Exit()                   {}
func (c *nopCallback) GetWindowWidth() int     { return 800 }
func (c *nopCallback) RequestRebuild()         { c.rebuilds++ }

func TestBuildTreeZones(t *testing.T) {
	root := NewDefaultScreen(keyStrings{})
	root.Find(KeyAboutContent).(*BasePreference).SetOnClick(func() bool { return true })

	focus := newFakeFocus()
	_, zones := BuildTree(root, RowContext{
		Store:    storage.NewMemoryPrefs(),
		Focus:    focus,
		Callback: &nopCallback{},
		Strings:  keyStrings{},
	})

	// arrowKeysUnavailable and send_feedback have no click handler
	want := []string{
		ZoneName(KeyChooserStyle),
		ZoneName(KeyBridgesShowH),
		ZoneName(KeyUnequalShowH),
		ZoneName(KeyOrientation),
		ZoneName(KeyNightMode),
		ZoneName(KeyLimitDpi),
		ZoneName(KeyFullscreen),
		ZoneName(KeyKeyboardBorders),
		ZoneName(KeyMouseLongPress),
		ZoneName(KeyUndoRedoKbd),
		ZoneName(KeyVictoryFlash),
		ZoneName(KeyCompletedPrompt),
		ZoneName(KeyAboutContent),
	}
	if !equalKeys(zones, want) {
		t.Fatalf("zones = %v\nwant %v", zones, want)
	}

	if got := len(focus.zones[ZoneName(KeyNightMode)]); got != 3 {
		t.Errorf("nightMode row has %d buttons, want 3", got)
	}
	if got := len(focus.zones[ZoneName(KeyFullscreen)]); got != 2 {
		t.Errorf("fullscreen row has %d buttons, want 2", got)
	}
	if focus.buttons[ButtonKey(KeyLimitDpi, 2)] == nil {
		t.Error("limitDpi third choice should be registered")
	}

	if focus.transitions[ZoneName(KeyNightMode)][types.DirDown] != ZoneName(KeyLimitDpi) {
		t.Error("rows should chain downward")
	}
	if focus.transitions[ZoneName(KeyNightMode)][types.DirUp] != ZoneName(KeyOrientation) {
		t.Error("rows should chain upward")
	}
}

func TestBuildTreeSkipsEmptyCategories(t *testing.T) {
	root := NewPreferenceScreen()
	root.Add(NewCategory("empty", "Empty"))
	cat := NewCategory("c", "C")
	cat.Add(NewCheckBox("x", "X", false))
	root.Add(cat)

	focus := newFakeFocus()
	_, zones := BuildTree(root, RowContext{
		Store:    storage.NewMemoryPrefs(),
		Focus:    focus,
		Callback: &nopCallback{},
		Strings:  keyStrings{},
	})
	if !equalKeys(zones, []string{ZoneName("x")}) {
		t.Errorf("zones = %v", zones)
	}
}
