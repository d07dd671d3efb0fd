package settings

import (
	"testing"

	"github.com/user-none/puzzlebox/standalone/resources"
)

// keyStrings echoes the key so tests can assert which resource was used.
type keyStrings struct{}

func (keyStrings) String(key string) string { return "[" + key + "]" }

func TestDefaultScreenLayout(t *testing.T) {
	root := NewDefaultScreen(keyStrings{})

	want := map[string][]string{
		KeyGameChooser: {KeyChooserStyle},
		KeyThisGame:    {KeyArrowKeysUnavailable, KeyBridgesShowH, KeyUnequalShowH},
		KeyDisplay:     {KeyOrientation, KeyNightMode, KeyLimitDpi, KeyFullscreen, KeyKeyboardBorders},
		KeyInput:       {KeyMouseLongPress, KeyUndoRedoKbd},
		KeyFeedback:    {KeyVictoryFlash, KeyCompletedPrompt},
		KeyAbout:       {KeyAboutContent, KeySendFeedback},
	}
	order := []string{KeyGameChooser, KeyThisGame, KeyDisplay, KeyInput, KeyFeedback, KeyAbout}

	if got := keysOf(root.Children()); !equalKeys(got, order) {
		t.Fatalf("categories = %v, want %v", got, order)
	}
	for _, catKey := range order {
		cat := root.Find(catKey).(*Category)
		if got := keysOf(cat.Children()); !equalKeys(got, want[catKey]) {
			t.Errorf("%s children = %v, want %v", catKey, got, want[catKey])
		}
		if cat.Title() != "["+catKey+"]" {
			t.Errorf("%s title = %q", catKey, cat.Title())
		}
	}
}

func TestDefaultScreenKinds(t *testing.T) {
	root := NewDefaultScreen(keyStrings{})

	checkboxes := map[string]bool{
		KeyBridgesShowH:    false,
		KeyUnequalShowH:    false,
		KeyFullscreen:      false,
		KeyKeyboardBorders: true,
		KeyUndoRedoKbd:     true,
		KeyVictoryFlash:    true,
		KeyCompletedPrompt: true,
	}
	for key, def := range checkboxes {
		cb, ok := root.Find(key).(*CheckBoxPreference)
		if !ok {
			t.Errorf("%s should be a checkbox", key)
			continue
		}
		if cb.Default != def {
			t.Errorf("%s default = %v, want %v", key, cb.Default, def)
		}
	}

	lists := map[string]struct {
		values []string
		def    string
	}{
		KeyChooserStyle:   {[]string{"list", "grid"}, "list"},
		KeyOrientation:    {[]string{"unspecified", "portrait", "landscape"}, "unspecified"},
		KeyNightMode:      {[]string{"off", "on", "auto"}, "auto"},
		KeyLimitDpi:       {[]string{"off", "1.5", "1"}, "off"},
		KeyMouseLongPress: {[]string{"auto", "always", "never"}, "auto"},
	}
	for key, w := range lists {
		l, ok := root.Find(key).(*ListPreference)
		if !ok {
			t.Errorf("%s should be a list", key)
			continue
		}
		if !equalKeys(l.EntryValues, w.values) || l.DefaultValue != w.def {
			t.Errorf("%s = %v/%q, want %v/%q", key, l.EntryValues, l.DefaultValue, w.values, w.def)
		}
		if len(l.Entries) != len(l.EntryValues) {
			t.Errorf("%s has %d labels for %d values", key, len(l.Entries), len(l.EntryValues))
		}
	}

	for _, key := range []string{KeyArrowKeysUnavailable, KeyAboutContent, KeySendFeedback} {
		if _, ok := root.Find(key).(*BasePreference); !ok {
			t.Errorf("%s should be a plain preference", key)
		}
	}

	if got := len(root.Lists()); got != len(lists) {
		t.Errorf("Lists() returned %d, want %d", got, len(lists))
	}
}

func TestDefaultScreenResolvesEmbeddedStrings(t *testing.T) {
	b, err := resources.Load()
	if err != nil {
		t.Fatalf("resources.Load: %v", err)
	}
	root := NewDefaultScreen(b)

	for _, l := range root.Lists() {
		for _, entry := range l.Entries {
			if entry == "" || entry[0] == '[' {
				t.Errorf("%s has unresolved label %q", l.Key(), entry)
			}
		}
		if _, ok := b.Lookup(l.Key()); !ok {
			t.Errorf("missing title string for %s", l.Key())
		}
	}
	if got := root.Find(KeyLimitDpi).(*ListPreference).EntryFor("1.5"); got != "Limit to 1.5x" {
		t.Errorf("limitDpi 1.5 label = %q", got)
	}
}

func TestChoiceRules(t *testing.T) {
	rules := ChoiceRules()
	root := NewDefaultScreen(keyStrings{})

	if len(rules) != len(root.Lists()) {
		t.Fatalf("got %d rules, want one per list preference", len(rules))
	}
	for _, r := range rules {
		l := root.Find(r.Key).(*ListPreference)
		if !equalKeys(r.Values, l.EntryValues) || r.Default != l.DefaultValue {
			t.Errorf("rule %s = %v/%q, list has %v/%q", r.Key, r.Values, r.Default, l.EntryValues, l.DefaultValue)
		}
		if ListDefault(r.Key) != r.Default {
			t.Errorf("ListDefault(%s) = %q", r.Key, ListDefault(r.Key))
		}
	}
}
