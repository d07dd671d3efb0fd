package settings

import "testing"

func keysOf(ps []Preference) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Key()
	}
	return out
}

func equalKeys(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCategoryOrdering(t *testing.T) {
	c := NewCategory("cat", "Category")
	c.Add(NewPreference("a", "A"))
	c.Add(NewPreference("b", "B"))
	c.Add(NewPreference("c", "C"))

	if got := keysOf(c.Children()); !equalKeys(got, []string{"a", "b", "c"}) {
		t.Errorf("insertion order = %v", got)
	}

	first := NewCheckBox("first", "First", false)
	first.SetOrder(-1)
	c.Add(first)

	if got := keysOf(c.Children()); !equalKeys(got, []string{"first", "a", "b", "c"}) {
		t.Errorf("order -1 should sort first, got %v", got)
	}

	last := NewPreference("last", "Last")
	last.SetOrder(5)
	c.Add(last)
	c.Add(NewPreference("d", "D"))

	if got := keysOf(c.Children()); !equalKeys(got, []string{"first", "a", "b", "c", "d", "last"}) {
		t.Errorf("got %v", got)
	}
}

func TestCategoryRemove(t *testing.T) {
	c := NewCategory("cat", "Category")
	a := NewPreference("a", "A")
	b := NewPreference("b", "B")
	c.Add(a)
	c.Add(b)

	if !c.Remove(a) {
		t.Error("Remove should report a present child")
	}
	if c.Remove(a) {
		t.Error("Remove should report an absent child")
	}
	if c.Len() != 1 || c.Find("a") != nil || c.Find("b") != b {
		t.Errorf("unexpected children %v", keysOf(c.Children()))
	}
}

func TestPreferenceScreenFindAndRemove(t *testing.T) {
	root := NewPreferenceScreen()
	display := NewCategory("display", "Display")
	night := NewList("nightMode", "Night", []string{"Off", "On"}, []string{"off", "on"}, "off")
	display.Add(night)
	root.Add(display)
	about := NewCategory("about", "About")
	root.Add(about)

	if root.Find("nightMode") != night {
		t.Error("Find should search categories")
	}
	if root.Find("display") != display {
		t.Error("Find should return categories")
	}
	if root.Find("missing") != nil {
		t.Error("Find should return nil for unknown keys")
	}

	if !root.Remove(display) {
		t.Error("Remove should remove a direct child")
	}
	if root.Find("nightMode") != nil {
		t.Error("removed category's children should be gone")
	}
	if root.Remove(night) {
		t.Error("Remove should not remove grandchildren")
	}
	if got := keysOf(root.Children()); !equalKeys(got, []string{"about"}) {
		t.Errorf("children = %v", got)
	}
}

func TestListPreferenceEntryFor(t *testing.T) {
	l := NewList("limitDpi", "Limit", []string{"No limit", "1.5x", "1x"}, []string{"off", "1.5", "1"}, "off")

	tests := []struct {
		value string
		want  string
	}{
		{"off", "No limit"},
		{"1.5", "1.5x"},
		{"1", "1x"},
		{"2", ""},
		{"", ""},
	}
	for _, tc := range tests {
		if got := l.EntryFor(tc.value); got != tc.want {
			t.Errorf("EntryFor(%q) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestListPreferenceMismatchedEntries(t *testing.T) {
	l := NewList("k", "K", []string{"Only"}, []string{"a", "b"}, "a")
	if got := l.EntryFor("b"); got != "" {
		t.Errorf("EntryFor without label = %q, want empty", got)
	}
}

func TestBasePreferenceClick(t *testing.T) {
	p := NewPreference("about_content", "About")
	if p.Click() {
		t.Error("click without handler should not be handled")
	}
	if p.HasClickHandler() {
		t.Error("HasClickHandler should be false")
	}

	clicks := 0
	p.SetOnClick(func() bool {
		clicks++
		return true
	})
	if !p.Click() || clicks != 1 {
		t.Errorf("click = %d, want handled once", clicks)
	}
}

func TestPreferenceAccessors(t *testing.T) {
	var p Preference = NewCheckBox("fullscreen", "Full screen", false)
	p.SetTitle("Fullscreen")
	p.SetSummary("Hide system bars")
	p.SetOrder(3)

	if p.Title() != "Fullscreen" || p.Summary() != "Hide system bars" || p.Order() != 3 {
		t.Errorf("accessors returned %q %q %d", p.Title(), p.Summary(), p.Order())
	}
}
