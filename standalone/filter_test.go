package standalone

import "testing"

func TestFilterOverlayInitialState(t *testing.T) {
	f := NewFilterOverlay("Filter: ", nil)

	if f.IsVisible() {
		t.Error("should not be visible initially")
	}
	if f.IsActive() {
		t.Error("should not be active initially")
	}
	if f.HandleInput() {
		t.Error("inactive overlay should not consume input")
	}
}

func TestFilterOverlayEdit(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		chars     string
		backspace bool
		want      string
	}{
		{"typing", "", "net", false, "net"},
		{"skips opening slash", "", "/br", false, "br"},
		{"keeps later slash", "a", "/", false, "a/"},
		{"backspace", "net", "", true, "ne"},
		{"backspace multibyte", "café", "", true, "caf"},
		{"backspace empty", "", "", true, ""},
		{"backspace then type", "nex", "t", true, "net"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewFilterOverlay("", nil)
			f.text = tc.start
			f.edit([]rune(tc.chars), tc.backspace)
			if f.Text() != tc.want {
				t.Errorf("text = %q, want %q", f.Text(), tc.want)
			}
		})
	}
}

func TestFilterOverlayCallback(t *testing.T) {
	var got []string
	f := NewFilterOverlay("", func(text string) { got = append(got, text) })

	f.edit([]rune("n"), false)
	f.edit(nil, false)
	f.edit(nil, true)
	f.edit(nil, true)

	want := []string{"n", ""}
	if len(got) != len(want) {
		t.Fatalf("callbacks = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("callback %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFilterOverlayClear(t *testing.T) {
	calls := 0
	f := NewFilterOverlay("", func(string) { calls++ })
	f.text = "net"
	f.active = true

	f.Clear()
	if f.IsVisible() || f.IsActive() {
		t.Error("Clear should hide and deactivate")
	}
	if calls != 1 {
		t.Errorf("callbacks = %d, want 1", calls)
	}

	f.Clear()
	if calls != 1 {
		t.Errorf("clearing an empty filter should not notify, got %d", calls)
	}
}
