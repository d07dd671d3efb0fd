package screens

import (
	"testing"

	"github.com/user-none/puzzlebox/standalone/resources"
)

func TestErrorScreenButtons(t *testing.T) {
	strs, err := resources.Load()
	if err != nil {
		t.Fatal(err)
	}
	noop := func() {}

	tests := []struct {
		name    string
		setup   func(s *ErrorScreen)
		want    []string
		focused string
	}{
		{
			name: "corrupted with backup",
			setup: func(s *ErrorScreen) {
				s.SetCorrupted("prefs.json", ErrorActions{Delete: noop, Restore: noop})
			},
			want:    []string{"error-restore", "error-delete", "error-exit"},
			focused: "error-restore",
		},
		{
			name: "corrupted without backup",
			setup: func(s *ErrorScreen) {
				s.SetCorrupted("prefs.json", ErrorActions{Delete: noop})
			},
			want:    []string{"error-delete", "error-exit"},
			focused: "error-delete",
		},
		{
			name: "invalid",
			setup: func(s *ErrorScreen) {
				s.SetInvalid("prefs.json", []string{"a", "b", "c", "d", "e", "f", "g"}, ErrorActions{Reset: noop})
			},
			want:    []string{"error-reset", "error-exit"},
			focused: "error-reset",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewErrorScreen(&fakeCallback{}, strs)
			tc.setup(s)
			s.OnEnter()
			s.Build()

			zone := s.navZones["buttons"]
			if zone == nil {
				t.Fatal("buttons zone not registered")
			}
			if len(zone.Keys) != len(tc.want) {
				t.Fatalf("keys = %v, want %v", zone.Keys, tc.want)
			}
			for i := range tc.want {
				if zone.Keys[i] != tc.want[i] {
					t.Errorf("key %d = %q, want %q", i, zone.Keys[i], tc.want[i])
				}
			}
			if got := s.GetPendingFocusButton(); got == nil || got != s.focusButtons[tc.focused] {
				t.Errorf("pending focus should be %q", tc.focused)
			}
		})
	}
}
