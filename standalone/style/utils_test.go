package style

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

func TestTruncateEnd(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		maxLen      int
		expected    string
		shouldTrunc bool
	}{
		{"shorter than max", "hello", 10, "hello", false},
		{"exact length", "hello", 5, "hello", false},
		{"truncated with ellipsis", "Rectangles and other long titles", 20, "Rectangles and ot...", true},
		{"maxLen 3", "abcdef", 3, "abc", true},
		{"maxLen 1", "abcdef", 1, "a", true},
		{"empty string", "", 5, "", false},
		{"truncate to 4", "abcdef", 4, "a...", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, truncated := TruncateEnd(tc.input, tc.maxLen)
			if got != tc.expected {
				t.Errorf("TruncateEnd(%q, %d) = %q, want %q", tc.input, tc.maxLen, got, tc.expected)
			}
			if truncated != tc.shouldTrunc {
				t.Errorf("TruncateEnd(%q, %d) truncated = %v, want %v", tc.input, tc.maxLen, truncated, tc.shouldTrunc)
			}
		})
	}
}

func TestTruncateToWidth(t *testing.T) {
	face := FontFace()
	if face == nil || *face == nil {
		t.Fatal("FontFace() returned nil")
	}

	t.Run("string that fits returns unchanged", func(t *testing.T) {
		got, truncated := TruncateToWidth("Hi", *face, 500)
		if truncated || got != "Hi" {
			t.Errorf("got %q truncated=%v, want %q unchanged", got, truncated, "Hi")
		}
	})

	t.Run("long string is truncated with ellipsis", func(t *testing.T) {
		long := "Arrow keys unavailable in a puzzle with a remarkably long name"
		got, truncated := TruncateToWidth(long, *face, 200)
		if !truncated {
			t.Error("expected truncation for long string")
		}
		if got[len(got)-3:] != "..." {
			t.Errorf("expected ellipsis suffix, got %q", got)
		}
		w, _ := text.Measure(got, *face, 0)
		if w > 200 {
			t.Errorf("truncated string width %.1f exceeds max 200", w)
		}
	})

	t.Run("empty string returns empty", func(t *testing.T) {
		got, truncated := TruncateToWidth("", *face, 100)
		if truncated || got != "" {
			t.Errorf("got %q truncated=%v, want empty", got, truncated)
		}
	})

	t.Run("very narrow width returns ellipsis", func(t *testing.T) {
		got, truncated := TruncateToWidth("Hello World", *face, 5)
		if !truncated || got != "..." {
			t.Errorf("got %q truncated=%v, want %q", got, truncated, "...")
		}
	})
}

func TestGridColumns(t *testing.T) {
	tests := []struct {
		name                     string
		width, minWidth, spacing int
		want                     int
	}{
		{"exact fit", 340, 160, 20, 2},
		{"narrow window", 100, 160, 20, 1},
		{"wide window", 1000, 160, 8, 6},
		{"zero min width", 500, 0, 8, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := GridColumns(tc.width, tc.minWidth, tc.spacing); got != tc.want {
				t.Errorf("GridColumns(%d, %d, %d) = %d, want %d", tc.width, tc.minWidth, tc.spacing, got, tc.want)
			}
		})
	}
}

func TestPx(t *testing.T) {
	origDPI := dpiScale
	defer func() { dpiScale = origDPI }()

	dpiScale = 1.0
	if got := Px(10); got != 10 {
		t.Errorf("Px(10) at scale 1.0 = %d, want 10", got)
	}

	dpiScale = 2.0
	if got := Px(10); got != 20 {
		t.Errorf("Px(10) at scale 2.0 = %d, want 20", got)
	}

	dpiScale = 1.5
	if got := Px(10); got != 15 {
		t.Errorf("Px(10) at scale 1.5 = %d, want 15", got)
	}
}

func TestSetDPIScale(t *testing.T) {
	origDPI := dpiScale
	defer SetDPIScale(origDPI)

	SetDPIScale(2.0)

	if DPIScale() != 2.0 {
		t.Errorf("DPIScale() = %f, want 2.0", DPIScale())
	}
	if DefaultPadding != 32 {
		t.Errorf("DefaultPadding at 2x = %d, want 32", DefaultPadding)
	}
	if SmallSpacing != 16 {
		t.Errorf("SmallSpacing at 2x = %d, want 16", SmallSpacing)
	}
	if ChooserCardMinWidth != 320 {
		t.Errorf("ChooserCardMinWidth at 2x = %d, want 320", ChooserCardMinWidth)
	}
	if OverlayPadding != 24 {
		t.Errorf("OverlayPadding at 2x = %d, want 24", OverlayPadding)
	}
	if SettingsRowHeight != 76 {
		t.Errorf("SettingsRowHeight at 14pt/2x = %d, want 76", SettingsRowHeight)
	}

	face := FontFace()
	if face != nil && *face != nil {
		goFace, ok := (*face).(*text.GoTextFace)
		if ok && goFace.Size != 28.0 {
			t.Errorf("FontFace size at 14pt/2x = %f, want 28.0", goFace.Size)
		}
	}

	SetDPIScale(1.0)
	if DefaultPadding != 16 {
		t.Errorf("DefaultPadding after restore = %d, want 16", DefaultPadding)
	}
	if SettingsRowHeight != 38 {
		t.Errorf("SettingsRowHeight after restore = %d, want 38", SettingsRowHeight)
	}
}

func TestSetDPIScaleClampsBelowOne(t *testing.T) {
	origDPI := dpiScale
	defer SetDPIScale(origDPI)

	SetDPIScale(0.5)
	if DPIScale() != 1.0 {
		t.Errorf("DPIScale() after setting 0.5 = %f, want 1.0", DPIScale())
	}
}

func TestCapDPIScale(t *testing.T) {
	tests := []struct {
		scale float64
		limit string
		want  float64
	}{
		{2.0, "off", 2.0},
		{2.0, "1.5", 1.5},
		{1.25, "1.5", 1.25},
		{2.0, "1", 1.0},
		{1.0, "1", 1.0},
		{3.0, "bogus", 3.0},
		{3.0, "", 3.0},
	}

	for _, tc := range tests {
		if got := CapDPIScale(tc.scale, tc.limit); got != tc.want {
			t.Errorf("CapDPIScale(%v, %q) = %v, want %v", tc.scale, tc.limit, got, tc.want)
		}
	}
}
