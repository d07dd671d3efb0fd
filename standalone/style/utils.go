package style

import (
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TruncateEnd truncates a string from the end, keeping the start portion.
// Returns the truncated string and whether truncation occurred.
func TruncateEnd(s string, maxLen int) (string, bool) {
	if len(s) <= maxLen {
		return s, false
	}
	if maxLen <= 3 {
		return s[:maxLen], true
	}
	return s[:maxLen-3] + "...", true
}

// MeasureWidth returns the pixel width of s rendered at the current font size.
func MeasureWidth(s string) float64 {
	w, _ := text.Measure(s, *FontFace(), 0)
	return w
}

// TruncateToWidth truncates a string to fit within maxWidth pixels using
// actual font measurement, adding "..." when truncated. Binary searches
// on rune boundaries.
func TruncateToWidth(s string, face text.Face, maxWidth float64) (string, bool) {
	if s == "" {
		return s, false
	}
	w, _ := text.Measure(s, face, 0)
	if w <= maxWidth {
		return s, false
	}

	ellipsis := "..."
	ellipsisW, _ := text.Measure(ellipsis, face, 0)
	if ellipsisW > maxWidth {
		return ellipsis, true
	}

	lo, hi := 0, utf8.RuneCountInString(s)
	best := 0
	for lo <= hi {
		mid := (lo + hi) / 2
		cw, _ := text.Measure(truncateRunes(s, mid)+ellipsis, face, 0)
		if cw <= maxWidth {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	if best == 0 {
		return ellipsis, true
	}
	return truncateRunes(s, best) + ellipsis, true
}

// truncateRunes returns the first n runes of s as a string.
func truncateRunes(s string, n int) string {
	i := 0
	for j := 0; j < n; j++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size == 0 {
			break
		}
		i += size
	}
	return s[:i]
}

// GridColumns returns how many cards of minWidth fit across width,
// never fewer than one.
func GridColumns(width, minWidth, spacing int) int {
	if minWidth <= 0 {
		return 1
	}
	cols := (width + spacing) / (minWidth + spacing)
	if cols < 1 {
		return 1
	}
	return cols
}
