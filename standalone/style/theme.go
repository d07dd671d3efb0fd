package style

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Theme colors (package-level variables updated by ApplyTheme)
var (
	Background        = color.NRGBA{0x1a, 0x1a, 0x2e, 0xff}
	Surface           = color.NRGBA{0x25, 0x25, 0x3a, 0xff}
	Primary           = color.NRGBA{0x4a, 0x4a, 0x8a, 0xff}
	PrimaryHover      = color.NRGBA{0x5a, 0x5a, 0x9a, 0xff}
	Text              = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	TextSecondary     = color.NRGBA{0xaa, 0xaa, 0xaa, 0xff}
	Accent            = color.NRGBA{0xff, 0xd7, 0x00, 0xff}
	Border            = color.NRGBA{0x3a, 0x3a, 0x5a, 0xff}
	OverlayBackground = color.NRGBA{0x1a, 0x1a, 0x2e, 0xff} // Alpha applied per use
)

// Theme holds all color values for a UI theme
type Theme struct {
	Name              string
	Background        color.NRGBA
	Surface           color.NRGBA
	Primary           color.NRGBA
	PrimaryHover      color.NRGBA
	Text              color.NRGBA
	TextSecondary     color.NRGBA
	Accent            color.NRGBA
	Border            color.NRGBA
	OverlayBackground color.NRGBA
}

// Predefined themes. Default follows the system (night mode "auto"),
// Dark and Light are forced by the night mode preference.
var (
	ThemeDefault = Theme{
		Name:              "Default",
		Background:        color.NRGBA{0x1a, 0x1a, 0x2e, 0xff},
		Surface:           color.NRGBA{0x25, 0x25, 0x3a, 0xff},
		Primary:           color.NRGBA{0x4a, 0x4a, 0x8a, 0xff},
		PrimaryHover:      color.NRGBA{0x5a, 0x5a, 0x9a, 0xff},
		Text:              color.NRGBA{0xff, 0xff, 0xff, 0xff},
		TextSecondary:     color.NRGBA{0xaa, 0xaa, 0xaa, 0xff},
		Accent:            color.NRGBA{0xff, 0xd7, 0x00, 0xff},
		Border:            color.NRGBA{0x3a, 0x3a, 0x5a, 0xff},
		OverlayBackground: color.NRGBA{0x1a, 0x1a, 0x2e, 0xff},
	}

	ThemeDark = Theme{
		Name:              "Dark",
		Background:        color.NRGBA{0x0a, 0x0a, 0x0a, 0xff},
		Surface:           color.NRGBA{0x1a, 0x1a, 0x1a, 0xff},
		Primary:           color.NRGBA{0x1e, 0x40, 0x7a, 0xff},
		PrimaryHover:      color.NRGBA{0x2a, 0x50, 0x8a, 0xff},
		Text:              color.NRGBA{0xff, 0xff, 0xff, 0xff},
		TextSecondary:     color.NRGBA{0x88, 0x88, 0x88, 0xff},
		Accent:            color.NRGBA{0x00, 0xc8, 0x53, 0xff},
		Border:            color.NRGBA{0x2a, 0x2a, 0x2a, 0xff},
		OverlayBackground: color.NRGBA{0x0a, 0x0a, 0x0a, 0xff},
	}

	ThemeLight = Theme{
		Name:              "Light",
		Background:        color.NRGBA{0xe8, 0xe8, 0xe8, 0xff},
		Surface:           color.NRGBA{0xf5, 0xf5, 0xf5, 0xff},
		Primary:           color.NRGBA{0x1a, 0x56, 0xdb, 0xff},
		PrimaryHover:      color.NRGBA{0x2a, 0x66, 0xeb, 0xff},
		Text:              color.NRGBA{0x1a, 0x1a, 0x1a, 0xff},
		TextSecondary:     color.NRGBA{0x66, 0x66, 0x66, 0xff},
		Accent:            color.NRGBA{0xe6, 0x5c, 0x00, 0xff},
		Border:            color.NRGBA{0xcc, 0xcc, 0xcc, 0xff},
		OverlayBackground: color.NRGBA{0xe8, 0xe8, 0xe8, 0xff},
	}

	AvailableThemes = []Theme{ThemeDefault, ThemeDark, ThemeLight}

	CurrentThemeName = "Default"
)

// Night mode preference values
const (
	NightModeOff  = "off"
	NightModeOn   = "on"
	NightModeAuto = "auto"
)

// GetThemeByName returns the theme with the given name, or ThemeDefault
func GetThemeByName(name string) Theme {
	for _, t := range AvailableThemes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDefault
}

// ThemeForNightMode maps a nightMode preference value to a theme.
// Unknown values fall back to the system theme.
func ThemeForNightMode(mode string) Theme {
	switch mode {
	case NightModeOn:
		return ThemeDark
	case NightModeOff:
		return ThemeLight
	}
	return ThemeDefault
}

// ApplyTheme sets all package color variables from the theme
func ApplyTheme(theme Theme) {
	Background = theme.Background
	Surface = theme.Surface
	Primary = theme.Primary
	PrimaryHover = theme.PrimaryHover
	Text = theme.Text
	TextSecondary = theme.TextSecondary
	Accent = theme.Accent
	Border = theme.Border
	OverlayBackground = theme.OverlayBackground
	CurrentThemeName = theme.Name
}

// ApplyThemeByName looks up and applies a theme by name
func ApplyThemeByName(name string) {
	ApplyTheme(GetThemeByName(name))
}

var currentFontSize float64 = 14

// dpiScale is the current DPI scale factor (1.0 = standard, 2.0 = Retina)
var dpiScale float64 = 1.0

// DPIScale returns the current DPI scale factor.
func DPIScale() float64 {
	return dpiScale
}

// Px scales a logical pixel value by the DPI factor.
func Px(logical int) int {
	return int(float64(logical) * dpiScale)
}

// SetDPIScale updates the DPI scale and recomputes all layout vars.
// Values below 1.0 are clamped to 1.0.
func SetDPIScale(scale float64) {
	if scale < 1.0 {
		scale = 1.0
	}
	dpiScale = scale

	DefaultPadding = Px(baseDefaultPadding)
	DefaultSpacing = Px(baseDefaultSpacing)
	SmallSpacing = Px(baseSmallSpacing)
	TinySpacing = Px(baseTinySpacing)
	LargeSpacing = Px(baseLargeSpacing)
	ScrollbarWidth = Px(baseScrollbarWidth)
	ButtonPaddingSmall = Px(baseButtonPaddingSmall)
	ButtonPaddingMedium = Px(baseButtonPaddingMedium)
	ChooserCardMinWidth = Px(baseChooserCardMinWidth)
	SettingsLabelMinWidth = Px(baseSettingsLabelMinWidth)
	OverlayPadding = Px(baseOverlayPadding)
	OverlayMargin = Px(baseOverlayMargin)

	applyFontSize(currentFontSize)
}

// CapDPIScale limits a device scale according to a limitDpi preference
// value ("off", "1.5" or "1"). Unknown values leave the scale unchanged.
func CapDPIScale(scale float64, limit string) float64 {
	var max float64
	switch limit {
	case "1.5":
		max = 1.5
	case "1":
		max = 1.0
	default:
		return scale
	}
	if scale > max {
		return max
	}
	return scale
}

var (
	sharedFontSource *text.GoTextFaceSource
	fontFace         text.Face
	largeFontFace    *text.GoTextFace
)

func loadFontSource() *text.GoTextFaceSource {
	if sharedFontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Printf("Failed to load font source: %v", err)
			return nil
		}
		sharedFontSource = source
	}
	return sharedFontSource
}

// FontFace returns the shared font face as a pointer to text.Face
func FontFace() *text.Face {
	if fontFace == nil {
		source := loadFontSource()
		if source == nil {
			return &fontFace
		}
		fontFace = &text.GoTextFace{
			Source: source,
			Size:   currentFontSize * dpiScale,
		}
	}
	return &fontFace
}

// LargeFontFace returns the font used for screen titles
func LargeFontFace() *text.GoTextFace {
	if largeFontFace == nil {
		applyFontSize(currentFontSize)
	}
	return largeFontFace
}

func applyFontSize(size float64) {
	currentFontSize = size

	source := loadFontSource()
	if source != nil {
		fontFace = &text.GoTextFace{Source: source, Size: size * dpiScale}
		largeSize := size * 1.5
		if largeSize > baseMaxLargeFontSize {
			largeSize = baseMaxLargeFontSize
		}
		largeFontFace = &text.GoTextFace{Source: source, Size: largeSize * dpiScale}
	}

	scale := size / 14.0
	SettingsRowHeight = int(baseSettingsRowHeight * scale * dpiScale)
	ChooserRowHeight = int(baseChooserRowHeight * scale * dpiScale)
}

// ButtonImage creates a standard button image
func ButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(Surface),
		Hover:    image.NewNineSliceColor(PrimaryHover),
		Pressed:  image.NewNineSliceColor(Primary),
		Disabled: image.NewNineSliceColor(Border),
	}
}

// PrimaryButtonImage creates a highlighted button image
func PrimaryButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(Primary),
		Hover:    image.NewNineSliceColor(PrimaryHover),
		Pressed:  image.NewNineSliceColor(Surface),
		Disabled: image.NewNineSliceColor(Border),
	}
}

// ActiveButtonImage returns PrimaryButtonImage when active, ButtonImage otherwise.
// Used for toggle buttons showing the selected choice.
func ActiveButtonImage(active bool) *widget.ButtonImage {
	if active {
		return PrimaryButtonImage()
	}
	return ButtonImage()
}

// SliderButtonImage creates the scrollbar handle image
func SliderButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(Primary),
		Hover:    image.NewNineSliceColor(PrimaryHover),
		Pressed:  image.NewNineSliceColor(Primary),
		Disabled: image.NewNineSliceColor(Border),
	}
}

// ButtonTextColor returns the standard button text colors
func ButtonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     Text,
		Disabled: TextSecondary,
	}
}
