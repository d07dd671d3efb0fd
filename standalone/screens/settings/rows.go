package settings

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/user-none/puzzlebox/standalone/storage"
	"github.com/user-none/puzzlebox/standalone/style"
	"github.com/user-none/puzzlebox/standalone/types"
)

// RowContext is what the rows need to read and write values.
type RowContext struct {
	Store    *storage.Prefs
	Focus    types.FocusManager
	Callback types.ScreenCallback
	Strings  Strings
}

// BuildTree renders the tree as one row per preference under category
// headers. Each row's buttons form a horizontal navigation zone; the
// zone names are returned top to bottom, already chained for up/down.
func BuildTree(root *PreferenceScreen, ctx RowContext) (*widget.Container, []string) {
	content := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(style.TinySpacing),
		)),
	)

	var zones []string
	for _, top := range root.Children() {
		cat, ok := top.(*Category)
		if !ok {
			if zone := addRow(content, top, ctx); zone != "" {
				zones = append(zones, zone)
			}
			continue
		}
		if cat.Len() == 0 {
			continue
		}
		content.AddChild(categoryHeader(cat.Title()))
		for _, p := range cat.Children() {
			if zone := addRow(content, p, ctx); zone != "" {
				zones = append(zones, zone)
			}
		}
	}

	for i := 0; i+1 < len(zones); i++ {
		ctx.Focus.SetNavTransition(zones[i], types.DirDown, zones[i+1], types.NavIndexPreserve)
		ctx.Focus.SetNavTransition(zones[i+1], types.DirUp, zones[i], types.NavIndexPreserve)
	}
	return content, zones
}

// ButtonKey is the focus key of a row's index-th button.
func ButtonKey(prefKey string, index int) string {
	return fmt.Sprintf("pref-%s-%d", prefKey, index)
}

// ZoneName is the navigation zone of a preference row.
func ZoneName(prefKey string) string {
	return "row-" + prefKey
}

func categoryHeader(title string) *widget.Container {
	c := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(&widget.Insets{
				Top:    style.SmallSpacing,
				Bottom: style.TinySpacing,
				Left:   style.SmallSpacing,
			}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
	)
	c.AddChild(style.SectionHeader(title))
	return c
}

// addRow appends the row for p and returns its zone name, or "" when the
// row has nothing focusable.
func addRow(content *widget.Container, p Preference, ctx RowContext) string {
	row, labels := newRow()
	var keys []string

	switch v := p.(type) {
	case *ListPreference:
		current := ctx.Store.GetString(v.Key(), v.DefaultValue)
		controls := style.ButtonRow()
		for i, value := range v.EntryValues {
			label := value
			if i < len(v.Entries) {
				label = v.Entries[i]
			}
			key := ButtonKey(v.Key(), i)
			value := value
			btn := style.ToggleButton(label, value == current, func(args *widget.ButtonClickedEventArgs) {
				if err := ctx.Store.PutString(v.Key(), value); err != nil {
					log.Printf("Failed to save %s: %v", v.Key(), err)
				}
				ctx.Focus.SetPendingFocus(key)
				ctx.Callback.RequestRebuild()
			})
			ctx.Focus.RegisterFocusButton(key, btn)
			controls.AddChild(btn)
			keys = append(keys, key)
		}
		fillLabels(labels, v.Title(), v.Summary())
		row.AddChild(labels)
		row.AddChild(controls)

	case *CheckBoxPreference:
		checked := ctx.Store.GetBool(v.Key(), v.Default)
		controls := style.ButtonRow()
		for i, state := range []bool{true, false} {
			labelKey := "off"
			if state {
				labelKey = "on"
			}
			key := ButtonKey(v.Key(), i)
			state := state
			btn := style.ToggleButton(ctx.Strings.String(labelKey), state == checked, func(args *widget.ButtonClickedEventArgs) {
				if err := ctx.Store.PutBool(v.Key(), state); err != nil {
					log.Printf("Failed to save %s: %v", v.Key(), err)
				}
				ctx.Focus.SetPendingFocus(key)
				ctx.Callback.RequestRebuild()
			})
			ctx.Focus.RegisterFocusButton(key, btn)
			controls.AddChild(btn)
			keys = append(keys, key)
		}
		fillLabels(labels, v.Title(), v.Summary())
		row.AddChild(labels)
		row.AddChild(controls)

	case *BasePreference:
		fillLabels(labels, v.Title(), v.Summary())
		row.AddChild(labels)
		if v.HasClickHandler() {
			key := ButtonKey(v.Key(), 0)
			btn := style.TextButton(v.Title(), style.ButtonPaddingSmall, func(args *widget.ButtonClickedEventArgs) {
				v.Click()
				ctx.Focus.SetPendingFocus(key)
			})
			ctx.Focus.RegisterFocusButton(key, btn)
			row.AddChild(btn)
			keys = append(keys, key)
		}

	default:
		fillLabels(labels, p.Title(), p.Summary())
		row.AddChild(labels)
	}

	content.AddChild(row)
	if len(keys) == 0 {
		return ""
	}
	zone := ZoneName(p.Key())
	ctx.Focus.RegisterNavZone(zone, types.NavZoneHorizontal, keys, 0)
	return zone
}

// newRow creates the row container (labels left, controls right) and
// the label column.
func newRow() (*widget.Container, *widget.Container) {
	row := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(style.Surface)),
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(2),
			widget.GridLayoutOpts.Stretch([]bool{true, false}, []bool{true}),
			widget.GridLayoutOpts.Spacing(style.DefaultSpacing, 0),
			widget.GridLayoutOpts.Padding(widget.NewInsetsSimple(style.SmallSpacing)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
			widget.WidgetOpts.MinSize(0, style.SettingsRowHeight),
		),
	)
	labels := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(style.TinySpacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.GridLayoutData{
				VerticalPosition: widget.GridLayoutPositionCenter,
			}),
			widget.WidgetOpts.MinSize(style.SettingsLabelMinWidth, 0),
		),
	)
	return row, labels
}

func fillLabels(labels *widget.Container, title, summary string) {
	labels.AddChild(widget.NewText(
		widget.TextOpts.Text(title, style.FontFace(), style.Text),
	))
	if summary != "" {
		labels.AddChild(widget.NewText(
			widget.TextOpts.Text(summary, style.FontFace(), style.TextSecondary),
		))
	}
}
