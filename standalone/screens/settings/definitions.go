package settings

import (
	"github.com/user-none/puzzlebox/standalone/storage"
)

// Preference keys. Category keys name the groups, the rest are also the
// keys stored in the preference store.
const (
	KeyGameChooser  = "gameChooser"
	KeyChooserStyle = "chooserStyle"

	KeyThisGame             = "thisGame"
	KeyArrowKeysUnavailable = "arrowKeysUnavailable"
	KeyBridgesShowH         = "bridgesShowH"
	KeyUnequalShowH         = "unequalShowH"

	KeyDisplay         = "display"
	KeyOrientation     = "orientation"
	KeyNightMode       = "nightMode"
	KeyLimitDpi        = "limitDpi"
	KeyFullscreen      = "fullscreen"
	KeyKeyboardBorders = "keyboardBorders"

	KeyInput          = "input"
	KeyMouseLongPress = "mouseLongPress"
	KeyUndoRedoKbd    = "undoRedoKbd"

	KeyFeedback        = "feedback"
	KeyVictoryFlash    = "victoryFlash"
	KeyCompletedPrompt = "completedPrompt"

	KeyAbout        = "about"
	KeyAboutContent = "about_content"
	KeySendFeedback = "send_feedback"
)

// Chooser styles
const (
	ChooserStyleList = "list"
	ChooserStyleGrid = "grid"
)

// Strings resolves titles and labels.
type Strings interface {
	String(key string) string
}

type choice struct {
	value    string
	labelKey string
}

type listDef struct {
	key     string
	choices []choice
	def     string
}

var listDefs = map[string]listDef{
	KeyChooserStyle: {KeyChooserStyle, []choice{
		{ChooserStyleList, "chooserStyle_list"},
		{ChooserStyleGrid, "chooserStyle_grid"},
	}, ChooserStyleList},
	KeyOrientation: {KeyOrientation, []choice{
		{"unspecified", "orientation_unspecified"},
		{"portrait", "orientation_portrait"},
		{"landscape", "orientation_landscape"},
	}, "unspecified"},
	KeyNightMode: {KeyNightMode, []choice{
		{"off", "nightMode_off"},
		{"on", "nightMode_on"},
		{"auto", "nightMode_auto"},
	}, "auto"},
	KeyLimitDpi: {KeyLimitDpi, []choice{
		{"off", "limitDpi_off"},
		{"1.5", "limitDpi_1_5"},
		{"1", "limitDpi_1"},
	}, "off"},
	KeyMouseLongPress: {KeyMouseLongPress, []choice{
		{"auto", "mouseLongPress_auto"},
		{"always", "mouseLongPress_always"},
		{"never", "mouseLongPress_never"},
	}, "auto"},
}

func newListFromDef(s Strings, key string) *ListPreference {
	d := listDefs[key]
	entries := make([]string, len(d.choices))
	values := make([]string, len(d.choices))
	for i, c := range d.choices {
		entries[i] = s.String(c.labelKey)
		values[i] = c.value
	}
	return NewList(key, s.String(key), entries, values, d.def)
}

// NewDefaultScreen builds the full settings tree before any per-mode
// pruning. Titles and labels are resolved through s.
func NewDefaultScreen(s Strings) *PreferenceScreen {
	root := NewPreferenceScreen()

	chooser := NewCategory(KeyGameChooser, s.String(KeyGameChooser))
	chooser.Add(newListFromDef(s, KeyChooserStyle))
	root.Add(chooser)

	thisGame := NewCategory(KeyThisGame, s.String(KeyThisGame))
	thisGame.Add(NewPreference(KeyArrowKeysUnavailable, s.String(KeyArrowKeysUnavailable)))
	bridges := NewCheckBox(KeyBridgesShowH, s.String(KeyBridgesShowH), false)
	bridges.SetSummary(s.String("bridgesShowH_summary"))
	thisGame.Add(bridges)
	unequal := NewCheckBox(KeyUnequalShowH, s.String(KeyUnequalShowH), false)
	unequal.SetSummary(s.String("unequalShowH_summary"))
	thisGame.Add(unequal)
	root.Add(thisGame)

	display := NewCategory(KeyDisplay, s.String(KeyDisplay))
	display.Add(newListFromDef(s, KeyOrientation))
	display.Add(newListFromDef(s, KeyNightMode))
	display.Add(newListFromDef(s, KeyLimitDpi))
	display.Add(NewCheckBox(KeyFullscreen, s.String(KeyFullscreen), false))
	display.Add(NewCheckBox(KeyKeyboardBorders, s.String(KeyKeyboardBorders), true))
	root.Add(display)

	input := NewCategory(KeyInput, s.String(KeyInput))
	input.Add(newListFromDef(s, KeyMouseLongPress))
	input.Add(NewCheckBox(KeyUndoRedoKbd, s.String(KeyUndoRedoKbd), true))
	root.Add(input)

	feedback := NewCategory(KeyFeedback, s.String(KeyFeedback))
	feedback.Add(NewCheckBox(KeyVictoryFlash, s.String(KeyVictoryFlash), true))
	feedback.Add(NewCheckBox(KeyCompletedPrompt, s.String(KeyCompletedPrompt), true))
	root.Add(feedback)

	about := NewCategory(KeyAbout, s.String(KeyAbout))
	about.Add(NewPreference(KeyAboutContent, s.String(KeyAbout)))
	sendFeedback := NewPreference(KeySendFeedback, s.String(KeySendFeedback))
	sendFeedback.SetSummary(s.String("send_feedback_summary"))
	about.Add(sendFeedback)
	root.Add(about)

	return root
}

// ChoiceRules returns the allowed values of every list preference, for
// validating a loaded store.
func ChoiceRules() []storage.ChoiceRule {
	keys := []string{KeyChooserStyle, KeyOrientation, KeyNightMode, KeyLimitDpi, KeyMouseLongPress}
	rules := make([]storage.ChoiceRule, 0, len(keys))
	for _, k := range keys {
		d := listDefs[k]
		values := make([]string, len(d.choices))
		for i, c := range d.choices {
			values[i] = c.value
		}
		rules = append(rules, storage.ChoiceRule{Key: k, Values: values, Default: d.def})
	}
	return rules
}

// ListDefault returns the default value of a list preference key.
func ListDefault(key string) string {
	return listDefs[key].def
}
