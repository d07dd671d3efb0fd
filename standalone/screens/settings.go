package screens

import (
	"log"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	puzzlecore "github.com/user-none/puzzlebox/api"
	"github.com/user-none/puzzlebox/standalone/screens/settings"
	"github.com/user-none/puzzlebox/standalone/storage"
	"github.com/user-none/puzzlebox/standalone/style"
	"github.com/user-none/puzzlebox/standalone/types"
)

// Strings resolves and formats UI strings.
type Strings interface {
	String(key string) string
	Format(key string, args ...interface{}) string
}

// SettingsEnv carries the collaborators of a settings screen. Store,
// Strings and Registry are required; the others may be nil.
type SettingsEnv struct {
	Store     *storage.Prefs
	Strings   Strings
	Registry  *puzzlecore.Registry
	Backup    types.BackupNotifier
	Clipboard types.Clipboard
	Toaster   types.Toaster
	Feedback  types.FeedbackLauncher
	Device    puzzlecore.DeviceConfig
	Version   string

	// ChromeFactory builds the window chrome on first use. Nil uses a
	// chrome that ignores every call.
	ChromeFactory func() types.Chrome
}

// summarizedLists are the list preferences whose summary shows the
// selected entry in both modes.
var summarizedLists = []string{
	settings.KeyOrientation,
	settings.KeyNightMode,
	settings.KeyLimitDpi,
	settings.KeyMouseLongPress,
}

// SettingsScreen shows the preference tree, either general (with the
// chooser options) or scoped to one puzzle.
type SettingsScreen struct {
	BaseScreen

	callback ScreenCallback
	env      SettingsEnv

	backend puzzlecore.BackendName
	scoped  bool
	root    *settings.PreferenceScreen

	chrome  types.Chrome
	title   string
	resumed bool
}

// NewSettingsScreen builds the settings tree. backendExtra is the
// lower-case name of the puzzle to scope to; empty or unknown names give
// the general settings.
func NewSettingsScreen(callback ScreenCallback, env SettingsEnv, backendExtra string) *SettingsScreen {
	s := &SettingsScreen{
		callback: callback,
		env:      env,
		root:     settings.NewDefaultScreen(env.Strings),
		title:    env.Strings.String("settings"),
	}
	s.InitBase()
	s.Chrome().SetDisplayHomeAsUpEnabled(true)

	if backendExtra != "" {
		if b, ok := puzzlecore.BackendByLowerCase(backendExtra); ok {
			s.backend = b
			s.scoped = true
		} else {
			log.Printf("Warning: unknown puzzle %q, showing general settings", backendExtra)
		}
	}

	if s.scoped {
		s.setupScoped()
	} else {
		s.setupGeneral()
	}

	for _, key := range summarizedLists {
		s.updateListSummary(key)
	}

	if p, ok := s.root.Find(settings.KeyAboutContent).(*settings.BasePreference); ok {
		p.SetSummary(env.Strings.Format("about_content", env.Version))
		p.SetOnClick(s.copyVersion)
	}
	if p, ok := s.root.Find(settings.KeySendFeedback).(*settings.BasePreference); ok {
		p.SetOnClick(func() bool {
			if s.env.Feedback != nil {
				s.env.Feedback.LaunchFeedback()
			}
			return true
		})
	}
	return s
}

func (s *SettingsScreen) setupGeneral() {
	if cat := s.root.Find(settings.KeyThisGame); cat != nil {
		s.root.Remove(cat)
	}
	s.updateListSummary(settings.KeyChooserStyle)
}

func (s *SettingsScreen) setupScoped() {
	if cat := s.root.Find(settings.KeyGameChooser); cat != nil {
		s.root.Remove(cat)
	}

	thisGame, ok := s.root.Find(settings.KeyThisGame).(*settings.Category)
	if !ok {
		return
	}
	name := s.env.Strings.String(s.env.Registry.DisplayNameKey(s.backend))
	thisGame.SetTitle(name)

	if s.backend != puzzlecore.BackendBridges {
		if p := thisGame.Find(settings.KeyBridgesShowH); p != nil {
			thisGame.Remove(p)
		}
	}
	if s.backend != puzzlecore.BackendUnequal {
		if p := thisGame.Find(settings.KeyUnequalShowH); p != nil {
			thisGame.Remove(p)
		}
	}

	unavailable := thisGame.Find(settings.KeyArrowKeysUnavailable)
	if s.env.Registry.ArrowsCapable(s.backend) {
		if unavailable != nil {
			thisGame.Remove(unavailable)
		}
		arrows := settings.NewCheckBox(
			puzzlecore.ArrowKeysPrefName(s.backend, s.env.Device),
			s.env.Strings.Format("arrowKeysIn", name),
			puzzlecore.ArrowKeysDefault(s.env.Registry, s.backend, s.env.Device),
		)
		arrows.SetOrder(-1)
		thisGame.Add(arrows)
	} else if unavailable != nil {
		unavailable.SetSummary(s.env.Strings.Format("arrowKeysUnavailableIn", name))
	}
}

// updateListSummary sets a list preference's summary to the label of the
// stored value. It reports whether key named a list still in the tree.
func (s *SettingsScreen) updateListSummary(key string) bool {
	l, ok := s.root.Find(key).(*settings.ListPreference)
	if !ok {
		return false
	}
	l.SetSummary(l.EntryFor(s.env.Store.GetString(key, l.DefaultValue)))
	return true
}

func (s *SettingsScreen) copyVersion() bool {
	if s.env.Clipboard == nil {
		log.Printf("Warning: no clipboard, version not copied")
		return true
	}
	text := s.env.Strings.Format("version_for_clipboard", s.env.Version)
	if err := s.env.Clipboard.SetText(s.env.Strings.String("version_copied_label"), text); err != nil {
		log.Printf("Failed to copy version to clipboard: %v", err)
		return true
	}
	if s.env.Toaster != nil {
		s.env.Toaster.ShowDefault(s.env.Strings.String("version_copied"))
	}
	return true
}

// Root returns the preference tree.
func (s *SettingsScreen) Root() *settings.PreferenceScreen {
	return s.root
}

// Backend returns the puzzle the screen is scoped to and whether it is scoped.
func (s *SettingsScreen) Backend() (puzzlecore.BackendName, bool) {
	return s.backend, s.scoped
}

// OnResume starts listening for preference changes.
func (s *SettingsScreen) OnResume() {
	s.env.Store.RegisterListener(s)
	s.resumed = true
}

// OnPause stops listening and asks for a backup of the changed settings.
// A pause without a preceding resume does nothing.
func (s *SettingsScreen) OnPause() {
	if !s.resumed {
		return
	}
	s.resumed = false
	s.env.Store.UnregisterListener(s)
	if s.env.Backup != nil {
		s.env.Backup.DataChanged()
	}
}

// OnPreferenceChanged refreshes the summary of a changed list preference.
func (s *SettingsScreen) OnPreferenceChanged(prefs *storage.Prefs, key string) {
	if s.updateListSummary(key) {
		s.callback.RequestRebuild()
	}
}

// OnOptionsItemSelected handles action bar items. Home returns to the
// chooser.
func (s *SettingsScreen) OnOptionsItemSelected(item types.MenuItem) bool {
	if item != types.MenuItemHome {
		return false
	}
	s.callback.SwitchToChooser()
	return true
}

// Chrome returns the window chrome, building it on first use.
func (s *SettingsScreen) Chrome() types.Chrome {
	if s.chrome == nil {
		if s.env.ChromeFactory != nil {
			s.chrome = s.env.ChromeFactory()
		}
		if s.chrome == nil {
			s.chrome = nopChrome{}
		}
	}
	return s.chrome
}

func (s *SettingsScreen) OnPostCreate() { s.Chrome().OnPostCreate() }
func (s *SettingsScreen) OnPostResume() { s.Chrome().OnPostResume() }
func (s *SettingsScreen) OnStop()       { s.Chrome().OnStop() }
func (s *SettingsScreen) OnDestroy()    { s.Chrome().OnDestroy() }

// OnTitleChanged records the title shown in the header and forwards it.
func (s *SettingsScreen) OnTitleChanged(title string) {
	s.title = title
	s.Chrome().SetTitle(title)
}

func (s *SettingsScreen) OnConfigurationChanged(cfg puzzlecore.DeviceConfig) {
	s.Chrome().OnConfigurationChanged(cfg)
}

func (s *SettingsScreen) InflateMenu(items []types.MenuItem) { s.Chrome().InflateMenu(items) }

func (s *SettingsScreen) SetContentView(view *widget.Container) { s.Chrome().SetContentView(view) }

func (s *SettingsScreen) InvalidateOptionsMenu() { s.Chrome().InvalidateOptionsMenu() }

// Build creates the settings screen UI
func (s *SettingsScreen) Build() *widget.Container {
	s.SaveScrollPosition()
	s.ClearFocusButtons()

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(style.Background)),
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(1),
			// Row 0 (header) = fixed, Row 1 (preferences) = stretch
			widget.GridLayoutOpts.Stretch([]bool{true}, []bool{false, true}),
			widget.GridLayoutOpts.Padding(widget.NewInsetsSimple(style.DefaultPadding)),
			widget.GridLayoutOpts.Spacing(style.DefaultSpacing, style.DefaultSpacing),
		)),
	)

	header := style.ButtonRow()
	backButton := style.TextButton(s.env.Strings.String("back"), style.ButtonPaddingSmall, func(args *widget.ButtonClickedEventArgs) {
		s.OnOptionsItemSelected(types.MenuItemHome)
	})
	s.RegisterFocusButton("back", backButton)
	header.AddChild(backButton)
	header.AddChild(style.ScreenTitle(s.title))
	rootContainer.AddChild(header)

	content, zones := settings.BuildTree(s.root, settings.RowContext{
		Store:    s.env.Store,
		Focus:    s,
		Callback: s.callback,
		Strings:  s.env.Strings,
	})

	scrollContainer, vSlider, scrollWrapper := style.ScrollableContainer(style.ScrollableOpts{
		Content: content,
		BgColor: style.Background,
	})
	s.SetScrollWidgets(scrollContainer, vSlider)
	s.RestoreScrollPosition()
	rootContainer.AddChild(scrollWrapper)

	s.RegisterNavZone("header", types.NavZoneHorizontal, []string{"back"}, 0)
	if len(zones) > 0 {
		s.SetNavTransition("header", types.DirDown, zones[0], types.NavIndexFirst)
		s.SetNavTransition(zones[0], types.DirUp, "header", types.NavIndexFirst)
	}

	return rootContainer
}

// OnEnter is called when the screen becomes visible
func (s *SettingsScreen) OnEnter() {
	s.ResetScroll()
	s.SetDefaultFocus("back")
}

// EnsureFocusedVisible keeps the focused preference row in view
func (s *SettingsScreen) EnsureFocusedVisible(focused widget.Focuser) {
	s.BaseScreen.EnsureFocusedVisible(focused, func(btn *widget.Button) bool {
		return btn != s.focusButtons["back"]
	})
}

// nopChrome is used when no chrome factory is configured.
type nopChrome struct{}

func (nopChrome) SetDisplayHomeAsUpEnabled(bool)                 {}
func (nopChrome) OnPostCreate()                                  {}
func (nopChrome) OnPostResume()                                  {}
func (nopChrome) OnStop()                                        {}
func (nopChrome) OnDestroy()                                     {}
func (nopChrome) SetTitle(string)                                {}
func (nopChrome) OnConfigurationChanged(puzzlecore.DeviceConfig) {}
func (nopChrome) InflateMenu([]types.MenuItem)                   {}
func (nopChrome) SetContentView(*widget.Container)               {}
func (nopChrome) InvalidateOptionsMenu()                         {}
