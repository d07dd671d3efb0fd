package standalone

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	puzzlecore "github.com/user-none/puzzlebox/api"
	"github.com/user-none/puzzlebox/standalone/backup"
	"github.com/user-none/puzzlebox/standalone/resources"
	"github.com/user-none/puzzlebox/standalone/screens"
	"github.com/user-none/puzzlebox/standalone/screens/settings"
	"github.com/user-none/puzzlebox/standalone/storage"
	"github.com/user-none/puzzlebox/standalone/style"
	"github.com/user-none/puzzlebox/standalone/types"
)

// Minimum window size in logical pixels
const (
	minWindowWidth  = 640
	minWindowHeight = 480
)

// Options configures Run.
type Options struct {
	AppName         string // Window title and data directory name
	Version         string // Shown in About and copied to the clipboard
	DataDir         string // Overrides the platform data directory
	StringsOverride string // Optional YAML file merged over the embedded strings
	Backend         string // Open settings scoped to this puzzle
	BackupKeep      int    // Snapshots retained; < 1 uses backup.DefaultKeep
	FeedbackURL     string // Issue tracker; empty uses FeedbackURL
}

// App is the main application struct that implements ebiten.Game
type App struct {
	ui *ebitenui.UI

	opts Options

	// State management
	state AppState

	// Data
	prefsPath string
	store     *storage.Prefs
	strings   *resources.Bundle
	registry  *puzzlecore.Registry

	// Backups
	backupStore   *backup.Store
	backupManager *backup.Manager
	backupCancel  context.CancelFunc
	backupDone    sync.WaitGroup

	// Screens. settingsScreen only exists while settings are shown.
	chooserScreen  *screens.ChooserScreen
	settingsScreen *screens.SettingsScreen
	settingsChrome *windowChrome
	errorScreen    *screens.ErrorScreen

	// Settings lifecycle: resumed while visible and the window has focus
	settingsResumed bool
	windowFocused   bool

	// Collaborators handed to the settings screen
	notification *Notification
	filter       *FilterOverlay
	clipboard    *SystemClipboard
	feedback     *FeedbackLauncher
	inputManager *InputManager

	setWindowTitle func(string)
	windowSize     func() (int, int)

	// Window tracking for responsive layouts
	windowWidth    int
	windowHeight   int
	lastBuildWidth int
	device         puzzlecore.DeviceConfig

	// HiDPI: device scale reported by the monitor, before the limitDpi cap
	deviceScale float64
	appliedDPI  float64

	// Rebuild pending flag (set from listeners and goroutines, processed on main thread)
	rebuildPending bool
	exitRequested  bool
}

// Run is the public entry point for the standalone UI. It initializes storage,
// configures the window, creates the app, and starts the Ebiten game loop.
func Run(opts Options) error {
	if opts.AppName == "" {
		opts.AppName = "Puzzles"
	}
	if opts.FeedbackURL == "" {
		opts.FeedbackURL = FeedbackURL
	}

	storage.Init(opts.AppName)
	storage.SetBaseDir(opts.DataDir)

	ebiten.SetWindowTitle(opts.AppName)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(minWindowWidth, minWindowHeight, -1, -1)

	app, err := newApp(opts)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := ebiten.RunGame(app); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}

// newApp loads strings, prefs and backups and builds the first screen.
func newApp(opts Options) (*App, error) {
	if err := storage.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	strs, err := resources.LoadWithOverride(opts.StringsOverride)
	if err != nil {
		return nil, err
	}

	prefsPath, err := storage.GetPrefsPath()
	if err != nil {
		return nil, err
	}

	app := &App{
		opts:           opts,
		state:          StateChooser,
		prefsPath:      prefsPath,
		strings:        strs,
		registry:       puzzlecore.DefaultRegistry(),
		notification:   NewNotification(),
		clipboard:      NewSystemClipboard(),
		inputManager:   NewInputManager(),
		setWindowTitle: ebiten.SetWindowTitle,
		windowSize:     ebiten.WindowSize,
		windowFocused:  true,
		deviceScale:    1,
	}
	app.filter = NewFilterOverlay(strs.String("filter_label"), func(text string) {
		if app.chooserScreen != nil {
			app.chooserScreen.SetFilter(text)
		}
	})
	app.feedback = NewFeedbackLauncher(strs.String("send_feedback"), strs.String("send_feedback_prompt"), opts.FeedbackURL)
	app.errorScreen = screens.NewErrorScreen(app, strs)

	// Backups are optional; the UI works without them
	if backupPath, err := storage.GetBackupPath(); err != nil {
		log.Printf("Warning: backups disabled: %v", err)
	} else if app.backupStore, err = backup.Open(backupPath); err != nil {
		log.Printf("Warning: backups disabled: %v", err)
	}

	loaded := loadPrefs(prefsPath, app.backupStore)
	app.store = loaded.store

	switch loaded.status {
	case prefsCorrupted:
		log.Printf("Failed to load prefs: %v", loaded.err)
		actions := screens.ErrorActions{Delete: app.handleDeleteAndContinue}
		if hasBackup(app.backupStore) {
			actions.Restore = app.handleRestoreAndContinue
		}
		app.showError(func() { app.errorScreen.SetCorrupted("prefs.json", actions) })
	case prefsInvalid:
		app.showError(func() {
			app.errorScreen.SetInvalid("prefs.json", loaded.details, screens.ErrorActions{Reset: app.handleResetAndContinue})
		})
	default:
		app.start()
	}
	return app, nil
}

// showError switches to the error screen after configure sets its variant
func (a *App) showError(configure func()) {
	configure()
	a.state = StateError
	a.errorScreen.OnEnter()
	a.rebuildCurrentScreen()
}

// start wires the loaded store into the app and shows the first screen
func (a *App) start() {
	a.store.RegisterListener(a)
	a.applyAppearance()

	// Layout has not run yet; settings opened below need the real device
	a.device = a.windowDeviceConfig()

	if a.backupStore != nil {
		a.backupManager = backup.NewManager(a.backupStore, a.store, a.opts.BackupKeep)
		ctx, cancel := context.WithCancel(context.Background())
		a.backupCancel = cancel
		a.backupDone.Add(1)
		go func() {
			defer a.backupDone.Done()
			a.backupManager.Run(ctx)
		}()
	}

	a.chooserScreen = screens.NewChooserScreen(a, a.store, a.registry, a.strings)

	if a.opts.Backend != "" {
		a.SwitchToSettings(a.opts.Backend)
		return
	}
	a.state = StateChooser
	a.chooserScreen.OnEnter()
	a.rebuildCurrentScreen()
}

// applyAppearance applies every display preference
func (a *App) applyAppearance() {
	style.ApplyTheme(style.ThemeForNightMode(a.store.GetString(settings.KeyNightMode, settings.ListDefault(settings.KeyNightMode))))
	a.applyDPI()
	a.applyOrientation()
	if full := a.store.GetBool(settings.KeyFullscreen, false); full != ebiten.IsFullscreen() {
		ebiten.SetFullscreen(full)
	}
}

// applyDPI caps the monitor scale by the limitDpi preference
func (a *App) applyDPI() {
	scale := style.CapDPIScale(a.deviceScale, a.store.GetString(settings.KeyLimitDpi, settings.ListDefault(settings.KeyLimitDpi)))
	if scale != a.appliedDPI {
		a.appliedDPI = scale
		style.SetDPIScale(scale)
		a.rebuildPending = true
	}
}

// applyOrientation reshapes the window to match a forced orientation
func (a *App) applyOrientation() {
	if ebiten.IsFullscreen() {
		return
	}
	w, h := ebiten.WindowSize()
	switch a.store.GetString(settings.KeyOrientation, settings.ListDefault(settings.KeyOrientation)) {
	case "portrait":
		if w > h {
			ebiten.SetWindowSize(h, w)
		}
	case "landscape":
		if h > w {
			ebiten.SetWindowSize(h, w)
		}
	}
}

// OnPreferenceChanged applies display preferences as soon as they change
func (a *App) OnPreferenceChanged(prefs *storage.Prefs, key string) {
	switch key {
	case settings.KeyNightMode:
		style.ApplyTheme(style.ThemeForNightMode(prefs.GetString(key, settings.ListDefault(key))))
		a.rebuildPending = true
	case settings.KeyLimitDpi:
		a.applyDPI()
	case settings.KeyOrientation:
		a.applyOrientation()
	case settings.KeyFullscreen:
		ebiten.SetFullscreen(prefs.GetBool(key, false))
	}
}

// settingsEnv collects the settings screen collaborators
func (a *App) settingsEnv(chrome *windowChrome) screens.SettingsEnv {
	env := screens.SettingsEnv{
		Store:         a.store,
		Strings:       a.strings,
		Registry:      a.registry,
		Clipboard:     a.clipboard,
		Toaster:       a.notification,
		Feedback:      a.feedback,
		Device:        a.device,
		Version:       a.opts.Version,
		ChromeFactory: func() types.Chrome { return chrome },
	}
	if a.backupManager != nil {
		env.Backup = a.backupManager
	}
	return env
}

// rebuildCurrentScreen rebuilds the UI for the current state
func (a *App) rebuildCurrentScreen() {
	switch a.state {
	case StateChooser:
		if a.ui != nil {
			a.chooserScreen.SaveFocusState(a.ui.GetFocusedWidget())
		}
		a.setContent(a.chooserScreen.Build())
	case StateSettings:
		if a.ui != nil {
			a.settingsScreen.SaveFocusState(a.ui.GetFocusedWidget())
		}
		a.settingsScreen.SetContentView(a.settingsScreen.Build())
	case StateError:
		a.setContent(a.errorScreen.Build())
	}
	a.lastBuildWidth = a.windowWidth
}

// setContent replaces the UI root
func (a *App) setContent(view *widget.Container) {
	a.ui = &ebitenui.UI{Container: view}
}

// Update implements ebiten.Game
func (a *App) Update() error {
	if a.exitRequested {
		return ebiten.Termination
	}

	a.trackWindowFocus(ebiten.IsFocused())

	if a.rebuildPending {
		a.rebuildPending = false
		a.rebuildCurrentScreen()
	}

	if a.inputManager.Update() && a.store != nil && a.state != StateError {
		if err := a.store.PutBool(settings.KeyFullscreen, !ebiten.IsFullscreen()); err != nil {
			log.Printf("Failed to save fullscreen: %v", err)
		}
	}

	if a.windowWidth > 0 && a.windowWidth != a.lastBuildWidth {
		a.rebuildCurrentScreen()
	}

	if a.ui == nil {
		return nil
	}

	if a.state == StateChooser && a.handleFilterInput() {
		return nil
	}

	// Skip normal UI input while the filter is capturing
	var nav UINavigation
	if a.state != StateChooser || !a.filter.IsActive() {
		nav = a.processUIInput()
	}
	prevState := a.state
	a.ui.Update()
	if a.state != prevState {
		return nil
	}

	if !a.rebuildPending {
		if screen := a.currentFocusRestorer(); screen != nil {
			a.restorePendingFocus(screen)
		}
	}
	if nav.FocusChanged {
		a.ensureFocusedVisible()
	}
	return nil
}

// handleFilterInput routes typing to the chooser filter. Returns true if
// the frame's input was fully consumed.
func (a *App) handleFilterInput() bool {
	if a.filter.IsActive() {
		a.filter.HandleInput()
	}

	// '/' opens the filter
	if inpututil.IsKeyJustPressed(ebiten.KeySlash) && !a.filter.IsActive() {
		a.filter.Activate()
	}

	// Escape clears the filter before normal back handling
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && (a.filter.IsVisible() || a.filter.IsActive()) {
		a.filter.Clear()
		return true
	}
	return false
}

// trackWindowFocus pauses the settings screen while the window is in the
// background and resumes it on return
func (a *App) trackWindowFocus(focused bool) {
	if focused == a.windowFocused {
		return
	}
	a.windowFocused = focused
	if a.state != StateSettings || a.settingsScreen == nil {
		return
	}
	if focused {
		a.resumeSettings()
	} else {
		a.pauseSettings()
	}
}

func (a *App) resumeSettings() {
	if a.settingsResumed {
		return
	}
	a.settingsResumed = true
	a.settingsScreen.OnResume()
	a.settingsScreen.OnPostResume()
}

func (a *App) pauseSettings() {
	if !a.settingsResumed {
		return
	}
	a.settingsResumed = false
	a.settingsScreen.OnPause()
}

func (a *App) currentFocusRestorer() screens.FocusRestorer {
	switch a.state {
	case StateChooser:
		return a.chooserScreen
	case StateSettings:
		return a.settingsScreen
	case StateError:
		return a.errorScreen
	}
	return nil
}

// restorePendingFocus restores focus to a pending button if one exists
func (a *App) restorePendingFocus(screen screens.FocusRestorer) {
	btn := screen.GetPendingFocusButton()
	if btn != nil {
		btn.Focus(true)
		screen.ClearPendingFocus()
	}
}

// processUIInput polls keyboard/gamepad input via InputManager and applies
// UI actions. Returns the navigation result for focus scroll handling.
func (a *App) processUIInput() UINavigation {
	nav := a.inputManager.GetUINavigation()

	if nav.Direction != types.DirNone {
		a.applySpatialNavigation(nav.Direction)
	}

	// A/Cross button activates focused widget
	if nav.Activate {
		if btn, ok := a.ui.GetFocusedWidget().(*widget.Button); ok {
			btn.Click()
		}
	}

	if nav.Back {
		a.handleBack()
	}

	if nav.OpenSettings && a.state == StateChooser {
		a.SwitchToSettings("")
	}

	return nav
}

// applySpatialNavigation moves focus through the current screen's zones,
// falling back to linear focus order.
func (a *App) applySpatialNavigation(direction int) {
	focused := a.ui.GetFocusedWidget()

	var nextBtn *widget.Button
	switch a.state {
	case StateChooser:
		nextBtn = a.chooserScreen.FindFocusInDirection(focused, direction)
	case StateSettings:
		nextBtn = a.settingsScreen.FindFocusInDirection(focused, direction)
	case StateError:
		nextBtn = a.errorScreen.FindFocusInDirection(focused, direction)
	}

	if nextBtn != nil {
		if focused != nil {
			focused.Focus(false)
		}
		nextBtn.Focus(true)
		return
	}
	if direction == types.DirUp || direction == types.DirLeft {
		a.ui.ChangeFocus(widget.FOCUS_PREVIOUS)
	} else {
		a.ui.ChangeFocus(widget.FOCUS_NEXT)
	}
}

// handleBack handles Escape and gamepad B
func (a *App) handleBack() {
	switch a.state {
	case StateChooser:
		a.chooserScreen.SetPendingFocus("toolbar-settings")
	case StateSettings:
		if a.settingsChrome.HomeEnabled() {
			a.settingsScreen.OnOptionsItemSelected(types.MenuItemHome)
		}
		// StateError has no back action
	}
}

// ensureFocusedVisible scrolls the current screen to keep the focused widget visible
func (a *App) ensureFocusedVisible() {
	focused := a.ui.GetFocusedWidget()
	if focused == nil {
		return
	}
	switch a.state {
	case StateChooser:
		a.chooserScreen.EnsureFocusedVisible(focused)
	case StateSettings:
		a.settingsScreen.EnsureFocusedVisible(focused)
	}
}

// Draw implements ebiten.Game
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(style.Background)
	if a.ui != nil {
		a.ui.Draw(screen)
	}
	if a.state == StateChooser {
		a.filter.Draw(screen)
	}
	a.notification.Draw(screen)
}

// Layout implements ebiten.Game
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := 1.0
	if m := ebiten.Monitor(); m != nil {
		s = m.DeviceScaleFactor()
	}
	if s != a.deviceScale {
		a.deviceScale = s
		if a.store != nil {
			a.applyDPI()
		}
	}

	// Physical pixel dimensions so text renders at full resolution
	w := int(float64(outsideWidth) * s)
	h := int(float64(outsideHeight) * s)
	a.windowWidth = w
	a.windowHeight = h

	a.updateDeviceConfig(puzzlecore.DeviceConfig{
		Orientation: puzzlecore.OrientationFromSize(w, h),
		HasDpad:     a.inputManager.HasDpad(),
	})
	return w, h
}

// windowDeviceConfig reads the device config from the window before the
// first Layout
func (a *App) windowDeviceConfig() puzzlecore.DeviceConfig {
	w, h := a.windowSize()
	return puzzlecore.DeviceConfig{
		Orientation: puzzlecore.OrientationFromSize(w, h),
		HasDpad:     a.inputManager.HasDpad(),
	}
}

// updateDeviceConfig forwards orientation and d-pad changes to the
// visible settings screen
func (a *App) updateDeviceConfig(cfg puzzlecore.DeviceConfig) {
	if cfg == a.device {
		return
	}
	a.device = cfg
	if a.state == StateSettings && a.settingsScreen != nil {
		a.settingsScreen.OnConfigurationChanged(cfg)
	}
}

// ScreenCallback implementations

// SwitchToChooser leaves settings and shows the puzzle list
func (a *App) SwitchToChooser() {
	a.leaveSettings()
	a.notification.Clear()
	a.state = StateChooser
	a.chooserScreen.OnEnter()
	a.rebuildCurrentScreen()
}

// SwitchToSettings opens general settings, or settings scoped to backend
func (a *App) SwitchToSettings(backend string) {
	a.leaveSettings()
	a.notification.Clear()

	chrome := newWindowChrome(a, a.opts.AppName, a.setWindowTitle)
	s := screens.NewSettingsScreen(a, a.settingsEnv(chrome), backend)
	a.settingsScreen = s
	a.settingsChrome = chrome

	s.OnPostCreate()
	s.InflateMenu([]types.MenuItem{types.MenuItemHome})
	s.OnTitleChanged(a.strings.String("settings"))

	a.state = StateSettings
	s.OnEnter()
	a.rebuildCurrentScreen()

	if a.windowFocused {
		a.resumeSettings()
	}
}

// leaveSettings runs the hide and teardown half of the settings lifecycle
func (a *App) leaveSettings() {
	if a.settingsScreen == nil {
		return
	}
	a.pauseSettings()
	a.settingsScreen.OnStop()
	a.settingsScreen.OnDestroy()
	a.settingsScreen = nil
	a.settingsChrome = nil
}

// Exit stops the game loop at the next update
func (a *App) Exit() {
	a.leaveSettings()
	a.exitRequested = true
}

// GetWindowWidth returns the current window width for responsive layouts
func (a *App) GetWindowWidth() int {
	return a.windowWidth
}

// RequestRebuild triggers a UI rebuild for the current screen.
// The rebuild happens on the main thread in Update.
func (a *App) RequestRebuild() {
	a.rebuildPending = true
}

// handleDeleteAndContinue discards a corrupted prefs file
func (a *App) handleDeleteAndContinue() {
	p, err := resetPrefs(a.prefsPath)
	if err != nil {
		log.Printf("Failed to reset prefs: %v", err)
		a.notification.ShowDefault(err.Error())
		return
	}
	a.store = p
	a.start()
}

// handleRestoreAndContinue replaces a corrupted prefs file with the latest backup
func (a *App) handleRestoreAndContinue() {
	p, err := restorePrefs(a.prefsPath, a.backupStore)
	if err != nil {
		log.Printf("Failed to restore prefs: %v", err)
		a.notification.ShowDefault(err.Error())
		return
	}
	a.store = p
	a.start()
}

// handleResetAndContinue resets invalid list values to their defaults
func (a *App) handleResetAndContinue() {
	corrected, err := storage.CorrectChoices(a.store, settings.ChoiceRules())
	if err != nil {
		log.Printf("Failed to save corrected prefs: %v", err)
	}
	for _, key := range corrected {
		log.Printf("Reset %s to its default", key)
	}
	a.start()
}

// Close stops the backup worker, flushing a pending backup, and closes
// the backup store. Called after the game loop ends.
func (a *App) Close() {
	a.leaveSettings()
	if a.backupCancel != nil {
		a.backupCancel()
		a.backupDone.Wait()
		a.backupCancel = nil
	}
	if a.backupStore != nil {
		if err := a.backupStore.Close(); err != nil {
			log.Printf("Failed to close backup store: %v", err)
		}
		a.backupStore = nil
	}
}
