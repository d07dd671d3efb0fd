package standalone

import (
	"log"

	"github.com/ebitenui/ebitenui/widget"
	puzzlecore "github.com/user-none/puzzlebox/api"
	"github.com/user-none/puzzlebox/standalone/types"
)

// chromeHost is the part of App a window chrome drives.
type chromeHost interface {
	setContent(view *widget.Container)
	RequestRebuild()
}

// windowChrome implements types.Chrome for a desktop window: the title
// goes to the window title bar, the content view becomes the UI root and
// the home item is reachable through Escape or gamepad B.
type windowChrome struct {
	host           chromeHost
	appName        string
	setWindowTitle func(string)

	homeAsUp bool
	menu     []types.MenuItem
	title    string
	device   puzzlecore.DeviceConfig
	created  bool
	visible  bool
}

func newWindowChrome(host chromeHost, appName string, setWindowTitle func(string)) *windowChrome {
	return &windowChrome{host: host, appName: appName, setWindowTitle: setWindowTitle}
}

func (c *windowChrome) SetDisplayHomeAsUpEnabled(enabled bool) {
	c.homeAsUp = enabled
}

func (c *windowChrome) OnPostCreate() {
	c.created = true
}

func (c *windowChrome) OnPostResume() {
	c.visible = true
	c.applyTitle()
}

func (c *windowChrome) OnStop() {
	c.visible = false
}

func (c *windowChrome) OnDestroy() {
	c.created = false
	c.menu = nil
}

func (c *windowChrome) SetTitle(title string) {
	c.title = title
	if c.visible {
		c.applyTitle()
	}
}

func (c *windowChrome) applyTitle() {
	if c.setWindowTitle == nil {
		return
	}
	if c.title == "" {
		c.setWindowTitle(c.appName)
		return
	}
	c.setWindowTitle(c.appName + " - " + c.title)
}

func (c *windowChrome) OnConfigurationChanged(cfg puzzlecore.DeviceConfig) {
	if cfg != c.device {
		log.Printf("Display configuration changed: %s, d-pad %v", cfg.Orientation, cfg.HasDpad)
	}
	c.device = cfg
}

func (c *windowChrome) InflateMenu(items []types.MenuItem) {
	c.menu = append(c.menu[:0], items...)
}

func (c *windowChrome) SetContentView(view *widget.Container) {
	c.host.setContent(view)
}

func (c *windowChrome) InvalidateOptionsMenu() {
	c.host.RequestRebuild()
}

// HomeEnabled reports whether the home item should react to back input.
func (c *windowChrome) HomeEnabled() bool {
	if !c.homeAsUp {
		return false
	}
	if len(c.menu) == 0 {
		return true
	}
	for _, item := range c.menu {
		if item == types.MenuItemHome {
			return true
		}
	}
	return false
}
