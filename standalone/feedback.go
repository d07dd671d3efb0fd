package standalone

import (
	"fmt"
	"log"
	"os/exec"
	"runtime"

	"github.com/sqweek/dialog"
)

// FeedbackURL is the issue tracker opened by "Send feedback".
const FeedbackURL = "https://github.com/user-none/puzzlebox/issues/new"

// FeedbackLauncher asks the user for confirmation and opens the issue
// tracker in the system browser.
type FeedbackLauncher struct {
	title  string
	prompt string
	url    string

	// Replaced in tests
	confirm func(title, prompt string) bool
	open    func(url string) error
	async   func(fn func())
}

// NewFeedbackLauncher creates a launcher. title and prompt are shown in
// the native confirmation dialog.
func NewFeedbackLauncher(title, prompt, url string) *FeedbackLauncher {
	return &FeedbackLauncher{
		title:   title,
		prompt:  prompt,
		url:     url,
		confirm: confirmDialog,
		open:    openBrowser,
		async:   func(fn func()) { go fn() },
	}
}

// LaunchFeedback shows the prompt without blocking the game loop.
func (f *FeedbackLauncher) LaunchFeedback() {
	f.async(func() {
		if !f.confirm(f.title, f.prompt) {
			return
		}
		if err := f.open(f.url); err != nil {
			log.Printf("Failed to open feedback page: %v", err)
		}
	})
}

func confirmDialog(title, prompt string) bool {
	return dialog.Message("%s", prompt).Title(title).YesNo()
}

func openBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start browser: %w", err)
	}
	return nil
}
