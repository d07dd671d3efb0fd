package standalone

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/user-none/puzzlebox/standalone/backup"
	"github.com/user-none/puzzlebox/standalone/screens/settings"
	"github.com/user-none/puzzlebox/standalone/storage"
)

// prefsStatus describes what startup found in the prefs file
type prefsStatus int

const (
	prefsOK prefsStatus = iota
	prefsCorrupted
	prefsInvalid
)

// loadedPrefs is the outcome of loading the prefs file at startup
type loadedPrefs struct {
	store    *storage.Prefs
	status   prefsStatus
	details  []string // Validation errors (prefsInvalid)
	err      error    // Parse error (prefsCorrupted)
	restored bool     // Values came from the backup store
}

// loadPrefs loads the prefs file. A missing file is seeded from the latest
// backup when one exists. A corrupt file yields an in-memory store so the
// error screen can run without overwriting it.
func loadPrefs(path string, backups *backup.Store) loadedPrefs {
	_, statErr := os.Stat(path)
	missing := errors.Is(statErr, os.ErrNotExist)

	p, err := storage.LoadPrefs(path)
	if err != nil {
		return loadedPrefs{store: storage.NewMemoryPrefs(), status: prefsCorrupted, err: err}
	}

	result := loadedPrefs{store: p}
	if missing && backups != nil {
		restored, err := backup.NewManager(backups, p, 0).RestoreLatest()
		if err != nil {
			log.Printf("Failed to restore preferences from backup: %v", err)
		} else if restored {
			log.Printf("Restored preferences from backup")
			result.restored = true
		}
	}

	if details := storage.ValidateChoices(p, settings.ChoiceRules()); len(details) > 0 {
		result.status = prefsInvalid
		result.details = details
	}
	return result
}

// resetPrefs deletes the prefs file and returns an empty store bound to it
func resetPrefs(path string) (*storage.Prefs, error) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to delete prefs: %w", err)
	}
	return storage.LoadPrefs(path)
}

// restorePrefs replaces the prefs file with the latest backup snapshot
func restorePrefs(path string, backups *backup.Store) (*storage.Prefs, error) {
	p, err := resetPrefs(path)
	if err != nil {
		return nil, err
	}
	ok, err := backup.NewManager(backups, p, 0).RestoreLatest()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no backup available")
	}
	if _, err := storage.CorrectChoices(p, settings.ChoiceRules()); err != nil {
		return nil, fmt.Errorf("failed to correct restored prefs: %w", err)
	}
	return p, nil
}

// hasBackup reports whether the backup store holds at least one snapshot
func hasBackup(backups *backup.Store) bool {
	if backups == nil {
		return false
	}
	n, err := backups.Count()
	if err != nil {
		log.Printf("Warning: failed to count backups: %v", err)
		return false
	}
	return n > 0
}
