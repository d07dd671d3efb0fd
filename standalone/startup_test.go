package standalone

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/user-none/puzzlebox/standalone/backup"
	"github.com/user-none/puzzlebox/standalone/screens/settings"
)

func openTestBackups(t *testing.T, dir string) *backup.Store {
	t.Helper()
	s, err := backup.Open(filepath.Join(dir, "backup.db"))
	if err != nil {
		t.Fatalf("backup.Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadPrefsMissingWithoutBackup(t *testing.T) {
	dir := t.TempDir()
	got := loadPrefs(filepath.Join(dir, "prefs.json"), openTestBackups(t, dir))

	if got.status != prefsOK {
		t.Errorf("status = %v, want ok", got.status)
	}
	if got.restored {
		t.Error("nothing to restore from an empty backup store")
	}
	if len(got.store.Snapshot()) != 0 {
		t.Error("store should be empty")
	}
}

func TestLoadPrefsMissingRestoresBackup(t *testing.T) {
	dir := t.TempDir()
	backups := openTestBackups(t, dir)
	if _, err := backups.Save(map[string]interface{}{settings.KeyNightMode: "on"}); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, "prefs.json")
	got := loadPrefs(path, backups)

	if !got.restored {
		t.Fatal("missing prefs should be restored from backup")
	}
	if v := got.store.GetString(settings.KeyNightMode, ""); v != "on" {
		t.Errorf("nightMode = %q, want %q", v, "on")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("restored prefs should be written to disk: %v", err)
	}
}

func TestLoadPrefsExistingIgnoresBackup(t *testing.T) {
	dir := t.TempDir()
	backups := openTestBackups(t, dir)
	backups.Save(map[string]interface{}{settings.KeyNightMode: "on"})

	path := filepath.Join(dir, "prefs.json")
	if err := os.WriteFile(path, []byte(`{"nightMode": "off"}`), 0644); err != nil {
		t.Fatal(err)
	}

	got := loadPrefs(path, backups)
	if got.restored {
		t.Error("existing prefs should not be replaced by a backup")
	}
	if v := got.store.GetString(settings.KeyNightMode, ""); v != "off" {
		t.Errorf("nightMode = %q, want %q", v, "off")
	}
}

func TestLoadPrefsCorrupted(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.json")
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}

	got := loadPrefs(path, nil)
	if got.status != prefsCorrupted || got.err == nil {
		t.Fatalf("status = %v, err = %v", got.status, got.err)
	}
	if got.store.Path() != "" {
		t.Error("corrupted prefs should use an in-memory store")
	}
	data, _ := os.ReadFile(path)
	if string(data) != "{broken" {
		t.Error("corrupted file must not be overwritten")
	}
}

func TestLoadPrefsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.json")
	if err := os.WriteFile(path, []byte(`{"limitDpi": "3", "orientation": "portrait"}`), 0644); err != nil {
		t.Fatal(err)
	}

	got := loadPrefs(path, nil)
	if got.status != prefsInvalid {
		t.Fatalf("status = %v, want invalid", got.status)
	}
	if len(got.details) != 1 {
		t.Errorf("details = %v, want one entry", got.details)
	}
}

func TestResetPrefs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.json")
	os.WriteFile(path, []byte("{broken"), 0644)

	p, err := resetPrefs(path)
	if err != nil {
		t.Fatalf("resetPrefs: %v", err)
	}
	if len(p.Snapshot()) != 0 || p.Path() != path {
		t.Error("reset should give an empty store bound to the prefs path")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("prefs file should be deleted")
	}
}

func TestRestorePrefs(t *testing.T) {
	dir := t.TempDir()
	backups := openTestBackups(t, dir)
	path := filepath.Join(dir, "prefs.json")
	os.WriteFile(path, []byte("{broken"), 0644)

	if _, err := restorePrefs(path, backups); err == nil {
		t.Error("restore without a backup should fail")
	}
	if hasBackup(backups) {
		t.Error("hasBackup should be false for an empty store")
	}

	backups.Save(map[string]interface{}{settings.KeyLimitDpi: "bogus", settings.KeyFullscreen: true})
	if !hasBackup(backups) {
		t.Fatal("hasBackup should be true after a save")
	}

	p, err := restorePrefs(path, backups)
	if err != nil {
		t.Fatalf("restorePrefs: %v", err)
	}
	if !p.GetBool(settings.KeyFullscreen, false) {
		t.Error("fullscreen should be restored")
	}
	if v := p.GetString(settings.KeyLimitDpi, ""); v != "off" {
		t.Errorf("invalid restored value should be corrected, got %q", v)
	}
}
