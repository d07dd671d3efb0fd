package storage

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
	"sync"
)

// PreferenceChangeListener is notified after a preference value changes.
type PreferenceChangeListener interface {
	OnPreferenceChanged(prefs *Prefs, key string)
}

// Prefs is an observable key-value preference store. Values are JSON
// scalars (bool, string, number). Every write is persisted to disk before
// listeners are notified.
type Prefs struct {
	mu        sync.Mutex
	path      string // Empty for an in-memory store
	values    map[string]interface{}
	listeners []PreferenceChangeListener
}

// NewMemoryPrefs creates a store that is never written to disk.
func NewMemoryPrefs() *Prefs {
	return &Prefs{values: make(map[string]interface{})}
}

// LoadPrefs loads preferences from path. A missing file yields an empty
// store bound to path; a corrupt file is an error.
func LoadPrefs(path string) (*Prefs, error) {
	p := &Prefs{path: path, values: make(map[string]interface{})}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return p, nil
	}

	values := make(map[string]interface{})
	if err := ReadJSON(path, &values); err != nil {
		return nil, fmt.Errorf("failed to load prefs: %w", err)
	}
	p.values = scalarValues(values)
	return p, nil
}

// scalarValues copies the bool, string and numeric entries of values,
// storing numbers as float64. Other values are dropped with a warning.
func scalarValues(values map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(values))
	for k, v := range values {
		switch n := v.(type) {
		case bool, string, float64:
			out[k] = v
		case int:
			out[k] = float64(n)
		case int64:
			out[k] = float64(n)
		default:
			log.Printf("Warning: ignoring non-scalar pref %q", k)
		}
	}
	return out
}

// Path returns the backing file path, or "" for an in-memory store.
func (p *Prefs) Path() string {
	return p.path
}

// Contains reports whether key has a stored value.
func (p *Prefs) Contains(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.values[key]
	return ok
}

// GetBool returns the bool stored under key, or def if absent or not a bool.
func (p *Prefs) GetBool(key string, def bool) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if v, ok := p.values[key].(bool); ok {
		return v
	}
	return def
}

// GetString returns the string stored under key, or def if absent or not a string.
func (p *Prefs) GetString(key string, def string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if v, ok := p.values[key].(string); ok {
		return v
	}
	return def
}

// GetInt returns the integer stored under key, or def if absent or not a number.
func (p *Prefs) GetInt(key string, def int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch v := p.values[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return def
}

// PutBool stores a bool value.
func (p *Prefs) PutBool(key string, value bool) error {
	return p.put(key, value)
}

// PutString stores a string value.
func (p *Prefs) PutString(key string, value string) error {
	return p.put(key, value)
}

// PutInt stores an integer value.
func (p *Prefs) PutInt(key string, value int) error {
	return p.put(key, float64(value))
}

// Remove deletes key. Removing an absent key does nothing.
func (p *Prefs) Remove(key string) error {
	p.mu.Lock()
	if _, ok := p.values[key]; !ok {
		p.mu.Unlock()
		return nil
	}
	delete(p.values, key)
	err := p.saveLocked()
	p.mu.Unlock()

	p.notify([]string{key})
	return err
}

func (p *Prefs) put(key string, value interface{}) error {
	p.mu.Lock()
	if old, ok := p.values[key]; ok && old == value {
		p.mu.Unlock()
		return nil
	}
	p.values[key] = value
	err := p.saveLocked()
	p.mu.Unlock()

	p.notify([]string{key})
	return err
}

// Snapshot returns a copy of all stored values.
func (p *Prefs) Snapshot() map[string]interface{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[string]interface{}, len(p.values))
	for k, v := range p.values {
		out[k] = v
	}
	return out
}

// Restore replaces all values with the given set, persists them, and
// notifies listeners of every key whose value changed. Non-scalar values
// are dropped as in LoadPrefs.
func (p *Prefs) Restore(values map[string]interface{}) error {
	next := scalarValues(values)

	p.mu.Lock()
	changed := make(map[string]bool)
	for k, old := range p.values {
		if nv, ok := next[k]; !ok || nv != old {
			changed[k] = true
		}
	}
	for k := range next {
		if _, ok := p.values[k]; !ok {
			changed[k] = true
		}
	}
	p.values = next
	err := p.saveLocked()
	p.mu.Unlock()

	keys := make([]string, 0, len(changed))
	for k := range changed {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	p.notify(keys)
	return err
}

// RegisterListener adds a change listener. Registering the same listener
// twice has no effect.
func (p *Prefs) RegisterListener(l PreferenceChangeListener) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, existing := range p.listeners {
		if existing == l {
			return
		}
	}
	p.listeners = append(p.listeners, l)
}

// UnregisterListener removes a change listener.
func (p *Prefs) UnregisterListener(l PreferenceChangeListener) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, existing := range p.listeners {
		if existing == l {
			p.listeners = append(p.listeners[:i], p.listeners[i+1:]...)
			return
		}
	}
}

// ListenerCount returns the number of registered listeners.
func (p *Prefs) ListenerCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.listeners)
}

// notify calls listeners outside the lock so they may read the store.
func (p *Prefs) notify(keys []string) {
	p.mu.Lock()
	listeners := make([]PreferenceChangeListener, len(p.listeners))
	copy(listeners, p.listeners)
	p.mu.Unlock()

	for _, key := range keys {
		for _, l := range listeners {
			l.OnPreferenceChanged(p, key)
		}
	}
}

func (p *Prefs) saveLocked() error {
	if p.path == "" {
		return nil
	}
	if err := AtomicWriteJSON(p.path, p.values); err != nil {
		return fmt.Errorf("failed to save prefs: %w", err)
	}
	return nil
}
