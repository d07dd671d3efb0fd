package backup

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
)

// DefaultKeep is the number of snapshots retained when none is configured.
const DefaultKeep = 10

// Source provides and accepts the values being backed up.
type Source interface {
	Snapshot() map[string]interface{}
	Restore(values map[string]interface{}) error
}

// Manager receives "data changed" signals and writes snapshots on a
// background worker.
type Manager struct {
	store  *Store
	source Source
	keep   int

	pending   chan struct{}
	requested atomic.Int64
	written   atomic.Int64
}

// NewManager creates a manager. keep < 1 uses DefaultKeep.
func NewManager(store *Store, source Source, keep int) *Manager {
	if keep < 1 {
		keep = DefaultKeep
	}
	return &Manager{
		store:   store,
		source:  source,
		keep:    keep,
		pending: make(chan struct{}, 1),
	}
}

// DataChanged requests a backup. It never blocks; requests made while one
// is already pending are coalesced.
func (m *Manager) DataChanged() {
	m.requested.Add(1)
	select {
	case m.pending <- struct{}{}:
	default:
	}
}

// Requested returns how many times DataChanged has been called.
func (m *Manager) Requested() int64 {
	return m.requested.Load()
}

// Written returns how many snapshots the worker has saved.
func (m *Manager) Written() int64 {
	return m.written.Load()
}

// Run processes backup requests until ctx is cancelled. A request still
// pending at cancellation is flushed before returning.
func (m *Manager) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			select {
			case <-m.pending:
				m.runOnce()
			default:
			}
			return
		case <-m.pending:
			m.runOnce()
		}
	}
}

func (m *Manager) runOnce() {
	if err := m.BackupNow(); err != nil {
		log.Printf("Failed to back up preferences: %v", err)
	}
}

// BackupNow snapshots the source synchronously and prunes old snapshots.
func (m *Manager) BackupNow() error {
	if _, err := m.store.Save(m.source.Snapshot()); err != nil {
		return err
	}
	m.written.Add(1)
	return m.store.Prune(m.keep)
}

// RestoreLatest pushes the newest snapshot back into the source. It
// reports whether a snapshot was found.
func (m *Manager) RestoreLatest() (bool, error) {
	snap, ok, err := m.store.Latest()
	if err != nil || !ok {
		return false, err
	}
	if err := m.source.Restore(snap.Values); err != nil {
		return false, fmt.Errorf("failed to restore snapshot %s: %w", snap.ID, err)
	}
	return true, nil
}
