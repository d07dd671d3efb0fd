package backup

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	mu       sync.Mutex
	values   map[string]interface{}
	restored map[string]interface{}
}

func (f *fakeSource) Snapshot() map[string]interface{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]interface{}, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

func (f *fakeSource) Restore(values map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.restored = values
	return nil
}

func TestDataChangedNeverBlocks(t *testing.T) {
	m := NewManager(openTestStore(t), &fakeSource{}, 0)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			m.DataChanged()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("DataChanged blocked without a running worker")
	}
	assert.Equal(t, int64(100), m.Requested())
	assert.Equal(t, int64(0), m.Written())
}

func TestRunWritesSnapshot(t *testing.T) {
	store := openTestStore(t)
	src := &fakeSource{values: map[string]interface{}{"limitDpi": "1.5"}}
	m := NewManager(store, src, 3)

	ctx, cancel := context.WithCancel(context.Background())
	finished := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(finished)
	}()

	m.DataChanged()
	require.Eventually(t, func() bool { return m.Written() >= 1 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	<-finished

	snap, ok, err := store.Latest()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "1.5", snap.Values["limitDpi"])
}

func TestRunFlushesPendingOnCancel(t *testing.T) {
	store := openTestStore(t)
	m := NewManager(store, &fakeSource{values: map[string]interface{}{"a": "b"}}, 3)

	m.DataChanged()
	m.DataChanged()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m.Run(ctx)

	n, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n, "coalesced requests should produce one snapshot")
}

func TestBackupNowPrunes(t *testing.T) {
	store := openTestStore(t)
	m := NewManager(store, &fakeSource{values: map[string]interface{}{}}, 2)

	for i := 0; i < 4; i++ {
		require.NoError(t, m.BackupNow())
	}

	n, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, int64(4), m.Written())
}

func TestRestoreLatest(t *testing.T) {
	store := openTestStore(t)
	src := &fakeSource{}
	m := NewManager(store, src, 0)

	ok, err := m.RestoreLatest()
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = store.Save(map[string]interface{}{"chooserStyle": "grid"})
	require.NoError(t, err)

	ok, err = m.RestoreLatest()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "grid", src.restored["chooserStyle"])
}
