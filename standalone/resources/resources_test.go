package resources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	puzzlecore "github.com/user-none/puzzlebox/api"
)

func TestLoadEmbedded(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Arrow keys in {0}", b.String("arrowKeysIn"))
	assert.Equal(t, "Bridges", b.String("name_bridges"))
}

func TestEveryBackendHasDisplayName(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)

	r := puzzlecore.DefaultRegistry()
	for _, backend := range r.All() {
		_, ok := b.Lookup(backend.DisplayNameKey)
		assert.True(t, ok, "missing display name %q", backend.DisplayNameKey)
	}
}

func TestStringMissingReturnsKey(t *testing.T) {
	b := FromMap(nil)
	assert.Equal(t, "nope", b.String("nope"))
	assert.Equal(t, "nope", b.String("nope"))
	_, ok := b.Lookup("nope")
	assert.False(t, ok)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		args    []interface{}
		want    string
	}{
		{"single arg", "Arrow keys in {0}", []interface{}{"Net"}, "Arrow keys in Net"},
		{"version", "v{0}", []interface{}{"1.4.2"}, "v1.4.2"},
		{"two args reordered", "{1} before {0}", []interface{}{"a", "b"}, "b before a"},
		{"repeated", "{0}{0}", []interface{}{"x"}, "xx"},
		{"missing arg kept", "{0} and {1}", []interface{}{"a"}, "a and {1}"},
		{"non numeric kept", "{name} {0}", []interface{}{"a"}, "{name} a"},
		{"unterminated", "tail {0", []interface{}{"a"}, "tail {0"},
		{"no args", "plain {0}", nil, "plain {0}"},
		{"int arg", "count {0}", []interface{}{3}, "count 3"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatMessage(tc.pattern, tc.args...))
		})
	}
}

func TestBundleFormat(t *testing.T) {
	b := FromMap(map[string]string{"arrowKeysUnavailableIn": "Arrow keys unavailable in {0}"})
	assert.Equal(t, "Arrow keys unavailable in Untangle", b.Format("arrowKeysUnavailableIn", "Untangle"))
}

func TestLoadWithOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "strings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strings:\n  name_net: \"Réseau\"\n"), 0644))

	b, err := LoadWithOverride(path)
	require.NoError(t, err)
	assert.Equal(t, "Réseau", b.String("name_net"))
	assert.Equal(t, "Bridges", b.String("name_bridges"), "non-overridden keys keep embedded values")
}

func TestLoadWithOverrideMissingFile(t *testing.T) {
	b, err := LoadWithOverride(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Net", b.String("name_net"))
}

func TestLoadWithOverrideInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strings: [unclosed"), 0644))

	_, err := LoadWithOverride(path)
	assert.Error(t, err)
}
