// Package resources provides the UI string bundle.
package resources

import (
	_ "embed"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed strings.yaml
var defaultStrings []byte

type bundleFile struct {
	Strings map[string]string `yaml:"strings"`
}

// Bundle holds localized strings keyed by resource name.
type Bundle struct {
	strings map[string]string

	mu      sync.Mutex
	missing map[string]bool // Keys already reported as missing
}

// Load returns the embedded English bundle.
func Load() (*Bundle, error) {
	b := &Bundle{strings: make(map[string]string), missing: make(map[string]bool)}
	if err := b.merge(defaultStrings); err != nil {
		return nil, fmt.Errorf("failed to parse embedded strings: %w", err)
	}
	return b, nil
}

// LoadWithOverride loads the embedded bundle and merges the YAML file at
// path on top of it. A missing override file is not an error.
func LoadWithOverride(path string) (*Bundle, error) {
	b, err := Load()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return b, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return b, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read strings override: %w", err)
	}
	if err := b.merge(data); err != nil {
		return nil, fmt.Errorf("failed to parse strings override %s: %w", path, err)
	}
	return b, nil
}

// FromMap builds a bundle from an explicit map.
func FromMap(m map[string]string) *Bundle {
	b := &Bundle{strings: make(map[string]string, len(m)), missing: make(map[string]bool)}
	for k, v := range m {
		b.strings[k] = v
	}
	return b
}

func (b *Bundle) merge(data []byte) error {
	var f bundleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}
	for k, v := range f.Strings {
		b.strings[k] = v
	}
	return nil
}

// Lookup returns the string for key and whether it exists.
func (b *Bundle) Lookup(key string) (string, bool) {
	s, ok := b.strings[key]
	return s, ok
}

// String returns the string for key. Missing keys return the key itself
// so the UI stays readable; each missing key is logged once.
func (b *Bundle) String(key string) string {
	if s, ok := b.strings[key]; ok {
		return s
	}
	b.mu.Lock()
	if !b.missing[key] {
		b.missing[key] = true
		log.Printf("Warning: missing string resource %q", key)
	}
	b.mu.Unlock()
	return key
}

// Format looks up key and substitutes {0}, {1}, ... with args.
func (b *Bundle) Format(key string, args ...interface{}) string {
	return FormatMessage(b.String(key), args...)
}

// FormatMessage substitutes positional {n} placeholders in pattern.
// Placeholders without a matching argument are left as-is.
func FormatMessage(pattern string, args ...interface{}) string {
	if len(args) == 0 || !strings.Contains(pattern, "{") {
		return pattern
	}

	var sb strings.Builder
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '{' {
			sb.WriteByte(c)
			continue
		}
		end := strings.IndexByte(pattern[i:], '}')
		if end < 0 {
			sb.WriteString(pattern[i:])
			break
		}
		idx, err := strconv.Atoi(pattern[i+1 : i+end])
		if err != nil || idx < 0 || idx >= len(args) {
			sb.WriteString(pattern[i : i+end+1])
		} else {
			fmt.Fprint(&sb, args[idx])
		}
		i += end
	}
	return sb.String()
}
