package puzzlecore

import "strings"

// BackendName identifies one puzzle in the collection.
type BackendName int

const (
	BackendBlackbox BackendName = iota
	BackendBridges
	BackendCube
	BackendDominosa
	BackendFifteen
	BackendFilling
	BackendFlip
	BackendFlood
	BackendGalaxies
	BackendGuess
	BackendInertia
	BackendKeen
	BackendLightup
	BackendLoopy
	BackendMagnets
	BackendMap
	BackendMines
	BackendMosaic
	BackendNet
	BackendNetslide
	BackendPalisade
	BackendPattern
	BackendPearl
	BackendPegs
	BackendRange
	BackendRect
	BackendSamegame
	BackendSignpost
	BackendSingles
	BackendSixteen
	BackendSlant
	BackendSolo
	BackendTents
	BackendTowers
	BackendTracks
	BackendTwiddle
	BackendUndead
	BackendUnequal
	BackendUnruly
	BackendUntangle

	backendCount
)

var backendNames = [backendCount]string{
	"blackbox", "bridges", "cube", "dominosa", "fifteen", "filling", "flip",
	"flood", "galaxies", "guess", "inertia", "keen", "lightup", "loopy",
	"magnets", "map", "mines", "mosaic", "net", "netslide", "palisade",
	"pattern", "pearl", "pegs", "range", "rect", "samegame", "signpost",
	"singles", "sixteen", "slant", "solo", "tents", "towers", "tracks",
	"twiddle", "undead", "unequal", "unruly", "untangle",
}

// String returns the lower-case backend name used in pref keys and resource keys.
func (b BackendName) String() string {
	if b < 0 || b >= backendCount {
		return "unknown"
	}
	return backendNames[b]
}

// Valid reports whether b is one of the known backends.
func (b BackendName) Valid() bool {
	return b >= 0 && b < backendCount
}

// BackendByLowerCase resolves a lower-case backend name.
// Matching is case-insensitive; surrounding whitespace is ignored.
func BackendByLowerCase(name string) (BackendName, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return 0, false
	}
	for i, n := range backendNames {
		if n == name {
			return BackendName(i), true
		}
	}
	return 0, false
}

// Capability is a tri-state capability flag. CapabilityUnset means the
// backend table says nothing, which callers treat as capable.
type Capability int

const (
	CapabilityUnset Capability = iota
	Capable
	Incapable
)

// Backend describes how the UI should treat one puzzle.
type Backend struct {
	Name           BackendName
	DisplayNameKey string     // Resource key for the localized name
	ArrowsCapable  Capability // Whether directional keys can drive the puzzle
	ArrowsDefault  bool       // Default for the arrow-keys pref without a d-pad
}

// Registry is an immutable lookup table of backends.
type Registry struct {
	backends [backendCount]Backend
}

// arrowKeyBackends holds every backend with an explicit arrow-key entry.
// Backends not listed here have an unset capability.
var arrowKeyBackends = []Backend{
	{Name: BackendUntangle, ArrowsCapable: Incapable},
	{Name: BackendCube, ArrowsCapable: Capable, ArrowsDefault: true},
	{Name: BackendFifteen, ArrowsCapable: Capable, ArrowsDefault: true},
	{Name: BackendInertia, ArrowsCapable: Capable, ArrowsDefault: true},
	{Name: BackendNetslide, ArrowsCapable: Capable, ArrowsDefault: true},
	{Name: BackendSixteen, ArrowsCapable: Capable, ArrowsDefault: true},
	{Name: BackendTwiddle, ArrowsCapable: Capable, ArrowsDefault: true},
}

// DefaultRegistry returns the registry for the full puzzle collection.
func DefaultRegistry() *Registry {
	return NewRegistry(arrowKeyBackends...)
}

// NewRegistry builds a registry from explicit entries. Backends without an
// entry get an unset capability and no arrow default.
func NewRegistry(entries ...Backend) *Registry {
	r := &Registry{}
	for i := BackendName(0); i < backendCount; i++ {
		r.backends[i] = Backend{Name: i, DisplayNameKey: "name_" + i.String()}
	}
	for _, e := range entries {
		if !e.Name.Valid() {
			continue
		}
		if e.DisplayNameKey == "" {
			e.DisplayNameKey = "name_" + e.Name.String()
		}
		r.backends[e.Name] = e
	}
	return r
}

// Lookup returns the table entry for a backend.
func (r *Registry) Lookup(name BackendName) (Backend, bool) {
	if !name.Valid() {
		return Backend{}, false
	}
	return r.backends[name], true
}

// All returns every backend in declaration order.
func (r *Registry) All() []Backend {
	out := make([]Backend, len(r.backends))
	copy(out, r.backends[:])
	return out
}

// DisplayNameKey returns the resource key holding the backend's display name.
func (r *Registry) DisplayNameKey(name BackendName) string {
	if b, ok := r.Lookup(name); ok {
		return b.DisplayNameKey
	}
	return "name_" + name.String()
}

// ArrowsCapable reports whether directional input is supported.
// A backend without an explicit flag is considered capable.
func (r *Registry) ArrowsCapable(name BackendName) bool {
	b, ok := r.Lookup(name)
	if !ok {
		return true
	}
	return b.ArrowsCapable != Incapable
}
