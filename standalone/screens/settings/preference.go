// Package settings holds the preference tree shown by the settings screen
// and the widgets that render it.
package settings

import "sort"

// Preference is one entry in the settings tree.
type Preference interface {
	Key() string
	Title() string
	SetTitle(title string)
	Summary() string
	SetSummary(summary string)
	Order() int
	SetOrder(order int)
}

// Clickable is implemented by preferences that react to a click.
type Clickable interface {
	// Click runs the click handler and reports whether it consumed the click.
	Click() bool
}

// BasePreference is a plain preference: a title, a summary and an
// optional click handler. It stores no value.
type BasePreference struct {
	key     string
	title   string
	summary string
	order   int
	onClick func() bool
}

// NewPreference creates a plain preference.
func NewPreference(key, title string) *BasePreference {
	return &BasePreference{key: key, title: title}
}

func (p *BasePreference) Key() string               { return p.key }
func (p *BasePreference) Title() string             { return p.title }
func (p *BasePreference) SetTitle(title string)     { p.title = title }
func (p *BasePreference) Summary() string           { return p.summary }
func (p *BasePreference) SetSummary(summary string) { p.summary = summary }
func (p *BasePreference) Order() int                { return p.order }
func (p *BasePreference) SetOrder(order int)        { p.order = order }

// SetOnClick installs the click handler. The handler returns true when it
// handled the click.
func (p *BasePreference) SetOnClick(fn func() bool) {
	p.onClick = fn
}

// HasClickHandler reports whether a click handler is installed.
func (p *BasePreference) HasClickHandler() bool {
	return p.onClick != nil
}

// Click runs the click handler. Without one the click is not handled.
func (p *BasePreference) Click() bool {
	if p.onClick == nil {
		return false
	}
	return p.onClick()
}

// CheckBoxPreference is a boolean preference.
type CheckBoxPreference struct {
	BasePreference
	Default bool
}

// NewCheckBox creates a boolean preference with a default value.
func NewCheckBox(key, title string, def bool) *CheckBoxPreference {
	return &CheckBoxPreference{BasePreference: BasePreference{key: key, title: title}, Default: def}
}

// ListPreference is a single-choice preference. Entries are the display
// labels, EntryValues the stored values, index aligned.
type ListPreference struct {
	BasePreference
	Entries      []string
	EntryValues  []string
	DefaultValue string
}

// NewList creates a single-choice preference.
func NewList(key, title string, entries, values []string, def string) *ListPreference {
	return &ListPreference{
		BasePreference: BasePreference{key: key, title: title},
		Entries:        entries,
		EntryValues:    values,
		DefaultValue:   def,
	}
}

// IndexOf returns the index of value in EntryValues, or -1.
func (l *ListPreference) IndexOf(value string) int {
	for i, v := range l.EntryValues {
		if v == value {
			return i
		}
	}
	return -1
}

// EntryFor returns the display label for value, or "" when value is not
// one of the choices.
func (l *ListPreference) EntryFor(value string) string {
	i := l.IndexOf(value)
	if i < 0 || i >= len(l.Entries) {
		return ""
	}
	return l.Entries[i]
}

type child struct {
	pref Preference
	seq  int
}

// group is an ordered set of preferences. Children sort by Order, ties
// keep insertion order.
type group struct {
	children []child
	nextSeq  int
}

func (g *group) add(p Preference) {
	g.children = append(g.children, child{pref: p, seq: g.nextSeq})
	g.nextSeq++
}

func (g *group) remove(p Preference) bool {
	for i, c := range g.children {
		if c.pref == p {
			g.children = append(g.children[:i], g.children[i+1:]...)
			return true
		}
	}
	return false
}

func (g *group) sorted() []Preference {
	cs := make([]child, len(g.children))
	copy(cs, g.children)
	sort.SliceStable(cs, func(i, j int) bool {
		if cs[i].pref.Order() != cs[j].pref.Order() {
			return cs[i].pref.Order() < cs[j].pref.Order()
		}
		return cs[i].seq < cs[j].seq
	})
	out := make([]Preference, len(cs))
	for i, c := range cs {
		out[i] = c.pref
	}
	return out
}

func (g *group) find(key string) Preference {
	for _, c := range g.children {
		if c.pref.Key() == key {
			return c.pref
		}
		if cat, ok := c.pref.(*Category); ok {
			if p := cat.Find(key); p != nil {
				return p
			}
		}
	}
	return nil
}

// Category is a titled group of preferences.
type Category struct {
	BasePreference
	group
}

// NewCategory creates an empty category.
func NewCategory(key, title string) *Category {
	return &Category{BasePreference: BasePreference{key: key, title: title}}
}

// Add appends p to the category.
func (c *Category) Add(p Preference) { c.add(p) }

// Remove removes p from the category and reports whether it was present.
func (c *Category) Remove(p Preference) bool { return c.remove(p) }

// Children returns the children in display order.
func (c *Category) Children() []Preference { return c.sorted() }

// Len returns the number of children.
func (c *Category) Len() int { return len(c.children) }

// Find returns the preference with key inside this category, or nil.
func (c *Category) Find(key string) Preference { return c.find(key) }

// PreferenceScreen is the root of the tree.
type PreferenceScreen struct {
	group
}

// NewPreferenceScreen creates an empty root.
func NewPreferenceScreen() *PreferenceScreen {
	return &PreferenceScreen{}
}

// Add appends a top-level preference, normally a Category.
func (s *PreferenceScreen) Add(p Preference) { s.add(p) }

// Remove removes a direct child and reports whether it was present.
func (s *PreferenceScreen) Remove(p Preference) bool { return s.remove(p) }

// Children returns the top-level preferences in display order.
func (s *PreferenceScreen) Children() []Preference { return s.sorted() }

// Find searches the whole tree for key. Returns nil when absent.
func (s *PreferenceScreen) Find(key string) Preference { return s.find(key) }

// Lists returns every ListPreference in the tree, in display order.
func (s *PreferenceScreen) Lists() []*ListPreference {
	var out []*ListPreference
	var walk func([]Preference)
	walk = func(ps []Preference) {
		for _, p := range ps {
			switch v := p.(type) {
			case *ListPreference:
				out = append(out, v)
			case *Category:
				walk(v.Children())
			}
		}
	}
	walk(s.Children())
	return out
}
