// Package catalog keeps a keyed list of computed type names.
//
// Keys are chosen by the caller; the builtin catalog uses the Go spelling
// of the instantiated type without the package qualifier, e.g.
// "Result[I32, String]" for the entry named "Result<i32, String>".
// Names are computed once, when an entry is built. The catalog is a
// listing for tooling and golden checks; name composition never consults it.
package catalog

import (
	"sort"
	"strings"

	"github.com/teranos/tyname"
	"github.com/teranos/tyname/errors"
)

// Entry pairs a key with the composed name of a type.
type Entry struct {
	Key  string `json:"key" yaml:"key" toml:"key"`
	Name string `json:"name" yaml:"name" toml:"name"`
}

// Of returns the entry for T under key.
func Of[T tyname.TypeName](key string) Entry {
	return Entry{Key: key, Name: tyname.Name[T]()}
}

// Catalog is an immutable list of entries sorted by key.
type Catalog struct {
	entries []Entry
}

// New builds a catalog from entries. Keys must be unique and non-empty.
func New(entries ...Entry) (*Catalog, error) {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })

	for i, e := range sorted {
		if e.Key == "" {
			return nil, errors.NewInvalidRequestError("catalog entry %q has an empty key", e.Name)
		}
		if i > 0 && sorted[i-1].Key == e.Key {
			return nil, errors.NewInvalidRequestError("duplicate catalog key %q", e.Key)
		}
	}
	return &Catalog{entries: sorted}, nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the entries, sorted by key.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Keys returns the sorted keys.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.entries))
	for i, e := range c.entries {
		keys[i] = e.Key
	}
	return keys
}

// Map returns the entries as a key to name map.
func (c *Catalog) Map() map[string]string {
	m := make(map[string]string, len(c.entries))
	for _, e := range c.entries {
		m[e.Key] = e.Name
	}
	return m
}

// Lookup returns the entry stored under key.
func (c *Catalog) Lookup(key string) (Entry, error) {
	i := sort.Search(len(c.entries), func(i int) bool { return c.entries[i].Key >= key })
	if i < len(c.entries) && c.entries[i].Key == key {
		return c.entries[i], nil
	}
	err := errors.NewNotFoundError("catalog key %q", key)
	return Entry{}, errors.WithHint(err, `run "tyname list" to see the available keys`)
}

// Filter returns the entries whose key starts with prefix.
// An empty prefix returns the whole catalog.
func (c *Catalog) Filter(prefix string) *Catalog {
	if prefix == "" {
		return c
	}
	var out []Entry
	for _, e := range c.entries {
		if strings.HasPrefix(e.Key, prefix) {
			out = append(out, e)
		}
	}
	return &Catalog{entries: out}
}
