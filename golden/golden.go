// Package golden pins composed type names in a TOML file so that changes
// to the name grammar show up as a diff instead of reaching consumers
// that compare names byte for byte.
package golden

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/teranos/tyname/catalog"
	"github.com/teranos/tyname/errors"
	"github.com/teranos/tyname/logger"
)

// FormatVersion is the version written to and expected in golden files.
const FormatVersion = 1

const header = "# Code generated by tyname update. DO NOT EDIT.\n# Regenerate with: tyname update\n\n"

// File is the decoded form of a golden file.
type File struct {
	Version int               `toml:"version"`
	Names   map[string]string `toml:"names"`
}

// FromCatalog builds a golden file holding every entry of c.
func FromCatalog(c *catalog.Catalog) *File {
	return &File{Version: FormatVersion, Names: c.Map()}
}

// Load reads and validates the golden file at path.
func Load(path string) (*File, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WithHint(
				errors.WrapNotFound(err, "failed to load golden file"),
				`run "tyname update" to create it`)
		}
		return nil, errors.Wrapf(err, "failed to decode golden file %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.NewInvalidRequestError("golden file %s has unknown key %q", path, undecoded[0].String())
	}
	if f.Version != FormatVersion {
		return nil, errors.WithHintf(
			errors.NewInvalidRequestError("golden file %s has version %d, want %d", path, f.Version, FormatVersion),
			"regenerate it with this version of tyname")
	}
	if f.Names == nil {
		f.Names = map[string]string{}
	}
	return &f, nil
}

// Save writes f to path, creating parent directories as needed.
// Keys are written in sorted order so the file is stable across runs.
func Save(path string, f *File) error {
	var buf bytes.Buffer
	buf.WriteString(header)
	if err := toml.NewEncoder(&buf).Encode(f); err != nil {
		return errors.Wrap(err, "failed to encode golden file")
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create directory %s", dir)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write golden file %s", path)
	}

	logger.ComponentLogger("golden").Infow("golden file written",
		logger.FieldFile, path,
		logger.FieldCount, len(f.Names))
	return nil
}

// DiffKind classifies a difference between a golden file and a catalog.
type DiffKind string

const (
	// Missing: the key is in the golden file but not in the catalog
	Missing DiffKind = "missing"
	// Unexpected: the key is in the catalog but not in the golden file
	Unexpected DiffKind = "unexpected"
	// Changed: the key is in both with different names
	Changed DiffKind = "changed"
)

// Diff is one difference for a single key.
type Diff struct {
	Key  string
	Kind DiffKind
	Want string // name in the golden file
	Got  string // name computed now
}

func (d Diff) String() string {
	switch d.Kind {
	case Missing:
		return fmt.Sprintf("- %s = %q", d.Key, d.Want)
	case Unexpected:
		return fmt.Sprintf("+ %s = %q", d.Key, d.Got)
	default:
		return fmt.Sprintf("~ %s = %q, want %q", d.Key, d.Got, d.Want)
	}
}

// Compare returns the differences between want and got, sorted by key.
func Compare(want *File, got *catalog.Catalog) []Diff {
	var diffs []Diff
	gotNames := got.Map()

	for key, w := range want.Names {
		g, ok := gotNames[key]
		switch {
		case !ok:
			diffs = append(diffs, Diff{Key: key, Kind: Missing, Want: w})
		case g != w:
			diffs = append(diffs, Diff{Key: key, Kind: Changed, Want: w, Got: g})
		}
	}
	for _, key := range got.Keys() {
		if _, ok := want.Names[key]; !ok {
			diffs = append(diffs, Diff{Key: key, Kind: Unexpected, Got: gotNames[key]})
		}
	}

	sort.Slice(diffs, func(i, j int) bool { return diffs[i].Key < diffs[j].Key })
	return diffs
}

// Check compares the golden file at path with got. When they differ it
// returns the differences and an error wrapping ErrGoldenMismatch.
func Check(path string, got *catalog.Catalog) ([]Diff, error) {
	log := logger.ComponentLogger("golden")
	want, err := Load(path)
	if err != nil {
		log.Debugw("golden file unreadable", logger.FieldFile, path, logger.FieldError, err)
		return nil, err
	}

	diffs := Compare(want, got)
	log.Infow("golden file checked",
		logger.FieldFile, path,
		logger.FieldCount, got.Len(),
		logger.FieldDiffs, len(diffs))
	if len(diffs) == 0 {
		return nil, nil
	}

	lines := make([]string, len(diffs))
	for i, d := range diffs {
		lines[i] = d.String()
		log.Debugw("golden diff", logger.FieldKey, d.Key, "kind", string(d.Kind))
	}
	err = errors.Wrapf(errors.ErrGoldenMismatch, "%d of %d names in %s", len(diffs), got.Len(), path)
	err = errors.WithDetail(err, strings.Join(lines, "\n"))
	return diffs, errors.WithHint(err, `run "tyname update" if the new names are intended`)
}
