// Package render writes catalog entries in the output formats the CLI offers.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"

	"github.com/teranos/tyname/catalog"
	"github.com/teranos/tyname/errors"
)

// Output formats
const (
	FormatText  = "text"  // table with a header row
	FormatPlain = "plain" // one "key<TAB>name" line per entry
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTOML  = "toml"
)

var formats = []string{FormatText, FormatPlain, FormatJSON, FormatYAML, FormatTOML}

// Formats returns the supported format names.
func Formats() []string {
	out := make([]string, len(formats))
	copy(out, formats)
	return out
}

// IsFormat reports whether name is a supported format.
func IsFormat(name string) bool {
	for _, f := range formats {
		if f == name {
			return true
		}
	}
	return false
}

// Render writes entries to w in the given format.
func Render(w io.Writer, format string, entries []catalog.Entry) error {
	switch format {
	case FormatText:
		return renderText(w, entries)
	case FormatPlain:
		return renderPlain(w, entries)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return errors.Wrap(enc.Encode(nonNil(entries)), "failed to encode JSON")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(nonNil(entries)); err != nil {
			return errors.Wrap(err, "failed to encode YAML")
		}
		return errors.Wrap(enc.Close(), "failed to encode YAML")
	case FormatTOML:
		// TOML has no top-level arrays, so entries become [[entries]] tables.
		doc := struct {
			Entries []catalog.Entry `toml:"entries"`
		}{Entries: nonNil(entries)}
		data, err := toml.Marshal(doc)
		if err != nil {
			return errors.Wrap(err, "failed to encode TOML")
		}
		_, err = w.Write(data)
		return errors.Wrap(err, "failed to write TOML")
	default:
		err := errors.Wrapf(errors.ErrUnknownFormat, "%q", format)
		return errors.WithHintf(err, "use one of: %s", strings.Join(formats, ", "))
	}
}

func renderText(w io.Writer, entries []catalog.Entry) error {
	data := pterm.TableData{{"KEY", "NAME"}}
	for _, e := range entries {
		data = append(data, []string{e.Key, e.Name})
	}
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render table")
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func renderPlain(w io.Writer, entries []catalog.Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", e.Key, e.Name); err != nil {
			return err
		}
	}
	return nil
}

func nonNil(entries []catalog.Entry) []catalog.Entry {
	if entries == nil {
		return []catalog.Entry{}
	}
	return entries
}
