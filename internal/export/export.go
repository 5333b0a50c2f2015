// SPDX-License-Identifier: MPL-2.0

package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"pvdb-cli/pkg/pvdb"
)

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	// FormatDump prints the Go values, including field names the other
	// formats rename.
	FormatDump Format = "dump"
)

var (
	// ErrUnsupportedFormat is returned for a Format this package cannot write.
	ErrUnsupportedFormat = errors.New("unsupported export format")

	dumper = spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}
)

// Format names an export encoding.
type Format string

// Formats returns every supported format.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatTOML, FormatDump}
}

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write encodes cat to w in the given format.
func Write[T any](w io.Writer, format Format, cat *pvdb.Catalogue[T]) error {
	entries := cat.Entries()
	if entries == nil {
		entries = []pvdb.CatalogueEntry[T]{}
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case FormatYAML:
		generic, err := toGeneric(entries)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(generic); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		generic, err := toGeneric(entries)
		if err != nil {
			return err
		}
		// TOML documents are tables, so the list goes under a key and each
		// record becomes an [[entries]] table.
		tables := make([]map[string]any, 0, len(generic))
		for _, g := range generic {
			tables = append(tables, g.(map[string]any))
		}
		if err := toml.NewEncoder(w).Encode(map[string]any{"entries": tables}); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	case FormatDump:
		dumper.Fdump(w, entries)
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// toGeneric converts entries to plain maps and slices through their JSON
// form, so YAML and TOML use the same field names and omissions as JSON.
// Numbers become int64 when integral and float64 otherwise.
func toGeneric[T any](entries []pvdb.CatalogueEntry[T]) ([]any, error) {
	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("encode records: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var generic []any
	if err := dec.Decode(&generic); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	for i := range generic {
		generic[i] = convertNumbers(generic[i])
	}
	return generic, nil
}

func convertNumbers(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for k, e := range v {
			v[k] = convertNumbers(e)
		}
		return v
	case []any:
		for i, e := range v {
			v[i] = convertNumbers(e)
		}
		return v
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	default:
		return v
	}
}
