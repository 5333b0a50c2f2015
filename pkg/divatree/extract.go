// SPDX-License-Identifier: MPL-2.0

package divatree

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

const (
	// TagName is the struct tag naming the key a field is read from.
	TagName = "mapstructure"
	// RequiredTagName is the struct tag marking a field as required.
	RequiredTagName = "divatree"
	// requiredOption is the value of RequiredTagName that marks a required field.
	requiredOption = "required"
	squashOption   = "squash"
)

// Unmarshal extracts the node into the value pointed to by v.
//
// Required fields are checked first so a missing field is reported by its
// path instead of as a zero value. Extraction errors (a value that does not
// parse as the field's type, an unknown enum value) fail the whole node.
func Unmarshal(n *Node, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return ErrInvalidTarget
	}

	data := n.Interface()
	if err := checkRequired(rv.Type().Elem(), data, ""); err != nil {
		return err
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			branchToSliceHook,
			mapstructure.TextUnmarshallerHookFunc(),
			scalarHook,
		),
		TagName:   TagName,
		MatchName: func(mapKey, fieldName string) bool { return mapKey == fieldName },
		Result:    v,
	})
	if err != nil {
		return fmt.Errorf("internal error: build decoder: %w", err)
	}
	return dec.Decode(data)
}

// UnmarshalString parses a whole document and extracts its root into v.
func UnmarshalString(text string, v any) error {
	root, err := Parse(text)
	if err != nil {
		return err
	}
	return Unmarshal(root, v)
}

// branchToSliceHook turns a branch into a slice when the target is a slice.
func branchToSliceHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	m, ok := data.(map[string]any)
	if !ok {
		return data, nil
	}
	if to.Kind() != reflect.Slice && to.Kind() != reflect.Array {
		return data, nil
	}
	return listFromBranch(m), nil
}

// scalarHook parses raw values for numeric and boolean targets. Numbers are
// always base 10 so values such as "010" keep their decimal meaning.
func scalarHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	raw, ok := data.(string)
	if !ok {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, to.Bits())
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", raw, err)
		}
		return n, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, to.Bits())
		if err != nil {
			return nil, fmt.Errorf("invalid unsigned integer %q: %w", raw, err)
		}
		return n, nil
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, to.Bits())
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", raw, err)
		}
		return f, nil
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean %q: %w", raw, err)
		}
		return b, nil
	default:
		return data, nil
	}
}

// checkRequired walks t alongside data and reports the first required field
// that is absent. Shape mismatches are left to the decoder.
func checkRequired(t reflect.Type, data any, path string) error {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		m, ok := data.(map[string]any)
		if !ok {
			return nil
		}
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			name, squash := fieldKey(f)
			if squash {
				if err := checkRequired(f.Type, m, path); err != nil {
					return err
				}
				continue
			}
			if !f.IsExported() || name == "-" {
				continue
			}
			child, present := m[name]
			if !present {
				if f.Tag.Get(RequiredTagName) == requiredOption {
					return &FieldError{Path: joinPath(path, name)}
				}
				continue
			}
			if err := checkRequired(f.Type, child, joinPath(path, name)); err != nil {
				return err
			}
		}
	case reflect.Slice, reflect.Array:
		var elems []any
		switch d := data.(type) {
		case map[string]any:
			elems = listFromBranch(d)
		case []any:
			elems = d
		default:
			return nil
		}
		for i, e := range elems {
			if e == nil {
				continue
			}
			if err := checkRequired(t.Elem(), e, joinPath(path, strconv.Itoa(i))); err != nil {
				return err
			}
		}
	}
	return nil
}

// fieldKey returns the key a struct field is read from and whether the
// field is an embedded struct squashed into its parent.
func fieldKey(f reflect.StructField) (string, bool) {
	tag := f.Tag.Get(TagName)
	name, opts, _ := strings.Cut(tag, ",")
	if f.Anonymous && strings.Contains(opts, squashOption) {
		return "", true
	}
	if name == "" {
		name = f.Name
	}
	return name, false
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + PathSeparator + name
}
