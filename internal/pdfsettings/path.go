package pdfsettings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

var (
	// ErrUnknownPath is returned for a dotted path that names no settings field
	ErrUnknownPath = errors.New("unknown settings path")

	// ErrInvalidValue is returned when a value does not fit the field or breaks a range check
	ErrInvalidValue = errors.New("invalid settings value")
)

// paths maps every dotted json path (sections and leaves) to its field index.
var paths = buildPaths()

func buildPaths() map[string][]int {
	out := make(map[string][]int)
	var walk func(t reflect.Type, prefix string, index []int)
	walk = func(t reflect.Type, prefix string, index []int) {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			name := strings.Split(f.Tag.Get("json"), ",")[0]
			if name == "" || name == "-" {
				continue
			}
			path := name
			if prefix != "" {
				path = prefix + "." + name
			}
			idx := append(append([]int{}, index...), i)
			out[path] = idx
			if f.Type.Kind() == reflect.Struct {
				walk(f.Type, path, idx)
			}
		}
	}
	walk(reflect.TypeOf(PdfSettings{}), "", nil)
	return out
}

// Paths lists every addressable path in sorted order.
func Paths() []string {
	out := make([]string, 0, len(paths))
	for p := range paths {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// IsPath reports whether path addresses a settings field.
func IsPath(path string) bool {
	_, ok := paths[path]
	return ok
}

// Update returns a copy of s with the field at path replaced by value.
// The input is never modified. value is either a Go value or raw JSON
// ([]byte / json.RawMessage); it is decoded into the field's type, so
// "colors.primary" accepts a string and "margins" accepts a partial object
// merged over the current margins. The result must pass Validate.
func Update(s PdfSettings, path string, value any) (PdfSettings, error) {
	idx, ok := paths[path]
	if !ok {
		return s, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}

	raw, err := toJSON(value)
	if err != nil {
		return s, fmt.Errorf("%w: %s: %v", ErrInvalidValue, path, err)
	}
	// null would decode as a no-op
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return s, fmt.Errorf("%w: %s: value is required", ErrInvalidValue, path)
	}

	out := s
	field := reflect.ValueOf(&out).Elem().FieldByIndex(idx)

	// decode into a copy of the current value so partial sections merge
	target := reflect.New(field.Type())
	target.Elem().Set(field)

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target.Interface()); err != nil {
		return s, fmt.Errorf("%w: %s: %v", ErrInvalidValue, path, err)
	}
	field.Set(target.Elem())

	if err := out.Validate(); err != nil {
		return s, err
	}
	return out, nil
}

// Get returns the value at path.
func Get(s PdfSettings, path string) (any, error) {
	idx, ok := paths[path]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	return reflect.ValueOf(s).FieldByIndex(idx).Interface(), nil
}

func toJSON(value any) ([]byte, error) {
	switch v := value.(type) {
	case json.RawMessage:
		return v, nil
	case []byte:
		return v, nil
	default:
		return json.Marshal(v)
	}
}
