package fieldpath

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode"
)

// Path is an ordered sequence of field segments derived from a
// dot-notation string such as "project.name".
type Path []string

// Parse splits a dot-notation string into a Path.
func Parse(s string) Path {
	return Path(strings.Split(s, "."))
}

// String reassembles the path into dot notation.
func (p Path) String() string {
	return strings.Join([]string(p), ".")
}

// Error indicates that a path segment did not resolve against the record.
type Error struct {
	// Path is the full dot-notation path that was requested.
	Path string
	// Segment is the first segment that failed to resolve.
	Segment string
}

// Error returns a user-facing message naming the offending path.
func (e *Error) Error() string {
	return fmt.Sprintf("unable to access field %q (failed at %q)", e.Path, e.Segment)
}

// Is allows errors.Is() to work with wrapped errors.
func (e *Error) Is(target error) bool {
	_, ok := target.(*Error)
	return ok
}

// Resolve walks the path field by field against root and returns the value
// at the end of the traversal. Intermediate string values are tentatively
// decoded as JSON before descending; decode failures are silent. A segment
// absent from the current object yields an *Error.
func Resolve(root any, path Path) (any, error) {
	current := normalize(reflect.ValueOf(root))
	for i, segment := range path {
		mapping, ok := current.(map[string]any)
		if !ok {
			return nil, &Error{Path: path.String(), Segment: segment}
		}
		value, ok := mapping[segment]
		if !ok {
			return nil, &Error{Path: path.String(), Segment: segment}
		}
		// Decode only when this is not the last segment: a JSON-encoded
		// string leaf must come back verbatim, not re-parsed.
		if s, isString := value.(string); isString && i < len(path)-1 {
			var decoded any
			if err := json.Unmarshal([]byte(s), &decoded); err == nil {
				value = decoded
			}
		}
		current = normalizeAny(value)
	}
	return current, nil
}

// normalizeAny converts an already-interfaced value into the traversal
// representation (map[string]any for records, plain scalars for leaves).
func normalizeAny(v any) any {
	if v == nil {
		return nil
	}
	switch v.(type) {
	case map[string]any, string, bool, int, int64, float64, time.Time, []any:
		return v
	}
	return normalize(reflect.ValueOf(v))
}

// normalize projects a value into the traversal representation. Structs
// become name→value mappings keyed by JSON tag names with pointers
// dereferenced. Time values and stringer leaves (UUIDs, enums rendered by
// their String method) stay scalar.
func normalize(rv reflect.Value) any {
	if !rv.IsValid() {
		return nil
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return normalize(rv.Elem())

	case reflect.Struct:
		if t, ok := rv.Interface().(time.Time); ok {
			return t
		}
		// The SDK wraps timestamps in a single-field struct holding a
		// time.Time; unwrap it so date formatting applies uniformly.
		if inner, ok := unwrapTime(rv); ok {
			return inner
		}
		return structToMap(rv)

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return rv.Interface()
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = normalize(iter.Value())
		}
		return out

	case reflect.Slice:
		if rv.IsNil() {
			return nil
		}
		fallthrough
	case reflect.Array:
		if s, ok := stringerValue(rv); ok {
			return s
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = normalize(rv.Index(i))
		}
		return out

	case reflect.String:
		return rv.String()

	default:
		return rv.Interface()
	}
}

// unwrapTime detects wrapper structs whose only field is a time.Time and
// returns the inner value.
func unwrapTime(rv reflect.Value) (time.Time, bool) {
	if rv.NumField() != 1 {
		return time.Time{}, false
	}
	field := rv.Field(0)
	if !field.CanInterface() {
		return time.Time{}, false
	}
	if t, ok := field.Interface().(time.Time); ok {
		return t, true
	}
	return time.Time{}, false
}

// stringerValue renders array/slice leaves that carry their own string
// form (uuid.UUID in particular) instead of exploding them element-wise.
func stringerValue(rv reflect.Value) (string, bool) {
	if s, ok := rv.Interface().(fmt.Stringer); ok {
		return s.String(), true
	}
	if rv.CanAddr() {
		if s, ok := rv.Addr().Interface().(fmt.Stringer); ok {
			return s.String(), true
		}
	}
	return "", false
}

// structToMap extracts the name→value mapping for a record type, keyed by
// JSON tag names. Unexported and json:"-" fields are skipped; untagged
// fields fall back to the lower-cased field name.
func structToMap(rv reflect.Value) map[string]any {
	t := rv.Type()
	out := make(map[string]any, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := jsonFieldName(field)
		if name == "" {
			continue
		}
		out[name] = normalize(rv.Field(i))
	}
	return out
}

func jsonFieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	if tag != "" {
		if name, _, found := strings.Cut(tag, ","); found {
			if name != "" {
				return name
			}
		} else if tag != "" {
			return tag
		}
	}
	runes := []rune(field.Name)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
