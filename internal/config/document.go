package config

import (
	"fmt"
	"sort"
)

// Document is the raw configuration tree: string-keyed mappings whose
// leaves are strings or booleans. It mirrors the on-disk YAML structure.
type Document map[string]any

// Merge deep-merges partial into existing and returns the result.
// For every key in partial: if the key is absent in existing, or both the
// existing and the new value are mappings, the values are merged; otherwise
// the new value overwrites the old one. This covers both the
// "scalar superseded by mapping" and "mapping superseded by scalar" cases.
// There is no key deletion; unset is not supported.
func Merge(existing, partial Document) Document {
	result := Document{}
	for k, v := range existing {
		result[k] = v
	}
	for k, v := range partial {
		existingVal, present := result[k]
		newMap, newIsMap := asDocument(v)
		if !present || !newIsMap {
			result[k] = v
			continue
		}
		existingMap, existingIsMap := asDocument(existingVal)
		if !existingIsMap {
			result[k] = v
			continue
		}
		result[k] = Merge(existingMap, newMap)
	}
	return result
}

// asDocument normalizes the mapping types yaml.v3 may produce.
func asDocument(v any) (Document, bool) {
	switch m := v.(type) {
	case Document:
		return m, true
	case map[string]any:
		return Document(m), true
	default:
		return nil, false
	}
}

// Flatten converts the document tree into sorted "key: value" pairs using
// dot notation for nested keys. Used by `ado config list`.
func Flatten(doc Document) []string {
	var lines []string
	flattenInto(&lines, "", doc)
	sort.Strings(lines)
	return lines
}

func flattenInto(lines *[]string, prefix string, doc Document) {
	for k, v := range doc {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := asDocument(v); ok {
			flattenInto(lines, key, nested)
			continue
		}
		*lines = append(*lines, fmt.Sprintf("%s: %v", key, v))
	}
}

// SetPath inserts value at the given dot-notation path, creating
// intermediate mappings as needed. It is used to build the partial
// document handed to Merge by `ado config set`.
func SetPath(doc Document, path []string, value any) {
	current := doc
	for _, seg := range path[:len(path)-1] {
		next, ok := asDocument(current[seg])
		if !ok {
			// A scalar in the way is superseded by a mapping when a
			// deeper path requires it.
			next = Document{}
			current[seg] = next
		}
		current[seg] = next
		current = next
	}
	current[path[len(path)-1]] = value
}
