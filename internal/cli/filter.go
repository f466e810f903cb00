package cli

import (
	"fmt"
	"path"

	"ado/internal/fieldpath"
)

// FilterByField keeps the records whose named display field matches the
// glob pattern (*, ?, bracket classes per path.Match). Filtering happens
// before the auto-increment index is assigned, so rendered indices are
// stable with respect to the filtered set. An empty pattern keeps
// everything; an invalid pattern is reported once, not per record.
func FilterByField(records []any, field fieldpath.Path, pattern string) ([]any, error) {
	if pattern == "" {
		return records, nil
	}
	if _, err := path.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	filtered := make([]any, 0, len(records))
	for _, record := range records {
		value, err := fieldpath.Resolve(record, field)
		if err != nil {
			return nil, err
		}
		name := fmt.Sprintf("%v", value)
		if matched, _ := path.Match(pattern, name); matched {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}
