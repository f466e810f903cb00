package cli

import (
	"fmt"
	"io"
	"time"

	"ado/internal/config"
	"ado/internal/fieldpath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// nullPlaceholder renders for values the remote service returned as null.
const nullPlaceholder = "-"

// timestampFormat is the fixed display format for date/time cells.
const timestampFormat = "2006-01-02 15:04"

// ColumnSpec pairs the field paths to display with their header labels.
// The two sequences are parallel; a length mismatch is a configuration
// error raised at construction, before any rendering attempt.
type ColumnSpec struct {
	Paths  []fieldpath.Path
	Labels []string
}

// NewColumnSpec builds a ColumnSpec from dot-notation column strings and
// display labels, validating count parity.
func NewColumnSpec(columns, labels []string) (ColumnSpec, error) {
	if len(columns) != len(labels) {
		return ColumnSpec{}, &config.ConfigurationError{
			Key:    "column-names",
			Reason: fmt.Sprintf("number of column names (%d) doesn't match number of columns (%d)", len(labels), len(columns)),
		}
	}
	spec := ColumnSpec{Labels: labels}
	for _, col := range columns {
		spec.Paths = append(spec.Paths, fieldpath.Parse(col))
	}
	return spec, nil
}

// SpecFromSettings builds the ColumnSpec for a configured settings group.
func SpecFromSettings(settings *config.ListSettings) (ColumnSpec, error) {
	return NewColumnSpec(settings.Columns, settings.Labels)
}

// RenderTable writes records as a table with a leading auto-increment "#"
// column starting at 1. Every configured path is resolved against every
// record; a path that does not resolve aborts the whole render with the
// resolver's error naming the offending path. A resolved null renders as
// a placeholder instead of aborting.
func RenderTable(w io.Writer, records []any, spec ColumnSpec) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	// Configured column names render verbatim, not upper-cased.
	t.Style().Format.Header = text.FormatDefault

	header := table.Row{"#"}
	for _, label := range spec.Labels {
		header = append(header, label)
	}
	t.AppendHeader(header)

	for i, record := range records {
		row := table.Row{i + 1}
		for _, path := range spec.Paths {
			value, err := fieldpath.Resolve(record, path)
			if err != nil {
				return err
			}
			row = append(row, FormatCell(value))
		}
		t.AppendRow(row)
	}

	t.Render()
	return nil
}

// FormatCell converts a resolved field value to its display string.
// Timestamps use a fixed YYYY-MM-DD HH:MM format; nulls render as a
// placeholder; everything else falls back to its default formatting.
func FormatCell(value any) string {
	switch v := value.(type) {
	case nil:
		return nullPlaceholder
	case time.Time:
		if v.IsZero() {
			return nullPlaceholder
		}
		return v.Format(timestampFormat)
	case string:
		if v == "" {
			return nullPlaceholder
		}
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
