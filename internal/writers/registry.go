// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"swscan/internal/cache"
)

// TableFunc writes the whole table to w.
type TableFunc func(w io.Writer, rows []cache.Row) error

type entry struct {
	fn  TableFunc
	ext string
}

// Writer registry (format → handler). Register in init() blocks.
var tableWriters = map[string]entry{}

// Register adds or replaces the writer for format (last wins). ext is the
// file extension used by FileName.
func Register(format, ext string, fn TableFunc) { tableWriters[format] = entry{fn: fn, ext: ext} }

// Formats lists the registered formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(tableWriters))
	for f := range tableWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Known reports whether format has a writer.
func Known(format string) bool {
	_, ok := tableWriters[format]
	return ok
}

// FileName appends the format's extension to base.
func FileName(base, format string) string { return base + tableWriters[format].ext }

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, rows []cache.Row) error {
	e, ok := tableWriters[format]
	if !ok {
		return fmt.Errorf("unknown table format %q (no writer registered)", format)
	}
	return e.fn(w, rows)
}
