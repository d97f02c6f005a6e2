// Package htmltab provides a fluent API for extracting HTML tables into
// named-column datasets.
//
// Basic usage:
//
//	ds, warnings, err := htmltab.Parse(html).Tables()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", htmltab.FormatWarnings(warnings))
//	}
//
// With options:
//
//	csv, _, err := htmltab.Open("report.html").
//	    Within("#results").
//	    TrimCells().
//	    UnescapeEntities().
//	    CSV()
//
// Two engines are available. The default engine pattern-matches raw markup
// and preserves cell inner HTML verbatim; Hardened() switches to a DOM
// walker that decodes entities and flattens cell markup. For direct access
// to either engine, the lower-level scrape and domscan packages are also
// available.
package htmltab

import (
	"io"
	"strconv"
	"strings"
)

// Parse creates an Extractor over an in-memory HTML string.
//
// Example:
//
//	ds, warnings, err := htmltab.Parse("<table>...</table>").Tables()
func Parse(html string) *Extractor {
	return &Extractor{
		cache:   &sourceCache{html: html, loaded: true},
		options: defaultOptions(),
	}
}

// Open creates an Extractor that reads the named file on the first
// terminal operation. The file's character encoding is detected from its
// content and decoded to UTF-8 before extraction.
//
// Example:
//
//	ds, warnings, err := htmltab.Open("report.html").Tables()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		cache:    &sourceCache{},
		options:  defaultOptions(),
	}
}

// FromReader creates an Extractor that consumes r on the first terminal
// operation. Character encoding is detected and decoded as with Open.
func FromReader(r io.Reader) *Extractor {
	return &Extractor{
		reader:  r,
		cache:   &sourceCache{},
		options: defaultOptions(),
	}
}

// Warning describes a non-fatal condition noticed during extraction:
// extraction succeeded but results may be incomplete or not what the
// caller intended.
type Warning struct {
	// Table is the 0-based index of the affected table, or -1 for
	// document-level warnings.
	Table   int
	Message string
}

func (w Warning) String() string {
	if w.Table < 0 {
		return w.Message
	}
	return "table " + strconv.Itoa(w.Table) + ": " + w.Message
}

// FormatWarnings renders warnings as a single semicolon-separated line,
// suitable for logging.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustTables is a helper that wraps a terminal operation returning
// (T, []Warning, error), panicking on error and discarding warnings.
//
// Example:
//
//	ds := htmltab.MustTables(htmltab.Parse(html).Tables())
func MustTables[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
