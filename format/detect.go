// Package format provides input format detection for the htmltab library.
package format

import (
	"path/filepath"
	"strings"
)

// Format represents a recognized input format.
type Format int

const (
	// Unknown indicates content that does not look like HTML.
	Unknown Format = iota
	// HTML indicates an HTML or XHTML document.
	HTML
	// Fragment indicates markup that lacks a document shell but still
	// contains table elements, e.g. a pasted <table> snippet.
	Fragment
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case HTML:
		return "HTML"
	case Fragment:
		return "Fragment"
	default:
		return "Unknown"
	}
}

// DetectFile determines format from a filename extension.
func DetectFile(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".html", ".htm", ".xhtml":
		return HTML
	default:
		return Unknown
	}
}

// Detect inspects content to determine whether it looks like HTML.
// Content-based detection is preferred over DetectFile when both are
// available. At most the first 512 bytes are considered for the document
// shell check; the table fragment check scans the whole input.
func Detect(data []byte) Format {
	if detectHTMLMagic(data) {
		return HTML
	}
	if strings.Contains(strings.ToLower(string(data)), "<table") {
		return Fragment
	}
	return Unknown
}

// detectHTMLMagic checks whether data starts like an HTML document.
func detectHTMLMagic(data []byte) bool {
	// Trim leading whitespace
	start := 0
	for start < len(data) && (data[start] == ' ' || data[start] == '\t' || data[start] == '\n' || data[start] == '\r') {
		start++
	}
	if start >= len(data) {
		return false
	}
	data = data[start:]

	head := strings.ToUpper(string(data[:min(512, len(data))]))
	if strings.HasPrefix(head, "<!DOCTYPE HTML") {
		return true
	}
	if strings.HasPrefix(head, "<HTML") {
		return true
	}
	// XML declaration followed by html-like content could be XHTML
	if strings.HasPrefix(head, "<?XML") && strings.Contains(head, "<HTML") {
		return true
	}

	return false
}
