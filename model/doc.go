// Package model provides the in-memory representation for extracted
// tabular content.
//
// This package defines the user-facing data structures that every
// extraction engine produces, making them the primary API for consuming
// extracted tables.
//
// # Structure
//
// A [Dataset] is an ordered collection of tables, one per <table> element
// found in a document, in document order:
//
//	ds := scrape.ExtractAll(html)
//	for i := 0; i < ds.Len(); i++ {
//	    fmt.Println(ds.Table(i).ToCSV())
//	}
//
// Each [Table] holds an ordered list of [Column] definitions and an ordered
// list of rows. The column count is fixed when the table is constructed and
// never changes afterward: rows appended with fewer cells leave trailing
// positions empty, rows with more cells have the extras dropped.
//
// # Exports
//
// Tables export to common downstream formats:
//
//   - [Table.ToCSV] - RFC-4180-style comma separated values
//   - [Table.ToTSV] - tab separated values
//   - [Table.ToMarkdown] - a markdown pipe table
//   - [Table.Records] - ordered column-name-to-value maps for JSON encoding
//
// Tables are value containers only; they perform no parsing themselves.
package model
