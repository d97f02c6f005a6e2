// Package domscan provides DOM-based extraction of HTML tables into
// [model.Table] values.
//
// Where the scrape package pattern-matches over raw markup, domscan parses
// the document with golang.org/x/net/html and walks the resulting tree.
// That buys correct handling of attributes containing angle brackets,
// entity decoding, whitespace normalization, colspan expansion, and
// thead/tbody sectioning, at the cost of the raw-HTML cell values the
// scrape engine preserves: domscan cells hold flattened text content.
//
// The parser never fails on tag soup, so Scan returns an error only when
// reading the input fails. Tables nested inside other tables are not
// descended into; only outermost tables are extracted.
//
// # Column derivation
//
// The first row made entirely of <th> cells (or the first row of <thead>)
// names the columns. Subsequent header rows are ignored rather than
// appended, which is the one deliberate divergence from the lenient
// engine. Tables with no header row get synthesized "Column N" names from
// the first data row's width.
package domscan
