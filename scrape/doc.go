// Package scrape provides regex-driven extraction of HTML tables into
// [model.Table] values.
//
// This is the lenient engine: it does not tokenize or build a DOM. It
// locates <table> regions with non-greedy, case-insensitive patterns and
// decomposes each region into rows and cells the same way. That makes it
// fast and forgiving for the common case of simple, non-nested tables, and
// deliberately unsuitable for nested tables or heavy tag soup: for those,
// use the domscan package instead.
//
// # Behavior
//
//   - HTML comments are removed before any matching, so commented-out
//     markup never contributes rows or cells.
//   - Column names come from <th> cells when the table contains any,
//     scanned across the whole table body in document order. Otherwise
//     columns are synthesized as "Column 0", "Column 1", ... from the
//     cell count of the first row.
//   - A row containing a <th> marker is treated as a header row and
//     excluded from the data rows.
//   - Cell values are the raw inner HTML between the cell tags, captured
//     verbatim: no entity unescaping, no stripping of nested tags.
//   - Rows shorter than the column count leave trailing cells empty; rows
//     longer than the column count have the extras dropped.
//
// # Failure semantics
//
// Extraction never fails. Malformed, unterminated, or table-free input
// degrades to fewer matches: an empty dataset, a table with zero rows, or
// empty cell values. A table with no header cells and no rows at all
// produces an empty table with zero columns; callers that need to treat
// that as an error can check [model.Table.ColCount].
//
// Both functions are pure: no shared state is read or written, so they are
// safe to call concurrently and always return structurally equal results
// for equal inputs.
package scrape
