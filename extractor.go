package htmltab

import (
	"bufio"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"

	"github.com/tsawler/htmltab/domscan"
	"github.com/tsawler/htmltab/format"
	"github.com/tsawler/htmltab/guard"
	"github.com/tsawler/htmltab/internal/render"
	"github.com/tsawler/htmltab/model"
	"github.com/tsawler/htmltab/scrape"
)

// Extractor provides a fluent interface for extracting tables from HTML.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source (exactly one of cache/filename/reader is the origin)
	filename string
	reader   io.Reader
	cache    *sourceCache

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// sourceCache holds the decoded document once loaded. Every clone in a
// chain shares the cache, so a file or reader origin is consumed at most
// once no matter which instance runs the first terminal operation.
type sourceCache struct {
	html   string
	loaded bool
}

// clone creates a copy of the Extractor with copied options. This keeps
// the chain immutable: each configuration method returns a new instance.
// The source cache is shared, not copied.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		reader:   e.reader,
		cache:    e.cache,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Hardened switches extraction to the DOM-based engine (the domscan
// package). Cells hold decoded, flattened text instead of raw inner HTML,
// and thead/tbody/colspan structure is honored.
//
// Example:
//
//	ds, _, err := htmltab.Parse(html).Hardened().Tables()
func (e *Extractor) Hardened() *Extractor {
	newExt := e.clone()
	newExt.options.hardened = true
	return newExt
}

// TrimCells trims leading and trailing whitespace from every cell value
// and column name.
func (e *Extractor) TrimCells() *Extractor {
	newExt := e.clone()
	newExt.options.trimCells = true
	return newExt
}

// UnescapeEntities decodes HTML entities (&amp;, &#39;, ...) in cell
// values and column names. The default engine otherwise leaves cell
// content byte-for-byte as it appeared in the markup.
func (e *Extractor) UnescapeEntities() *Extractor {
	newExt := e.clone()
	newExt.options.unescapeCells = true
	return newExt
}

// TextCells flattens each cell's inner HTML to plain text: nested tags
// are dropped and entities decoded. Overrides UnescapeEntities since the
// flattening already decodes.
func (e *Extractor) TextCells() *Extractor {
	newExt := e.clone()
	newExt.options.textCells = true
	return newExt
}

// MarkdownCells renders each cell's inner HTML as markdown, preserving
// emphasis and links from the source markup. Takes precedence over
// TextCells when both are set.
//
// Example:
//
//	md, _, err := htmltab.Parse(html).MarkdownCells().Markdown()
func (e *Extractor) MarkdownCells() *Extractor {
	newExt := e.clone()
	newExt.options.markdownCells = true
	return newExt
}

// Within scopes extraction to the parts of the document matched by a CSS
// selector. Only tables inside matching elements are extracted.
//
// Example:
//
//	ds, _, err := htmltab.Open("page.html").Within("div#content").Tables()
func (e *Extractor) Within(selector string) *Extractor {
	newExt := e.clone()
	sel, err := guard.NotBlank(selector, "selector")
	if err != nil {
		newExt.err = err
		return newExt
	}
	newExt.options.selector = sel
	return newExt
}

// MaxTables limits extraction to the first n tables in document order.
// n must be positive.
func (e *Extractor) MaxTables(n int) *Extractor {
	newExt := e.clone()
	limit, err := guard.Positive(n, "maxTables")
	if err != nil {
		newExt.err = err
		return newExt
	}
	newExt.options.maxTables = limit
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// Tables extracts every table from the configured source.
//
// Returns the dataset, any warnings encountered during processing, and an
// error if the source could not be read or an option was invalid.
// Warnings indicate non-fatal issues (input that does not look like HTML,
// a table with no derivable columns) where extraction succeeded but
// results may be imperfect.
//
// Example:
//
//	ds, warnings, err := htmltab.Parse(html).Tables()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", htmltab.FormatWarnings(warnings))
//	}
func (e *Extractor) Tables() (*model.Dataset, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	src, err := e.loadSource()
	if err != nil {
		return nil, nil, err
	}

	var warnings []Warning
	if format.Detect([]byte(src)) == format.Unknown {
		warnings = append(warnings, Warning{
			Table:   -1,
			Message: "input does not look like HTML; no tables will likely be found",
		})
	}

	if e.options.selector != "" {
		src, err = scopeToSelector(src, e.options.selector)
		if err != nil {
			return nil, nil, fmt.Errorf("applying selector %q: %w", e.options.selector, err)
		}
	}

	var ds *model.Dataset
	if e.options.hardened {
		ds, err = domscan.ScanString(src)
		if err != nil {
			return nil, nil, err
		}
	} else {
		ds = scrape.ExtractAll(src)
	}

	if e.options.maxTables > 0 && ds.Len() > e.options.maxTables {
		ds.Tables = ds.Tables[:e.options.maxTables]
	}

	for i, table := range ds.Tables {
		if table.ColCount() == 0 {
			warnings = append(warnings, Warning{
				Table:   i,
				Message: "no header cells and no rows to derive columns from",
			})
		}
		e.postProcess(table)
	}

	return ds, warnings, nil
}

// First extracts only the first table in document order. Returns a nil
// table (and no error) when the source contains no tables; absence is not
// a failure.
func (e *Extractor) First() (*model.Table, []Warning, error) {
	ds, warnings, err := e.MaxTables(1).Tables()
	if err != nil {
		return nil, nil, err
	}
	if ds.Len() == 0 {
		return nil, warnings, nil
	}
	return ds.Table(0), warnings, nil
}

// CSV extracts all tables and renders them as CSV, tables separated by a
// blank line.
func (e *Extractor) CSV() (string, []Warning, error) {
	return e.renderTables(func(t *model.Table) string { return t.ToCSV() })
}

// TSV extracts all tables and renders them as tab-separated values,
// tables separated by a blank line.
func (e *Extractor) TSV() (string, []Warning, error) {
	return e.renderTables(func(t *model.Table) string { return t.ToTSV() })
}

// Markdown extracts all tables and renders them as markdown pipe tables,
// separated by blank lines.
func (e *Extractor) Markdown() (string, []Warning, error) {
	return e.renderTables(func(t *model.Table) string { return t.ToMarkdown() })
}

// JSON extracts all tables and renders them as a JSON array; each table
// becomes an object with "columns" and "records" fields.
func (e *Extractor) JSON() (string, []Warning, error) {
	ds, warnings, err := e.Tables()
	if err != nil {
		return "", nil, err
	}

	type tableJSON struct {
		Columns []string            `json:"columns"`
		Records []map[string]string `json:"records"`
	}
	out := make([]tableJSON, 0, ds.Len())
	for _, t := range ds.Tables {
		out = append(out, tableJSON{
			Columns: t.ColumnNames(),
			Records: t.Records(),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", nil, fmt.Errorf("encoding JSON: %w", err)
	}
	return string(data), warnings, nil
}

// renderTables runs extraction and joins per-table renderings with blank
// lines.
func (e *Extractor) renderTables(render func(*model.Table) string) (string, []Warning, error) {
	ds, warnings, err := e.Tables()
	if err != nil {
		return "", nil, err
	}

	parts := make([]string, 0, ds.Len())
	for _, t := range ds.Tables {
		parts = append(parts, render(t))
	}
	return strings.Join(parts, "\n"), warnings, nil
}

// ============================================================================
// Internals
// ============================================================================

// loadSource resolves the HTML string from whichever origin the Extractor
// was created with. File and reader input pass through charset detection
// so non-UTF-8 documents decode correctly.
func (e *Extractor) loadSource() (string, error) {
	if e.cache.loaded {
		return e.cache.html, nil
	}

	if e.filename != "" {
		f, err := os.Open(e.filename)
		if err != nil {
			return "", fmt.Errorf("opening file: %w", err)
		}
		defer f.Close()
		return e.decodeInto(f)
	}

	if e.reader != nil {
		return e.decodeInto(e.reader)
	}

	return "", fmt.Errorf("no input source specified")
}

// decodeInto reads everything from r, decoding from the detected character
// encoding to UTF-8, and fills the shared cache so repeated terminal calls
// anywhere in the chain see the same source.
func (e *Extractor) decodeInto(r io.Reader) (string, error) {
	br := bufio.NewReader(r)
	peek, err := br.Peek(1024)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading input: %w", err)
	}

	enc, _, _ := charset.DetermineEncoding(peek, "")
	data, err := io.ReadAll(transform.NewReader(br, enc.NewDecoder()))
	if err != nil {
		return "", fmt.Errorf("decoding input: %w", err)
	}

	e.cache.html = string(data)
	e.cache.loaded = true
	return e.cache.html, nil
}

// scopeToSelector reduces src to the concatenated outer HTML of every
// element matching the CSS selector. A selector matching nothing yields an
// empty string, and therefore zero tables.
func scopeToSelector(src, selector string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		if h, err := goquery.OuterHtml(sel); err == nil {
			sb.WriteString(h)
		}
	})
	return sb.String(), nil
}

// postProcess applies the configured cell transformations in place. The
// table was freshly built by this call chain, so mutation here is not
// visible to any other caller.
func (e *Extractor) postProcess(table *model.Table) {
	o := e.options
	if !o.trimCells && !o.unescapeCells && !o.textCells && !o.markdownCells {
		return
	}

	cell := func(s string) string {
		switch {
		case o.markdownCells:
			s = render.Markdown(s)
		case o.textCells:
			s = render.Text(s)
		case o.unescapeCells:
			s = html.UnescapeString(s)
		}
		if o.trimCells {
			s = strings.TrimSpace(s)
		}
		return s
	}

	// Column names never keep markup, so markdown rendering does not
	// apply to them; flattening and unescaping do.
	name := func(s string) string {
		switch {
		case o.textCells || o.markdownCells:
			s = render.Text(s)
		case o.unescapeCells:
			s = html.UnescapeString(s)
		}
		if o.trimCells {
			s = strings.TrimSpace(s)
		}
		return s
	}

	for i := range table.Columns {
		table.Columns[i].Name = name(table.Columns[i].Name)
	}
	for _, row := range table.Rows {
		for j := range row {
			row[j] = cell(row[j])
		}
	}
}
