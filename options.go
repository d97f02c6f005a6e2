package htmltab

// ExtractOptions holds configuration for table extraction.
type ExtractOptions struct {
	// Engine selection
	hardened bool

	// Input scoping
	selector  string
	maxTables int // 0 means unlimited

	// Cell post-processing
	trimCells     bool
	unescapeCells bool
	textCells     bool
	markdownCells bool
}

// defaultOptions returns the default extraction options: the lenient
// regex engine, the whole document, and verbatim cell values.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		hardened:      false,
		selector:      "",
		maxTables:     0,
		trimCells:     false,
		unescapeCells: false,
		textCells:     false,
		markdownCells: false,
	}
}

// clone creates a copy of ExtractOptions. All fields are value types, so a
// shallow copy suffices; the method exists to keep the clone discipline
// explicit at every chain step.
func (o ExtractOptions) clone() ExtractOptions {
	return o
}
