// Command htmltab extracts HTML tables from a file or stdin and writes
// them as CSV, TSV, JSON, or markdown.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/htmltab"
	"github.com/tsawler/htmltab/guard"
	"github.com/tsawler/htmltab/internal/config"
	"github.com/tsawler/htmltab/model"
)

var (
	flagFormat   string
	flagSelector string
	flagOutput   string
	flagConfig   string
	flagTable    int
	flagHardened bool
	flagTrim     bool
	flagUnescape bool
)

var rootCmd = &cobra.Command{
	Use:   "htmltab [file]",
	Short: "Extract HTML tables into tabular output",
	Long: `htmltab locates every <table> element in an HTML document and converts
it to named-column tabular data. Input comes from a file argument, or from
stdin when the argument is omitted or "-".`,
	Example: `  htmltab report.html
  curl -s https://example.com | htmltab --format json
  htmltab page.html --selector "#results" --table 2 --format markdown`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&flagFormat, "format", "f", "", "output format: csv, tsv, json, or markdown")
	flags.StringVarP(&flagSelector, "selector", "s", "", "CSS selector scoping which part of the document to extract from")
	flags.StringVarP(&flagOutput, "output", "o", "", "write output to a file instead of stdout")
	flags.StringVarP(&flagConfig, "config", "c", "", "YAML file supplying flag defaults")
	flags.IntVarP(&flagTable, "table", "t", 0, "extract only the Nth table (1-indexed)")
	flags.BoolVar(&flagHardened, "hardened", false, "use the DOM-based engine instead of the lenient pattern engine")
	flags.BoolVar(&flagTrim, "trim", false, "trim whitespace around cell values")
	flags.BoolVar(&flagUnescape, "unescape", false, "decode HTML entities in cell values")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// Command-line flags win over config file values.
	if !cmd.Flags().Changed("format") {
		flagFormat = cfg.Format
	}
	if !cmd.Flags().Changed("selector") {
		flagSelector = cfg.Selector
	}
	if !cmd.Flags().Changed("hardened") {
		flagHardened = cfg.Hardened
	}
	if !cmd.Flags().Changed("trim") {
		flagTrim = cfg.Trim
	}
	if !cmd.Flags().Changed("unescape") {
		flagUnescape = cfg.Unescape
	}

	outputFormat, err := guard.OneOf(flagFormat, config.Formats, "format")
	if err != nil {
		return err
	}

	ext := buildExtractor(args)
	if flagSelector != "" {
		ext = ext.Within(flagSelector)
	}
	if flagHardened {
		ext = ext.Hardened()
	}
	if flagTrim {
		ext = ext.TrimCells()
	}
	if flagUnescape {
		ext = ext.UnescapeEntities()
	}

	ds, warnings, err := ext.Tables()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}

	tables := ds.Tables
	if flagTable > 0 {
		n, err := guard.InRange(flagTable, 1, ds.Len(), "table")
		if err != nil {
			return err
		}
		tables = tables[n-1 : n]
	}

	out, err := renderTables(tables, outputFormat)
	if err != nil {
		return err
	}

	if flagOutput != "" {
		return os.WriteFile(flagOutput, []byte(out), 0o644)
	}
	fmt.Print(out)
	return nil
}

// buildExtractor chooses between file and stdin input.
func buildExtractor(args []string) *htmltab.Extractor {
	if len(args) == 0 || args[0] == "-" {
		return htmltab.FromReader(os.Stdin)
	}
	return htmltab.Open(args[0])
}

// renderTables formats the selected tables, separated by blank lines for
// the line-oriented formats.
func renderTables(tables []*model.Table, outputFormat string) (string, error) {
	switch outputFormat {
	case "json":
		type tableJSON struct {
			Columns []string            `json:"columns"`
			Records []map[string]string `json:"records"`
		}
		out := make([]tableJSON, 0, len(tables))
		for _, t := range tables {
			out = append(out, tableJSON{Columns: t.ColumnNames(), Records: t.Records()})
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding JSON: %w", err)
		}
		return string(data) + "\n", nil

	case "csv":
		return joinRendered(tables, (*model.Table).ToCSV), nil
	case "tsv":
		return joinRendered(tables, (*model.Table).ToTSV), nil
	case "markdown":
		return joinRendered(tables, (*model.Table).ToMarkdown), nil
	}
	// Unreachable: outputFormat is guard-validated against config.Formats.
	return "", fmt.Errorf("unsupported format: %s", outputFormat)
}

func joinRendered(tables []*model.Table, render func(*model.Table) string) string {
	out := ""
	for i, t := range tables {
		if i > 0 {
			out += "\n"
		}
		out += render(t)
	}
	return out
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
