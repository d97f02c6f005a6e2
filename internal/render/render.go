// Package render converts raw cell HTML into presentation forms.
package render

import (
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"golang.org/x/net/html"
)

var converter = md.NewConverter("", true, nil)

// Markdown converts a cell's inner HTML to markdown. Conversion is
// best-effort: input the converter rejects comes back unchanged, keeping
// the extractor's no-failure contract.
func Markdown(cellHTML string) string {
	out, err := converter.ConvertString(cellHTML)
	if err != nil {
		return cellHTML
	}
	return out
}

// Text flattens a cell's inner HTML to plain text: tags are dropped,
// entities decoded, and whitespace collapsed.
func Text(cellHTML string) string {
	var sb strings.Builder
	tz := html.NewTokenizer(strings.NewReader(cellHTML))
	for {
		switch tz.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(sb.String()), " ")
		case html.TextToken:
			sb.Write(tz.Text())
		}
	}
}
