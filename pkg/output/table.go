package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/pictopt/pkg/model"
)

// TableFormatter renders a suite as padded, column-aligned text with a
// dash-underlined header row (spec.md §4.5, "Tabular").
type TableFormatter struct{}

func (TableFormatter) Name() string { return "table" }

func (TableFormatter) Format(w io.Writer, m *model.Model, meta Metadata, rows [][]string) error {
	headers := make([]string, m.Len())
	for i, p := range m.Parameters {
		headers[i] = p.DisplayName
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len([]rune(h))
	}
	for _, row := range rows {
		for i, cell := range row {
			if n := len([]rune(cell)); n > widths[i] {
				widths[i] = n
			}
		}
	}

	writeRow := func(cells []string) {
		padded := make([]string, len(cells))
		for i, c := range cells {
			padded[i] = padRight(c, widths[i])
		}
		fmt.Fprintln(w, strings.Join(padded, "  "))
	}

	writeRow(headers)

	dashes := make([]string, len(headers))
	for i, width := range widths {
		dashes[i] = strings.Repeat("-", width)
	}
	writeRow(dashes)

	for _, row := range rows {
		writeRow(row)
	}

	fmt.Fprintf(w, "\n%d test case(s)", meta.N)
	if meta.LB != nil {
		fmt.Fprintf(w, ", lower bound %d", *meta.LB)
	}
	fmt.Fprintf(w, ", verified=%t\n", meta.Verified)

	return nil
}

func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
