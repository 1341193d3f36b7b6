package output

import (
	"encoding/csv"
	"io"

	"github.com/dshills/pictopt/pkg/model"
)

// DelimitedFormatter renders a suite as RFC-4180 CSV: comma-separated, with
// fields quoted only when they contain the delimiter, a quote character, or
// a line break, and internal quotes doubled (spec.md §4.5, "Delimited").
// encoding/csv implements exactly this quoting rule.
type DelimitedFormatter struct{}

func (DelimitedFormatter) Name() string { return "delim" }

func (DelimitedFormatter) Format(w io.Writer, m *model.Model, meta Metadata, rows [][]string) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = false

	headers := make([]string, m.Len())
	for i, p := range m.Parameters {
		headers[i] = p.DisplayName
	}
	if err := cw.Write(headers); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
