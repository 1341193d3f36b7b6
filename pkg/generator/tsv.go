package generator

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/dshills/pictopt/pkg/model"
)

var stdoutBOM = []byte{0xEF, 0xBB, 0xBF}

// parseTSV reads the generator's stdout (tab-separated: a header row of
// safe_names followed by value rows) and returns rows in genModel's declared
// (generator-facing) order. A leading BOM and CRLF line endings are
// tolerated. Header columns are matched to genModel parameters by name, so
// the generator's own column order need not match genModel's.
func parseTSV(stdout []byte, genModel *model.Model) ([][]string, error) {
	stdout = bytes.TrimPrefix(stdout, stdoutBOM)

	scanner := bufio.NewScanner(bytes.NewReader(stdout))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	if !scanner.Scan() {
		return nil, fmt.Errorf("empty stdout")
	}
	header := strings.Split(strings.TrimRight(scanner.Text(), "\r"), "\t")

	// colToParam[c] = declared-order index of the parameter for stdout column c.
	colToParam := make([]int, len(header))
	seenParam := make([]bool, genModel.Len())
	for c, name := range header {
		_, idx, ok := genModel.BySafeName(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown column %q in generator output", name)
		}
		colToParam[c] = idx
		seenParam[idx] = true
	}
	for i, seen := range seenParam {
		if !seen {
			return nil, fmt.Errorf("generator output missing column for parameter %q", genModel.Parameters[i].DisplayName)
		}
	}

	var rows [][]string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != len(header) {
			return nil, fmt.Errorf("row has %d columns, header has %d", len(fields), len(header))
		}

		row := make([]string, genModel.Len())
		for c, v := range fields {
			row[colToParam[c]] = strings.TrimSpace(v)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning generator output: %w", err)
	}

	return rows, nil
}
