package model

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// bom is the UTF-8 byte order mark, tolerated at the start of a model source.
var bom = []byte{0xEF, 0xBB, 0xBF}

// ParseError identifies the source line on which parsing failed.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("model: line %d: %s", e.Line, e.Message)
}

// Parse reads the line-oriented textual model form from r and returns a
// validated Model. Decoding failures (invalid UTF-8) are reported as a
// *ParseError, never as a raw decoder fault. CRLF line endings and a leading
// BOM are tolerated.
func Parse(r io.Reader) (*Model, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("model: reading source: %w", err)
	}

	data = bytes.TrimPrefix(data, bom)
	if !utf8.Valid(data) {
		return nil, &ParseError{Line: 0, Message: "source is not valid UTF-8"}
	}

	var raw []RawParameter
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		sep := strings.Index(trimmed, ":")
		if sep < 0 {
			return nil, &ParseError{Line: lineNo, Message: "missing ':' separator"}
		}

		name := strings.TrimSpace(trimmed[:sep])
		if name == "" {
			return nil, &ParseError{Line: lineNo, Message: "parameter name must not be empty"}
		}

		rest := trimmed[sep+1:]
		fields := strings.Split(rest, ",")
		values := make([]string, 0, len(fields))
		for _, f := range fields {
			v := strings.TrimSpace(f)
			if v == "" {
				return nil, &ParseError{Line: lineNo, Message: fmt.Sprintf("empty value for parameter %q", name)}
			}
			values = append(values, v)
		}
		if len(values) == 0 {
			return nil, &ParseError{Line: lineNo, Message: fmt.Sprintf("parameter %q declares zero values", name)}
		}

		raw = append(raw, RawParameter{DisplayName: name, Values: values})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("model: scanning source: %w", err)
	}

	m, err := BuildModel(raw)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ParseString is a convenience wrapper around Parse for in-memory sources.
func ParseString(s string) (*Model, error) {
	return Parse(strings.NewReader(s))
}
