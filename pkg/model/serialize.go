package model

import (
	"fmt"
	"io"
	"strings"
)

// Serialize writes the textual form of m back out, using SafeName on the left
// and the original (stripped) value labels on the right, comma+space
// separated. parse.Parse(model.Serialize(m)) reproduces a model with the same
// parameter count, per-parameter value multisets, and declared order (the
// round-trip is modulo the display-name↔safe-name mapping: Serialize emits
// SafeName, so a subsequent Parse sees SafeName as the new display name).
func (m *Model) Serialize(w io.Writer) error {
	for _, p := range m.Parameters {
		line := fmt.Sprintf("%s : %s\n", p.SafeName, strings.Join(p.Values, ", "))
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("model: writing parameter %q: %w", p.SafeName, err)
		}
	}
	return nil
}

// String renders the textual form to a string.
func (m *Model) String() string {
	var b strings.Builder
	_ = m.Serialize(&b)
	return b.String()
}
