package output

import (
	"fmt"
	"io"
	"sync"

	"github.com/dshills/pictopt/pkg/model"
)

// Formatter renders one suite to w in its own deterministic form. rows are
// in the model's declared column order.
type Formatter interface {
	// Format writes the rendering to w.
	Format(w io.Writer, m *model.Model, meta Metadata, rows [][]string) error

	// Name returns the formatter's identifier for registration.
	Name() string
}

var (
	formattersMu sync.RWMutex
	formatters   = make(map[string]Formatter)
)

// Register adds a formatter to the global registry. Panics if name is
// already registered.
func Register(name string, f Formatter) {
	formattersMu.Lock()
	defer formattersMu.Unlock()

	if _, exists := formatters[name]; exists {
		panic(fmt.Sprintf("formatter %q already registered", name))
	}
	formatters[name] = f
}

// Get retrieves a registered formatter by name. Returns nil if not found.
func Get(name string) Formatter {
	formattersMu.RLock()
	defer formattersMu.RUnlock()

	return formatters[name]
}

// List returns all registered formatter names.
func List() []string {
	formattersMu.RLock()
	defer formattersMu.RUnlock()

	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	return names
}

func init() {
	Register("table", TableFormatter{})
	Register("delim", DelimitedFormatter{})
	Register("struct", StructuredFormatter{})
}
