package output

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/dshills/pictopt/pkg/model"
)

// SVGOptions configures the debug pair-coverage visualization (SPEC_FULL
// §4.5, Debug Visualizer). It is never required for the primary output
// contract; it only ever renders to the explicit --debug-svg path.
type SVGOptions struct {
	CellSize int // pixels per matrix cell, default 16
	Margin   int // canvas margin, default 40
	Gap      int // pixels between adjacent pair panels, default 24
}

// DefaultSVGOptions returns sensible defaults.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{CellSize: 16, Margin: 40, Gap: 24}
}

// WritePairCoverageSVG renders one panel per unordered parameter pair: a
// grid of value_i x value_j cells, shaded green when some row of rows
// covers that combination and red otherwise. It is a diagnostic aid for a
// human eyeballing which combinations a failing suite is missing.
func WritePairCoverageSVG(w io.Writer, m *model.Model, rows [][]string, opts SVGOptions) error {
	if opts.CellSize <= 0 {
		opts.CellSize = 16
	}
	if opts.Margin <= 0 {
		opts.Margin = 40
	}
	if opts.Gap <= 0 {
		opts.Gap = 24
	}

	type pairKey struct{ i, j int }
	covered := make(map[pairKey]map[[2]string]bool)

	n := m.Len()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			covered[pairKey{i, j}] = make(map[[2]string]bool)
		}
	}
	for _, row := range rows {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				covered[pairKey{i, j}][[2]string{row[i], row[j]}] = true
			}
		}
	}

	panelWidths := make([]int, 0, len(covered))
	totalWidth := 0
	maxHeight := 0
	order := make([]pairKey, 0, len(covered))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			order = append(order, pairKey{i, j})
			pw := m.Parameters[j].Cardinality() * opts.CellSize
			ph := m.Parameters[i].Cardinality() * opts.CellSize
			panelWidths = append(panelWidths, pw)
			totalWidth += pw + opts.Gap
			if ph > maxHeight {
				maxHeight = ph
			}
		}
	}

	width := totalWidth + 2*opts.Margin
	height := maxHeight + 2*opts.Margin
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	canvas := svg.New(w)
	canvas.Start(width, height)
	defer canvas.End()

	x := opts.Margin
	for idx, key := range order {
		pi := m.Parameters[key.i]
		pj := m.Parameters[key.j]
		pairCovered := covered[key]

		for vi, vI := range pi.Values {
			for vj, vJ := range pj.Values {
				cellX := x + vj*opts.CellSize
				cellY := opts.Margin + vi*opts.CellSize
				color := "#d9534f"
				if pairCovered[[2]string{vI, vJ}] {
					color = "#5cb85c"
				}
				canvas.Rect(cellX, cellY, opts.CellSize, opts.CellSize, "fill:"+color+";stroke:#333;stroke-width:0.5")
			}
		}
		canvas.Text(x, opts.Margin-8, pi.DisplayName+" x "+pj.DisplayName, "font-size:10px")
		x += panelWidths[idx] + opts.Gap
	}

	return nil
}
