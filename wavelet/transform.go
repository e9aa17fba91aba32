package wavelet

import (
	"math"

	"gorain/internal/errors"
)

// DetailBand groups the horizontal, vertical and diagonal detail planes of
// one decomposition level. H carries detail along the row index, V along the
// column index.
type DetailBand struct {
	H [][]float64
	V [][]float64
	D [][]float64
}

// Decomposition is a multi-level 2D wavelet transform in the usual wavedec2
// layout: the approximation at the deepest level, then detail bands from
// coarsest to finest. Produced by Wavedec2; Waverec2 inverts it.
type Decomposition struct {
	Wavelet Wavelet
	Levels  int
	Approx  [][]float64
	Details []DetailBand
	sizes   [][2]int
}

// MaxLevel is the deepest usable decomposition level for a grid.
func MaxLevel(rows, cols int) int {
	minDim := rows
	if cols < minDim {
		minDim = cols
	}
	if minDim < 2 {
		return 0
	}
	return int(math.Log2(float64(minDim)))
}

// Wavedec2 decomposes a grid over the given number of levels. Odd lengths
// are padded by edge replication before each level; the pre-pad sizes are
// recorded so reconstruction crops back exactly.
func Wavedec2(data [][]float64, w Wavelet, levels int) (*Decomposition, error) {
	rows, cols, err := gridDims(data)
	if err != nil {
		return nil, err
	}
	if levels < 1 {
		return nil, errors.Newf(errors.CodeInvalidInput,
			"decomposition needs at least one level, got %d", levels)
	}
	if max := MaxLevel(rows, cols); levels > max {
		return nil, errors.Newf(errors.CodeInvalidInput,
			"%d levels exceed the maximum %d for a %dx%d grid", levels, max, rows, cols)
	}

	bands := make([]DetailBand, levels)
	sizes := make([][2]int, levels)
	cur := data
	for level := 0; level < levels; level++ {
		// Reversed indexing keeps the coarsest band first in the layout.
		slot := levels - 1 - level
		sizes[slot] = [2]int{len(cur), len(cur[0])}
		cA, band := dwt2(padEven(cur), w)
		bands[slot] = band
		cur = cA
	}

	return &Decomposition{
		Wavelet: w,
		Levels:  levels,
		Approx:  cur,
		Details: bands,
		sizes:   sizes,
	}, nil
}

// Waverec2 reconstructs the grid a Decomposition was built from, exact to
// float64 round-off.
func Waverec2(dec *Decomposition) ([][]float64, error) {
	if dec == nil || len(dec.Details) == 0 {
		return nil, errors.EmptyDomain("decomposition")
	}
	cur := dec.Approx
	for i, band := range dec.Details {
		if len(band.H) != len(cur) || len(band.H) == 0 || len(band.H[0]) != len(cur[0]) {
			return nil, errors.Newf(errors.CodeInvalidInput,
				"detail band %d does not match the %dx%d approximation", i, len(cur), len(cur[0]))
		}
		full := idwt2(cur, band, dec.Wavelet)
		target := [2]int{len(full), len(full[0])}
		if i < len(dec.sizes) {
			target = dec.sizes[i]
		}
		cur = cropGrid(full, target[0], target[1])
	}
	return cur, nil
}

// dwt2 performs one separable decomposition level on an even-dimensioned
// grid: rows first, then columns of each half.
func dwt2(data [][]float64, w Wavelet) ([][]float64, DetailBand) {
	rows := len(data)
	halfC := len(data[0]) / 2

	rowLo := make([][]float64, rows)
	rowHi := make([][]float64, rows)
	for i, row := range data {
		rowLo[i], rowHi[i] = w.analyze(row)
	}

	halfR := rows / 2
	cA := allocGrid(halfR, halfC)
	band := DetailBand{
		H: allocGrid(halfR, halfC),
		V: allocGrid(halfR, halfC),
		D: allocGrid(halfR, halfC),
	}

	col := make([]float64, rows)
	for j := 0; j < halfC; j++ {
		for i := 0; i < rows; i++ {
			col[i] = rowLo[i][j]
		}
		lo, hi := w.analyze(col)
		for k := 0; k < halfR; k++ {
			cA[k][j] = lo[k]
			band.H[k][j] = hi[k]
		}

		for i := 0; i < rows; i++ {
			col[i] = rowHi[i][j]
		}
		lo, hi = w.analyze(col)
		for k := 0; k < halfR; k++ {
			band.V[k][j] = lo[k]
			band.D[k][j] = hi[k]
		}
	}
	return cA, band
}

// idwt2 inverts one decomposition level, returning the even-dimensioned grid.
func idwt2(cA [][]float64, band DetailBand, w Wavelet) [][]float64 {
	halfR := len(cA)
	halfC := len(cA[0])
	rows := 2 * halfR

	rowLo := allocGrid(rows, halfC)
	rowHi := allocGrid(rows, halfC)
	colLo := make([]float64, halfR)
	colHi := make([]float64, halfR)
	for j := 0; j < halfC; j++ {
		for k := 0; k < halfR; k++ {
			colLo[k] = cA[k][j]
			colHi[k] = band.H[k][j]
		}
		full := w.synthesize(colLo, colHi)
		for i := 0; i < rows; i++ {
			rowLo[i][j] = full[i]
		}

		for k := 0; k < halfR; k++ {
			colLo[k] = band.V[k][j]
			colHi[k] = band.D[k][j]
		}
		full = w.synthesize(colLo, colHi)
		for i := 0; i < rows; i++ {
			rowHi[i][j] = full[i]
		}
	}

	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = w.synthesize(rowLo[i], rowHi[i])
	}
	return out
}

// clone deep-copies the decomposition so one member's perturbation cannot
// leak into another's.
func (d *Decomposition) clone() *Decomposition {
	out := &Decomposition{
		Wavelet: d.Wavelet,
		Levels:  d.Levels,
		Approx:  copyGrid(d.Approx),
		Details: make([]DetailBand, len(d.Details)),
		sizes:   append([][2]int(nil), d.sizes...),
	}
	for i, band := range d.Details {
		out.Details[i] = DetailBand{
			H: copyGrid(band.H),
			V: copyGrid(band.V),
			D: copyGrid(band.D),
		}
	}
	return out
}

// padEven extends odd dimensions by replicating the last row or column.
func padEven(data [][]float64) [][]float64 {
	rows := len(data)
	cols := len(data[0])
	if rows%2 == 0 && cols%2 == 0 {
		return data
	}
	outR := rows + rows%2
	outC := cols + cols%2
	out := make([][]float64, outR)
	for i := 0; i < outR; i++ {
		src := data[min(i, rows-1)]
		row := make([]float64, outC)
		copy(row, src)
		if outC > cols {
			row[cols] = src[cols-1]
		}
		out[i] = row
	}
	return out
}

func cropGrid(data [][]float64, rows, cols int) [][]float64 {
	out := data[:rows]
	for i := range out {
		out[i] = out[i][:cols]
	}
	return out
}

func allocGrid(rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
	}
	return out
}

func copyGrid(data [][]float64) [][]float64 {
	out := make([][]float64, len(data))
	for i, row := range data {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

func gridDims(data [][]float64) (rows, cols int, err error) {
	rows = len(data)
	if rows == 0 || len(data[0]) == 0 {
		return 0, 0, errors.EmptyDomain("input grid")
	}
	cols = len(data[0])
	for i, row := range data {
		if len(row) != cols {
			return 0, 0, errors.Newf(errors.CodeInvalidField,
				"row %d has %d columns, expected %d", i, len(row), cols)
		}
	}
	return rows, cols, nil
}
