package wavelet

import "gorain/internal/errors"

// Decompose2D builds the halved-approximation pyramid: each level applies
// one 2D decomposition and keeps approximation/2, so with the Haar bank the
// scales are successive 2x2 block means. levels <= 0 decomposes down to the
// deepest level the grid allows.
func Decompose2D(data [][]float64, w Wavelet, levels int) ([][][]float64, error) {
	rows, cols, err := gridDims(data)
	if err != nil {
		return nil, err
	}
	max := MaxLevel(rows, cols)
	if levels <= 0 {
		levels = max
	}
	if levels > max {
		return nil, errors.Newf(errors.CodeInvalidInput,
			"%d levels exceed the maximum %d for a %dx%d grid", levels, max, rows, cols)
	}

	pyramid := make([][][]float64, 0, levels)
	cur := data
	for level := 0; level < levels; level++ {
		cA, _ := dwt2(padEven(cur), w)
		for i := range cA {
			for j := range cA[i] {
				cA[i][j] /= 2
			}
		}
		pyramid = append(pyramid, cA)
		cur = cA
	}
	return pyramid, nil
}
