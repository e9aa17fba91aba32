package wavelet

import (
	"math"
	"testing"

	"gorain/internal/errors"
)

// testField fills a deterministic, non-symmetric grid.
func testField(rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
		for j := range out[i] {
			out[i][j] = math.Sin(1.3*float64(i)) + math.Cos(0.7*float64(j)) + 0.01*float64(i*j)
		}
	}
	return out
}

func maxAbsDiff(a, b [][]float64) float64 {
	var worst float64
	for i := range a {
		for j := range a[i] {
			if d := math.Abs(a[i][j] - b[i][j]); d > worst {
				worst = d
			}
		}
	}
	return worst
}

func TestWavedec2HaarSingleLevel(t *testing.T) {
	dec, err := Wavedec2([][]float64{{1, 2}, {3, 4}}, Haar(), 1)
	if err != nil {
		t.Fatalf("Wavedec2 failed: %v", err)
	}
	if !almostEqual(dec.Approx[0][0], 5, 1e-12) {
		t.Errorf("Expected approximation 5, got %v", dec.Approx[0][0])
	}
	band := dec.Details[0]
	if !almostEqual(band.H[0][0], -2, 1e-12) {
		t.Errorf("Expected horizontal detail -2, got %v", band.H[0][0])
	}
	if !almostEqual(band.V[0][0], -1, 1e-12) {
		t.Errorf("Expected vertical detail -1, got %v", band.V[0][0])
	}
	if !almostEqual(band.D[0][0], 0, 1e-12) {
		t.Errorf("Expected diagonal detail 0, got %v", band.D[0][0])
	}
}

func TestWavedec2PreservesEnergy(t *testing.T) {
	data := testField(8, 8)
	var input float64
	for _, row := range data {
		for _, v := range row {
			input += v * v
		}
	}

	dec, err := Wavedec2(data, Daubechies2(), 3)
	if err != nil {
		t.Fatalf("Wavedec2 failed: %v", err)
	}
	var output float64
	for _, row := range dec.Approx {
		for _, v := range row {
			output += v * v
		}
	}
	for _, band := range dec.Details {
		for _, plane := range [][][]float64{band.H, band.V, band.D} {
			for _, row := range plane {
				for _, v := range row {
					output += v * v
				}
			}
		}
	}
	if !almostEqual(input, output, 1e-9) {
		t.Errorf("Energy changed across the transform: %v vs %v", input, output)
	}
}

func TestWaverec2RoundTrip(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		levels     int
		wavelet    Wavelet
	}{
		{"haar 8x8 one level", 8, 8, 1, Haar()},
		{"haar 8x8 full depth", 8, 8, 3, Haar()},
		{"db2 16x16", 16, 16, 4, Daubechies2()},
		{"db4 16x16", 16, 16, 3, Daubechies4()},
		{"db2 odd 7x5", 7, 5, 2, Daubechies2()},
		{"db4 odd 9x12", 9, 12, 3, Daubechies4()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data := testField(tc.rows, tc.cols)
			dec, err := Wavedec2(data, tc.wavelet, tc.levels)
			if err != nil {
				t.Fatalf("Wavedec2 failed: %v", err)
			}
			rec, err := Waverec2(dec)
			if err != nil {
				t.Fatalf("Waverec2 failed: %v", err)
			}
			if len(rec) != tc.rows || len(rec[0]) != tc.cols {
				t.Fatalf("Reconstruction is %dx%d, expected %dx%d", len(rec), len(rec[0]), tc.rows, tc.cols)
			}
			if d := maxAbsDiff(data, rec); d > 1e-9 {
				t.Errorf("Reconstruction differs from input by %v", d)
			}
		})
	}
}

func TestWavedec2Layout(t *testing.T) {
	dec, err := Wavedec2(testField(8, 8), Haar(), 3)
	if err != nil {
		t.Fatalf("Wavedec2 failed: %v", err)
	}
	if dec.Levels != 3 || len(dec.Details) != 3 {
		t.Fatalf("Expected 3 detail bands, got %d", len(dec.Details))
	}
	if len(dec.Approx) != 1 || len(dec.Approx[0]) != 1 {
		t.Errorf("Expected a 1x1 approximation, got %dx%d", len(dec.Approx), len(dec.Approx[0]))
	}
	for i, want := range []int{1, 2, 4} {
		if len(dec.Details[i].H) != want {
			t.Errorf("Band %d is %d rows, expected %d (coarsest first)", i, len(dec.Details[i].H), want)
		}
	}
}

func TestWavedec2Errors(t *testing.T) {
	data := testField(8, 8)

	_, err := Wavedec2(data, Haar(), 0)
	if errors.GetCode(err) != errors.CodeInvalidInput {
		t.Errorf("Expected INVALID_INPUT for zero levels, got %v", err)
	}

	_, err = Wavedec2(data, Haar(), 4)
	if errors.GetCode(err) != errors.CodeInvalidInput {
		t.Errorf("Expected INVALID_INPUT for too many levels, got %v", err)
	}

	_, err = Wavedec2(nil, Haar(), 1)
	if errors.GetCode(err) != errors.CodeEmptyDomain {
		t.Errorf("Expected EMPTY_DOMAIN for nil input, got %v", err)
	}

	_, err = Wavedec2([][]float64{{1, 2}, {3}}, Haar(), 1)
	if errors.GetCode(err) != errors.CodeInvalidField {
		t.Errorf("Expected INVALID_FIELD for a ragged grid, got %v", err)
	}
}

func TestWaverec2Mismatch(t *testing.T) {
	dec, err := Wavedec2(testField(8, 8), Haar(), 2)
	if err != nil {
		t.Fatalf("Wavedec2 failed: %v", err)
	}
	dec.Details[0].H = allocGrid(3, 3)
	_, err = Waverec2(dec)
	if errors.GetCode(err) != errors.CodeInvalidInput {
		t.Errorf("Expected INVALID_INPUT for a mismatched band, got %v", err)
	}

	_, err = Waverec2(nil)
	if errors.GetCode(err) != errors.CodeEmptyDomain {
		t.Errorf("Expected EMPTY_DOMAIN for a nil decomposition, got %v", err)
	}
}

func TestMaxLevel(t *testing.T) {
	cases := []struct {
		rows, cols, want int
	}{
		{8, 8, 3},
		{16, 8, 3},
		{17, 17, 4},
		{2, 2, 1},
		{1, 10, 0},
	}
	for _, tc := range cases {
		if got := MaxLevel(tc.rows, tc.cols); got != tc.want {
			t.Errorf("MaxLevel(%d, %d) = %d, expected %d", tc.rows, tc.cols, got, tc.want)
		}
	}
}
