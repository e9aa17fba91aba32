package spectral

import (
	"math"
	"testing"

	"gorain/internal/errors"
)

func almostEqual(a, b, tol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return math.Abs(a-b) <= tol
}

func TestHanningKnownValues(t *testing.T) {
	got := Hanning(5)
	want := []float64{0, 0.5, 1, 0.5, 0}
	if len(got) != len(want) {
		t.Fatalf("Hanning(5) length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !almostEqual(got[i], want[i], 1e-12) {
			t.Errorf("Hanning(5)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBlackmanKnownValues(t *testing.T) {
	got := Blackman(5)
	want := []float64{0, 0.34, 1, 0.34, 0}
	for i := range want {
		if !almostEqual(got[i], want[i], 1e-12) {
			t.Errorf("Blackman(5)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWindowsAreSymmetric(t *testing.T) {
	for _, n := range []int{4, 7, 16} {
		for name, w := range map[string][]float64{"hanning": Hanning(n), "blackman": Blackman(n)} {
			for k := 0; k < n/2; k++ {
				if !almostEqual(w[k], w[n-1-k], 1e-12) {
					t.Errorf("%s(%d): w[%d]=%v != w[%d]=%v", name, n, k, w[k], n-1-k, w[n-1-k])
				}
			}
		}
	}
}

func TestWindowSinglePoint(t *testing.T) {
	if got := Hanning(1); len(got) != 1 || got[0] != 1 {
		t.Errorf("Hanning(1) = %v, want [1]", got)
	}
	if got := Blackman(1); len(got) != 1 || got[0] != 1 {
		t.Errorf("Blackman(1) = %v, want [1]", got)
	}
}

func TestWindow2DOuterProduct(t *testing.T) {
	w, err := Window2D(3, 5, WindowHanning)
	if err != nil {
		t.Fatalf("Window2D returned error: %v", err)
	}

	h5 := Hanning(5)
	// Hanning(3) = [0, 1, 0]: edge rows vanish, middle row is the column window
	for j := 0; j < 5; j++ {
		if !almostEqual(w[0][j], 0, 1e-12) || !almostEqual(w[2][j], 0, 1e-12) {
			t.Errorf("edge rows should vanish, got %v and %v at col %d", w[0][j], w[2][j], j)
		}
		if !almostEqual(w[1][j], h5[j], 1e-12) {
			t.Errorf("w[1][%d] = %v, want %v", j, w[1][j], h5[j])
		}
	}
}

func TestWindow2DNone(t *testing.T) {
	for _, kind := range []string{"", WindowNone} {
		w, err := Window2D(2, 3, kind)
		if err != nil {
			t.Fatalf("Window2D(%q) returned error: %v", kind, err)
		}
		for i := range w {
			for j := range w[i] {
				if w[i][j] != 1 {
					t.Errorf("Window2D(%q)[%d][%d] = %v, want 1", kind, i, j, w[i][j])
				}
			}
		}
	}
}

func TestWindow2DUnknownKind(t *testing.T) {
	_, err := Window2D(4, 4, "kaiser")
	if errors.GetCode(err) != errors.CodeConfigInvalid {
		t.Errorf("Expected CONFIG_INVALID for unknown window, got %v", err)
	}
}
