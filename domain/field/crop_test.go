package field

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractMiddleDomain(t *testing.T) {
	data := make([][]float64, 6)
	for y := range data {
		data[y] = make([]float64, 6)
		for x := range data[y] {
			data[y][x] = float64(10*y + x)
		}
	}

	got, err := ExtractMiddleDomain(data, 2, 2)
	if err != nil {
		t.Fatalf("ExtractMiddleDomain failed: %v", err)
	}

	want := [][]float64{
		{22, 23},
		{32, 33},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Middle domain mismatch (-want +got):\n%s", diff)
	}

	// Cropped data is backed by fresh slices
	got[0][0] = -1
	if data[2][2] != 22 {
		t.Error("Expected source grid to be untouched by crop mutation")
	}
}

func TestExtractMiddleDomainOddBorder(t *testing.T) {
	data := [][]float64{
		{0, 1, 2, 3, 4},
		{10, 11, 12, 13, 14},
		{20, 21, 22, 23, 24},
	}

	got, err := ExtractMiddleDomain(data, 2, 1)
	if err != nil {
		t.Fatalf("ExtractMiddleDomain failed: %v", err)
	}

	want := [][]float64{{11, 12}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Middle domain mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractMiddleDomainTooLarge(t *testing.T) {
	data := [][]float64{{1, 2}, {3, 4}}

	if _, err := ExtractMiddleDomain(data, 3, 2); err == nil {
		t.Error("Expected error when domain exceeds field extent")
	}
	if _, err := ExtractMiddleDomain(data, 0, 2); err == nil {
		t.Error("Expected error for non-positive domain size")
	}
}

func TestReducedExtent(t *testing.T) {
	extent := ReducedExtent(6, 6, 2, 2)

	want := Extent{Left: 2, Upper: 2, Right: 4, Lower: 4}
	if extent != want {
		t.Errorf("Expected extent %+v, got %+v", want, extent)
	}
}

func TestSparseGrid(t *testing.T) {
	xSub, ySub := SparseGrid(2, 4, 4)

	wantX := []int{0, 2, 0, 2}
	wantY := []int{0, 0, 2, 2}
	if diff := cmp.Diff(wantX, xSub); diff != "" {
		t.Errorf("xSub mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantY, ySub); diff != "" {
		t.Errorf("ySub mismatch (-want +got):\n%s", diff)
	}

	if x, y := SparseGrid(0, 4, 4); x != nil || y != nil {
		t.Error("Expected nil grids for non-positive spacing")
	}
}
