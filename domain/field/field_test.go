package field

import (
	"testing"

	"gorain/domain/core"
)

func TestNewFieldValidation(t *testing.T) {
	valid := [][]float64{{0, 1}, {2, 3}}

	f, err := NewField(valid, 1.0)
	if err != nil {
		t.Fatalf("Expected valid field, got error: %v", err)
	}
	if f.Rows() != 2 || f.Cols() != 2 {
		t.Errorf("Expected 2x2 field, got %dx%d", f.Rows(), f.Cols())
	}
	if f.NoData != DefaultNoData {
		t.Errorf("Expected default no-data marker %v, got %v", DefaultNoData, f.NoData)
	}

	if _, err := NewField([][]float64{}, 1.0); err == nil {
		t.Error("Expected error for empty grid")
	}
	if _, err := NewField([][]float64{{1, 2}, {3}}, 1.0); err == nil {
		t.Error("Expected error for ragged grid")
	}
	if _, err := NewField(valid, 0); err == nil {
		t.Error("Expected error for non-positive resolution")
	}
}

func TestValidateGridRagged(t *testing.T) {
	err := ValidateGrid([][]float64{{1, 2, 3}, {4, 5}})
	if err == nil {
		t.Fatal("Expected error for ragged grid")
	}
	if !core.IsFieldError(err) {
		t.Errorf("Expected a field error, got %v", err)
	}
}

func TestCloneIndependence(t *testing.T) {
	f, err := NewField([][]float64{{1, 2}, {3, 4}}, 1.0)
	if err != nil {
		t.Fatalf("NewField failed: %v", err)
	}

	clone := f.Clone()
	clone.Data[0][0] = 99

	if f.Data[0][0] != 1 {
		t.Errorf("Expected original untouched after clone mutation, got %v", f.Data[0][0])
	}
	if clone.ResolutionKM != f.ResolutionKM {
		t.Errorf("Expected clone to keep resolution %v, got %v", f.ResolutionKM, clone.ResolutionKM)
	}
}

func TestFieldHashChangesWithData(t *testing.T) {
	f, _ := NewField([][]float64{{1, 2}, {3, 4}}, 1.0)
	h1 := f.Hash()

	f.Data[1][1] = 5
	h2 := f.Hash()

	if h1 == h2 {
		t.Error("Expected hash to change when field values change")
	}
}

func TestFieldWARMethod(t *testing.T) {
	f, _ := NewField([][]float64{
		{0.5, 0.0},
		{0.0, 0.0},
	}, 1.0)

	war := f.WAR(0.1)
	if war != 25 {
		t.Errorf("Expected WAR 25, got %v", war)
	}
}
