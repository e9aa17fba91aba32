// Package field holds radar precipitation composites and their elementwise
// transforms: Z-R conversions, decibel scaling, domain cropping and wet-area
// statistics.
package field

import (
	"gorain/domain/core"
)

// DefaultNoData marks pixels outside the radar composite.
const DefaultNoData = -999.0

// Field is a single radar precipitation composite on a regular grid.
// Data is row-major with Data[y][x] in mm/h.
type Field struct {
	Data         [][]float64
	ResolutionKM float64
	NoData       float64
}

// NewField validates the grid and wraps it in a Field
func NewField(data [][]float64, resolutionKM float64) (*Field, error) {
	if err := ValidateGrid(data); err != nil {
		return nil, err
	}
	if resolutionKM <= 0 {
		return nil, core.NewValidationError("field", "resolution must be positive")
	}
	return &Field{Data: data, ResolutionKM: resolutionKM, NoData: DefaultNoData}, nil
}

// ValidateGrid checks that a grid is non-empty and rectangular
func ValidateGrid(data [][]float64) error {
	if len(data) == 0 || len(data[0]) == 0 {
		return core.ErrEmptyField
	}
	cols := len(data[0])
	for _, row := range data[1:] {
		if len(row) != cols {
			return core.NewFieldShapeError(len(data), cols, core.ErrRaggedField)
		}
	}
	return nil
}

// Rows returns the number of grid rows
func (f *Field) Rows() int {
	return len(f.Data)
}

// Cols returns the number of grid columns
func (f *Field) Cols() int {
	if len(f.Data) == 0 {
		return 0
	}
	return len(f.Data[0])
}

// Clone returns a deep copy of the field
func (f *Field) Clone() *Field {
	data := make([][]float64, len(f.Data))
	for i, row := range f.Data {
		data[i] = append([]float64(nil), row...)
	}
	return &Field{Data: data, ResolutionKM: f.ResolutionKM, NoData: f.NoData}
}

// Hash fingerprints the field values for run manifests
func (f *Field) Hash() core.FieldHash {
	return core.ComputeFieldHash(f.Data)
}

// WAR computes the wet area ratio of the field at the given threshold
func (f *Field) WAR(rainThreshold float64) float64 {
	return WAR(f.Data, rainThreshold, f.NoData)
}

// MiddleDomain crops the centered sizeX x sizeY window out of the field
func (f *Field) MiddleDomain(sizeX, sizeY int) (*Field, error) {
	data, err := ExtractMiddleDomain(f.Data, sizeX, sizeY)
	if err != nil {
		return nil, err
	}
	return &Field{Data: data, ResolutionKM: f.ResolutionKM, NoData: f.NoData}, nil
}
