// Package source provides field sequence adapters for sweep runs.
package source

import (
	"context"

	"gorain/domain/core"
	"gorain/domain/field"
	"gorain/internal/errors"
	"gorain/ports"
)

// MemorySource serves an in-memory sequence of composites
type MemorySource struct {
	records []ports.FieldRecord
}

// NewMemorySource wraps already-loaded fields; observation times advance by
// step from start
func NewMemorySource(fields []*field.Field, start core.ObservedAt, step core.TimeStep) *MemorySource {
	records := make([]ports.FieldRecord, len(fields))
	for i, f := range fields {
		records[i] = ports.FieldRecord{Field: f, ObservedAt: start.Advance(step, i)}
	}
	return &MemorySource{records: records}
}

// Count returns the number of composites in the sequence
func (s *MemorySource) Count() int {
	return len(s.records)
}

// At returns the record at index
func (s *MemorySource) At(ctx context.Context, index int) (*ports.FieldRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if index < 0 || index >= len(s.records) {
		return nil, errors.Newf(errors.CodeInvalidInput, "field index %d out of range [0,%d)", index, len(s.records))
	}
	record := s.records[index]
	return &record, nil
}
