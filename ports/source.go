package ports

import (
	"context"

	"gorain/domain/core"
	"gorain/domain/field"
)

// FieldRecord pairs a composite with its acquisition time
type FieldRecord struct {
	Field      *field.Field
	ObservedAt core.ObservedAt
}

// FieldSource provides indexed access to a sequence of composites so sweep
// workers can fetch fields independently of each other
type FieldSource interface {
	Count() int
	At(ctx context.Context, index int) (*FieldRecord, error)
}
