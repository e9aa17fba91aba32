// Package rng provides the deterministic random stream adapter used by
// noise generation and sweep services.
package rng

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"gorain/domain/core"
)

// DeterministicAdapter implements the RNGPort interface with named,
// reproducible streams
type DeterministicAdapter struct{}

// NewDeterministic creates the deterministic stream adapter
func NewDeterministic() *DeterministicAdapter {
	return &DeterministicAdapter{}
}

// SeededStream creates a deterministic random number generator for a named operation
func (r *DeterministicAdapter) SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error) {
	if name != "" {
		seed += int64(hashString(name))
	}
	return rand.New(rand.NewSource(seed)), nil
}

// Stream creates a deterministic RNG stream for a specific run/stage/member
func (r *DeterministicAdapter) Stream(ctx context.Context, runID, stageName, memberKey string, baseSeed int64) (*rand.Rand, error) {
	// Create deterministic seed by hashing runID + stageName + memberKey + baseSeed
	// This ensures identical results when the same run/stage/member is replayed
	seed := baseSeed
	if runID != "" {
		seed = int64(hashString(runID)) + seed
	}
	if stageName != "" {
		seed = int64(hashString(stageName)) + seed
	}
	if memberKey != "" {
		seed = int64(hashString(memberKey)) + seed
	}
	return rand.New(rand.NewSource(seed)), nil
}

// ValidateSeed ensures the seed produces expected deterministic results
func (r *DeterministicAdapter) ValidateSeed(ctx context.Context, name string, seed int64, expected []float64) error {
	stream, err := r.SeededStream(ctx, name, seed)
	if err != nil {
		return err
	}
	for i, want := range expected {
		got := stream.Float64()
		if math.Abs(got-want) > 1e-12 {
			return fmt.Errorf("%w: draw %d produced %v, expected %v", core.ErrSeedMismatch, i, got, want)
		}
	}
	return nil
}

// hashString creates a simple hash for deterministic seeding
func hashString(s string) uint32 {
	var hash uint32 = 5381
	for _, c := range s {
		hash = ((hash << 5) + hash) + uint32(c) // djb2 algorithm
	}
	return hash
}
