package wavelet

import (
	"context"
	"math"
	"testing"

	"gorain/adapters/rng"
	"gorain/internal/errors"
)

// rainFixture is a smooth bump with a dry margin, loosely shaped like a
// convective cell.
func rainFixture(size int) [][]float64 {
	out := make([][]float64, size)
	for i := range out {
		out[i] = make([]float64, size)
		for j := range out[i] {
			dx := float64(j - size/2)
			dy := float64(i - size/2)
			out[i][j] = 5 * math.Exp(-(dx*dx+dy*dy)/18)
		}
	}
	return out
}

func TestGenerateNoiseDimensions(t *testing.T) {
	rain := rainFixture(16)
	cfg := NoiseConfig{Wavelet: "haar", Levels: 3, Members: 2, Seed: 42}

	ens, err := GenerateNoise(context.Background(), rain, cfg, rng.NewDeterministic())
	if err != nil {
		t.Fatalf("GenerateNoise failed: %v", err)
	}
	if len(ens.Fields) != 2 {
		t.Fatalf("Expected 2 members, got %d", len(ens.Fields))
	}
	for m, member := range ens.Fields {
		if len(member) != 16 || len(member[0]) != 16 {
			t.Errorf("Member %d is %dx%d, expected 16x16", m, len(member), len(member[0]))
		}
		for i := range member {
			for j := range member[i] {
				if math.IsNaN(member[i][j]) {
					t.Fatalf("Member %d has NaN at (%d,%d)", m, i, j)
				}
			}
		}
	}
}

func TestGenerateNoiseDeterministicPerSeed(t *testing.T) {
	rain := rainFixture(16)
	cfg := NoiseConfig{Wavelet: "db2", Levels: 3, Members: 2, Seed: 7}
	adapter := rng.NewDeterministic()

	first, err := GenerateNoise(context.Background(), rain, cfg, adapter)
	if err != nil {
		t.Fatalf("GenerateNoise failed: %v", err)
	}
	second, err := GenerateNoise(context.Background(), rain, cfg, adapter)
	if err != nil {
		t.Fatalf("GenerateNoise failed: %v", err)
	}
	for m := range first.Fields {
		if d := maxAbsDiff(first.Fields[m], second.Fields[m]); d != 0 {
			t.Errorf("Member %d differs across identical runs by %v", m, d)
		}
	}

	cfg.Seed = 8
	other, err := GenerateNoise(context.Background(), rain, cfg, adapter)
	if err != nil {
		t.Fatalf("GenerateNoise failed: %v", err)
	}
	if maxAbsDiff(first.Fields[0], other.Fields[0]) == 0 {
		t.Error("Different seeds should produce different members")
	}
}

func TestGenerateNoiseMemberStreamsIndependent(t *testing.T) {
	rain := rainFixture(16)
	adapter := rng.NewDeterministic()

	solo, err := GenerateNoise(context.Background(), rain,
		NoiseConfig{Wavelet: "haar", Levels: 3, Members: 1, Seed: 42}, adapter)
	if err != nil {
		t.Fatalf("GenerateNoise failed: %v", err)
	}
	trio, err := GenerateNoise(context.Background(), rain,
		NoiseConfig{Wavelet: "haar", Levels: 3, Members: 3, Seed: 42}, adapter)
	if err != nil {
		t.Fatalf("GenerateNoise failed: %v", err)
	}
	if d := maxAbsDiff(solo.Fields[0], trio.Fields[0]); d != 0 {
		t.Errorf("Member 0 should not depend on the ensemble size, differs by %v", d)
	}
}

func TestGenerateNoisePerturbsField(t *testing.T) {
	rain := rainFixture(16)
	ens, err := GenerateNoise(context.Background(), rain,
		NoiseConfig{Levels: 4, Seed: 1}, rng.NewDeterministic())
	if err != nil {
		t.Fatalf("GenerateNoise failed: %v", err)
	}
	if maxAbsDiff(rain, ens.Fields[0]) < 1e-6 {
		t.Error("Default perturbation left the rain field unchanged")
	}
}

func TestGenerateNoiseEmptyPerturbListRoundTrips(t *testing.T) {
	rain := rainFixture(16)
	ens, err := GenerateNoise(context.Background(), rain,
		NoiseConfig{Wavelet: "db4", Levels: 3, PerturbLevels: []int{}, Seed: 1}, rng.NewDeterministic())
	if err != nil {
		t.Fatalf("GenerateNoise failed: %v", err)
	}
	if d := maxAbsDiff(rain, ens.Fields[0]); d > 1e-9 {
		t.Errorf("With no perturbed levels the member should reconstruct the rain, differs by %v", d)
	}
}

func TestGenerateNoiseDefaults(t *testing.T) {
	rain := rainFixture(16)
	ens, err := GenerateNoise(context.Background(), rain, NoiseConfig{Seed: 5}, rng.NewDeterministic())
	if err != nil {
		t.Fatalf("GenerateNoise failed: %v", err)
	}
	if ens.Wavelet != "db4" {
		t.Errorf("Expected the db4 default, got %q", ens.Wavelet)
	}
	if ens.Levels != 4 {
		t.Errorf("Expected depth capped at 4 for a 16x16 field, got %d", ens.Levels)
	}
	if len(ens.Fields) != 1 {
		t.Errorf("Expected a single member by default, got %d", len(ens.Fields))
	}
}

func TestGenerateNoiseValidation(t *testing.T) {
	rain := rainFixture(16)
	adapter := rng.NewDeterministic()
	ctx := context.Background()

	_, err := GenerateNoise(ctx, rain, NoiseConfig{Levels: 3, PerturbLevels: []int{5}}, adapter)
	if errors.GetCode(err) != errors.CodeInvalidInput {
		t.Errorf("Expected INVALID_INPUT for an out-of-range perturb level, got %v", err)
	}

	_, err = GenerateNoise(ctx, rain, NoiseConfig{Members: -2}, adapter)
	if errors.GetCode(err) != errors.CodeInvalidInput {
		t.Errorf("Expected INVALID_INPUT for a negative member count, got %v", err)
	}

	_, err = GenerateNoise(ctx, rain, NoiseConfig{}, nil)
	if errors.GetCode(err) != errors.CodeConfigInvalid {
		t.Errorf("Expected CONFIG_INVALID for a nil rng port, got %v", err)
	}

	_, err = GenerateNoise(ctx, rain, NoiseConfig{Wavelet: "coif3"}, adapter)
	if errors.GetCode(err) != errors.CodeConfigInvalid {
		t.Errorf("Expected CONFIG_INVALID for an unknown wavelet, got %v", err)
	}

	_, err = GenerateNoise(ctx, nil, NoiseConfig{}, adapter)
	if errors.GetCode(err) != errors.CodeEmptyDomain {
		t.Errorf("Expected EMPTY_DOMAIN for a nil field, got %v", err)
	}
}
