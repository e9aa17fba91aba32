package wavelet

import (
	"context"
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/distuv"

	"gorain/internal/errors"
	"gorain/ports"
	"gorain/stats"
)

const (
	defaultNoiseWavelet = "db4"
	defaultNoiseLevels  = 6
)

// NoiseConfig controls the stochastic noise ensemble. Zero values select the
// defaults.
type NoiseConfig struct {
	// RunID keys the random streams so a replayed run reproduces its
	// members exactly. Optional.
	RunID string `json:"run_id"`
	// Wavelet names the filter bank; default db4.
	Wavelet string `json:"wavelet"`
	// Levels is the decomposition depth; default 6, capped to the deepest
	// level the field allows.
	Levels int `json:"levels"`
	// PerturbLevels selects detail bands by scale index, 0 being the
	// finest; nil perturbs every band except the finest.
	PerturbLevels []int `json:"perturb_levels"`
	// Members is the ensemble size; default 1.
	Members int `json:"members"`
	// Seed feeds the per-member random streams.
	Seed int64 `json:"seed"`
}

// NoiseEnsemble holds the stochastic realizations of a perturbed rain field.
type NoiseEnsemble struct {
	Wavelet string        `json:"wavelet"`
	Levels  int           `json:"levels"`
	Fields  [][][]float64 `json:"-"`
}

// GenerateNoise decomposes the rain field, then builds each ensemble member
// by multiplying the horizontal and vertical detail coefficients of the rain
// at the selected scales with the z-scored coefficients of a standard-normal
// noise field, and reconstructing. Members are generated concurrently, each
// from its own named random stream, so results are deterministic per
// (seed, member) regardless of scheduling.
func GenerateNoise(ctx context.Context, rain [][]float64, cfg NoiseConfig, rngPort ports.RNGPort) (*NoiseEnsemble, error) {
	rows, cols, err := gridDims(rain)
	if err != nil {
		return nil, err
	}
	if rngPort == nil {
		return nil, errors.ConfigInvalid("rng port is required")
	}

	name := cfg.Wavelet
	if name == "" {
		name = defaultNoiseWavelet
	}
	w, err := ByName(name)
	if err != nil {
		return nil, err
	}

	levels := cfg.Levels
	if levels == 0 {
		levels = defaultNoiseLevels
		if max := MaxLevel(rows, cols); levels > max {
			levels = max
		}
	}

	members := cfg.Members
	if members == 0 {
		members = 1
	}
	if members < 0 {
		return nil, errors.Newf(errors.CodeInvalidInput,
			"member count must be positive, got %d", members)
	}

	perturb := cfg.PerturbLevels
	if perturb == nil {
		perturb = make([]int, 0, levels-1)
		for level := 1; level < levels; level++ {
			perturb = append(perturb, level)
		}
	}
	for _, level := range perturb {
		if level < 0 || level >= levels {
			return nil, errors.Newf(errors.CodeInvalidInput,
				"perturb level %d outside [0, %d)", level, levels)
		}
	}

	rainDec, err := Wavedec2(rain, w, levels)
	if err != nil {
		return nil, err
	}

	fields := make([][][]float64, members)
	g, gctx := errgroup.WithContext(ctx)
	for m := 0; m < members; m++ {
		g.Go(func() error {
			stream, err := rngPort.Stream(gctx, cfg.RunID, "wavelet-noise", fmt.Sprintf("member-%d", m), cfg.Seed)
			if err != nil {
				return err
			}
			member, err := perturbMember(rainDec, perturb, stream, rows, cols)
			if err != nil {
				return err
			}
			fields[m] = member
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &NoiseEnsemble{Wavelet: name, Levels: levels, Fields: fields}, nil
}

// perturbMember builds one realization from a shared rain decomposition and
// a member-private random stream.
func perturbMember(rainDec *Decomposition, perturb []int, stream *rand.Rand, rows, cols int) ([][]float64, error) {
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: stream}
	noise := make([][]float64, rows)
	for i := range noise {
		noise[i] = make([]float64, cols)
		for j := range noise[i] {
			noise[i][j] = normal.Rand()
		}
	}
	noiseDec, err := Wavedec2(noise, rainDec.Wavelet, rainDec.Levels)
	if err != nil {
		return nil, err
	}

	member := rainDec.clone()
	for _, level := range perturb {
		idx := rainDec.Levels - 1 - level
		noiseBand := noiseDec.Details[idx]
		perturbPlane(member.Details[idx].H, noiseBand.H)
		perturbPlane(member.Details[idx].V, noiseBand.V)
	}
	return Waverec2(member)
}

// perturbPlane scales the rain coefficients by the z-scores of the noise
// coefficients. A spreadless noise plane carries no information and leaves
// the rain untouched.
func perturbPlane(rain, noise [][]float64) {
	z, _, std := stats.ZScoresGrid(noise)
	if std == 0 {
		return
	}
	for i := range rain {
		for j := range rain[i] {
			rain[i][j] *= z[i][j]
		}
	}
}
