package app

import (
	"context"
	"math"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"gorain/domain/analysis"
	"gorain/domain/artifacts"
	"gorain/domain/core"
	"gorain/domain/field"
	"gorain/internal"
	"gorain/internal/config"
	"gorain/internal/errors"
	"gorain/ports"
	"gorain/spectral"
)

// FieldSweepService computes per-field statistics across a composite
// sequence: wet area ratio, conditional mean rain, the two spectral slopes
// either side of the scale break, and spectral anisotropy.
type FieldSweepService struct {
	source  ports.FieldSource
	backend ports.FourierBackend
	clock   clockwork.Clock
	logger  *internal.Logger
	config  *config.Config
}

// SweepRequest defines the inputs for a deterministic field sweep
type SweepRequest struct {
	RunID core.RunID // optional, will be generated if empty
	Seed  int64
}

// NewFieldSweepService creates a field sweep service
func NewFieldSweepService(source ports.FieldSource, backend ports.FourierBackend,
	clock clockwork.Clock, logger *internal.Logger, cfg *config.Config) *FieldSweepService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	return &FieldSweepService{
		source:  source,
		backend: backend,
		clock:   clock,
		logger:  logger,
		config:  cfg,
	}
}

// Run analyzes every field the source provides. Fields are processed
// concurrently up to the configured limit; a field that cannot be analyzed
// is recorded in the manifest and the sweep continues.
func (s *FieldSweepService) Run(ctx context.Context, req SweepRequest) (*analysis.SweepResult, error) {
	if s.source == nil {
		return nil, errors.ConfigInvalid("field source is required")
	}
	count := s.source.Count()
	if count == 0 {
		return nil, errors.EmptyDomain("field source")
	}

	runID := req.RunID
	if runID == "" {
		runID = core.RunID(core.NewID())
	}
	started := s.clock.Now()
	s.logger.Info("Sweep %s starting over %d fields", runID, count)

	// Per-index slots keep the output ordered without coordination.
	stats := make([]*analysis.FieldStats, count)
	failed := make([]*analysis.FieldFailure, count)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Engine.MaxParallel)
	for i := 0; i < count; i++ {
		g.Go(func() error {
			record, err := s.source.At(gctx, i)
			if err != nil {
				if gctx.Err() != nil {
					return err
				}
				failed[i] = &analysis.FieldFailure{Index: i, Code: errors.GetCode(err), Reason: err.Error()}
				return nil
			}
			fs, err := s.analyzeField(record.Field)
			if err != nil {
				s.logger.Warn("Sweep %s: field %d skipped: %v", runID, i, err)
				failed[i] = &analysis.FieldFailure{Index: i, Code: errors.GetCode(err), Reason: err.Error()}
				return nil
			}
			fs.Index = i
			fs.ObservedAt = core.Timestamp(record.ObservedAt)
			stats[i] = fs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	completed := s.clock.Now()
	params := analysis.SweepParams{
		RainThreshold: s.config.Radar.RainThreshold,
		ResolutionKM:  s.config.Radar.ResolutionKM,
		ScaleBreakKM:  s.config.Spectral.ScaleBreakKM,
		Window:        s.config.Spectral.Window,
		Backend:       s.backend.Name(),
	}
	result := &analysis.SweepResult{
		RunID: runID,
		Manifest: analysis.SweepManifest{
			RunID:       runID,
			Fields:      count,
			Seed:        req.Seed,
			StartedAt:   core.NewTimestamp(started),
			CompletedAt: core.NewTimestamp(completed),
			RuntimeMs:   completed.Sub(started).Milliseconds(),
			Params:      params,
			ParamsHash:  params.Fingerprint(),
		},
	}
	for i := 0; i < count; i++ {
		if stats[i] != nil {
			result.Stats = append(result.Stats, *stats[i])
		}
		if failed[i] != nil {
			result.Manifest.Failed = append(result.Manifest.Failed, *failed[i])
		}
	}

	if err := artifacts.ValidateArtifact(result.ToCoreArtifact()); err != nil {
		return nil, err
	}
	s.logger.Info("Sweep %s analyzed %d/%d fields in %dms",
		runID, len(result.Stats), count, result.Manifest.RuntimeMs)
	return result, nil
}

// analyzeField computes the statistics bundle of a single composite.
func (s *FieldSweepService) analyzeField(f *field.Field) (*analysis.FieldStats, error) {
	threshold := s.config.Radar.RainThreshold

	spec, err := spectral.PowerSpectrum2D(f.Data, spectral.SpectrumConfig{
		ResolutionKM: f.ResolutionKM,
		Window:       s.config.Spectral.Window,
		Backend:      s.backend,
	})
	if err != nil {
		return nil, err
	}
	radial, err := spectral.RadialSpectrum(spec.Power, f.ResolutionKM)
	if err != nil {
		return nil, err
	}

	scaleBreak := s.config.Spectral.ScaleBreakKM
	large, err := spectral.SpectralSlope(radial, scaleBreak, math.Inf(1))
	if err != nil {
		return nil, err
	}
	small, err := spectral.SpectralSlope(radial, 0, scaleBreak)
	if err != nil {
		return nil, err
	}

	aniso, err := spectral.EstimateAnisotropy(spec.Power, spectral.DefaultAnisotropyConfig())
	if err != nil {
		return nil, err
	}

	return &analysis.FieldStats{
		WAR:          f.WAR(threshold),
		MeanRain:     field.ConditionalMean(f.Data, threshold, f.NoData),
		Beta1:        large.Slope,
		Beta2:        small.Slope,
		Eccentricity: aniso.Eccentricity,
		Orientation:  aniso.Orientation,
	}, nil
}
