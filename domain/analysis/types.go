// Package analysis defines the result artifacts produced by sweep and
// ensemble runs: per-field statistics, the audit manifest that makes a
// sweep replayable, and the member fields of a stochastic ensemble.
package analysis

import (
	"gorain/domain/core"
)

// FieldStats is the per-field output of a sweep.
type FieldStats struct {
	Index        int            `json:"index"`
	ObservedAt   core.Timestamp `json:"observed_at"`
	WAR          float64        `json:"war"`
	MeanRain     float64        `json:"mean_rain"`
	Beta1        float64        `json:"beta1"`
	Beta2        float64        `json:"beta2"`
	Eccentricity float64        `json:"eccentricity"`
	Orientation  float64        `json:"orientation"`
}

// SweepParams records the knobs that shaped a sweep, for replay audits.
type SweepParams struct {
	RainThreshold float64 `json:"rain_threshold"`
	ResolutionKM  float64 `json:"resolution_km"`
	ScaleBreakKM  float64 `json:"scale_break_km"`
	Window        string  `json:"window"`
	Backend       string  `json:"backend"`
}

// Fingerprint hashes the parameter set so replayed runs can be compared
func (p SweepParams) Fingerprint() core.ParamsHash {
	return core.ComputeParamsHash(map[string]interface{}{
		"rain_threshold": p.RainThreshold,
		"resolution_km":  p.ResolutionKM,
		"scale_break_km": p.ScaleBreakKM,
		"window":         p.Window,
		"backend":        p.Backend,
	})
}

// FieldFailure records one field the sweep could not analyze.
type FieldFailure struct {
	Index  int    `json:"index"`
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

// SweepManifest captures the audit metadata of a sweep. It is the truth
// source for replay: same source, params and seed must reproduce the stats.
type SweepManifest struct {
	RunID       core.RunID      `json:"run_id"`
	Fields      int             `json:"fields"`
	Failed      []FieldFailure  `json:"failed,omitempty"`
	Seed        int64           `json:"seed"`
	StartedAt   core.Timestamp  `json:"started_at"`
	CompletedAt core.Timestamp  `json:"completed_at"`
	RuntimeMs   int64           `json:"runtime_ms"`
	Params      SweepParams     `json:"params"`
	ParamsHash  core.ParamsHash `json:"params_hash"`
}

// Validate checks if the manifest is complete
func (m *SweepManifest) Validate() error {
	if core.ID(m.RunID).IsEmpty() {
		return core.NewValidationError("sweep_manifest", "run_id cannot be empty")
	}
	if m.Fields < 0 {
		return core.NewValidationError("sweep_manifest", "field count cannot be negative")
	}
	if m.ParamsHash == "" {
		return core.NewValidationError("sweep_manifest", "missing params fingerprint")
	}
	if len(m.Failed) > m.Fields {
		return core.NewValidationError("sweep_manifest", "more failures than fields")
	}
	if m.CompletedAt.Before(m.StartedAt) {
		return core.NewValidationError("sweep_manifest", "completed before started")
	}
	return nil
}

// ToCoreArtifact converts to a core artifact for storage
func (m *SweepManifest) ToCoreArtifact() core.Artifact {
	return core.Artifact{
		ID:        core.ID(m.RunID),
		Kind:      core.ArtifactSweepManifest,
		Payload:   m,
		CreatedAt: m.CompletedAt,
	}
}

// SweepResult contains the complete output of a field sweep.
type SweepResult struct {
	RunID    core.RunID    `json:"run_id"`
	Stats    []FieldStats  `json:"stats"`
	Manifest SweepManifest `json:"manifest"`
}

// ToCoreArtifact converts to a core artifact for storage
func (r *SweepResult) ToCoreArtifact() core.Artifact {
	return core.Artifact{
		ID:        core.NewID(),
		Kind:      core.ArtifactRun,
		Payload:   r,
		CreatedAt: r.Manifest.CompletedAt,
	}
}

// WARSeries extracts the wet-area-ratio time series in field order.
func (r *SweepResult) WARSeries() []float64 {
	out := make([]float64, len(r.Stats))
	for i, s := range r.Stats {
		out[i] = s.WAR
	}
	return out
}

// MemberField is one stochastically perturbed composite of an ensemble.
type MemberField struct {
	Member int         `json:"member"`
	Field  [][]float64 `json:"field"`
}

// ToCoreArtifact converts to a core artifact for storage
func (f *MemberField) ToCoreArtifact(at core.Timestamp) core.Artifact {
	return core.Artifact{
		ID:        core.NewID(),
		Kind:      core.ArtifactEnsembleMember,
		Payload:   f,
		CreatedAt: at,
	}
}

// EnsembleResult contains the members generated for one source field.
type EnsembleResult struct {
	RunID     core.RunID     `json:"run_id"`
	Wavelet   string         `json:"wavelet"`
	Levels    int            `json:"levels"`
	Seed      int64          `json:"seed"`
	CreatedAt core.Timestamp `json:"created_at"`
	Members   []MemberField  `json:"members"`
}

// Validate checks if the ensemble is complete
func (r *EnsembleResult) Validate() error {
	if core.ID(r.RunID).IsEmpty() {
		return core.NewValidationError("ensemble_result", "run_id cannot be empty")
	}
	if len(r.Members) == 0 {
		return core.NewValidationError("ensemble_result", "members cannot be empty")
	}
	for i, m := range r.Members {
		if m.Member != i {
			return core.NewValidationError("ensemble_result", "member indices must be contiguous")
		}
	}
	return nil
}
