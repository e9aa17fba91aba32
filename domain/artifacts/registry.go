package artifacts

import (
	"fmt"
	"time"

	"gorain/domain/analysis"
	"gorain/domain/core"
)

// Note: ArtifactKind is defined in domain/core

// ArtifactSchema defines the structure of an artifact
type ArtifactSchema struct {
	Kind          core.ArtifactKind
	SchemaVersion string
	KeyFunc       func(core.Artifact) string // Stable identifier function
	ValidateFunc  func(core.Artifact) error  // Validation function
}

// Registry maps artifact kinds to their schemas
var Registry = map[core.ArtifactKind]ArtifactSchema{
	core.ArtifactFieldStats: {
		Kind:          core.ArtifactFieldStats,
		SchemaVersion: "1.0.0",
		KeyFunc:       fieldStatsKey,
		ValidateFunc:  validateFieldStats,
	},
	core.ArtifactSweepManifest: {
		Kind:          core.ArtifactSweepManifest,
		SchemaVersion: "1.0.0",
		KeyFunc:       sweepManifestKey,
		ValidateFunc:  validateSweepManifest,
	},
	core.ArtifactEnsembleMember: {
		Kind:          core.ArtifactEnsembleMember,
		SchemaVersion: "1.0.0",
		KeyFunc:       ensembleMemberKey,
		ValidateFunc:  validateEnsembleMember,
	},
	core.ArtifactRun: {
		Kind:          core.ArtifactRun,
		SchemaVersion: "1.0.0",
		KeyFunc:       runKey,
		ValidateFunc:  validateRun,
	},
}

// GetSchema returns the schema for an artifact kind
func GetSchema(kind core.ArtifactKind) (ArtifactSchema, error) {
	schema, exists := Registry[kind]
	if !exists {
		return ArtifactSchema{}, fmt.Errorf("unknown artifact kind: %s", kind)
	}
	return schema, nil
}

// ValidateArtifact validates an artifact against its schema
func ValidateArtifact(artifact core.Artifact) error {
	schema, err := GetSchema(artifact.Kind)
	if err != nil {
		return err
	}
	return schema.ValidateFunc(artifact)
}

// GetArtifactKey returns the stable key for an artifact
func GetArtifactKey(artifact core.Artifact) (string, error) {
	schema, err := GetSchema(artifact.Kind)
	if err != nil {
		return "", err
	}
	return schema.KeyFunc(artifact), nil
}

// Key functions for each artifact type
func fieldStatsKey(artifact core.Artifact) string {
	// Stats are keyed by position in the sweep plus acquisition time.
	if payload, ok := artifact.Payload.(*analysis.FieldStats); ok {
		return fmt.Sprintf("field_stats:%d:%s",
			payload.Index, payload.ObservedAt.Time().UTC().Format(time.RFC3339))
	}
	// Fallback for map payloads (decoded JSON)
	if payload, ok := artifact.Payload.(map[string]interface{}); ok {
		if idx, iok := payload["index"].(float64); iok {
			if at, aok := payload["observed_at"].(string); aok && at != "" {
				return fmt.Sprintf("field_stats:%d:%s", int(idx), at)
			}
		}
	}
	return string(artifact.ID) // fallback to ID
}

func sweepManifestKey(artifact core.Artifact) string {
	// Manifests are keyed by run for uniqueness
	if payload, ok := artifact.Payload.(*analysis.SweepManifest); ok {
		return fmt.Sprintf("sweep_manifest:%s", payload.RunID)
	}
	if payload, ok := artifact.Payload.(map[string]interface{}); ok {
		if runID, ok := payload["run_id"].(string); ok && runID != "" {
			return fmt.Sprintf("sweep_manifest:%s", runID)
		}
	}
	return string(artifact.ID)
}

func ensembleMemberKey(artifact core.Artifact) string {
	return string(artifact.ID) // Members carry no run reference, keyed by ID
}

func runKey(artifact core.Artifact) string {
	if payload, ok := artifact.Payload.(*analysis.SweepResult); ok {
		return fmt.Sprintf("run:%s", payload.RunID)
	}
	if payload, ok := artifact.Payload.(map[string]interface{}); ok {
		if runID, ok := payload["run_id"].(string); ok && runID != "" {
			return fmt.Sprintf("run:%s", runID)
		}
	}
	return string(artifact.ID)
}

// Validation functions for each artifact type
func validateFieldStats(artifact core.Artifact) error {
	if artifact.Kind != core.ArtifactFieldStats {
		return fmt.Errorf("expected kind %s, got %s", core.ArtifactFieldStats, artifact.Kind)
	}
	if artifact.ID.IsEmpty() {
		return fmt.Errorf("field stats artifact missing ID")
	}
	if payload, ok := artifact.Payload.(*analysis.FieldStats); ok {
		if payload.Index < 0 {
			return fmt.Errorf("field stats artifact has negative index %d", payload.Index)
		}
	}
	return nil
}

func validateSweepManifest(artifact core.Artifact) error {
	if artifact.Kind != core.ArtifactSweepManifest {
		return fmt.Errorf("expected kind %s, got %s", core.ArtifactSweepManifest, artifact.Kind)
	}
	if artifact.ID.IsEmpty() {
		return fmt.Errorf("sweep manifest artifact missing ID")
	}
	if payload, ok := artifact.Payload.(*analysis.SweepManifest); ok {
		return payload.Validate()
	}
	return nil
}

func validateEnsembleMember(artifact core.Artifact) error {
	if artifact.Kind != core.ArtifactEnsembleMember {
		return fmt.Errorf("expected kind %s, got %s", core.ArtifactEnsembleMember, artifact.Kind)
	}
	if artifact.ID.IsEmpty() {
		return fmt.Errorf("ensemble member artifact missing ID")
	}
	if payload, ok := artifact.Payload.(*analysis.MemberField); ok {
		if payload.Member < 0 {
			return fmt.Errorf("ensemble member artifact has negative index %d", payload.Member)
		}
		if len(payload.Field) == 0 {
			return fmt.Errorf("ensemble member artifact has an empty field")
		}
	}
	return nil
}

func validateRun(artifact core.Artifact) error {
	if artifact.Kind != core.ArtifactRun {
		return fmt.Errorf("expected kind %s, got %s", core.ArtifactRun, artifact.Kind)
	}
	if artifact.ID.IsEmpty() {
		return fmt.Errorf("run artifact missing ID")
	}
	if payload, ok := artifact.Payload.(*analysis.SweepResult); ok {
		if err := payload.Manifest.Validate(); err != nil {
			return err
		}
		if len(payload.Stats) > payload.Manifest.Fields {
			return fmt.Errorf("run artifact reports %d stats for %d fields",
				len(payload.Stats), payload.Manifest.Fields)
		}
	}
	return nil
}
