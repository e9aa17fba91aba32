package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Use UUID v7 for time-ordered, sortable IDs
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	RunID    ID
	FieldID  ID
	MemberID ID
)

// String conversions for domain IDs
func (id RunID) String() string    { return ID(id).String() }
func (id FieldID) String() string  { return ID(id).String() }
func (id MemberID) String() string { return ID(id).String() }

// ParseRunID parses a string into RunID
func ParseRunID(s string) (RunID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("run ID cannot be empty")
	}
	return RunID(s), nil
}

// ParseFieldID parses a string into FieldID
func ParseFieldID(s string) (FieldID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("field ID cannot be empty")
	}
	return FieldID(s), nil
}

// ParseMemberID parses a string into MemberID
func ParseMemberID(s string) (MemberID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("member ID cannot be empty")
	}
	return MemberID(s), nil
}

// Artifact represents any output of an analysis run
type Artifact struct {
	ID        ID           `json:"id"`
	Kind      ArtifactKind `json:"kind"`
	Payload   interface{}  `json:"payload"`
	CreatedAt Timestamp    `json:"created_at"`
}

// ArtifactKind defines types of artifacts
type ArtifactKind string

const (
	// ArtifactFieldStats is the per-field output of a sweep (WAR, slopes, anisotropy).
	ArtifactFieldStats ArtifactKind = "field_stats"
	// ArtifactSweepManifest captures audit metadata for a sweep (counts, thresholds, seed, etc.).
	ArtifactSweepManifest ArtifactKind = "sweep_manifest"
	// ArtifactEnsembleMember is one stochastically perturbed field of an ensemble.
	ArtifactEnsembleMember ArtifactKind = "ensemble_member"
	ArtifactRun            ArtifactKind = "run"
)
