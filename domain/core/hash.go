package core

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// Domain-specific hash types
type (
	FieldHash  Hash
	ParamsHash Hash
)

// Constructors
func NewFieldHash(data []byte) FieldHash   { return FieldHash(NewHash(data)) }
func NewParamsHash(data []byte) ParamsHash { return ParamsHash(NewHash(data)) }

// String conversions
func (h FieldHash) String() string  { return Hash(h).String() }
func (h ParamsHash) String() string { return Hash(h).String() }

// ComputeFieldHash fingerprints a grid from the exact bit patterns of its
// values in row-major order, so replayed runs can be compared.
func ComputeFieldHash(data [][]float64) FieldHash {
	cols := 0
	if len(data) > 0 {
		cols = len(data[0])
	}
	buf := make([]byte, 0, len(data)*cols*8)
	var scratch [8]byte
	for _, row := range data {
		for _, v := range row {
			binary.LittleEndian.PutUint64(scratch[:], math.Float64bits(v))
			buf = append(buf, scratch[:]...)
		}
	}
	return NewFieldHash(buf)
}

// ComputeParamsHash fingerprints run parameters with deterministic key order
func ComputeParamsHash(params map[string]interface{}) ParamsHash {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var data strings.Builder
	for _, key := range keys {
		data.WriteString(key)
		data.WriteString(fmt.Sprintf("%v", params[key]))
	}

	return NewParamsHash([]byte(data.String()))
}
