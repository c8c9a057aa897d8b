// Package compare implements pairwise comparison of parsed sample sequences
// within a numeric tolerance, plus the summary statistics that describe how
// far two sequences diverge.
package compare

import (
	"fmt"
	"math/cmplx"

	"github.com/jbmorgado/resdiff/pkg/resultfile"
)

// DefaultTolerance is the per-point absolute difference allowed when the
// caller does not specify one.
const DefaultTolerance = 1e-10

// MismatchKind identifies a structural incompatibility between two datasets.
type MismatchKind int

const (
	// LengthMismatch means the sequences have different numbers of samples.
	LengthMismatch MismatchKind = iota
	// IndexMismatch means the sequences disagree on a sample index at some
	// position.
	IndexMismatch
)

// Mismatch describes why two sequences could not be compared point-wise.
type Mismatch struct {
	Kind MismatchKind

	// LenA and LenB are set for LengthMismatch.
	LenA, LenB int

	// Position, IndexA and IndexB are set for IndexMismatch.
	Position int
	IndexA   int
	IndexB   int
}

func (m *Mismatch) String() string {
	switch m.Kind {
	case LengthMismatch:
		return fmt.Sprintf("different lengths: %d vs %d", m.LenA, m.LenB)
	case IndexMismatch:
		return fmt.Sprintf("index mismatch at position %d: %d vs %d", m.Position, m.IndexA, m.IndexB)
	default:
		return "unknown mismatch"
	}
}

// Result is the outcome of comparing two sample sequences. When Mismatch is
// non-nil the sequences were structurally incomparable and the statistics
// fields are zero. Results are values; callers must not mutate them.
type Result struct {
	Equal       bool
	TotalPoints int
	EqualPoints int
	MaxDiff     float64
	MeanDiff    float64
	StdDiff     float64
	Tolerance   float64
	Mismatch    *Mismatch
}

// Compare measures the point-wise agreement of two sample sequences. It is a
// total function: structural problems come back in-band as a Mismatch so a
// caller working through many pairs can keep going.
//
// Sequences are compared positionally, not matched by index value; indices
// are cross-checked as a consistency guard. The first index disagreement
// short-circuits with no partial statistics. A point counts as equal when its
// absolute difference is <= tolerance, boundary included, and the pair as a
// whole is equal only when the maximum difference stays within tolerance.
func Compare(a, b []resultfile.Sample, tolerance float64) Result {
	if len(a) != len(b) {
		return Result{
			Tolerance: tolerance,
			Mismatch:  &Mismatch{Kind: LengthMismatch, LenA: len(a), LenB: len(b)},
		}
	}

	diffs := make([]float64, 0, len(a))
	equalPoints := 0
	for i := range a {
		if a[i].Index != b[i].Index {
			return Result{
				Tolerance: tolerance,
				Mismatch: &Mismatch{
					Kind:     IndexMismatch,
					Position: i,
					IndexA:   a[i].Index,
					IndexB:   b[i].Index,
				},
			}
		}
		d := cmplx.Abs(a[i].Value - b[i].Value)
		diffs = append(diffs, d)
		if d <= tolerance {
			equalPoints++
		}
	}

	// Two empty sequences agree trivially; avoid dividing by zero below.
	if len(diffs) == 0 {
		return Result{Equal: true, Tolerance: tolerance}
	}

	maxDiff := Max(diffs)
	return Result{
		Equal:       maxDiff <= tolerance,
		TotalPoints: len(a),
		EqualPoints: equalPoints,
		MaxDiff:     maxDiff,
		MeanDiff:    Mean(diffs),
		StdDiff:     PopStdDev(diffs),
		Tolerance:   tolerance,
	}
}
