// Package report builds pair comparison reports from parsed datasets.
// Reports are pure data; renderers decide presentation.
package report

import (
	"path/filepath"
	"sort"

	"github.com/jbmorgado/resdiff/pkg/compare"
	"github.com/jbmorgado/resdiff/pkg/resultfile"
)

// MissingValue is shown for a metadata key absent on one side.
const MissingValue = "N/A"

// MetaRow is one key of the sorted union of both files' metadata.
type MetaRow struct {
	Key   string
	A     string
	B     string
	Equal bool
}

// Pair is the comparison report for one unordered file pair.
type Pair struct {
	FileA  string // basename of the first file
	FileB  string // basename of the second file
	Meta   []MetaRow
	Result compare.Result
}

// Title returns the "a vs b" heading for the pair.
func (p Pair) Title() string {
	return p.FileA + " vs " + p.FileB
}

// Build assembles the report data for one dataset pair: basenames, the sorted
// union of metadata keys, and the comparison result.
func Build(a, b *resultfile.Dataset, res compare.Result) Pair {
	union := make(map[string]struct{})
	for _, k := range a.Meta.Keys() {
		union[k] = struct{}{}
	}
	for _, k := range b.Meta.Keys() {
		union[k] = struct{}{}
	}
	keys := make([]string, 0, len(union))
	for k := range union {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]MetaRow, 0, len(keys))
	for _, k := range keys {
		va, okA := a.Meta.Get(k)
		vb, okB := b.Meta.Get(k)
		if !okA {
			va = MissingValue
		}
		if !okB {
			vb = MissingValue
		}
		rows = append(rows, MetaRow{Key: k, A: va, B: vb, Equal: va == vb})
	}

	return Pair{
		FileA:  filepath.Base(a.Path),
		FileB:  filepath.Base(b.Path),
		Meta:   rows,
		Result: res,
	}
}

// BuildAll compares every unordered pair of datasets in input order and
// builds their reports. A structural mismatch in one pair does not stop the
// remaining comparisons.
func BuildAll(datasets []*resultfile.Dataset, tolerance float64) []Pair {
	var pairs []Pair
	for i := 0; i < len(datasets); i++ {
		for j := i + 1; j < len(datasets); j++ {
			res := compare.Compare(datasets[i].Samples, datasets[j].Samples, tolerance)
			pairs = append(pairs, Build(datasets[i], datasets[j], res))
		}
	}
	return pairs
}
