// Package pdb implements the pattern database (§3, §4.B): for a pattern P it
// stores the optimal goal-distance for every abstract state over P, indexed
// by a perfect hash of the abstract state, and answers lookups in O(|P|).
//
// Construction projects the task onto P and reuses this module's own
// general-purpose graph package (core.Graph + dijkstra.Dijkstra) to run the
// regression search, rather than hand-rolling a second Dijkstra
// implementation: the abstract *reverse* transition graph is built
// explicitly (one vertex per reachable-or-not abstract state, one edge per
// projected operator transition) and a single Dijkstra call from a
// synthetic goal source produces every abstract state's distance at once.
package pdb

import (
	"errors"
	"math"

	"github.com/ipdb-go/ipdb/pattern"
	"github.com/ipdb-go/ipdb/task"
)

// Infinity is the distinguished value for abstract states from which the
// abstract goal is unreachable (§3). It intentionally matches the sentinel
// dijkstra.Dijkstra leaves for unreached vertices, so the regression
// search in build.go needs no post-processing pass to map "unreached" onto
// "infinite".
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by Build.
var (
	// ErrPatternTooLarge indicates the pattern's state-space size exceeds the
	// caller's budget (§4.B "Size bound"): checked before construction, not
	// raised mid-build.
	ErrPatternTooLarge = errors.New("pdb: pattern size exceeds budget")

	// ErrEmptyPattern indicates an empty pattern was supplied; patterns must
	// be non-empty per §3.
	ErrEmptyPattern = errors.New("pdb: pattern must be non-empty")
)

// PDB is an immutable pattern database over Pattern. Once built, a PDB is
// safe for concurrent read-only use and may be shared by multiple
// consumers (§3 Ownership: "immutable after construction ... lifetime =
// longest holder").
type PDB struct {
	pattern     pattern.Pattern
	multipliers []int64
	table       []int64
}

// Pattern returns the pattern this PDB was built over.
func (p *PDB) Pattern() pattern.Pattern { return p.pattern }

// Size returns the number of abstract states (len of the dense table).
func (p *PDB) Size() int { return len(p.table) }

// GetValue returns PDB(s): the optimal abstract goal-distance for the
// projection of concrete state s onto this PDB's pattern, or Infinity if
// unreachable (§4.B "Lookup").
func (p *PDB) GetValue(s task.State) int64 {
	return p.table[p.index(s)]
}

// index computes idx(s) = Σ m[i]·s[P[i]] using the precomputed multipliers (§3).
func (p *PDB) index(s task.State) int {
	idx := 0
	for i, v := range p.pattern {
		idx += int(p.multipliers[i]) * s[v]
	}
	return idx
}
