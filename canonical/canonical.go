// Package canonical implements the canonical pattern database heuristic and
// its incremental collection (spec.md §4 modules D and E — kept in one
// package per §3's ownership note that the heuristic evaluation and the
// collection that produces it share a lifecycle).
//
// The heuristic itself, Value, never touches a graph or a search routine: it
// is pure arithmetic over the max-additive-subsets family the additive
// package already computed, with ∞ absorbing every sum it appears in.
package canonical

import (
	"sort"

	"github.com/ipdb-go/ipdb/additive"
	"github.com/ipdb-go/ipdb/pattern"
	"github.com/ipdb-go/ipdb/pdb"
	"github.com/ipdb-go/ipdb/task"
)

// Value computes H(s) = max over subsets in family of Σ_{i in subset}
// pdbs[i].GetValue(s), with ∞-absorption: a subset whose sum includes an
// infinite term contributes ∞ to the max (§4.D).
//
// An empty family (a collection holding no PDBs at all) has no additive
// subset to maximize over; Value defines that case as 0 rather than treating
// the vacuous "every subset sums to ∞" as a dead end.
func Value(family []additive.Subset, pdbs []*pdb.PDB, s task.State) int64 {
	var best int64
	for _, sub := range family {
		sum := sumSubset(sub, pdbs, s)
		if sum > best {
			best = sum
		}
	}
	return best
}

func sumSubset(sub additive.Subset, pdbs []*pdb.PDB, s task.State) int64 {
	var sum int64
	for _, i := range sub {
		v := pdbs[i].GetValue(s)
		if v == pdb.Infinity {
			return pdb.Infinity
		}
		sum += v
	}
	return sum
}

// IsDeadEnd reports whether every additive subset in family sums to ∞ for s
// (§4.D). An empty family is never a dead end (see Value).
func IsDeadEnd(family []additive.Subset, pdbs []*pdb.PDB, s task.State) bool {
	return len(family) > 0 && Value(family, pdbs, s) == pdb.Infinity
}

// Prune applies the subset-of-subset dominance rule (§4.D): a subset whose
// PDB-index set is a subset of another surviving subset's is redundant,
// since the larger subset's sum already dominates it pointwise (every PDB
// value is non-negative), and is dropped. Prune is idempotent: running it
// again on its own output changes nothing, since no two maximal cliques are
// ever comparable by inclusion.
func Prune(family []additive.Subset) []additive.Subset {
	sets := make([]map[int]bool, len(family))
	for i, s := range family {
		sets[i] = toSet(s)
	}

	kept := make([]additive.Subset, 0, len(family))
	for i, s := range family {
		dominated := false
		for j := range family {
			if i == j || len(family[j]) <= len(s) {
				continue
			}
			if isSubsetOf(sets[i], sets[j]) {
				dominated = true
				break
			}
		}
		if !dominated {
			kept = append(kept, s)
		}
	}
	return kept
}

func toSet(s additive.Subset) map[int]bool {
	m := make(map[int]bool, len(s))
	for _, i := range s {
		m[i] = true
	}
	return m
}

func isSubsetOf(a, b map[int]bool) bool {
	for i := range a {
		if !b[i] {
			return false
		}
	}
	return true
}

// Info bundles a generator's result exactly as §6 describes it: the task
// handle, the final pattern collection, its immutable PDB list, and the
// max-additive-subsets family (pruned, if the generator enabled dominance
// pruning).
type Info struct {
	Task               task.Task
	Patterns           []pattern.Pattern
	PDBs               []*pdb.PDB
	MaxAdditiveSubsets []additive.Subset
}

// sortedGoalVars returns the task's goal variables in ascending order,
// deduplicated (a task whose goal names the same variable twice still
// contributes one singleton pattern for it).
func sortedGoalVars(t task.Task) []int {
	seen := make(map[int]bool)
	var vars []int
	for _, f := range t.Goal() {
		if !seen[f.Var] {
			seen[f.Var] = true
			vars = append(vars, f.Var)
		}
	}
	sort.Ints(vars)
	return vars
}
