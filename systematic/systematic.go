package systematic

import (
	"sort"

	"github.com/ipdb-go/ipdb/pattern"
	"github.com/ipdb-go/ipdb/task"
)

// Generate enumerates candidate patterns over t according to cfg (§4.H).
// Interesting patterns are returned in non-decreasing size order, Naive
// patterns in lexicographic order.
func Generate(t task.Task, opts ...Option) ([]pattern.Pattern, error) {
	cfg := newConfig(opts...)
	vars := t.Variables()

	var patterns []pattern.Pattern
	switch cfg.mode {
	case Naive:
		patterns = generateNaive(vars, cfg.patternMaxSize, cfg.pdbMaxSize)
	default:
		patterns = generateInteresting(t, vars, cfg.patternMaxSize, cfg.pdbMaxSize)
	}

	if cfg.dominancePruning {
		patterns = prunePatternDominance(patterns)
	}
	return patterns, nil
}

// generateNaive enumerates every variable combination of size 1..maxVars in
// lexicographic order, keeping only those within the state-space budget.
func generateNaive(vars []task.Variable, maxVars, pdbMaxSize int) []pattern.Pattern {
	var out []pattern.Pattern
	n := len(vars)
	for size := 1; size <= maxVars && size <= n; size++ {
		combo := make([]int, size)
		var emit func(start, depth int)
		emit = func(start, depth int) {
			if depth == size {
				p := pattern.New(append([]int(nil), combo...))
				if p.Size(vars) <= pdbMaxSize {
					out = append(out, p)
				}
				return
			}
			for i := start; i < n; i++ {
				combo[depth] = i
				emit(i+1, depth+1)
			}
		}
		emit(0, 0)
	}
	// Lexicographic order over variable ids: a pattern precedes its own
	// extensions, e.g. {0} {0,1} {0,2} {1} {1,2} {2}.
	sort.Slice(out, func(a, b int) bool {
		p, q := out[a], out[b]
		for k := 0; k < len(p) && k < len(q); k++ {
			if p[k] != q[k] {
				return p[k] < q[k]
			}
		}
		return len(p) < len(q)
	})
	return out
}

// generateInteresting builds patterns one variable at a time, only ever
// extending a pattern with a variable causally connected (in either
// direction) to one the pattern already contains, so every returned pattern
// induces a connected subgraph of the undirected causal graph (§4.H).
func generateInteresting(t task.Task, vars []task.Variable, maxVars, pdbMaxSize int) []pattern.Pattern {
	adj := undirectedCausalGraph(t, len(vars))

	var out []pattern.Pattern
	bySize := map[int][]pattern.Pattern{}

	for v := 0; v < len(vars); v++ {
		p := pattern.New([]int{v})
		bySize[1] = append(bySize[1], p)
		out = append(out, p)
	}

	for size := 2; size <= maxVars; size++ {
		seen := map[string]bool{}
		for _, p := range bySize[size-1] {
			for _, u := range p {
				for _, v := range adj[u] {
					if p.Contains(v) {
						continue
					}
					cand := pattern.New(append(append([]int(nil), p...), v))
					if cand.Size(vars) > pdbMaxSize {
						continue
					}
					key := cand.Key()
					if seen[key] {
						continue
					}
					seen[key] = true
					bySize[size] = append(bySize[size], cand)
					out = append(out, cand)
				}
			}
		}
		if len(bySize[size]) == 0 {
			break
		}
	}
	return out
}

// undirectedCausalGraph builds an adjacency list over t's causal graph,
// symmetrized: u and v are adjacent if either is in the other's EffToPre set.
func undirectedCausalGraph(t task.Task, numVars int) [][]int {
	cg := t.CausalGraph()
	edges := make(map[[2]int]bool)
	for v := 0; v < numVars; v++ {
		for _, u := range cg.EffToPre(v) {
			if u == v {
				continue
			}
			lo, hi := u, v
			if lo > hi {
				lo, hi = hi, lo
			}
			edges[[2]int{lo, hi}] = true
		}
	}

	adj := make([][]int, numVars)
	for e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}
	for i := range adj {
		sort.Ints(adj[i])
	}
	return adj
}

// prunePatternDominance drops any pattern that is a strict variable-subset
// of another pattern in patterns: the superset's PDB dominates it pointwise,
// so the subset pattern adds nothing a collection couldn't already get from
// the superset (§4.H).
func prunePatternDominance(patterns []pattern.Pattern) []pattern.Pattern {
	kept := make([]pattern.Pattern, 0, len(patterns))
	for i, p := range patterns {
		dominated := false
		for j, q := range patterns {
			if i == j || len(q) <= len(p) {
				continue
			}
			if isVarSubsetOf(p, q) {
				dominated = true
				break
			}
		}
		if !dominated {
			kept = append(kept, p)
		}
	}
	return kept
}

func isVarSubsetOf(p, q pattern.Pattern) bool {
	for _, v := range p {
		if !q.Contains(v) {
			return false
		}
	}
	return true
}
