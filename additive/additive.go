// Package additive computes the additivity relation between patterns and
// the max-additive-subsets structure over a pattern collection (§4.C).
//
// Two patterns are additive iff no operator charges non-zero cost to
// effects in both of them (the standard "operators-disjoint-in-effect-
// variables" cost partition — spec.md §9's open question, resolved per its
// own guidance since the source's exact partition scheme isn't visible in
// the extracted material). The additivity graph is built with this
// module's own core.Graph, and maximal additive subsets are its maximal
// cliques, found with a Bron–Kerbosch-with-pivoting routine written in the
// dfs package's neighbor-iteration idiom (sorted adjacency, explicit
// visited/candidate set threading) rather than a from-scratch traversal.
package additive

import (
	"sort"
	"strconv"

	"github.com/ipdb-go/ipdb/core"
	"github.com/ipdb-go/ipdb/pattern"
	"github.com/ipdb-go/ipdb/pdb"
	"github.com/ipdb-go/ipdb/task"
)

// Index precomputes, once per task, the effect-variable sets of every
// cost-bearing operator, so Additive can be evaluated repeatedly (e.g. once
// per pair in a growing collection) without rescanning every operator.
type Index struct {
	costlyEffectVars [][]int // one sorted, deduplicated slice per operator with Cost > 0
}

// NewIndex builds an Index from t's operators.
func NewIndex(t task.Task) *Index {
	idx := &Index{}
	for _, o := range t.Operators() {
		if o.Cost <= 0 {
			continue
		}
		vars := make([]int, 0, len(o.Effect))
		for _, f := range o.Effect {
			vars = append(vars, f.Var)
		}
		sort.Ints(vars)
		idx.costlyEffectVars = append(idx.costlyEffectVars, vars)
	}
	return idx
}

// Additive reports whether patterns p and q are additive: no cost-bearing
// operator affects a variable in both.
func (idx *Index) Additive(p, q pattern.Pattern) bool {
	for _, vars := range idx.costlyEffectVars {
		if intersects(vars, p) && intersects(vars, q) {
			return false
		}
	}
	return true
}

// intersects reports whether sorted slice a shares any element with sorted
// Pattern b.
func intersects(a []int, b pattern.Pattern) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			return true
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return false
}

// Subset is one inclusion-maximal additive subset of a collection,
// expressed as indices into the []*pdb.PDB slice passed to MaxSubsets.
type Subset []int

// MaxSubsets computes the max-additive-subsets structure for pdbs (§4.C):
// the additivity graph's inclusion-maximal cliques. The family is invariant
// under reordering pdbs as a set of PDB-index sets (§8 Round-trip), though
// the concrete index values obviously depend on pdbs' order.
func (idx *Index) MaxSubsets(pdbs []*pdb.PDB) []Subset {
	g := buildAdditivityGraph(idx, pdbs)
	cliques := bronKerbosch(g, len(pdbs))
	out := make([]Subset, 0, len(cliques))
	for _, c := range cliques {
		sort.Ints(c)
		out = append(out, Subset(c))
	}
	return out
}

// buildAdditivityGraph builds an undirected core.Graph whose vertices are
// "0".."n-1" (one per entry of pdbs) and whose edges connect pairwise
// additive PDBs.
func buildAdditivityGraph(idx *Index, pdbs []*pdb.PDB) *core.Graph {
	g := core.NewGraph()
	for i := range pdbs {
		_ = g.AddVertex(strconv.Itoa(i))
	}
	for i := 0; i < len(pdbs); i++ {
		for j := i + 1; j < len(pdbs); j++ {
			if idx.Additive(pdbs[i].Pattern(), pdbs[j].Pattern()) {
				_, _ = g.AddEdge(strconv.Itoa(i), strconv.Itoa(j), 0)
			}
		}
	}
	return g
}

// neighborSet returns the sorted integer neighbor set of vertex i in g,
// mirroring dfs's habit of iterating core.Graph.Neighbors and filtering to a
// plain, ordered slice before any set algebra.
func neighborSet(g *core.Graph, i int) []int {
	edges, err := g.Neighbors(strconv.Itoa(i))
	if err != nil {
		return nil
	}
	out := make([]int, 0, len(edges))
	for _, e := range edges {
		other := e.To
		if other == strconv.Itoa(i) {
			other = e.From
		}
		v, convErr := strconv.Atoi(other)
		if convErr != nil {
			continue
		}
		out = append(out, v)
	}
	sort.Ints(out)
	return dedupSorted(out)
}

func dedupSorted(xs []int) []int {
	out := xs[:0]
	for i, v := range xs {
		if i == 0 || v != xs[i-1] {
			out = append(out, v)
		}
	}
	return out
}

// bronKerbosch enumerates every maximal clique of g (vertices "0".."n-1")
// using the classic pivoting variant: R is the clique built so far, P the
// candidates still extending it, X the candidates already fully explored.
func bronKerbosch(g *core.Graph, n int) [][]int {
	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		adj[i] = neighborSet(g, i)
	}

	var cliques [][]int
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	bronKerboschVisit(adj, nil, p, nil, &cliques)
	return cliques
}

func bronKerboschVisit(adj [][]int, r, p, x []int, out *[][]int) {
	if len(p) == 0 && len(x) == 0 {
		if len(r) > 0 {
			clique := append([]int(nil), r...)
			*out = append(*out, clique)
		}
		return
	}

	pivot := choosePivot(p, x)
	pivotAdj := toSet(adj[pivot])

	candidates := append([]int(nil), p...)
	for _, v := range candidates {
		if pivotAdj[v] {
			continue
		}
		vAdj := toSet(adj[v])

		newR := append(append([]int(nil), r...), v)
		newP := intersectWithSet(p, vAdj)
		newX := intersectWithSet(x, vAdj)
		bronKerboschVisit(adj, newR, newP, newX, out)

		p = removeValue(p, v)
		x = append(x, v)
	}
}

func choosePivot(p, x []int) int {
	if len(p) > 0 {
		return p[0]
	}
	return x[0]
}

func toSet(xs []int) map[int]bool {
	s := make(map[int]bool, len(xs))
	for _, v := range xs {
		s[v] = true
	}
	return s
}

func intersectWithSet(xs []int, set map[int]bool) []int {
	out := make([]int, 0, len(xs))
	for _, v := range xs {
		if set[v] {
			out = append(out, v)
		}
	}
	return out
}

func removeValue(xs []int, v int) []int {
	out := make([]int, 0, len(xs))
	for _, x := range xs {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
