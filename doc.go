// Package ipdb builds admissible, consistent canonical pattern-database (PDB)
// heuristics for domain-independent classical planning.
//
// It implements the two tightly coupled pattern-collection generators from
// Haslum et al.'s iPDB line of work:
//
//   - hillclimbing — greedy hill-climbing search over variable subsets,
//     evaluated by sampling states with random walks.
//   - systematic   — enumeration of candidate patterns up to a variable-count
//     budget: every variable combination (Naive) or every pattern whose
//     variables induce a connected subgraph of the undirected causal graph
//     (Interesting). It does not form single-goal-ancestor patterns or their
//     disjoint unions.
//
// Supporting packages:
//
//	task/        — read-only planning task view (variables, operators, causal graph)
//	pattern/     — the Pattern value type and its canonical-form invariants
//	pdb/         — per-pattern perfect-hash pattern database
//	additive/    — pairwise-additivity graph and maximal-clique enumeration
//	canonical/   — canonical heuristic and the incrementally-growing collection
//	sampler/     — random-walk state sampler
//
// The core is a pure, synchronous, in-memory computation: no I/O, no
// goroutines, no persisted state. It borrows its underlying graph algorithms
// (core.Graph, dijkstra.Dijkstra, dfs traversal idioms) from this module's own
// general-purpose graph package rather than reimplementing shortest paths and
// traversal from scratch.
//
//	go get github.com/ipdb-go/ipdb
package ipdb
