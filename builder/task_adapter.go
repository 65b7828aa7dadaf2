// task_adapter.go — bridges builder's graph constructors to task.FixedTask,
// so generators and their tests can exercise synthetic tasks of arbitrary
// size instead of only hand-literal ones.
//
// Design:
//   - Sample a directed Erdős–Rényi-like graph over n vertices via
//     RandomSparse(n, p).
//   - Keep only edges that point from a lower index to a higher one; this
//     turns the sampled graph into a DAG without resampling (a cyclic
//     dependency would make "variable v's precondition is its
//     in-neighbors" unsatisfiable).
//   - Each vertex becomes a boolean variable (domain 2, value 1 = "on").
//     Variable v's sole operator requires every in-neighbor on and turns v
//     on; variable 0 has no precondition and can always fire.
//   - The goal is "the last variable is on", which forces every DAG
//     ancestor of n-1 to fire first — giving hill climbing and the
//     systematic generators genuine, size-controllable causal structure to
//     work with.
//   - verifyAcyclic double-checks the kept edges via dfs.DetectCycles before
//     handing them to task.NewFixedTask.
package builder

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/ipdb-go/ipdb/core"
	"github.com/ipdb-go/ipdb/dfs"
	"github.com/ipdb-go/ipdb/task"
)

// BuildRandomCausalTask samples a random DAG over n boolean variables with
// edge probability p and turns it into a FixedTask whose goal is "the
// highest-indexed variable is on". opts configures the underlying
// RandomSparse sampling (WithSeed/WithRand is how callers get
// reproducibility); WithIDScheme and WithWeightFn are ignored since vertex
// identity and edge weight carry no meaning here.
//
// Returns whatever sentinel RandomSparse/NewFixedTask would: ErrTooFewVertices,
// ErrInvalidProbability, ErrNeedRandSource, or a task package validation error.
func BuildRandomCausalTask(n int, p float64, opts ...BuilderOption) (*task.FixedTask, error) {
	// Decimal IDs are forced last so the strconv.Atoi read-back below holds
	// whatever WithIDScheme the caller passed.
	opts = append(opts[:len(opts):len(opts)], WithDefaultIDs())
	g, err := BuildGraph([]core.GraphOption{core.WithDirected(true)}, opts, RandomSparse(n, p))
	if err != nil {
		return nil, err
	}

	edges := g.Edges()

	preds := make([][]int, n)
	for _, e := range edges {
		from, ferr := strconv.Atoi(e.From)
		to, terr := strconv.Atoi(e.To)
		if ferr != nil || terr != nil || from >= to {
			continue
		}
		preds[to] = append(preds[to], from)
	}

	vars := make([]task.Variable, n)
	ops := make([]task.Operator, n)
	for v := 0; v < n; v++ {
		vars[v] = task.Variable{ID: v, Domain: 2}

		sort.Ints(preds[v])
		precond := make([]task.Fact, len(preds[v]))
		for i, u := range preds[v] {
			precond[i] = task.Fact{Var: u, Value: 1}
		}
		ops[v] = task.Operator{
			Precond: precond,
			Effect:  []task.Fact{{Var: v, Value: 1}},
			Cost:    1,
		}
	}

	if err := verifyAcyclic(n, preds); err != nil {
		return nil, err
	}

	goal := []task.Fact{{Var: n - 1, Value: 1}}
	initial := make(task.State, n)

	return task.NewFixedTask(vars, ops, goal, initial)
}

// verifyAcyclic rebuilds the kept precondition edges as a core.Graph and
// confirms dfs.DetectCycles finds none, catching any regression in the
// "from < to" filter above before it reaches task.NewFixedTask.
func verifyAcyclic(n int, preds [][]int) error {
	g := core.NewGraph(core.WithDirected(true))
	for v := 0; v < n; v++ {
		if err := g.AddVertex(strconv.Itoa(v)); err != nil {
			return err
		}
	}
	for v, us := range preds {
		for _, u := range us {
			if _, err := g.AddEdge(strconv.Itoa(u), strconv.Itoa(v), 0); err != nil {
				return err
			}
		}
	}
	if cyclic, cycles, err := dfs.DetectCycles(g); err != nil {
		return err
	} else if cyclic {
		return fmt.Errorf("builder: causal task has cycles %v: %w", cycles, ErrConstructFailed)
	}
	return nil
}
