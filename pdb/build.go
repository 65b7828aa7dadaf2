package pdb

import (
	"strconv"

	"github.com/ipdb-go/ipdb/core"
	"github.com/ipdb-go/ipdb/dijkstra"
	"github.com/ipdb-go/ipdb/pattern"
	"github.com/ipdb-go/ipdb/task"
)

// goalVertex is the synthetic source vertex wired at distance 0 to every
// abstract state consistent with the projected goal (§4.B step 3).
const goalVertex = "GOAL"

// Build constructs the pattern database for p over t, failing the caller's
// budget check before doing any work if the pattern's state-space size
// exceeds maxSize (§4.B "Size bound"). Pass math.MaxInt to bypass the budget
// check entirely (used by canonical.NewInitial for the initial,
// exemption-carrying goal-singleton patterns, §4.E).
func Build(t task.Task, p pattern.Pattern, maxSize int) (*PDB, error) {
	if len(p) == 0 {
		return nil, ErrEmptyPattern
	}
	vars := t.Variables()
	size := p.Size(vars)
	if size > maxSize {
		return nil, ErrPatternTooLarge
	}
	return build(t, p, vars, size)
}

// projectedOperator is an operator's precondition/effect restricted to
// pattern variables, indexed by the variable's position within the pattern
// rather than by its global id (§4.B step 2).
type projectedOperator struct {
	pre  []indexedFact
	eff  []indexedFact
	cost int64
}

type indexedFact struct {
	patternIdx int
	value      int
}

func build(t task.Task, p pattern.Pattern, vars []task.Variable, size int) (*PDB, error) {
	multipliers := make([]int64, len(p))
	domains := make([]int, len(p))
	mul := int64(1)
	for i, v := range p {
		multipliers[i] = mul
		domains[i] = vars[v].Domain
		mul *= int64(vars[v].Domain)
	}

	posInPattern := make(map[int]int, len(p))
	for i, v := range p {
		posInPattern[v] = i
	}

	abstractOps := projectOperators(t.Operators(), posInPattern)
	goalConstraint := projectFacts(t.Goal(), posInPattern)

	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges())

	// One vertex per abstract state, even isolated ones, so every index gets
	// an explicit (possibly infinite) distance out of Dijkstra.
	for idx := 0; idx < size; idx++ {
		if err := g.AddVertex(strconv.Itoa(idx)); err != nil {
			return nil, err
		}
	}
	if err := g.AddVertex(goalVertex); err != nil {
		return nil, err
	}

	values := make([]int, len(p))
	for idx := 0; idx < size; idx++ {
		decode(idx, multipliers, domains, values)

		if satisfies(values, goalConstraint) {
			if _, err := g.AddEdge(goalVertex, strconv.Itoa(idx), 0); err != nil {
				return nil, err
			}
		}

		idxStr := strconv.Itoa(idx)
		for _, op := range abstractOps {
			if !satisfies(values, op.pre) {
				continue
			}
			succIdx := applySuccessor(idx, values, multipliers, op.eff)
			if succIdx == idx {
				// Self-loop transitions never shorten a non-negative-cost
				// regression path; skip rather than requiring core.WithLoops().
				continue
			}
			// Edge direction is reversed relative to the abstract operator:
			// the operator moves succ-state FROM idx, so in the regression
			// (goal-distance) graph the edge runs succIdx -> idx.
			if _, err := g.AddEdge(strconv.Itoa(succIdx), idxStr, op.cost); err != nil {
				return nil, err
			}
		}
	}

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(goalVertex))
	if err != nil {
		return nil, err
	}

	table := make([]int64, size)
	for idx := 0; idx < size; idx++ {
		table[idx] = dist[strconv.Itoa(idx)]
	}

	return &PDB{
		pattern:     append(pattern.Pattern(nil), p...),
		multipliers: multipliers,
		table:       table,
	}, nil
}

// projectOperators projects every operator onto the pattern's variables,
// dropping operators whose abstract effect becomes empty (§4.B step 2).
func projectOperators(ops []task.Operator, posInPattern map[int]int) []projectedOperator {
	out := make([]projectedOperator, 0, len(ops))
	for _, o := range ops {
		eff := projectFacts(o.Effect, posInPattern)
		if len(eff) == 0 {
			continue
		}
		pre := projectFacts(o.Precond, posInPattern)
		out = append(out, projectedOperator{pre: pre, eff: eff, cost: int64(o.Cost)})
	}
	return out
}

func projectFacts(facts []task.Fact, posInPattern map[int]int) []indexedFact {
	out := make([]indexedFact, 0, len(facts))
	for _, f := range facts {
		if i, ok := posInPattern[f.Var]; ok {
			out = append(out, indexedFact{patternIdx: i, value: f.Value})
		}
	}
	return out
}

// satisfies reports whether the decoded abstract state values agrees with
// every constraint in facts.
func satisfies(values []int, facts []indexedFact) bool {
	for _, f := range facts {
		if values[f.patternIdx] != f.value {
			return false
		}
	}
	return true
}

// applySuccessor computes the abstract-state index reached by overwriting
// idx's decoded values with eff's assignments, without fully redecoding.
func applySuccessor(idx int, values []int, multipliers []int64, eff []indexedFact) int {
	succ := idx
	for _, f := range eff {
		old := values[f.patternIdx]
		if old == f.value {
			continue
		}
		succ += int(multipliers[f.patternIdx]) * (f.value - old)
	}
	return succ
}

// decode fills values with the per-pattern-position digits of the mixed
// radix representation of idx (§3: idx(s) = Σ m[i]·s[P[i]]).
func decode(idx int, multipliers []int64, domains []int, values []int) {
	for i := range values {
		values[i] = (idx / int(multipliers[i])) % domains[i]
	}
}
