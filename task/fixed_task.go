package task

import "sort"

// FixedTask is a literal, in-memory Task implementation: variables,
// operators, goal and initial state are supplied wholesale at construction
// time and never mutated afterward. It exists to exercise and test the core
// heuristic machinery; a real planner's task model (parsing, grounding) is
// an external collaborator per spec.md §1 and is not implemented here.
//
// The causal graph is derived once, at construction, from the operator set
// and cached.
type FixedTask struct {
	vars      []Variable
	operators []Operator
	goal      []Fact
	initial   State
	domains   []int
	cg        *causalGraph
}

// NewFixedTask validates and constructs a FixedTask. vars must be supplied in
// ascending, contiguous id order starting at 0 (FixedTask's id space is
// simply the slice index); operators' fact lists are sorted and validated;
// goal and initial are validated against the declared domains.
func NewFixedTask(vars []Variable, operators []Operator, goal []Fact, initial State) (*FixedTask, error) {
	domains := make([]int, len(vars))
	seen := make(map[int]bool, len(vars))
	for i, v := range vars {
		if v.ID != i {
			return nil, ErrDuplicateVariable
		}
		if seen[v.ID] {
			return nil, ErrDuplicateVariable
		}
		seen[v.ID] = true
		if v.Domain < 1 {
			return nil, ErrBadDomain
		}
		domains[v.ID] = v.Domain
	}

	ops := make([]Operator, len(operators))
	for i, o := range operators {
		pre := append([]Fact(nil), o.Precond...)
		eff := append([]Fact(nil), o.Effect...)
		sortFacts(pre)
		sortFacts(eff)
		if err := validateFactSet(pre, domains, ErrMultiplePreconditionsPerVar); err != nil {
			return nil, err
		}
		if err := validateFactSet(eff, domains, ErrMultipleEffectsPerVar); err != nil {
			return nil, err
		}
		if o.Cost < 0 {
			return nil, ErrNegativeCost
		}
		ops[i] = Operator{Precond: pre, Effect: eff, Cost: o.Cost}
	}

	g := append([]Fact(nil), goal...)
	sortFacts(g)
	if err := validateFactSet(g, domains, ErrMultiplePreconditionsPerVar); err != nil {
		return nil, err
	}

	if len(initial) != len(vars) {
		return nil, ErrIncompleteInitialState
	}
	init := initial.Clone()
	for v, val := range init {
		if val < 0 || val >= domains[v] {
			return nil, ErrBadFactValue
		}
	}

	t := &FixedTask{
		vars:      append([]Variable(nil), vars...),
		operators: ops,
		goal:      g,
		initial:   init,
		domains:   domains,
	}
	t.cg = buildCausalGraph(len(vars), ops)
	return t, nil
}

// Variables implements Task.
func (t *FixedTask) Variables() []Variable { return t.vars }

// Operators implements Task.
func (t *FixedTask) Operators() []Operator { return t.operators }

// Goal implements Task.
func (t *FixedTask) Goal() []Fact { return t.goal }

// InitialState implements Task.
func (t *FixedTask) InitialState() State { return t.initial }

// CausalGraph implements Task.
func (t *FixedTask) CausalGraph() CausalGraph { return t.cg }

// causalGraph is the cached, precomputed causal-graph view for a FixedTask.
type causalGraph struct {
	effToPre     [][]int
	predecessors [][]int
}

func (c *causalGraph) EffToPre(v int) []int     { return c.effToPre[v] }
func (c *causalGraph) Predecessors(v int) []int { return c.predecessors[v] }

// buildCausalGraph computes eff_to_pre(v) and predecessors(v) for every
// variable from the operator set (§4.A):
//
//   - eff_to_pre(v): variables v' that appear as a precondition of some
//     operator that also has v among its effects.
//   - predecessors(v): eff_to_pre(v) union the effect-to-effect arcs (v'
//     appearing in the effects of an operator that also affects v).
func buildCausalGraph(numVars int, ops []Operator) *causalGraph {
	effToPreSet := make([]map[int]struct{}, numVars)
	predSet := make([]map[int]struct{}, numVars)
	for v := 0; v < numVars; v++ {
		effToPreSet[v] = map[int]struct{}{}
		predSet[v] = map[int]struct{}{}
	}

	for _, o := range ops {
		for _, effFact := range o.Effect {
			v := effFact.Var
			for _, preFact := range o.Precond {
				if preFact.Var == v {
					continue
				}
				effToPreSet[v][preFact.Var] = struct{}{}
				predSet[v][preFact.Var] = struct{}{}
			}
			for _, effFact2 := range o.Effect {
				if effFact2.Var == v {
					continue
				}
				predSet[v][effFact2.Var] = struct{}{}
			}
		}
	}

	cg := &causalGraph{
		effToPre:     make([][]int, numVars),
		predecessors: make([][]int, numVars),
	}
	for v := 0; v < numVars; v++ {
		cg.effToPre[v] = toSortedSlice(effToPreSet[v])
		cg.predecessors[v] = toSortedSlice(predSet[v])
	}
	return cg
}

func toSortedSlice(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}
