package task

// Task is the read-only view of a planning task consumed by the pattern
// database heuristics (§4.A). Implementations must return stable results
// across calls and keep every fact/operator list sorted ascending by
// variable id.
type Task interface {
	// Variables returns every declared variable, sorted ascending by ID.
	Variables() []Variable

	// Operators returns every operator. Precond/Effect within each operator
	// are sorted ascending by Var.
	Operators() []Operator

	// Goal returns the goal condition as a fact list, sorted ascending by Var.
	Goal() []Fact

	// InitialState returns the task's initial state.
	InitialState() State

	// CausalGraph returns the task's causal graph view.
	CausalGraph() CausalGraph
}

// CausalGraph answers the two queries the generators need (§4.A):
//
//   - EffToPre(v): variables v' such that some operator has v in its effects
//     and v' in its preconditions.
//   - Predecessors(v): the union of EffToPre(v) and the effect-to-effect
//     co-occurrence arcs (variables v' that appear in the effects of some
//     operator that also affects v).
//
// Both return sorted, deduplicated variable-id slices.
type CausalGraph interface {
	EffToPre(v int) []int
	Predecessors(v int) []int
}
