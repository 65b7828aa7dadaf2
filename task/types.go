// Package task defines the read-only planning task view consumed by the
// pattern-database heuristics: variables, operators, goal, initial state and
// the causal graph (§4.A). The task model itself — parsing, grounding,
// mutation — is an external collaborator; this package only specifies the
// read-only contract and ships one concrete, literal-data implementation
// (FixedTask) so the generators can be built and tested standalone.
//
// All lists returned by Task methods are sorted ascending by variable id,
// matching the ordering guarantee required throughout spec.md §4.A and §5.
package task

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for task construction and validation.
var (
	// ErrDuplicateVariable indicates two variables share an id.
	ErrDuplicateVariable = errors.New("task: duplicate variable id")

	// ErrBadDomain indicates a variable was declared with domain size < 1.
	ErrBadDomain = errors.New("task: variable domain must be >= 1")

	// ErrUnknownVariable indicates a fact referenced a variable id that was
	// never declared.
	ErrUnknownVariable = errors.New("task: unknown variable id")

	// ErrBadFactValue indicates a fact's value is outside its variable's domain.
	ErrBadFactValue = errors.New("task: fact value out of domain")

	// ErrMultiplePreconditionsPerVar indicates an operator declared two
	// preconditions on the same variable.
	ErrMultiplePreconditionsPerVar = errors.New("task: operator has two preconditions on one variable")

	// ErrMultipleEffectsPerVar indicates an operator declared two effects on
	// the same variable.
	ErrMultipleEffectsPerVar = errors.New("task: operator has two effects on one variable")

	// ErrNegativeCost indicates an operator cost below zero.
	ErrNegativeCost = errors.New("task: operator cost must be >= 0")

	// ErrIncompleteInitialState indicates the initial state omits a declared variable.
	ErrIncompleteInitialState = errors.New("task: initial state missing a variable assignment")
)

// Variable is a planning variable, identified by an integer id with a finite
// domain {0, ..., Domain-1}.
type Variable struct {
	ID     int
	Domain int
}

// Fact is a (variable, value) pair with 0 <= Value < variable's domain.
type Fact struct {
	Var   int
	Value int
}

// Operator is a STRIPS-like action: a set of preconditions (at most one per
// variable) and a set of effects (at most one per variable, unconditional),
// plus a non-negative cost. Precond and Effect are kept sorted ascending by
// Var, matching the ordering guarantee of the Task interface.
type Operator struct {
	Precond []Fact
	Effect  []Fact
	Cost    int
}

// State is a total assignment: State[v] is the value assigned to variable v.
// Index by Variable.ID.
type State []int

// Get returns the value assigned to variable v.
func (s State) Get(v int) int { return s[v] }

// Clone returns an independent copy of the state.
func (s State) Clone() State {
	out := make(State, len(s))
	copy(out, s)
	return out
}

// With returns a copy of s with fact f applied.
func (s State) With(f Fact) State {
	out := s.Clone()
	out[f.Var] = f.Value
	return out
}

// Satisfies reports whether s agrees with every fact in facts.
func Satisfies(s State, facts []Fact) bool {
	for _, f := range facts {
		if s[f.Var] != f.Value {
			return false
		}
	}
	return true
}

// IsApplicable reports whether operator o's preconditions hold in s.
func IsApplicable(o Operator, s State) bool {
	return Satisfies(s, o.Precond)
}

// Apply returns the state resulting from applying o to s. Caller must ensure
// IsApplicable(o, s) first; Apply does not re-check preconditions.
func Apply(o Operator, s State) State {
	out := s.Clone()
	for _, f := range o.Effect {
		out[f.Var] = f.Value
	}
	return out
}

// sortFacts sorts facts ascending by Var in place.
func sortFacts(facts []Fact) {
	sort.Slice(facts, func(i, j int) bool { return facts[i].Var < facts[j].Var })
}

// validateFactSet checks that facts has at most one entry per variable and
// that every value lies within its variable's domain. dup is the sentinel
// raised on a repeated variable (precondition vs. effect have distinct
// sentinels so callers can tell which set was malformed).
func validateFactSet(facts []Fact, domains []int, dup error) error {
	seen := make(map[int]bool, len(facts))
	for _, f := range facts {
		if f.Var < 0 || f.Var >= len(domains) {
			return fmt.Errorf("%w: var %d", ErrUnknownVariable, f.Var)
		}
		if seen[f.Var] {
			return fmt.Errorf("%w: var %d", dup, f.Var)
		}
		seen[f.Var] = true
		if f.Value < 0 || f.Value >= domains[f.Var] {
			return fmt.Errorf("%w: var %d value %d domain %d", ErrBadFactValue, f.Var, f.Value, domains[f.Var])
		}
	}
	return nil
}
