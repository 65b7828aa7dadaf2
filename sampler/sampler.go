package sampler

import (
	"math"
	"math/rand"
	"time"

	"github.com/ipdb-go/ipdb/task"
)

// DeadEndChecker reports whether a state is recognized as a dead end by
// whatever heuristic is driving the walk restart rule. *canonical.Collection
// satisfies this interface.
type DeadEndChecker interface {
	IsDeadEnd(s task.State) bool
}

// Sample draws n random-walk states from t's initial state (§4.F).
//
// Each walk's length ℓ is Σ_{i=1..4L} Bernoulli(0.5), where L =
// max(1, round(h0/avgCost)): h0 is the current heuristic estimate of the
// initial state and avgCost the task's average operator cost, so walks
// self-scale to roughly the distance hill climbing still has left to cover.
// Whenever the walk reaches a state with no applicable operator, or one
// dead-end-checker recognizes as a dead end, it restarts from the initial
// state rather than getting stuck; either way the walk still consumes
// exactly ℓ steps.
//
// If deadline is non-zero and passes before n samples have been drawn,
// Sample returns the samples drawn so far alongside ErrSamplingTimeout.
func Sample(t task.Task, checker DeadEndChecker, h0 int64, n int, deadline time.Time, opts ...Option) ([]task.State, error) {
	cfg := newConfig(opts...)
	avgCost := AverageOperatorCost(t)
	initial := t.InitialState()

	out := make([]task.State, 0, n)
	for len(out) < n {
		if !deadline.IsZero() && time.Now().After(deadline) {
			return out, ErrSamplingTimeout
		}
		out = append(out, walk(t, checker, initial, walkLength(h0, avgCost, cfg.rng), cfg.rng))
	}
	return out, nil
}

// AverageOperatorCost returns the mean cost of t's operators, or 1 for a
// task with none (so walkLength never divides by zero).
func AverageOperatorCost(t task.Task) float64 {
	ops := t.Operators()
	if len(ops) == 0 {
		return 1
	}
	var total int64
	for _, o := range ops {
		total += int64(o.Cost)
	}
	return float64(total) / float64(len(ops))
}

// walkLength draws ℓ = Σ_{i=1..4L} Bernoulli(0.5) for L = max(1, round(h0/avgCost)).
func walkLength(h0 int64, avgCost float64, rng *rand.Rand) int {
	l := int(math.Round(float64(h0) / avgCost))
	if l < 1 {
		l = 1
	}
	steps := 0
	for i := 0; i < 4*l; i++ {
		if rng.Float64() < 0.5 {
			steps++
		}
	}
	return steps
}

func walk(t task.Task, checker DeadEndChecker, initial task.State, length int, rng *rand.Rand) task.State {
	state := initial
	ops := t.Operators()
	for step := 0; step < length; step++ {
		if checker != nil && checker.IsDeadEnd(state) {
			state = initial
			continue
		}
		applicable := applicableIndices(ops, state)
		if len(applicable) == 0 {
			state = initial
			continue
		}
		op := ops[applicable[rng.Intn(len(applicable))]]
		state = task.Apply(op, state)
		if checker != nil && checker.IsDeadEnd(state) {
			state = initial
		}
	}
	return state
}

func applicableIndices(ops []task.Operator, s task.State) []int {
	out := make([]int, 0, len(ops))
	for i, o := range ops {
		if task.IsApplicable(o, s) {
			out = append(out, i)
		}
	}
	return out
}
