package systematic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ipdb-go/ipdb/pattern"
	"github.com/ipdb-go/ipdb/systematic"
	"github.com/ipdb-go/ipdb/task"
)

// scenario2Task builds spec.md §8 Scenario 2: var 1's operator causally
// depends on var 0.
func scenario2Task(t *testing.T) *task.FixedTask {
	t.Helper()
	vars := []task.Variable{{ID: 0, Domain: 2}, {ID: 1, Domain: 2}, {ID: 2, Domain: 2}}
	ops := []task.Operator{
		{Precond: []task.Fact{{Var: 0, Value: 0}}, Effect: []task.Fact{{Var: 0, Value: 1}}, Cost: 1},
		{Precond: []task.Fact{{Var: 0, Value: 1}, {Var: 1, Value: 0}}, Effect: []task.Fact{{Var: 1, Value: 1}}, Cost: 1},
		// var 2 is causally isolated from vars 0 and 1.
		{Precond: []task.Fact{{Var: 2, Value: 0}}, Effect: []task.Fact{{Var: 2, Value: 1}}, Cost: 1},
	}
	goal := []task.Fact{{Var: 1, Value: 1}, {Var: 2, Value: 1}}
	tk, err := task.NewFixedTask(vars, ops, goal, task.State{0, 0, 0})
	require.NoError(t, err)
	return tk
}

func TestGenerate_Naive_EnumeratesEveryCombination(t *testing.T) {
	tk := scenario2Task(t)
	patterns, err := systematic.Generate(
		tk,
		systematic.WithMode(systematic.Naive),
		systematic.WithPatternMaxSize(2),
		systematic.WithDominancePruning(false),
	)
	require.NoError(t, err)
	// C(3,1) + C(3,2) = 3 + 3 = 6.
	require.Len(t, patterns, 6)
}

func TestGenerate_Interesting_OnlyConnectedPairs(t *testing.T) {
	tk := scenario2Task(t)
	patterns, err := systematic.Generate(
		tk,
		systematic.WithMode(systematic.Interesting),
		systematic.WithPatternMaxSize(2),
		systematic.WithDominancePruning(false),
	)
	require.NoError(t, err)

	hasVar01 := false
	for _, p := range patterns {
		if len(p) == 2 {
			require.True(t, p.Contains(0) && p.Contains(1), "interesting mode must not pair causally disconnected variables 0,2 or 1,2")
			hasVar01 = true
		}
	}
	require.True(t, hasVar01, "expected the causally connected pair {0,1}")
}

func TestGenerate_DominancePruning_DropsSubsetPatterns(t *testing.T) {
	tk := scenario2Task(t)
	patterns, err := systematic.Generate(
		tk,
		systematic.WithMode(systematic.Interesting),
		systematic.WithPatternMaxSize(2),
		systematic.WithDominancePruning(true),
	)
	require.NoError(t, err)

	for _, p := range patterns {
		if pattern.Equal(p, pattern.New([]int{0})) || pattern.Equal(p, pattern.New([]int{1})) {
			t.Fatalf("singleton %v should have been dominated by pattern {0,1}", p)
		}
	}
}

func TestGenerate_PatternMaxSizeOne_NoPairs(t *testing.T) {
	tk := scenario2Task(t)
	patterns, err := systematic.Generate(tk, systematic.WithPatternMaxSize(1), systematic.WithDominancePruning(false))
	require.NoError(t, err)
	for _, p := range patterns {
		require.Len(t, p, 1)
	}
	require.Len(t, patterns, 3)
}
