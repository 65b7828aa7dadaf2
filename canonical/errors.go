package canonical

import "errors"

// ErrNoGoalVariables indicates the task's goal is empty, so no initial
// per-goal-variable singleton pattern collection can be formed (§4.E
// "Initial collection always contains one pattern per goal variable").
var ErrNoGoalVariables = errors.New("canonical: task has no goal variables")
