package hillclimbing

import "errors"

// ErrMinImprovementExceedsSamples indicates min_improvement was configured
// greater than num_samples, making the improvement threshold unreachable by
// construction — a cross-field condition, so it surfaces as a sentinel error
// from Generate rather than a panic from an individual With* option.
var ErrMinImprovementExceedsSamples = errors.New("hillclimbing: min_improvement exceeds num_samples")
