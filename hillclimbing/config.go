// Package hillclimbing implements the hill-climbing pattern-collection
// generator (§4.G): starting from one singleton pattern per goal variable,
// it repeatedly extends the most recently improved pattern by one
// causally-connected variable at a time, keeping whichever extension most
// improves sampled heuristic estimates, until no candidate clears the
// improvement threshold or a time/size budget runs out.
package hillclimbing

import (
	"time"

	"github.com/ipdb-go/ipdb/internal/diag"
)

// Unbounded is max_time's default: hill climbing runs until it converges
// (no improving candidate survives a round) with no wall-clock limit.
// Passing 0 to WithMaxTime instead disables hill climbing entirely — Generate
// returns the initial collection unrefined (§6 "max_time: 0 disables hill
// climbing").
const Unbounded time.Duration = -1

// Defaults mirror the Fast Downward hill-climbing generator's own (§6).
const (
	DefaultPDBMaxSize        = 2_000_000
	DefaultCollectionMaxSize = 20_000_000
	DefaultNumSamples        = 1000
	DefaultMinImprovement    = 10
)

// Config holds hill climbing's tunables. Obtain one only through options
// passed to Generate; there is no exported zero-value constructor.
type Config struct {
	pdbMaxSize        int
	collectionMaxSize int
	numSamples        int
	minImprovement    int
	maxTime           time.Duration
	dominancePruning  bool
	seed              int64
	logger            *diag.Logger
}

// Option customizes a Config. As with the builder package's options,
// validation that depends only on the literal argument panics immediately
// (a programmer error, not a runtime condition); validation that depends on
// how options combine is deferred to Generate, which returns a sentinel
// error instead.
type Option func(*Config)

// WithPDBMaxSize caps any single candidate pattern's abstract state-space
// size. Panics if n is not positive.
func WithPDBMaxSize(n int) Option {
	if n <= 0 {
		panic("hillclimbing: WithPDBMaxSize requires n > 0")
	}
	return func(cfg *Config) { cfg.pdbMaxSize = n }
}

// WithCollectionMaxSize caps the sum of every PDB's size across the
// collection. Panics if n is not positive.
func WithCollectionMaxSize(n int) Option {
	if n <= 0 {
		panic("hillclimbing: WithCollectionMaxSize requires n > 0")
	}
	return func(cfg *Config) { cfg.collectionMaxSize = n }
}

// WithNumSamples sets how many random-walk states each round samples to
// evaluate a candidate. Panics if n is not positive.
func WithNumSamples(n int) Option {
	if n <= 0 {
		panic("hillclimbing: WithNumSamples requires n > 0")
	}
	return func(cfg *Config) { cfg.numSamples = n }
}

// WithMinImprovement sets the minimum number of sampled states a candidate
// must strictly improve to be adopted. Panics if n is negative.
func WithMinImprovement(n int) Option {
	if n < 0 {
		panic("hillclimbing: WithMinImprovement requires n >= 0")
	}
	return func(cfg *Config) { cfg.minImprovement = n }
}

// WithMaxTime bounds wall-clock time spent refining the collection.
// hillclimbing.Unbounded (the default) means no limit; 0 disables hill
// climbing entirely.
func WithMaxTime(d time.Duration) Option {
	return func(cfg *Config) { cfg.maxTime = d }
}

// WithDominancePruning enables or disables subset-of-subset pruning of the
// final max-additive-subsets family (§4.D).
func WithDominancePruning(enabled bool) Option {
	return func(cfg *Config) { cfg.dominancePruning = enabled }
}

// WithSeed seeds the sampler's RNG for reproducible runs.
func WithSeed(seed int64) Option {
	return func(cfg *Config) { cfg.seed = seed }
}

// WithLogger installs a diagnostics logger for the generator's progress
// lines (§6). Defaults to a no-op logger.
func WithLogger(l *diag.Logger) Option {
	return func(cfg *Config) {
		if l != nil {
			cfg.logger = l
		}
	}
}

func newConfig(opts ...Option) *Config {
	cfg := &Config{
		pdbMaxSize:        DefaultPDBMaxSize,
		collectionMaxSize: DefaultCollectionMaxSize,
		numSamples:        DefaultNumSamples,
		minImprovement:    DefaultMinImprovement,
		maxTime:           Unbounded,
		dominancePruning:  true,
		seed:              1,
		logger:            diag.Noop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
