// Package systematic implements the systematic pattern generator (§4.H):
// given a variable-count budget, it enumerates candidate patterns either
// exhaustively in lexicographic order (Naive) or restricted to
// causally-connected variable sets in non-decreasing size order (Interesting).
package systematic

// Mode selects the enumeration strategy.
type Mode int

const (
	// Interesting restricts enumeration to patterns whose variables form a
	// connected induced subgraph of the task's (undirected) causal graph.
	// Every variable seeds a singleton, not only goal variables, and disjoint
	// unions of separately grown patterns are not formed.
	Interesting Mode = iota
	// Naive enumerates every combination of variables up to pattern_max_size,
	// in lexicographic order, regardless of causal connectivity.
	Naive
)

// Defaults (§6).
const (
	DefaultPatternMaxSize = 2
	DefaultPDBMaxSize     = 1_000_000
)

// Config holds the systematic generator's tunables. Obtain one only through
// options passed to Generate.
type Config struct {
	patternMaxSize   int
	pdbMaxSize       int
	mode             Mode
	dominancePruning bool
}

// Option customizes a Config. Validation that depends only on the literal
// argument panics immediately, matching the builder package's contract.
type Option func(*Config)

// WithPatternMaxSize caps the number of variables a generated pattern may
// contain. Panics if n is not positive.
func WithPatternMaxSize(n int) Option {
	if n < 1 {
		panic("systematic: WithPatternMaxSize requires n >= 1")
	}
	return func(cfg *Config) { cfg.patternMaxSize = n }
}

// WithPDBMaxSize caps a generated pattern's abstract state-space size;
// patterns exceeding it are skipped rather than returned. Panics if n is not
// positive.
func WithPDBMaxSize(n int) Option {
	if n <= 0 {
		panic("systematic: WithPDBMaxSize requires n > 0")
	}
	return func(cfg *Config) { cfg.pdbMaxSize = n }
}

// WithMode selects Naive or Interesting enumeration.
func WithMode(m Mode) Option {
	return func(cfg *Config) { cfg.mode = m }
}

// WithDominancePruning enables or disables dropping any generated pattern
// that is a variable-subset of another generated pattern (§4.H — distinct
// from canonical.Prune's additive-subset pruning, but the same idea: a
// strict superset pattern's PDB dominates its subset's pointwise).
func WithDominancePruning(enabled bool) Option {
	return func(cfg *Config) { cfg.dominancePruning = enabled }
}

func newConfig(opts ...Option) *Config {
	cfg := &Config{
		patternMaxSize:   DefaultPatternMaxSize,
		pdbMaxSize:       DefaultPDBMaxSize,
		mode:             Interesting,
		dominancePruning: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
