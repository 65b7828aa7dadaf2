// Package builder provides internal configuration types and functional options
// for graph constructors. It centralizes common settings such as random number
// generator, vertex ID scheme, and edge weight distribution to keep builder
// implementations DRY and consistent.
//
// The key type is BuilderOption, a function that mutates a builderConfig.
// builderConfig holds these fields:
//   - rng:     *rand.Rand source for randomness (nil → deterministic).
//   - idFn:    IDFn to produce vertex identifiers from integer indices.
//   - weightFn: WeightFn to produce edge weights given an RNG.
//   - leftPrefix, rightPrefix: CompleteBipartite partition label prefixes.
//
// Use newBuilderConfig to obtain a config with sensible defaults, then apply
// any number of BuilderOption in order. Later options override earlier ones.
//
// Complexity: newBuilderConfig applies N options in O(N) time, O(1) extra space.
package builder

import (
	"math/rand"
)

// defaultLeftPrefix and defaultRightPrefix name the two sides of
// CompleteBipartite when WithPartitionPrefix is never called or is called
// with empty strings.
const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// builderConfig holds the configurable parameters for graph builders:
//   - rng:        source of randomness (nil means deterministic).
//   - idFn:       function mapping index→vertex ID (IDFn).
//   - weightFn:   function mapping rng→edge weight (WeightFn).
//   - leftPrefix, rightPrefix: CompleteBipartite partition label prefixes.
//
// builderConfig is not safe for concurrent mutation; each builder invocation
// should create its own config via newBuilderConfig.
type builderConfig struct {
	rng                     *rand.Rand // optional RNG; nil means deterministic behavior
	idFn                    IDFn       // function to generate vertex IDs from indices
	weightFn                WeightFn   // function to generate edge weights
	leftPrefix, rightPrefix string     // CompleteBipartite partition prefixes
}

// newBuilderConfig returns a builderConfig initialized with defaults, then
// applies each provided BuilderOption in order. If opts is empty, returns
// defaults: nil RNG, DefaultIDFn, DefaultWeightFn, "L"/"R" prefixes.
//
// Complexity: O(len(opts)) time, O(1) extra space.
func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	// Initialize defaults
	cfg := &builderConfig{
		rng:        nil,             // no RNG → deterministic ID and weight functions
		idFn:       DefaultIDFn,     // decimal IDs "0","1",…
		weightFn:   DefaultWeightFn, // constant DefaultEdgeWeight
		leftPrefix: defaultLeftPrefix, rightPrefix: defaultRightPrefix,
	}

	// Apply each option in order; later options override earlier ones
	var opt BuilderOption
	for _, opt = range opts {
		opt(cfg)
	}

	// Empty prefixes (e.g. from WithPartitionPrefix("", "")) fall back to defaults.
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// WithIDScheme, WithWeightFn, WithRand, and WithSeed are declared in
// options.go, which also owns the BuilderOption type itself.
