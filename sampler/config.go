// Package sampler draws the random-walk states hill climbing (package
// hillclimbing, §4.G) uses to estimate a candidate pattern's improvement
// potential (§4.F).
//
// Configuration follows the builder package's functional-options contract
// (github.com/ipdb-go/ipdb/builder): a Config is never constructed directly,
// options are applied in order, and an explicit *rand.Rand can always be
// substituted for reproducible walks.
package sampler

import "math/rand"

// Option customizes a Config. Options never panic; a nil argument is a
// no-op (unlike builder.WithRand, which panics on nil).
type Option func(*Config)

// Config holds the sampler's tunables. The zero value is never used
// directly; obtain one via newConfig.
type Config struct {
	rng *rand.Rand
}

// WithRand installs an explicit RNG source. A nil rng leaves the existing
// source untouched.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *Config) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithSeed seeds a fresh RNG from seed, for reproducible sampling runs.
func WithSeed(seed int64) Option {
	return func(cfg *Config) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

func newConfig(opts ...Option) *Config {
	cfg := &Config{rng: rand.New(rand.NewSource(1))}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
