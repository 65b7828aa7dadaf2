package hillclimbing

import (
	"errors"
	"math/rand"
	"time"

	"github.com/ipdb-go/ipdb/additive"
	"github.com/ipdb-go/ipdb/canonical"
	"github.com/ipdb-go/ipdb/pattern"
	"github.com/ipdb-go/ipdb/pdb"
	"github.com/ipdb-go/ipdb/sampler"
	"github.com/ipdb-go/ipdb/task"
)

// candidateEntry is one slot of the persistent candidate pool V (§4.G): a
// pattern whose PDB has been built exactly once, kept around for re-scoring
// every round until it either wins a round (and joins the collection) or is
// found to blow the collection size budget. pdb is nilled, never removed
// from the pool, once the slot is consumed or budget-rejected, so the slice
// index a round last saw a candidate at stays stable.
type candidateEntry struct {
	pattern pattern.Pattern
	pdb     *pdb.PDB
}

// Generate runs hill climbing over t and returns the refined collection
// (§4.G). Passing WithMaxTime(0) disables hill climbing entirely: Generate
// returns the unrefined initial, one-pattern-per-goal-variable collection.
func Generate(t task.Task, opts ...Option) (canonical.Info, error) {
	cfg := newConfig(opts...)
	if cfg.minImprovement > cfg.numSamples {
		return canonical.Info{}, ErrMinImprovementExceedsSamples
	}

	collection, err := canonical.NewInitial(t)
	if err != nil {
		return canonical.Info{}, err
	}

	if cfg.maxTime == 0 {
		cfg.logger.Infof("hillclimbing: disabled (max_time=0), returning initial collection")
		return finish(collection, cfg), nil
	}

	var deadline time.Time
	if cfg.maxTime != Unbounded {
		deadline = time.Now().Add(cfg.maxTime)
	}
	start := time.Now()

	rng := rand.New(rand.NewSource(cfg.seed))

	// newPatterns holds the patterns that still need a PDB built and folded
	// into pool before this round can score them against it: every pattern
	// reachable from the initial collection on iteration 1, then narrowing
	// to only the winning pattern's own extensions after each adopted round.
	newPatterns := generateCandidates(t, collection.Patterns(), collection.Patterns())

	generatedKeys := make(map[string]bool)
	var pool []*candidateEntry
	var numGenerated, numRejected, maxPDBSize, iterations int

	for {
		iterations++
		if !deadline.IsZero() && time.Now().After(deadline) {
			cfg.logger.Infof("hillclimbing: time budget exhausted after %d iteration(s)", iterations-1)
			iterations--
			break
		}

		if collection.IsDeadEnd(t.InitialState()) {
			cfg.logger.Infof("hillclimbing: iteration %d: collection size %d, initial h infinite", iterations, collection.GetSize())
			break
		}
		h0 := collection.GetValue(t.InitialState())
		cfg.logger.Infof("hillclimbing: iteration %d: collection size %d, initial h %d", iterations, collection.GetSize(), h0)

		// Fold newPatterns into the persistent pool, building each pattern's
		// PDB exactly once no matter how many rounds it survives in V.
		for _, cand := range newPatterns {
			key := cand.Key()
			if generatedKeys[key] {
				continue
			}
			generatedKeys[key] = true
			built, buildErr := pdb.Build(t, cand, cfg.pdbMaxSize)
			if buildErr != nil {
				if errors.Is(buildErr, pdb.ErrPatternTooLarge) {
					numRejected++
					cfg.logger.Infof("hillclimbing: candidate %v exceeds pdb_max_size, rejected", cand)
					continue
				}
				return canonical.Info{}, buildErr
			}
			numGenerated++
			if built.Size() > maxPDBSize {
				maxPDBSize = built.Size()
			}
			pool = append(pool, &candidateEntry{pattern: cand, pdb: built})
		}

		samples, sampleErr := sampler.Sample(t, collection, h0, cfg.numSamples, deadline, sampler.WithRand(rng))
		if sampleErr != nil {
			if errors.Is(sampleErr, sampler.ErrSamplingTimeout) {
				cfg.logger.Infof("hillclimbing: sampling timed out mid-round")
				break
			}
			return canonical.Info{}, sampleErr
		}

		// Re-score every still-live slot in the pool, not just this round's
		// new arrivals: a pattern that lost an earlier round stays eligible
		// as the collection (and therefore its h-improvement) changes.
		var bestEntry *candidateEntry
		bestCount := 0
		for _, entry := range pool {
			if entry.pdb == nil {
				continue // already consumed, or rejected for collection_max_size
			}
			if collection.GetSize()+entry.pdb.Size() > cfg.collectionMaxSize {
				entry.pdb = nil
				continue
			}
			count := countImprovements(collection, entry.pdb, entry.pattern, samples)
			if count > bestCount {
				bestCount = count
				bestEntry = entry
			}
		}

		if bestEntry == nil || bestCount < cfg.minImprovement {
			cfg.logger.Infof("hillclimbing: best candidate improved %d state(s), below min_improvement, converged", bestCount)
			break
		}

		if err := collection.AddPattern(bestEntry.pattern, cfg.pdbMaxSize); err != nil {
			return canonical.Info{}, err
		}
		cfg.logger.Infof("hillclimbing: adopted pattern %v (improved %d states)", bestEntry.pattern, bestCount)
		newPatterns = generateCandidates(t, []pattern.Pattern{bestEntry.pattern}, collection.Patterns())
		bestEntry.pdb = nil // consumed: now part of the collection itself
	}

	cfg.logger.Infof(
		"hillclimbing: summary: iterations=%d patterns=%d size=%d generated=%d rejected=%d max_pdb_size=%d elapsed=%s",
		iterations, len(collection.Patterns()), collection.GetSize(), numGenerated, numRejected, maxPDBSize, time.Since(start),
	)

	return finish(collection, cfg), nil
}

func finish(collection *canonical.Collection, cfg *Config) canonical.Info {
	if cfg.dominancePruning {
		return collection.PrunedInfo()
	}
	return collection.Info()
}

// generateCandidates extends every pattern in relevant by each causally
// connected predecessor variable of each variable it already contains
// (eff_to_pre arcs, §4.G), skipping anything already in the collection.
func generateCandidates(t task.Task, relevant, existing []pattern.Pattern) []pattern.Pattern {
	existingKeys := make(map[string]bool, len(existing))
	for _, p := range existing {
		existingKeys[p.Key()] = true
	}

	cg := t.CausalGraph()
	seen := make(map[string]bool)
	var out []pattern.Pattern
	for _, p := range relevant {
		for _, v := range p {
			for _, pred := range cg.EffToPre(v) {
				if p.Contains(pred) {
					continue
				}
				cand := pattern.New(append(append([]int(nil), []int(p)...), pred))
				key := cand.Key()
				if seen[key] || existingKeys[key] {
					continue
				}
				seen[key] = true
				out = append(out, cand)
			}
		}
	}
	return out
}

// countImprovements counts how many of samples get a strictly higher
// canonical heuristic estimate once candPattern/candPDB join the collection
// (§4.F "improves" test), without mutating collection.
func countImprovements(collection *canonical.Collection, candPDB *pdb.PDB, candPattern pattern.Pattern, samples []task.State) int {
	pdbs := collection.PDBs()
	restricted := collection.GetMaxAdditiveSubsets(candPattern)

	count := 0
	for _, s := range samples {
		if collection.IsDeadEnd(s) {
			continue
		}
		before := collection.GetValue(s)
		after := combinedValue(pdbs, restricted, candPDB, s, before)
		if after > before {
			count++
		}
	}
	return count
}

func combinedValue(pdbs []*pdb.PDB, restricted []additive.Subset, candPDB *pdb.PDB, s task.State, floor int64) int64 {
	best := floor
	candVal := candPDB.GetValue(s)
	for _, sub := range restricted {
		sum := candVal
		if sum != pdb.Infinity {
			for _, i := range sub {
				v := pdbs[i].GetValue(s)
				if v == pdb.Infinity {
					sum = pdb.Infinity
					break
				}
				sum += v
			}
		}
		if sum > best {
			best = sum
		}
	}
	return best
}
