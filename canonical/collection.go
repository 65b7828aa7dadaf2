package canonical

import (
	"math"

	"github.com/ipdb-go/ipdb/additive"
	"github.com/ipdb-go/ipdb/pattern"
	"github.com/ipdb-go/ipdb/pdb"
	"github.com/ipdb-go/ipdb/task"
)

// Collection is the incremental canonical pattern database collection of
// §4.E: a growing list of patterns, their PDBs, and the max-additive-subsets
// family recomputed over them.
type Collection struct {
	t        task.Task
	idx      *additive.Index
	patterns []pattern.Pattern
	pdbs     []*pdb.PDB
	family   []additive.Subset
}

// NewInitial builds the initial collection: one singleton pattern per goal
// variable, built with no size budget (§4.E — the initial collection is
// constructed even if it would violate pdb_max_size). A task with an empty
// goal has nothing to seed the collection with.
func NewInitial(t task.Task) (*Collection, error) {
	goalVars := sortedGoalVars(t)
	if len(goalVars) == 0 {
		return nil, ErrNoGoalVariables
	}

	c := &Collection{t: t, idx: additive.NewIndex(t)}
	for _, v := range goalVars {
		p, err := pdb.Build(t, pattern.New([]int{v}), math.MaxInt)
		if err != nil {
			return nil, err
		}
		c.patterns = append(c.patterns, p.Pattern())
		c.pdbs = append(c.pdbs, p)
	}
	c.recompute()
	return c, nil
}

// Build constructs a collection directly from an explicit pattern list, each
// built under maxSize, and recomputes the max-additive-subsets family once
// over the whole set. Used by generators (e.g. systematic) that produce
// their full pattern list up front rather than growing it one pattern at a
// time.
func Build(t task.Task, patterns []pattern.Pattern, maxSize int) (*Collection, error) {
	c := &Collection{t: t, idx: additive.NewIndex(t)}
	for _, p := range patterns {
		built, err := pdb.Build(t, p, maxSize)
		if err != nil {
			return nil, err
		}
		c.patterns = append(c.patterns, built.Pattern())
		c.pdbs = append(c.pdbs, built)
	}
	c.recompute()
	return c, nil
}

// AddPattern builds p under maxSize and appends it to the collection,
// recomputing the max-additive-subsets family from scratch (§4.E — the
// family is cheap enough over realistic collection sizes that incremental
// maintenance isn't worth the complexity).
func (c *Collection) AddPattern(p pattern.Pattern, maxSize int) error {
	built, err := pdb.Build(c.t, p, maxSize)
	if err != nil {
		return err
	}
	c.patterns = append(c.patterns, built.Pattern())
	c.pdbs = append(c.pdbs, built)
	c.recompute()
	return nil
}

func (c *Collection) recompute() {
	c.family = c.idx.MaxSubsets(c.pdbs)
}

// GetValue returns the canonical heuristic value H(s) for the collection as
// it currently stands (§4.D).
func (c *Collection) GetValue(s task.State) int64 {
	return Value(c.family, c.pdbs, s)
}

// IsDeadEnd reports whether s is a dead end under the current collection.
func (c *Collection) IsDeadEnd(s task.State) bool {
	return IsDeadEnd(c.family, c.pdbs, s)
}

// GetSize returns the sum of every PDB's state-space size in the collection,
// the usual collection_max_size accounting unit (§6).
func (c *Collection) GetSize() int {
	total := 0
	for _, p := range c.pdbs {
		total += p.Size()
	}
	return total
}

// Patterns returns the collection's patterns in insertion order.
func (c *Collection) Patterns() []pattern.Pattern {
	return append([]pattern.Pattern(nil), c.patterns...)
}

// PDBs returns the collection's immutable PDB list in insertion order.
func (c *Collection) PDBs() []*pdb.PDB {
	return append([]*pdb.PDB(nil), c.pdbs...)
}

// GetMaxAdditiveSubsets restricts the collection's current max-additive-
// subsets family to the PDBs additive with candidate q, one filtered group
// per existing subset (§4.E). Every member of a filtered group remains
// pairwise additive (it was already additive within its parent subset) and
// is additive with q, so {q} ∪ group is a valid additive subset of the
// hypothetical collection with q added — without recomputing cliques over
// the whole collection plus q.
func (c *Collection) GetMaxAdditiveSubsets(q pattern.Pattern) []additive.Subset {
	out := make([]additive.Subset, 0, len(c.family))
	for _, sub := range c.family {
		var filtered additive.Subset
		for _, i := range sub {
			if c.idx.Additive(c.pdbs[i].Pattern(), q) {
				filtered = append(filtered, i)
			}
		}
		out = append(out, filtered)
	}
	return out
}

// Info bundles the collection's current state as the generator-facing
// result described in §6.
func (c *Collection) Info() Info {
	return Info{
		Task:               c.t,
		Patterns:           c.Patterns(),
		PDBs:               c.PDBs(),
		MaxAdditiveSubsets: append([]additive.Subset(nil), c.family...),
	}
}

// PrunedInfo is Info with dominance pruning applied to the max-additive-
// subsets family (§4.D), for generators whose configuration enables it.
func (c *Collection) PrunedInfo() Info {
	info := c.Info()
	info.MaxAdditiveSubsets = Prune(info.MaxAdditiveSubsets)
	return info
}
