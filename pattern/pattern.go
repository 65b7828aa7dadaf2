// Package pattern defines the Pattern value type: a strictly increasing
// sequence of variable ids identifying a projection abstraction (§3).
package pattern

import (
	"sort"

	"github.com/ipdb-go/ipdb/task"
)

// Pattern is a sorted, duplicate-free sequence of variable ids. The zero
// value is the empty pattern. Two patterns are equal iff their sequences are
// equal; use Key for use as a map key.
type Pattern []int

// New canonicalizes vars into a Pattern: sorted ascending, duplicates
// removed. The input slice is not mutated.
func New(vars []int) Pattern {
	cp := append([]int(nil), vars...)
	sort.Ints(cp)
	out := cp[:0]
	for i, v := range cp {
		if i == 0 || v != cp[i-1] {
			out = append(out, v)
		}
	}
	return Pattern(out)
}

// Union returns the sorted union of p and q as a new Pattern.
func Union(p, q Pattern) Pattern {
	out := make([]int, 0, len(p)+len(q))
	i, j := 0, 0
	for i < len(p) && j < len(q) {
		switch {
		case p[i] < q[j]:
			out = append(out, p[i])
			i++
		case p[i] > q[j]:
			out = append(out, q[j])
			j++
		default:
			out = append(out, p[i])
			i++
			j++
		}
	}
	out = append(out, p[i:]...)
	out = append(out, q[j:]...)
	return Pattern(out)
}

// Disjoint reports whether p and q share no variable.
func Disjoint(p, q Pattern) bool {
	i, j := 0, 0
	for i < len(p) && j < len(q) {
		switch {
		case p[i] == q[j]:
			return false
		case p[i] < q[j]:
			i++
		default:
			j++
		}
	}
	return true
}

// Contains reports whether v is a member of p (p must be sorted, which New
// and Union both guarantee).
func (p Pattern) Contains(v int) bool {
	i := sort.SearchInts(p, v)
	return i < len(p) && p[i] == v
}

// Size returns the product of domain sizes of the pattern's variables — the
// number of abstract states over this pattern (§3).
func (p Pattern) Size(vars []task.Variable) int {
	size := 1
	for _, v := range p {
		size *= vars[v].Domain
	}
	return size
}

// Key returns a string usable as a map key, suitable for pattern dedup sets
// (§4.G's generated_patterns, §4.H's pattern_set).
func (p Pattern) Key() string {
	b := make([]byte, 0, len(p)*4)
	for i, v := range p {
		if i > 0 {
			b = append(b, ',')
		}
		b = appendInt(b, v)
	}
	return string(b)
}

func appendInt(b []byte, v int) []byte {
	if v == 0 {
		return append(b, '0')
	}
	neg := v < 0
	if neg {
		v = -v
	}
	start := len(b)
	for v > 0 {
		b = append(b, byte('0'+v%10))
		v /= 10
	}
	if neg {
		b = append(b, '-')
	}
	// reverse the digits just appended
	for i, j := start, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}

// Equal reports whether p and q contain the same variables in the same order.
func Equal(p, q Pattern) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}
