package letters

import (
	"math/bits"
	"strings"
)

// Set is a presence mask over the 26-letter alphabet. Bit i is set when
// letter i (A=0) is a member.
type Set uint32

// Insert returns the set with l added.
func (s Set) Insert(l Letter) Set {
	return s | l.Bit()
}

// Has reports whether l is a member.
func (s Set) Has(l Letter) bool {
	return s&l.Bit() != 0
}

// Union returns the members of either set.
func (s Set) Union(o Set) Set {
	return s | o
}

// Intersect returns the members common to both sets.
func (s Set) Intersect(o Set) Set {
	return s & o
}

// Len returns the number of members.
func (s Set) Len() int {
	return bits.OnesCount32(uint32(s))
}

// IsEmpty reports whether the set has no members.
func (s Set) IsEmpty() bool {
	return s == 0
}

// Letters returns the members in A to Z order.
func (s Set) Letters() []Letter {
	out := make([]Letter, 0, s.Len())
	for v := uint32(s); v != 0; v &= v - 1 {
		out = append(out, Letter(bits.TrailingZeros32(v)))
	}
	return out
}

func (s Set) String() string {
	var sb strings.Builder
	sb.Grow(s.Len())
	for v := uint32(s); v != 0; v &= v - 1 {
		sb.WriteByte(Letter(bits.TrailingZeros32(v)).Byte())
	}
	return sb.String()
}
