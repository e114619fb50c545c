// Package letters packs ASCII letters into a 52-bit set: a..z use bits 0..25
// and A..Z use bits 26..51, so the index of a bit plus one is the letter's
// priority.
package letters

import (
	"fmt"
	"math/bits"
)

type Set uint64

func Index(c byte) (int, error) {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a'), nil
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 26, nil
	default:
		return 0, fmt.Errorf("not an ASCII letter: %q", c)
	}
}

func FromString(s string) (Set, error) {
	var set Set
	for i := 0; i < len(s); i++ {
		idx, err := Index(s[i])
		if err != nil {
			return 0, err
		}
		set |= 1 << idx
	}
	return set, nil
}

func (s Set) Intersect(other Set) Set {
	return s & other
}

func (s Set) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Priority is the priority of the lowest letter in the set, or 0 when empty.
func (s Set) Priority() int {
	if s == 0 {
		return 0
	}
	return bits.TrailingZeros64(uint64(s)) + 1
}
