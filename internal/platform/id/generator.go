package id

import (
	"fmt"
)

const (
	canonicalPrefix = "p_"
	canonicalDigits = 10
	maxSequence     = 9_999_999_999
)

// Sequence mints p_-prefixed, zero-padded ids from a monotonically increasing counter.
type Sequence struct {
	next int
}

func NewSequence(next int) *Sequence {
	if next < 1 {
		next = 1
	}
	return &Sequence{next: next}
}

func (g *Sequence) NewID() (string, error) {
	if g.next > maxSequence {
		return "", fmt.Errorf("id sequence exhausted at %d", g.next)
	}
	out := Format(g.next)
	g.next++
	return out, nil
}

// Next is the counter value the following NewID call will use.
func (g *Sequence) Next() int {
	return g.next
}

func Format(n int) string {
	return fmt.Sprintf("%s%0*d", canonicalPrefix, canonicalDigits, n)
}
