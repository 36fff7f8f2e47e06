// Package testutil provides deterministic inputs for tests: scripted console
// answers and seeded random sources.
package testutil

import (
	"io"
	"math/rand/v2"
	"strings"
)

// Lines returns a reader yielding each answer followed by a newline, the
// way a user would type them.
//
// Example:
//
//	in := Lines("4", "3", "0", "1", "2", "3", "4")
func Lines(answers ...string) io.Reader {
	var b strings.Builder
	for _, a := range answers {
		b.WriteString(a)
		b.WriteByte('\n')
	}
	return strings.NewReader(b.String())
}

// Rand returns a PCG source seeded with seed on both halves, so the same
// seed always yields the same sequence.
func Rand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
