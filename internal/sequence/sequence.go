package sequence

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// NoEvenProduct is returned by EvenProduct when the sequence holds no even
// element. A product of even numbers is always even, so -1 never collides
// with a real product.
const NoEvenProduct int64 = -1

// DefaultLimit caps the number of elements New will allocate.
const DefaultLimit = 1 << 20

// Sequence is a fixed-length, mutable run of signed integers.
type Sequence []int

// ElementSource supplies element values in index order.
type ElementSource interface {
	NextElement(index int) (int, error)
}

// New allocates a zeroed sequence of the given size.
// A limit <= 0 means DefaultLimit.
func New(size, limit int) (Sequence, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrEmpty, size)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if size > limit {
		return nil, fmt.Errorf("%w: %d elements exceeds limit %d", ErrAllocation, size, limit)
	}
	return make(Sequence, size), nil
}

// FillRandom overwrites every element with a value drawn uniformly from
// [lo, hi].
func (s Sequence) FillRandom(rng *rand.Rand, lo, hi int) error {
	if lo > hi {
		return fmt.Errorf("%w: min=%d max=%d", ErrInvalidRange, lo, hi)
	}
	// Span is computed in uint64 so the full int range does not overflow.
	span := uint64(hi) - uint64(lo) + 1
	for i := range s {
		if span == 0 {
			s[i] = int(rng.Uint64())
			continue
		}
		s[i] = lo + int(rng.Uint64N(span))
	}
	return nil
}

// FillFrom reads every element from src in index order.
func (s Sequence) FillFrom(src ElementSource) error {
	for i := range s {
		v, err := src.NextElement(i)
		if err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		s[i] = v
	}
	return nil
}

// EvenProduct returns the product of all elements divisible by 2, or
// NoEvenProduct when there are none. The product wraps on int64 overflow.
func (s Sequence) EvenProduct() int64 {
	product := int64(1)
	found := false
	for _, e := range s {
		if e%2 == 0 {
			product *= int64(e)
			found = true
		}
	}
	if !found {
		return NoEvenProduct
	}
	return product
}

// ReplaceOddIndicesWithSquares returns a copy of s in which every element at
// an odd index i is replaced by i*i. The receiver is left untouched.
func (s Sequence) ReplaceOddIndicesWithSquares() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)
	for i := 1; i < len(out); i += 2 {
		out[i] = i * i
	}
	return out
}

// HasPositiveWithRemainder reports whether any element e satisfies
// e > 0 and e mod k == 2.
func (s Sequence) HasPositiveWithRemainder(k int) (bool, error) {
	if k == 0 {
		return false, ErrZeroDivisor
	}
	for _, e := range s {
		if e > 0 && e%k == 2 {
			return true, nil
		}
	}
	return false, nil
}

// Clone returns an independent copy of s.
func (s Sequence) Clone() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// String renders the elements space-separated on one line.
func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, e := range s {
		parts[i] = strconv.Itoa(e)
	}
	return strings.Join(parts, " ")
}
