// Package sequence implements the array processor: a fixed-length buffer of
// signed integers and the transformations applied to it during a run.
//
// A run performs, in order:
//
//  1. Fill: random values from [min, max] or values read from an ElementSource
//  2. EvenProduct: product of all even elements (NoEvenProduct if none)
//  3. HasPositiveWithRemainder: any e > 0 with e mod k == 2
//  4. ReplaceOddIndicesWithSquares: copy with a[i] = i*i for odd i
//
// None of the operations retain the sequence; callers own the buffer for
// the duration of the run.
package sequence
