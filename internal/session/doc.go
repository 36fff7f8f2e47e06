// Package session runs one array-processing pass: it collects input (from
// the console or from flags), applies the sequence operations in their
// fixed order and renders the resulting Report.
//
// Order of operations:
//
//	fill -> print -> EvenProduct -> HasPositiveWithRemainder
//	     -> ReplaceOddIndicesWithSquares -> print
//
// Every run is tagged with a run ID from a RunIDGenerator. Production uses
// time-sortable UUIDv7 IDs; tests use FixedGenerator for reproducible
// output.
package session
