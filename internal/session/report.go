package session

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/message"

	"github.com/roach88/arrayproc/internal/i18n"
	"github.com/roach88/arrayproc/internal/sequence"
)

// Report is the outcome of one run.
type Report struct {
	RunID    string            `json:"run_id" yaml:"run_id"`
	Size     int               `json:"size" yaml:"size"`
	Divisor  int               `json:"k" yaml:"k"`
	Random   bool              `json:"random" yaml:"random"`
	Original sequence.Sequence `json:"original" yaml:"original,flow"`

	// EvenProduct is sequence.NoEvenProduct when HasEven is false.
	EvenProduct int64 `json:"even_product" yaml:"even_product"`
	HasEven     bool  `json:"has_even" yaml:"has_even"`

	// HasRemainder is false whenever RemainderError is set. ZeroDivisor
	// marks the one expected cause: k == 0 skips the check.
	HasRemainder   bool   `json:"has_positive_remainder_2" yaml:"has_positive_remainder_2"`
	ZeroDivisor    bool   `json:"zero_divisor" yaml:"zero_divisor"`
	RemainderError string `json:"remainder_error,omitempty" yaml:"remainder_error,omitempty"`

	Processed sequence.Sequence `json:"processed" yaml:"processed,flow"`
}

// Process applies the sequence operations to seq in their fixed order.
// seq itself is not modified.
func Process(runID string, seq sequence.Sequence, k int) *Report {
	r := &Report{
		RunID:    runID,
		Size:     len(seq),
		Divisor:  k,
		Original: seq.Clone(),
	}

	r.EvenProduct = seq.EvenProduct()
	r.HasEven = r.EvenProduct != sequence.NoEvenProduct

	ok, err := seq.HasPositiveWithRemainder(k)
	r.HasRemainder = ok
	if err != nil {
		r.ZeroDivisor = errors.Is(err, sequence.ErrZeroDivisor)
		r.RemainderError = err.Error()
	}

	r.Processed = seq.ReplaceOddIndicesWithSquares()
	return r
}

// WriteText renders the console transcript of r.
func (r *Report) WriteText(w io.Writer, p *message.Printer) error {
	lines := []string{
		p.Sprintf(i18n.HeaderArray),
		r.Original.String(),
	}

	if r.HasEven {
		lines = append(lines, p.Sprintf(i18n.EvenProduct, strconv.FormatInt(r.EvenProduct, 10)))
	} else {
		lines = append(lines, p.Sprintf(i18n.NoEvenElements))
	}

	switch {
	case r.ZeroDivisor:
		lines = append(lines, p.Sprintf(i18n.ZeroDivisor))
	case r.HasRemainder:
		lines = append(lines, p.Sprintf(i18n.HasRemainder))
	default:
		lines = append(lines, p.Sprintf(i18n.NoRemainder))
	}

	lines = append(lines, p.Sprintf(i18n.HeaderProcessed), r.Processed.String())

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
