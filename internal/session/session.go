package session

import (
	"io"
	"log/slog"
	"math/rand/v2"

	"golang.org/x/text/message"

	"github.com/roach88/arrayproc/internal/i18n"
	"github.com/roach88/arrayproc/internal/prompt"
	"github.com/roach88/arrayproc/internal/sequence"
)

// Options configures an interactive Session.
type Options struct {
	In      io.Reader
	Out     io.Writer // prompts and input errors
	Printer *message.Printer

	MaxAttempts int
	MaxSize     int

	// Rand drives random fill. If nil, a freshly seeded source is used.
	Rand *rand.Rand

	// IDs generates run IDs. If nil, defaults to UUIDv7Generator.
	IDs RunIDGenerator
}

// Session asks for the run parameters on the console and processes them.
type Session struct {
	prompter *prompt.Prompter
	maxSize  int
	rng      *rand.Rand
	ids      RunIDGenerator
}

// New creates a Session from opts.
func New(opts Options) *Session {
	printer := opts.Printer
	if printer == nil {
		printer = i18n.NewPrinter("en")
	}
	rng := opts.Rand
	if rng == nil {
		rng = NewRand(0)
	}
	ids := opts.IDs
	if ids == nil {
		ids = UUIDv7Generator{}
	}
	return &Session{
		prompter: prompt.New(opts.In, opts.Out, printer, opts.MaxAttempts),
		maxSize:  opts.MaxSize,
		rng:      rng,
		ids:      ids,
	}
}

// Run prompts for size, k, fill mode and values, then processes the
// sequence. Errors are returned unreported; the caller decides how to show
// them.
func (s *Session) Run() (*Report, error) {
	size, err := s.prompter.Size()
	if err != nil {
		return nil, err
	}
	k, err := s.prompter.Divisor()
	if err != nil {
		return nil, err
	}

	seq, err := sequence.New(size, s.maxSize)
	if err != nil {
		return nil, err
	}

	random, err := s.prompter.FillMode()
	if err != nil {
		return nil, err
	}
	if random {
		lo, hi, err := s.prompter.Range()
		if err != nil {
			return nil, err
		}
		if err := seq.FillRandom(s.rng, lo, hi); err != nil {
			return nil, err
		}
	} else if err := seq.FillFrom(s.prompter); err != nil {
		return nil, err
	}

	r := Process(s.ids.Generate(), seq, k)
	r.Random = random
	slog.Debug("session processed", "run_id", r.RunID, "size", r.Size, "k", k, "random", random)
	return r, nil
}

// Evaluate processes explicit values without prompting.
func Evaluate(runID string, values []int, k, maxSize int) (*Report, error) {
	seq, err := sequence.New(len(values), maxSize)
	if err != nil {
		return nil, err
	}
	copy(seq, values)
	return Process(runID, seq, k), nil
}

// EvaluateRandom processes a randomly filled sequence without prompting.
func EvaluateRandom(runID string, rng *rand.Rand, size, lo, hi, k, maxSize int) (*Report, error) {
	seq, err := sequence.New(size, maxSize)
	if err != nil {
		return nil, err
	}
	if err := seq.FillRandom(rng, lo, hi); err != nil {
		return nil, err
	}
	r := Process(runID, seq, k)
	r.Random = true
	return r, nil
}

// NewRand returns a PCG source seeded with seed, or with a random seed when
// seed is 0.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}
