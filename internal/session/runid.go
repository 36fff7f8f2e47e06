package session

import "github.com/google/uuid"

// RunIDGenerator names a run. The ID appears in the Report, in the
// trace_id of structured output and in log records.
type RunIDGenerator interface {
	Generate() string
}

// UUIDv7Generator names runs with UUIDv7 values, which sort by start time.
type UUIDv7Generator struct{}

// Generate returns a fresh UUIDv7 in its 36-character text form.
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator hands out a scripted list of run IDs so reports can be
// compared byte for byte. Runs are sequential, so no locking is needed.
type FixedGenerator struct {
	ids  []string
	next int
}

// NewFixedGenerator scripts the IDs returned by successive Generate calls.
func NewFixedGenerator(ids ...string) *FixedGenerator {
	return &FixedGenerator{ids: ids}
}

// Generate returns the next scripted ID. Asking for more IDs than were
// scripted panics: it means a test processed more runs than it declared.
func (g *FixedGenerator) Generate() string {
	if g.next == len(g.ids) {
		panic("FixedGenerator: no run IDs left")
	}
	id := g.ids[g.next]
	g.next++
	return id
}
