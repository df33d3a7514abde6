// Package runid names a single basel invocation. The same ID is attached to
// every log record as run_id and to structured output as trace_id, so a
// JSON result can be matched to the stderr lines that produced it.
package runid

import (
	"sync"

	"github.com/google/uuid"
)

// Generator hands out one ID per invocation.
type Generator interface {
	Generate() string
}

// UUIDv7Generator is the production source. v7 IDs embed a millisecond
// timestamp, so results collected from several runs sort by start time.
type UUIDv7Generator struct{}

// Generate returns a hyphenated UUIDv7. It panics only if the system
// random source fails.
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator replays a scripted list of IDs so golden output stays
// byte-stable across test runs.
type FixedGenerator struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedGenerator scripts the IDs returned by successive Generate calls.
func NewFixedGenerator(ids ...string) *FixedGenerator {
	return &FixedGenerator{ids: ids}
}

// Generate returns the next scripted ID. Running out means a test
// started more invocations than it planned for, so it panics.
func (g *FixedGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.ids) {
		panic("FixedGenerator: all run IDs exhausted")
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}
