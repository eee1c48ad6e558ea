package audiograph

import (
	"time"

	"github.com/rs/xid"

	"github.com/pipelined/audiograph/signal"
)

// Generator is an opaque waveform-producing unit attached to a node.
// Sample returns the generator's output for the provided stream time and
// must be deterministic under fixed parameters. A generator is sampled in
// strict tick order on its own node; distinct nodes may be sampled
// concurrently with each other.
type Generator interface {
	Sample(at time.Duration) float64
}

// Node is a named, stateful sound source. Its generator parameters are
// mutated by events registered against the node's name.
type Node struct {
	uid  string
	name string
	gen  Generator
	on   bool
}

// NewNode binds a name to a generator. The name identifies the node within
// a graph and cannot be empty.
func NewNode(name string, gen Generator) (*Node, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	return &Node{
		uid:  xid.New().String(),
		name: name,
		gen:  gen,
		on:   true,
	}, nil
}

// Name returns the node name.
func (n *Node) Name() string {
	return n.name
}

// renderInto streams len(dst) samples starting at the provided cursor.
// Events due at a tick are applied before that tick's sample is emitted.
// A gated-off node emits zeroes but keeps consuming events. Only the
// rendering goroutine touches the node during a stream call.
func (n *Node) renderInto(dst []float64, q *eventQueue, cursor int64, rate signal.SampleRate) {
	for i := range dst {
		idx := cursor + int64(i)
		for _, e := range q.popDue(idx) {
			e.fn()
		}
		if !n.on {
			dst[i] = 0
			continue
		}
		dst[i] = n.gen.Sample(rate.DurationOf(idx))
	}
}
