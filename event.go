package audiograph

import "time"

type eventKind int

const (
	updateParams eventKind = iota
	noteOn
	noteOff
)

// Event is a scheduled unit of work: a parameter mutation or a gate change
// plus a fire time relative to stream start. An event is immutable once
// constructed and is consumed exactly once, at the first tick whose
// elapsed time reaches the fire time.
type Event struct {
	kind   eventKind
	at     int64 // fire sample index
	match  func(Generator) bool
	mutate func(Generator)
}

// UpdateParams constructs an event that applies fn to the target node's
// generator. The generator type is checked once, when the event is
// registered: registering against a node holding any other generator type
// reports false and leaves the graph unchanged.
func UpdateParams[G Generator](fn func(G), at time.Duration, g *Graph) (Event, error) {
	if at < 0 {
		return Event{}, ErrInvalidFireTime
	}
	return Event{
		kind: updateParams,
		at:   g.SampleRate().SamplesIn(at),
		match: func(gen Generator) bool {
			_, ok := gen.(G)
			return ok
		},
		mutate: func(gen Generator) {
			fn(gen.(G))
		},
	}, nil
}

// NoteOn constructs an event that unmutes the target node's output.
func NoteOn(at time.Duration, g *Graph) (Event, error) {
	if at < 0 {
		return Event{}, ErrInvalidFireTime
	}
	return Event{
		kind: noteOn,
		at:   g.SampleRate().SamplesIn(at),
	}, nil
}

// NoteOff constructs an event that mutes the target node's output from the
// fire time on.
func NoteOff(at time.Duration, g *Graph) (Event, error) {
	if at < 0 {
		return Event{}, ErrInvalidFireTime
	}
	return Event{
		kind: noteOff,
		at:   g.SampleRate().SamplesIn(at),
	}, nil
}

// bind resolves the event against a concrete node and returns the closure
// to enqueue. It reports false when a parameter mutation does not match
// the node's generator type.
func (e Event) bind(n *Node) (func(), bool) {
	switch e.kind {
	case noteOn:
		return func() { n.on = true }, true
	case noteOff:
		return func() { n.on = false }, true
	default:
		if e.match == nil || !e.match(n.gen) {
			return nil, false
		}
		gen := n.gen
		mutate := e.mutate
		return func() { mutate(gen) }, true
	}
}
