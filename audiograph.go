package audiograph

import (
	"fmt"
	"runtime"

	"github.com/rs/xid"

	"github.com/pipelined/audiograph/internal/pool"
	"github.com/pipelined/audiograph/internal/runner"
	"github.com/pipelined/audiograph/log"
	"github.com/pipelined/audiograph/signal"
)

// Watcher is a handle used to target a node by name for event
// registration. It does not own the node, the graph does.
type Watcher struct {
	node *Node
}

// On establishes a node as watchable.
func On(n *Node) Watcher {
	return Watcher{node: n}
}

// Name returns the name of the watched node.
func (w Watcher) Name() string {
	if w.node == nil {
		return ""
	}
	return w.node.name
}

// line pairs a watched node with its pending events.
type line struct {
	node   *Node
	events eventQueue
}

// Combiner folds the per-tick outputs of all nodes into a single sample.
// Implementations must be insensitive to node order: the values slice is
// always populated in node registration order, which keeps parallel and
// sequential streaming bit-for-bit identical.
type Combiner func(values []float64) float64

// Sum adds node outputs. It is the default combine policy.
func Sum(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum
}

// Average divides the sum of node outputs by the number of nodes. An empty
// graph yields zero.
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return Sum(values) / float64(len(values))
}

// Graph owns a set of watched nodes, coordinates event dispatch against
// the sample clock and streams the combined signal into caller-provided
// buffers. The sample cursor persists across Stream calls, so repeated
// calls continue the stream rather than restarting it.
type Graph struct {
	uid    string
	name   string
	rate   signal.SampleRate
	cursor int64

	lines []*line          // node registration order
	names map[string]*line

	combine Combiner
	workers int
	log     log.Logger
}

// Option provides a way to set functional parameters to the graph.
type Option func(*Graph) error

// WithName sets name to the graph.
func WithName(n string) Option {
	return func(g *Graph) error {
		g.name = n
		return nil
	}
}

// WithLogger sets logger to the graph. If this option is not provided, a
// logger from the log package is used.
func WithLogger(logger log.Logger) Option {
	return func(g *Graph) error {
		g.log = logger
		return nil
	}
}

// WithCombiner sets the combine policy for node outputs. The default is
// Sum.
func WithCombiner(c Combiner) Option {
	return func(g *Graph) error {
		g.combine = c
		return nil
	}
}

// WithWorkers bounds the number of worker lanes used by parallel
// streaming. The default is the number of CPUs.
func WithWorkers(workers int) Option {
	return func(g *Graph) error {
		g.workers = workers
		return nil
	}
}

// New creates a graph with the provided sampling rate and an initial
// watched node, then applies provided options. The graph starts at zero
// elapsed time.
func New(rate signal.SampleRate, w Watcher, options ...Option) (*Graph, error) {
	if rate <= 0 {
		return nil, ErrInvalidSamplingRate
	}
	g := &Graph{
		uid:     xid.New().String(),
		rate:    rate,
		names:   make(map[string]*line),
		combine: Sum,
		workers: runtime.NumCPU(),
		log:     log.GetLogger(),
	}
	for _, option := range options {
		if err := option(g); err != nil {
			return nil, err
		}
	}
	if err := g.Watch(w); err != nil {
		return nil, err
	}
	return g, nil
}

// SampleRate returns the graph's sampling rate.
func (g *Graph) SampleRate() signal.SampleRate {
	return g.rate
}

// Watch adds a watched node to the graph. Node names are unique within a
// graph.
func (g *Graph) Watch(w Watcher) error {
	if w.node == nil {
		return ErrInvalidName
	}
	if _, ok := g.names[w.node.name]; ok {
		return ErrInvalidName
	}
	l := &line{node: w.node}
	g.lines = append(g.lines, l)
	g.names[w.node.name] = l
	g.log.Debug("graph ", g, " watch node ", w.node.name, " ", w.node.uid)
	return nil
}

// Delete removes a node and its pending events from the graph. It reports
// whether the name was found.
func (g *Graph) Delete(name string) bool {
	l, ok := g.names[name]
	if !ok {
		return false
	}
	delete(g.names, name)
	for i := range g.lines {
		if g.lines[i] == l {
			g.lines = append(g.lines[:i], g.lines[i+1:]...)
			break
		}
	}
	g.log.Debug("graph ", g, " delete node ", name)
	return true
}

// RegisterEvent enqueues an event against the named node. It reports false
// when the name is unknown or when the event's mutation does not match the
// node's generator type; the graph is left unchanged in both cases.
func (g *Graph) RegisterEvent(name string, e Event) bool {
	l, ok := g.names[name]
	if !ok {
		g.log.Debug("graph ", g, " register: unknown node ", name)
		return false
	}
	fn, ok := e.bind(l.node)
	if !ok {
		g.log.Debug("graph ", g, " register: mismatched event for node ", name)
		return false
	}
	l.events.insert(entry{at: e.at, fn: fn})
	return true
}

// Stream fills buf with the next len(buf) samples of the composite signal.
// For every tick, due events are applied to their nodes first, then every
// node emits one sample and the combine policy folds the outputs into the
// buffer slot. When parallel is true, nodes render on separate worker
// lanes; the combine step always walks nodes in registration order, so
// both modes fill the buffer identically.
func (g *Graph) Stream(buf []float64, parallel bool) {
	if len(buf) == 0 {
		return
	}

	scratch := make([][]float64, len(g.lines))
	for i := range scratch {
		scratch[i] = pool.Get(len(buf))
	}

	if parallel {
		tasks := make([]runner.Task, len(g.lines))
		for i := range g.lines {
			l, dst := g.lines[i], scratch[i]
			tasks[i] = func() {
				l.node.renderInto(dst, &l.events, g.cursor, g.rate)
			}
		}
		runner.Execute(g.workers, tasks)
	} else {
		for i, l := range g.lines {
			l.node.renderInto(scratch[i], &l.events, g.cursor, g.rate)
		}
	}

	values := make([]float64, len(g.lines))
	for i := range buf {
		for j := range scratch {
			values[j] = scratch[j][i]
		}
		buf[i] = g.combine(values)
	}

	for i := range scratch {
		pool.Put(scratch[i])
	}
	g.cursor += int64(len(buf))
}

// Next produces the next single sample of the stream.
func (g *Graph) Next() float64 {
	var buf [1]float64
	g.Stream(buf[:], false)
	return buf[0]
}

// String returns graph name if set, uid otherwise.
func (g *Graph) String() string {
	if g.name == "" {
		return g.uid
	}
	return fmt.Sprintf("%v %v", g.name, g.uid)
}
