/*
Package audiograph streams a set of independently evolving sound sources
into a single sample buffer, mutating them over time with scheduled
events.

Concept

A graph owns named nodes. Each node wraps an opaque generator: any type
with a Sample method producing the next output value for a given stream
time. Nodes never see each other's state, which is what makes parallel
rendering safe without locking.

Events are parameter mutations (or note gates) with a fire time relative
to stream start. They are registered against a node by name and applied in
ascending fire-time order, ties resolved by registration order, always
before the sample of the tick they fire on is emitted.

Streaming

Stream fills a caller-provided buffer. For every sample index the graph
computes the elapsed stream time, lets each node consume its due events
and emit one sample, then folds all node outputs into the buffer slot with
the combine policy (summation unless configured otherwise). The sample
cursor persists across calls, so consecutive calls continue the stream.

	sw, _ := audiograph.NewNode("sw1", generate.NewSineWave(0.1, 2500))
	g, _ := audiograph.New(44100, audiograph.On(sw))

	e, _ := audiograph.UpdateParams(func(s *generate.SineWave) {
		s.Params.Freq *= 1.1
	}, 2*time.Second, g)
	g.RegisterEvent("sw1", e)

	buf := make([]float64, 44100*5)
	g.Stream(buf, true)

The parallel flag of Stream fans node rendering across worker lanes. The
combine step walks nodes in registration order in both modes, so parallel
and sequential runs fill the buffer identically.
*/
package audiograph
