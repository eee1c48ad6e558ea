// Package generate provides reference generators for audiograph nodes.
// Generators are opaque to the graph: it only asks them for the next
// sample, so any type with a Sample method can be attached to a node.
package generate

import (
	"math"
	"time"
)

type (
	// SineWaveParams control the shape of a sine wave.
	SineWaveParams struct {
		Amplitude float64
		Freq      float64
	}

	// SineWave generates a sine wave signal.
	SineWave struct {
		Params SineWaveParams
	}

	// ConstantParams hold the value emitted by a Constant.
	ConstantParams struct {
		Value float64
	}

	// Constant emits its parameter value verbatim on every tick.
	Constant struct {
		Params ConstantParams
	}
)

// NewSineWave returns a sine wave generator with provided amplitude and
// frequency in Hz.
func NewSineWave(amplitude, freq float64) *SineWave {
	return &SineWave{
		Params: SineWaveParams{
			Amplitude: amplitude,
			Freq:      freq,
		},
	}
}

// Sample returns the sine value at the provided stream time.
func (g *SineWave) Sample(at time.Duration) float64 {
	return math.Sin(2*math.Pi*g.Params.Freq*at.Seconds()) * g.Params.Amplitude
}

// NewConstant returns a generator emitting the provided value.
func NewConstant(value float64) *Constant {
	return &Constant{
		Params: ConstantParams{
			Value: value,
		},
	}
}

// Sample returns the constant value.
func (g *Constant) Sample(time.Duration) float64 {
	return g.Params.Value
}
