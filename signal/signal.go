// Package signal provides an API to describe sampled signals. It allows to:
// 	- convert sample indices to elapsed stream time and back
//	- convert the graph's float64 buffers to go-audio buffer types
package signal

import (
	"math"
	"time"

	"github.com/go-audio/audio"
)

// SampleRate is a number of samples per second.
type SampleRate float64

// Float64 is a single channel of float64 samples.
type Float64 []float64

const (
	// BitDepth8 is 8 bit depth.
	BitDepth8 = BitDepth(8)
	// BitDepth16 is 16 bit depth.
	BitDepth16 = BitDepth(16)
	// BitDepth32 is 32 bit depth.
	BitDepth32 = BitDepth(32)
)

// BitDepth contains values required for float-to-int and backward conversion.
type BitDepth int

// devider is used when int to float conversion is done.
func (bitDepth BitDepth) devider() int {
	switch bitDepth {
	case BitDepth8:
		return math.MaxInt8
	case BitDepth16:
		return math.MaxInt16
	case BitDepth32:
		return math.MaxInt32
	default:
		return 1
	}
}

// multiplier is used when float to int conversion is done.
func (bitDepth BitDepth) multiplier() int {
	switch bitDepth {
	case BitDepth8:
		return math.MaxInt8 - 1
	case BitDepth16:
		return math.MaxInt16 - 1
	case BitDepth32:
		return math.MaxInt32 - 1
	default:
		return 1
	}
}

// DurationOf returns the elapsed stream time of the provided sample index
// for this sample rate.
func (rate SampleRate) DurationOf(sampleIndex int64) time.Duration {
	return time.Duration(float64(sampleIndex) / float64(rate) * float64(time.Second))
}

// SamplesIn returns the index of the first sample whose elapsed time is not
// less than d.
func (rate SampleRate) SamplesIn(d time.Duration) int64 {
	return int64(math.Ceil(d.Seconds() * float64(rate)))
}

// AsFloatBuffer copies the signal into a mono go-audio float buffer.
func (s Float64) AsFloatBuffer(rate SampleRate) *audio.FloatBuffer {
	if s == nil {
		return nil
	}
	return &audio.FloatBuffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: int(rate)},
		Data:   append([]float64(nil), s...),
	}
}

// AsIntBuffer converts the signal into a mono go-audio int buffer of the
// provided bit depth.
func (s Float64) AsIntBuffer(rate SampleRate, bitDepth BitDepth) *audio.IntBuffer {
	if s == nil {
		return nil
	}

	// determine the multiplier for bit depth conversion
	multiplier := float64(bitDepth.multiplier())

	ints := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: int(rate)},
		Data:           make([]int, len(s)),
		SourceBitDepth: int(bitDepth),
	}
	for i := range s {
		ints.Data[i] = int(s[i] * multiplier)
	}
	return ints
}

// Float64Of converts a go-audio int buffer back into a float64 signal
// using the buffer's source bit depth.
func Float64Of(ints *audio.IntBuffer) Float64 {
	if ints == nil || len(ints.Data) == 0 {
		return nil
	}

	// determine the devider for bit depth conversion
	devider := float64(BitDepth(ints.SourceBitDepth).devider())

	floats := make(Float64, len(ints.Data))
	for i, v := range ints.Data {
		floats[i] = float64(v) / devider
	}
	return floats
}
