// Package wav saves streamed audiograph buffers to wav files. It is an
// external collaborator of the graph: it consumes buffers the graph has
// already produced and takes no part in scheduling.
package wav

import (
	"errors"
	"os"

	"github.com/go-audio/wav"

	"github.com/pipelined/audiograph/signal"
)

// ErrUnsupportedBitDepth is returned when unsupported bit depth is used.
var ErrUnsupportedBitDepth = errors.New("only 16 and 32 bit depth are supported")

// Sink saves streamed audio to a wav file.
type Sink struct {
	path     string
	bitDepth signal.BitDepth
}

// NewSink creates new wav sink.
func NewSink(path string, bitDepth signal.BitDepth) (*Sink, error) {
	if bitDepth != signal.BitDepth16 && bitDepth != signal.BitDepth32 {
		return nil, ErrUnsupportedBitDepth
	}
	return &Sink{
		path:     path,
		bitDepth: bitDepth,
	}, nil
}

// Write encodes the signal at the provided sample rate into the sink's
// file as mono PCM.
func (s *Sink) Write(buf signal.Float64, rate signal.SampleRate) error {
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}

	e := wav.NewEncoder(f, int(rate), int(s.bitDepth), 1, 1)
	if err = e.Write(buf.AsIntBuffer(rate, s.bitDepth)); err != nil {
		_ = f.Close()
		return err
	}
	if err = e.Close(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
