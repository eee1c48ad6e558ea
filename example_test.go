package audiograph_test

import (
	"fmt"
	"time"

	"github.com/pipelined/audiograph"
	"github.com/pipelined/audiograph/generate"
)

func Example() {
	// one constant source, muted half way through the stream
	sw, _ := audiograph.NewNode("sw1", generate.NewConstant(0.5))
	g, _ := audiograph.New(4, audiograph.On(sw))

	off, _ := audiograph.NoteOff(500*time.Millisecond, g)
	g.RegisterEvent("sw1", off)

	buf := make([]float64, 4)
	g.Stream(buf, true)
	fmt.Println(buf)

	// Output:
	// [0.5 0.5 0 0]
}
