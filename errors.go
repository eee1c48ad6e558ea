package audiograph

import "errors"

// Construction errors. Event registration failures are not errors:
// RegisterEvent reports them with a boolean so callers can register events
// in a loop and check each.
var (
	// ErrInvalidSamplingRate is returned when a graph is constructed with
	// a non-positive sampling rate.
	ErrInvalidSamplingRate = errors.New("invalid sampling rate")

	// ErrInvalidName is returned when a node name is empty or already
	// used within the graph.
	ErrInvalidName = errors.New("invalid node name")

	// ErrInvalidFireTime is returned when an event is constructed with a
	// negative fire time.
	ErrInvalidFireTime = errors.New("invalid fire time")
)
