// Package pool reuses render buffers between stream calls.
package pool

import "sync"

var m = struct {
	sync.Mutex
	pools map[int]*sync.Pool
}{
	pools: map[int]*sync.Pool{},
}

// Get returns a zeroed float64 buffer of the requested size.
func Get(size int) []float64 {
	m.Lock()
	p, ok := m.pools[size]
	if !ok {
		p = &sync.Pool{
			New: func() interface{} {
				return make([]float64, size)
			},
		}
		m.pools[size] = p
	}
	m.Unlock()

	buf := p.Get().([]float64)
	for i := range buf {
		buf[i] = 0
	}
	return buf
}

// Put returns the buffer for reuse.
func Put(buf []float64) {
	m.Lock()
	p, ok := m.pools[len(buf)]
	m.Unlock()
	if ok {
		p.Put(buf)
	}
}
