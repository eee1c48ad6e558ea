package audiograph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueOrder(t *testing.T) {
	var q eventQueue
	var order []int
	add := func(at int64, id int) {
		q.insert(entry{at: at, fn: func() { order = append(order, id) }})
	}

	add(5, 3)
	add(0, 1)
	add(5, 4)
	add(2, 2)

	for _, e := range q.popDue(5) {
		e.fn()
	}
	assert.Equal(t, []int{1, 2, 3, 4}, order)
	assert.Zero(t, q.len())
}

func TestQueuePopDuePartial(t *testing.T) {
	var q eventQueue
	for _, at := range []int64{0, 2, 2, 7} {
		q.insert(entry{at: at, fn: func() {}})
	}

	assert.Len(t, q.popDue(1), 1)
	assert.Len(t, q.popDue(2), 2)
	assert.Zero(t, len(q.popDue(6)))
	assert.Len(t, q.popDue(7), 1)
	assert.Zero(t, q.len())
}

func TestQueuePopDueEmpty(t *testing.T) {
	var q eventQueue
	assert.Nil(t, q.popDue(1000))
}
