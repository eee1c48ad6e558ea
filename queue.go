package audiograph

import "sort"

// entry is an event bound to its node, keyed by fire sample index.
type entry struct {
	at int64
	fn func()
}

// eventQueue holds a node's pending events ordered by ascending fire
// index. Entries with equal fire indices keep their registration order.
type eventQueue struct {
	entries []entry
}

// insert places e after every entry with the same or smaller fire index.
func (q *eventQueue) insert(e entry) {
	i := sort.Search(len(q.entries), func(i int) bool {
		return q.entries[i].at > e.at
	})
	q.entries = append(q.entries, entry{})
	copy(q.entries[i+1:], q.entries[i:])
	q.entries[i] = e
}

// popDue removes and returns every entry due by the provided sample index,
// in firing order. Safe to call on an empty queue.
func (q *eventQueue) popDue(idx int64) []entry {
	n := 0
	for n < len(q.entries) && q.entries[n].at <= idx {
		n++
	}
	if n == 0 {
		return nil
	}
	due := q.entries[:n:n]
	q.entries = q.entries[n:]
	return due
}

// len reports the number of pending entries.
func (q *eventQueue) len() int {
	return len(q.entries)
}
