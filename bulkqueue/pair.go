package bulkqueue

import "sync"

// PairQueue stages two parallel streams of values that must always be the
// same length: the dispatcher uses it to carry a logger reference alongside
// the envelope it produced, so a single swap hands the consumer both
// without re-zipping them.
type PairQueue[T, U any] struct {
	mu     sync.Mutex
	first  []T
	second []U
}

// NewPair returns a PairQueue with both internal buffers pre-sized to
// reserve.
func NewPair[T, U any](reserve int) *PairQueue[T, U] {
	return &PairQueue[T, U]{
		first:  make([]T, 0, reserve),
		second: make([]U, 0, reserve),
	}
}

// Enqueue appends one (first, second) pair under one lock.
func (q *PairQueue[T, U]) Enqueue(first T, second U) (wasEmpty bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	wasEmpty = len(q.first) == 0
	q.first = append(q.first, first)
	q.second = append(q.second, second)
	return wasEmpty
}

// EnqueueBulk appends every element of firsts/seconds, which must already
// be the same length, under one lock.
func (q *PairQueue[T, U]) EnqueueBulk(firsts []T, seconds []U) (wasEmpty bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	wasEmpty = len(q.first) == 0
	q.first = append(q.first, firsts...)
	q.second = append(q.second, seconds...)
	return wasEmpty
}

// TrySwapBulk swaps both internal buffers into outFirst/outSecond. It
// rejects the swap (returning false, leaving everything untouched) if the
// queue is empty, or if the caller's own tray buffers are not already the
// same length as each other.
func (q *PairQueue[T, U]) TrySwapBulk(outFirst *[]T, outSecond *[]U) bool {
	if len(*outFirst) != len(*outSecond) {
		return false
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.first) == 0 {
		return false
	}

	q.first, *outFirst = *outFirst, q.first
	q.second, *outSecond = *outSecond, q.second
	return true
}

// Reserve grows both internal buffers' capacity to at least n.
func (q *PairQueue[T, U]) Reserve(n int) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if cap(q.first) < n {
		grown := make([]T, len(q.first), n)
		copy(grown, q.first)
		q.first = grown
	}
	if cap(q.second) < n {
		grown := make([]U, len(q.second), n)
		copy(grown, q.second)
		q.second = grown
	}
}

// ShrinkToFit releases capacity beyond the current length on both buffers.
func (q *PairQueue[T, U]) ShrinkToFit() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if cap(q.first) != len(q.first) {
		shrunk := make([]T, len(q.first))
		copy(shrunk, q.first)
		q.first = shrunk
	}
	if cap(q.second) != len(q.second) {
		shrunk := make([]U, len(q.second))
		copy(shrunk, q.second)
		q.second = shrunk
	}
}

// Size returns the number of staged pairs. Both buffers are always the same
// length at this observation point.
func (q *PairQueue[T, U]) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.first)
}

// Capacity returns the first buffer's capacity.
func (q *PairQueue[T, U]) Capacity() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return cap(q.first)
}

// IsEmpty reports whether the queue currently holds no pairs.
func (q *PairQueue[T, U]) IsEmpty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.first) == 0
}
