package records

// ring is a fixed-capacity buffer that overwrites its oldest element once
// full. It has no locking of its own; Book guards it.
type ring[T any] struct {
	data  []T
	size  int
	count int
	write int
}

func newRing[T any](size int) *ring[T] {
	return &ring[T]{data: make([]T, size), size: size}
}

func (r *ring[T]) push(v T) {
	r.data[r.write] = v
	r.write = (r.write + 1) % r.size
	r.count = min(r.count+1, r.size)
}

func (r *ring[T]) len() int { return r.count }

func (r *ring[T]) reset() {
	clear(r.data)
	r.count, r.write = 0, 0
}

// newest iterates from the most recent element back to the oldest.
func (r *ring[T]) newest() func(yield func(T) bool) {
	return func(yield func(T) bool) {
		for i := range r.count {
			idx := (r.write - 1 - i + r.size) % r.size
			if !yield(r.data[idx]) {
				return
			}
		}
	}
}

// oldest iterates in insertion order.
func (r *ring[T]) oldest() func(yield func(T) bool) {
	return func(yield func(T) bool) {
		start := (r.write - r.count + r.size) % r.size
		for i := range r.count {
			if !yield(r.data[(start+i)%r.size]) {
				return
			}
		}
	}
}
