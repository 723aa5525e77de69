// Package collision provides a hash-keyed index that tolerates hash collisions.
package collision

// Index maps 64-bit hashes to values, keeping every value whose hash collides with
// another in a bucket. Values are told apart by a caller supplied match function.
type Index[V any] struct {
	buckets      map[uint64][]V
	values       []V // insertion order
	hasCollision bool
}

// NewIndex creates an empty index.
func NewIndex[V any]() *Index[V] {
	return &Index[V]{
		buckets: make(map[uint64][]V),
	}
}

// Lookup returns the value stored under hash for which match returns true.
func (x *Index[V]) Lookup(hash uint64, match func(V) bool) (V, bool) {
	for _, v := range x.buckets[hash] {
		if match(v) {
			return v, true
		}
	}

	var zero V
	return zero, false
}

// Insert stores v under hash. Inserting into a non-empty bucket marks a collision;
// callers are expected to have checked with Lookup that v is not already present.
func (x *Index[V]) Insert(hash uint64, v V) {
	if len(x.buckets[hash]) > 0 {
		x.hasCollision = true
	}
	x.buckets[hash] = append(x.buckets[hash], v)
	x.values = append(x.values, v)
}

// HasCollision reports whether two stored values ever shared a hash.
func (x *Index[V]) HasCollision() bool {
	return x.hasCollision
}

// Values returns the stored values in insertion order.
func (x *Index[V]) Values() []V {
	return x.values
}

// Count returns the number of stored values.
func (x *Index[V]) Count() int {
	return len(x.values)
}

// Reset clears the index, keeping allocated capacity.
func (x *Index[V]) Reset() {
	clear(x.buckets)
	clear(x.values)
	x.values = x.values[:0]
	x.hasCollision = false
}
