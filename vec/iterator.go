package vec

// Iterator is a mutable forward cursor into a Vector's buffer. It does
// not own storage; it records the originating vector, an element offset,
// and the buffer generation it was issued against. The zero value is an
// unbound cursor.
//
// Get, Set and Next are deliberately unchecked: dereferencing at End(),
// past it, or through a stale cursor is erroneous and not detected,
// keeping iteration free of per-step overhead. Use Valid to probe a
// cursor when debugging.
type Iterator[T any] struct {
	vec *Vector[T]
	off int
	gen uint64
}

// Get returns the element under the cursor. Unchecked.
func (it Iterator[T]) Get() T {
	return it.vec.data[it.off]
}

// Set overwrites the element under the cursor. Unchecked.
func (it Iterator[T]) Set(el T) {
	it.vec.data[it.off] = el
}

// Next advances the cursor one position. Unchecked; advancing past End()
// is erroneous.
func (it *Iterator[T]) Next() {
	it.off++
}

// Equal reports whether it and other address the same position in the
// same buffer. A mutable and a read-only cursor at the same position
// compare equal. Cursors from different vectors never compare equal;
// comparing them is otherwise meaningless.
func (it Iterator[T]) Equal(other ConstIterator[T]) bool {
	return it.vec == other.vec && it.gen == other.gen && it.off == other.off
}

// Const widens the cursor to its read-only counterpart at the same
// position. Always safe.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{vec: it.vec, off: it.off, gen: it.gen}
}

// Valid reports whether the cursor is bound, was issued against the
// vector's current buffer, and sits on a live element. Debug aid only;
// no operation calls it on your behalf.
func (it Iterator[T]) Valid() bool {
	return it.vec != nil && it.gen == it.vec.gen && it.off >= 0 && it.off < it.vec.size
}

// ConstIterator is the read-only counterpart of Iterator: same shape,
// same unchecked contract, no Set.
type ConstIterator[T any] struct {
	vec *Vector[T]
	off int
	gen uint64
}

// Get returns the element under the cursor. Unchecked.
func (it ConstIterator[T]) Get() T {
	return it.vec.data[it.off]
}

// Next advances the cursor one position. Unchecked.
func (it *ConstIterator[T]) Next() {
	it.off++
}

// Equal reports whether both cursors address the same position in the
// same buffer, regardless of which side is the widened mutable cursor.
func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	return it.vec == other.vec && it.gen == other.gen && it.off == other.off
}

// Valid reports whether the cursor is bound, current, and on a live
// element. Debug aid only.
func (it ConstIterator[T]) Valid() bool {
	return it.vec != nil && it.gen == it.vec.gen && it.off >= 0 && it.off < it.vec.size
}

// Distance returns the signed element count from b to a, i.e. a - b.
// Both cursors must point into the same buffer; the result is
// meaningless otherwise.
func Distance[T any](a, b ConstIterator[T]) int {
	return a.off - b.off
}
