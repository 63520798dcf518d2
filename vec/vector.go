package vec

import (
	"fmt"
	"strings"
)

// Vector is a growable contiguous sequence of T. It owns a single buffer
// of exactly Cap() slots; slots [Size(), Cap()) hold stale values and are
// never read. Growth and shrinking always reallocate to an exact capacity
// and copy the live elements, so the buffer is never shared.
//
// The zero value is an empty vector with no allocated buffer, ready to use.
//
// A Vector is NOT safe for concurrent mutation. Any operation that may
// reallocate or shift elements (PushBack, Insert, Erase, Reserve,
// ShrinkToFit, Assign) invalidates all previously obtained iterators;
// concurrent readers during such an operation race on the buffer.
type Vector[T any] struct {
	data []T // len(data) == capacity; [size, cap) is stale storage
	size int
	gen  uint64
}

// New returns an empty vector with no allocated storage.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// WithCapacity returns an empty vector with storage for n elements
// already allocated. Note this differs from a "size n" constructor,
// which is deliberately not provided.
func WithCapacity[T any](n int) *Vector[T] {
	if n < 0 {
		n = 0
	}
	return &Vector[T]{data: make([]T, n)}
}

// Of returns a vector holding the given values, with size and capacity
// both equal to len(xs).
func Of[T any](xs ...T) *Vector[T] {
	data := make([]T, len(xs))
	copy(data, xs)
	return &Vector[T]{data: data, size: len(xs)}
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int { return v.size }

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int { return len(v.data) }

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// Clear drops all elements without releasing storage. Capacity is
// unchanged and the buffer is not reallocated.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Reserve grows the buffer to exactly n slots if n exceeds the current
// capacity, copying the live elements. No-op otherwise.
func (v *Vector[T]) Reserve(n int) {
	if n > len(v.data) {
		v.reallocate(n)
	}
}

// ShrinkToFit reallocates down to exactly Size() slots when capacity
// exceeds it, releasing the spare storage.
func (v *Vector[T]) ShrinkToFit() {
	if v.size < len(v.data) {
		v.reallocate(v.size)
	}
}

// PushBack appends el, growing the buffer first when full. Growth follows
// the policy newCap = cap + cap/2 + 1, so an empty vector allocates a
// single slot on its first push and appends stay amortized O(1).
func (v *Vector[T]) PushBack(el T) {
	if v.size >= len(v.data) {
		v.reallocate(grow(len(v.data)))
	}
	v.data[v.size] = el
	v.size++
}

// PopBack removes the last element. The slot is kept allocated; capacity
// never shrinks here. Returns ErrEmpty if the vector has no elements.
func (v *Vector[T]) PopBack() error {
	if v.size == 0 {
		return ErrEmpty
	}
	v.size--
	return nil
}

// At returns the element at index i. Indices outside [0, Size()) yield a
// BoundsError wrapping ErrOutOfBounds.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, &BoundsError{Index: i, Size: v.size, Wrapped: ErrOutOfBounds}
	}
	return v.data[i], nil
}

// Set overwrites the element at index i. Same bounds contract as At.
func (v *Vector[T]) Set(i int, el T) error {
	if i < 0 || i >= v.size {
		return &BoundsError{Index: i, Size: v.size, Wrapped: ErrOutOfBounds}
	}
	v.data[i] = el
	return nil
}

// Insert places el immediately before the element pos refers to; an
// offset equal to Size() appends at the end. Elements at and after the
// insertion point shift one slot toward the tail. Grows first when full,
// using the PushBack policy. Rejected with a BoundsError wrapping
// ErrIterOutOfBounds when the offset is outside [0, Size()] or pos is
// unbound or belongs to another vector; the vector is untouched then.
//
// The returned iterator addresses the inserted element in the
// post-insert buffer.
func (v *Vector[T]) Insert(pos ConstIterator[T], el T) (Iterator[T], error) {
	off, err := v.offset(pos, v.size)
	if err != nil {
		return Iterator[T]{}, err
	}
	if v.size >= len(v.data) {
		v.reallocate(grow(len(v.data)))
	}
	for i := v.size; i > off; i-- {
		v.data[i] = v.data[i-1]
	}
	v.data[off] = el
	v.size++
	v.gen++
	return Iterator[T]{vec: v, off: off, gen: v.gen}, nil
}

// Erase removes the element pos refers to, shifting the elements after it
// one slot toward the head. Capacity is unchanged. Rejected with a
// BoundsError wrapping ErrIterOutOfBounds when the offset is outside
// [0, Size()) or pos is unbound or foreign.
//
// The returned iterator sits at the removed element's offset, now
// addressing the element that followed it, or End() if it was last.
func (v *Vector[T]) Erase(pos ConstIterator[T]) (Iterator[T], error) {
	off, err := v.offset(pos, v.size-1)
	if err != nil {
		return Iterator[T]{}, err
	}
	for i := off; i < v.size-1; i++ {
		v.data[i] = v.data[i+1]
	}
	v.size--
	v.gen++
	return Iterator[T]{vec: v, off: off, gen: v.gen}, nil
}

// Begin returns a mutable cursor at the first element.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{vec: v, off: 0, gen: v.gen}
}

// End returns a mutable cursor one past the last element. For an empty
// vector Begin() equals End().
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{vec: v, off: v.size, gen: v.gen}
}

// CBegin returns a read-only cursor at the first element.
func (v *Vector[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{vec: v, off: 0, gen: v.gen}
}

// CEnd returns a read-only cursor one past the last element.
func (v *Vector[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{vec: v, off: v.size, gen: v.gen}
}

// Clone returns a deep copy. The copy's capacity equals the source's
// capacity at clone time, not its size.
func (v *Vector[T]) Clone() *Vector[T] {
	data := make([]T, len(v.data))
	copy(data, v.data[:v.size])
	return &Vector[T]{data: data, size: v.size}
}

// Assign replaces the contents of v with a deep copy of src, swapping in
// the copy's buffer wholesale. If cloning fails nothing has been touched,
// and the old buffer is released only after the swap.
func (v *Vector[T]) Assign(src *Vector[T]) {
	tmp := src.Clone()
	v.data, tmp.data = tmp.data, v.data
	v.size, tmp.size = tmp.size, v.size
	v.gen++
}

// String renders the elements as a bracketed comma-separated list in
// index order, "[]" when empty. Debug output, not a serialization format.
func (v *Vector[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < v.size; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", v.data[i])
	}
	b.WriteByte(']')
	return b.String()
}

// offset resolves pos against v, allowing offsets in [0, max].
func (v *Vector[T]) offset(pos ConstIterator[T], max int) (int, error) {
	if pos.vec != v {
		return 0, &BoundsError{Index: pos.off, Size: v.size, Wrapped: ErrIterOutOfBounds}
	}
	off := Distance(pos, v.CBegin())
	if off < 0 || off > max {
		return 0, &BoundsError{Index: off, Size: v.size, Wrapped: ErrIterOutOfBounds}
	}
	return off, nil
}

// reallocate moves the live elements into a fresh buffer of exactly
// newCap slots and releases the old one. Requests below the current size
// are ignored. Every reallocation bumps the buffer generation, so all
// outstanding iterators go stale.
func (v *Vector[T]) reallocate(newCap int) {
	if newCap < v.size {
		return
	}
	next := make([]T, newCap)
	copy(next, v.data[:v.size])
	v.data = next
	v.gen++
}

func grow(c int) int {
	return c + c/2 + 1
}
