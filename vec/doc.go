// Package vec provides a generic, resizable, contiguous sequence
// container with explicit capacity management.
//
// Unlike a plain Go slice, a [Vector] separates logical size from
// allocated capacity and controls both directly:
//
//   - [Vector]: contiguous owned buffer, manual grow/shrink
//   - [Iterator]: mutable forward cursor
//   - [ConstIterator]: read-only forward cursor
//   - [Distance]: signed offset between two cursors
//
// Capacity grows by newCap = cap + cap/2 + 1 whenever an append or
// insert finds the buffer full, and only [Vector.Reserve] or
// [Vector.ShrinkToFit] change it otherwise. Reallocation is always exact: the new buffer has
// precisely the requested capacity and the live elements are copied over.
//
// # Example
//
//	v := vec.Of(1, 2, 3)
//	v.PushBack(4)
//	for it := v.CBegin(); !it.Equal(v.CEnd()); it.Next() {
//	    fmt.Println(it.Get())
//	}
//
// # Thread Safety
//
// Vector instances are NOT thread-safe. Operations that reallocate or
// shift elements invalidate every outstanding iterator, and concurrent
// access during such an operation is a data race.
package vec
