package vector

import "fmt"

// Vector is a growable sequence of T backed by a single owned Array.
// The zero value is an empty vector ready for use. Elements occupy the
// first Len slots of the buffer; the rest is spare capacity.
// Not goroutine-safe.
type Vector[T any] struct {
	items Array[T]
	size  int
}

// New creates a vector of n zero-valued elements.
// Panics if n < 0.
func New[T any](n int) *Vector[T] {
	if n < 0 {
		panic("vector: negative length")
	}
	return &Vector[T]{items: NewArray[T](n), size: n}
}

// NewFilled creates a vector of n elements, each set to fill.
// Panics if n < 0.
func NewFilled[T any](n int, fill T) *Vector[T] {
	v := New[T](n)
	raw := v.items.Raw()
	for i := range raw {
		raw[i] = fill
	}
	return v
}

// Of creates a vector holding the given elements, in order.
// The elements are copied, so Of(s...) does not alias s.
func Of[T any](elems ...T) *Vector[T] {
	v := New[T](len(elems))
	copy(v.items.Raw(), elems)
	return v
}

// WithCapacity creates an empty vector with room for c elements, so the
// first c appends reuse one buffer. Panics if c < 0.
func WithCapacity[T any](c int) *Vector[T] {
	if c < 0 {
		panic("vector: negative capacity")
	}
	return &Vector[T]{items: NewArray[T](c)}
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of slots the buffer holds.
func (v *Vector[T]) Cap() int {
	return v.items.Len()
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Get returns the element at index i. Panics if i is outside [0, Len).
// Use At when the index comes from untrusted input.
func (v *Vector[T]) Get(i int) T {
	v.boundsCheck(i)
	return v.items.Get(i)
}

// Set stores x at index i. Panics if i is outside [0, Len).
func (v *Vector[T]) Set(i int, x T) {
	v.boundsCheck(i)
	v.items.Set(i, x)
}

// Ptr returns a pointer to the element at index i. The pointer stays
// valid until the next reallocation. Panics if i is outside [0, Len).
func (v *Vector[T]) Ptr(i int) *T {
	v.boundsCheck(i)
	return v.items.Ptr(i)
}

// At returns the element at index i, or an IndexError if i is outside
// [0, Len). The error matches ErrOutOfRange under errors.Is.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, &IndexError{Index: i, Len: v.size}
	}
	return v.items.Get(i), nil
}

// SetAt stores x at index i, or returns an IndexError if i is outside
// [0, Len).
func (v *Vector[T]) SetAt(i int, x T) error {
	if i < 0 || i >= v.size {
		return &IndexError{Index: i, Len: v.size}
	}
	v.items.Set(i, x)
	return nil
}

// Push appends x to the end of the vector. When the buffer is full the
// capacity doubles (a full vector of capacity 0 grows to 1), so repeated
// pushes cost amortized O(1).
func (v *Vector[T]) Push(x T) {
	if v.size == v.Cap() {
		v.reallocate(growCapacity(v.Cap()))
	}
	v.items.Set(v.size, x)
	v.size++
}

// Pop removes and returns the last element.
// Panics if the vector is empty.
func (v *Vector[T]) Pop() T {
	if v.size == 0 {
		panic("vector: pop from empty vector")
	}
	v.size--
	raw := v.items.Raw()
	x := raw[v.size]
	var zero T
	raw[v.size] = zero
	return x
}

// Insert places x at the cursor's position and shifts the elements from
// that position one slot right. Returns a cursor to the new element.
// When the buffer is full, the elements migrate to a doubled buffer and
// land around the insertion slot in the same pass, so nothing is shifted
// twice. Panics if c belongs to another vector or lies outside [Begin, End].
func (v *Vector[T]) Insert(c Cursor[T], x T) Cursor[T] {
	idx := v.cursorIndex(c, v.size)
	if v.size == v.Cap() {
		next := NewArray[T](growCapacity(v.Cap()))
		dst, src := next.Raw(), v.items.Raw()
		copy(dst[:idx], src[:idx])
		copy(dst[idx+1:v.size+1], src[idx:v.size])
		v.items.Swap(&next)
	} else {
		raw := v.items.Raw()
		copy(raw[idx+1:v.size+1], raw[idx:v.size])
	}
	v.items.Set(idx, x)
	v.size++
	return Cursor[T]{vec: v, pos: idx}
}

// Erase removes the element at the cursor's position and shifts the
// elements after it one slot left. Returns a cursor to the element that
// now occupies the position, or End if the last element was removed.
// Panics if c belongs to another vector or lies outside [Begin, End).
func (v *Vector[T]) Erase(c Cursor[T]) Cursor[T] {
	idx := v.cursorIndex(c, v.size-1)
	raw := v.items.Raw()
	copy(raw[idx:v.size-1], raw[idx+1:v.size])
	clear(raw[v.size-1 : v.size])
	v.size--
	return Cursor[T]{vec: v, pos: idx}
}

// Resize changes the length to n. Shrinking keeps the buffer and drops
// the tail; growing within capacity zero-fills the new slots; growing
// past capacity moves the elements into a fresh buffer of exactly n
// slots. Panics if n < 0.
func (v *Vector[T]) Resize(n int) {
	switch {
	case n < 0:
		panic("vector: negative length")
	case n < v.size:
		clear(v.items.Raw()[n:v.size])
	case n <= v.Cap():
		clear(v.items.Raw()[v.size:n])
	default:
		v.reallocate(n)
	}
	v.size = n
}

// Reserve grows the buffer to exactly n slots, keeping the live elements.
// If n <= Cap it does nothing. Cursors and pointers obtained before a
// reallocation keep working on the old buffer, so refresh them after.
func (v *Vector[T]) Reserve(n int) {
	if n <= v.Cap() {
		return
	}
	v.reallocate(n)
}

// Clear removes all elements but keeps the buffer for reuse.
func (v *Vector[T]) Clear() {
	clear(v.live())
	v.size = 0
}

// Clone returns a deep copy of the vector. The copy's buffer is sized
// exactly to the element count, so spare capacity is not inherited.
func (v *Vector[T]) Clone() *Vector[T] {
	out := &Vector[T]{items: NewArray[T](v.size), size: v.size}
	copy(out.items.Raw(), v.live())
	return out
}

// CopyFrom replaces the contents of v with a copy of src. The copy is
// built first and swapped in, so v is untouched if the build panics.
// Copying a vector from itself is a no-op.
func (v *Vector[T]) CopyFrom(src *Vector[T]) {
	if v == src {
		return
	}
	tmp := src.Clone()
	v.Swap(tmp)
}

// Take moves the contents out of v into a new vector, leaving v empty
// with no buffer. The elements themselves are not copied.
func (v *Vector[T]) Take() *Vector[T] {
	out := &Vector[T]{items: Adopt(v.items.Release()), size: v.size}
	v.size = 0
	return out
}

// MoveFrom replaces the contents of v with the contents of src, leaving
// src empty with no buffer. v's old buffer is dropped. Moving a vector
// from itself is a no-op.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.items = Adopt(src.items.Release())
	v.size = src.size
	src.size = 0
}

// Swap exchanges the contents of two vectors in O(1) by trading buffers.
// Cursors follow the elements to the other vector's storage, so treat
// them as stale after a swap.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.items.Swap(&other.items)
	v.size, other.size = other.size, v.size
}

// live returns the occupied prefix of the buffer. Callers must not
// retain it across a reallocation.
func (v *Vector[T]) live() []T {
	return v.items.Raw()[:v.size]
}

// reallocate moves the live elements into a fresh buffer of exactly n slots.
func (v *Vector[T]) reallocate(n int) {
	next := NewArray[T](n)
	copy(next.Raw(), v.live())
	v.items.Swap(&next)
}

// boundsCheck panics if i is outside the live range.
func (v *Vector[T]) boundsCheck(i int) {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vector: index %d out of range with length %d", i, v.size))
	}
}

// cursorIndex validates that c belongs to v and sits within [0, max],
// returning its position.
func (v *Vector[T]) cursorIndex(c Cursor[T], max int) int {
	if c.vec != v {
		panic("vector: cursor from another vector")
	}
	if c.pos < 0 || c.pos > max {
		panic("vector: cursor out of range")
	}
	return c.pos
}

// growCapacity returns the doubled capacity, or 1 when starting from zero.
func growCapacity(cur int) int {
	if cur == 0 {
		return 1
	}
	return cur * 2
}
