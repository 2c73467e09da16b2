package vector

// Cursor marks a position in a vector, from 0 through Len inclusive.
// The position at Len is the past-the-end mark: valid as an insertion
// point and as a loop bound, not for reading. Cursors are small values,
// compared with == and advanced by copying. A cursor survives element
// shifts but keeps pointing at the position, not the element; after a
// reallocation or swap it addresses the new buffer.
type Cursor[T any] struct {
	vec *Vector[T]
	pos int
}

// Begin returns a cursor at the first element, equal to End when the
// vector is empty.
func (v *Vector[T]) Begin() Cursor[T] {
	return Cursor[T]{vec: v, pos: 0}
}

// End returns the past-the-end cursor.
func (v *Vector[T]) End() Cursor[T] {
	return Cursor[T]{vec: v, pos: v.size}
}

// CursorAt returns a cursor at index i. Panics if i is outside [0, Len].
func (v *Vector[T]) CursorAt(i int) Cursor[T] {
	if i < 0 || i > v.size {
		panic("vector: cursor out of range")
	}
	return Cursor[T]{vec: v, pos: i}
}

// Pos returns the cursor's position as an index from Begin.
func (c Cursor[T]) Pos() int {
	return c.pos
}

// Next returns a cursor one position forward.
func (c Cursor[T]) Next() Cursor[T] {
	return Cursor[T]{vec: c.vec, pos: c.pos + 1}
}

// Prev returns a cursor one position back.
func (c Cursor[T]) Prev() Cursor[T] {
	return Cursor[T]{vec: c.vec, pos: c.pos - 1}
}

// Add returns a cursor n positions forward (backward for negative n).
// Like Next and Prev it does no range check; the check happens when the
// cursor is read or handed to Insert or Erase.
func (c Cursor[T]) Add(n int) Cursor[T] {
	return Cursor[T]{vec: c.vec, pos: c.pos + n}
}

// Value returns the element under the cursor.
// Panics if the cursor does not sit on a live element.
func (c Cursor[T]) Value() T {
	return c.vec.items.Get(c.deref())
}

// Ptr returns a pointer to the element under the cursor. The pointer
// stays valid until the next reallocation.
// Panics if the cursor does not sit on a live element.
func (c Cursor[T]) Ptr() *T {
	return c.vec.items.Ptr(c.deref())
}

// Set stores x into the element under the cursor.
// Panics if the cursor does not sit on a live element.
func (c Cursor[T]) Set(x T) {
	c.vec.items.Set(c.deref(), x)
}

// deref validates that the cursor addresses a live element and returns
// its position.
func (c Cursor[T]) deref() int {
	if c.vec == nil || c.pos < 0 || c.pos >= c.vec.size {
		panic("vector: cursor out of range")
	}
	return c.pos
}
