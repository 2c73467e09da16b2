package vector

// Array is a fixed-size buffer with exclusive ownership of its backing
// storage. Copying the struct would alias the buffer, so an Array is
// handed around by pointer and transferred with Swap or Release.
// Not goroutine-safe.
type Array[T any] struct {
	data []T
}

// NewArray creates an Array of n zero-valued slots.
// If n <= 0, the Array owns no storage.
func NewArray[T any](n int) Array[T] {
	if n <= 0 {
		return Array[T]{}
	}
	return Array[T]{data: make([]T, n)}
}

// Adopt wraps an existing slice in an Array, taking ownership of it.
// The caller must not use the slice afterwards.
func Adopt[T any](s []T) Array[T] {
	return Array[T]{data: s}
}

// Len returns the number of slots the Array owns.
func (a *Array[T]) Len() int {
	return len(a.data)
}

// IsEmpty reports whether the Array owns no slots.
func (a *Array[T]) IsEmpty() bool {
	return len(a.data) == 0
}

// Get returns the element at slot i. Panics if i is outside [0, Len).
func (a *Array[T]) Get(i int) T {
	return a.data[i]
}

// Set stores x into slot i. Panics if i is outside [0, Len).
func (a *Array[T]) Set(i int, x T) {
	a.data[i] = x
}

// Ptr returns a pointer to slot i. The pointer stays valid until the
// Array releases or swaps away its buffer. Panics if i is outside [0, Len).
func (a *Array[T]) Ptr(i int) *T {
	return &a.data[i]
}

// Raw returns the backing slice without giving up ownership.
// The caller must not retain it across a Swap or Release.
func (a *Array[T]) Raw() []T {
	return a.data
}

// Release gives up ownership of the buffer and returns it.
// The Array is left empty and remains usable.
func (a *Array[T]) Release() []T {
	s := a.data
	a.data = nil
	return s
}

// Swap exchanges buffers with another Array. Swapping an Array with
// itself is a no-op.
func (a *Array[T]) Swap(b *Array[T]) {
	a.data, b.data = b.data, a.data
}
