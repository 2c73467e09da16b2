// Package vector implements a growable dynamic array for Go.
//
// # Overview
//
// A Vector stores its elements contiguously in a single owned buffer and
// grows by doubling, giving amortized O(1) appends with predictable
// memory behavior. This is particularly useful for:
//
//   - Building sequences whose final size is unknown up front
//   - Index-heavy workloads that want explicit control over capacity
//   - Code that needs O(1) content exchange between containers
//   - Porting position-based (cursor) algorithms onto Go
//
// # Basic Usage
//
//	v := vector.New[int](0)
//	v.Push(1)
//	v.Push(2)
//	v.Push(3)
//
//	sum := 0
//	for i := 0; i < v.Len(); i++ {
//		sum += v.Get(i)
//	}
//
//	v.Resize(10)  // grow to 10 elements, new slots zero-valued
//	v.Reserve(64) // pre-size the buffer, length unchanged
//	v.Clear()     // drop all elements, keep the buffer
//
// # Access Modes
//
// Get, Set and Ptr trust the index and panic when it is out of range.
// At and SetAt return an IndexError instead, for indexes that come from
// untrusted input:
//
//	x, err := v.At(i)
//	if errors.Is(err, vector.ErrOutOfRange) {
//		// handle the bad index
//	}
//
// # Cursors
//
// A Cursor marks a position between Begin and End. Cursors compare with
// ==, advance with Next, Prev and Add, and drive positional edits:
//
//	for c := v.Begin(); c != v.End(); c = c.Next() {
//		fmt.Println(c.Value())
//	}
//
//	c := v.Insert(v.Begin(), 42) // prepend, cursor to the new element
//	v.Erase(c)                   // remove it again
//
// Cursors address positions, not elements: an Insert or Erase before a
// cursor changes which element it sees, and Swap moves it to the other
// vector's storage.
//
// # Ownership and Transfer
//
// Each vector owns its buffer exclusively. Contents transfer without
// copying via Swap (exchange), Take (move out) and MoveFrom (move in);
// Clone and CopyFrom produce independent deep copies. After Take or
// MoveFrom the source is empty and remains usable.
//
// # Growth
//
//   - Push on a full buffer: capacity doubles (0 becomes 1)
//   - Insert on a full buffer: capacity doubles, elements migrate once
//   - Resize past capacity: buffer of exactly the new length
//   - Reserve: buffer of exactly the requested capacity
//
// Shrinking operations never release the buffer; capacity only grows.
//
// # Thread Safety
//
// Vectors are not goroutine-safe. Callers that share a vector across
// goroutines must provide their own synchronization.
package vector
