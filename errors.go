package vector

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned (wrapped in an IndexError) by checked accesses
// when the index falls outside the live range. Match it with errors.Is.
var ErrOutOfRange = errors.New("vector: index out of range")

// IndexError describes a checked access outside [0, Len). It records the
// offending index and the length at the time of the access.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("vector: index %d out of range with length %d", e.Index, e.Len)
}

// Is reports whether target is ErrOutOfRange, so callers can test with
// errors.Is without knowing the concrete type.
func (e *IndexError) Is(target error) bool {
	return target == ErrOutOfRange
}
