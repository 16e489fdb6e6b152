package sorting

import (
	"errors"
	"fmt"
)

// ErrIncomparable is matched by every [*IncomparableValueError].
var ErrIncomparable = errors.New("sorting: values are not comparable")

// IncomparableValueError is returned when two derived values have no defined
// relative order, for example a number and a string.
type IncomparableValueError struct {
	Left, Right any
}

func (e *IncomparableValueError) Error() string {
	return fmt.Sprintf("%v: %v (%T) and %v (%T)", ErrIncomparable, e.Left, e.Left, e.Right, e.Right)
}

// Is reports whether target is [ErrIncomparable].
func (e *IncomparableValueError) Is(target error) bool {
	return target == ErrIncomparable
}
