package collections

import (
	"errors"
	"fmt"

	"github.com/hasbyte1/go-declarative-utils/sorting"
)

// Sentinel errors returned by Sequence, Object and Extension operations.
var (
	// ErrDuplicateKey is matched by every [*DuplicateKeyError].
	ErrDuplicateKey = errors.New("collections: duplicate key")

	// ErrInvalidKeyType is matched by every [*InvalidKeyTypeError].
	ErrInvalidKeyType = errors.New("collections: invalid key type")

	// ErrIncomparable is returned (wrapped in [*IncomparableValueError]) when
	// sort keys have no defined relative order.
	ErrIncomparable = sorting.ErrIncomparable

	// ErrNotInstalled is returned by [Extend] before [Install] has run.
	ErrNotInstalled = errors.New("collections: extensions not installed")

	// ErrOperationNotFound is returned when an unregistered operation name is
	// called on an [Extension].
	ErrOperationNotFound = errors.New("collections: operation not found")

	// ErrUnsupportedValue is returned by [Extend] for values that are neither
	// sequences nor string-keyed maps.
	ErrUnsupportedValue = errors.New("collections: value is neither a sequence nor a map")

	// ErrInvalidArgument is returned when a dynamic operation receives
	// arguments of the wrong number or type.
	ErrInvalidArgument = errors.New("collections: invalid argument")

	// ErrInvalidJSON is returned when a document cannot be parsed.
	ErrInvalidJSON = errors.New("collections: invalid JSON")

	// ErrUnknownStrategy is returned by [ParseMergeStrategy].
	ErrUnknownStrategy = errors.New("collections: unknown merge strategy")
)

// DuplicateKeyError reports a key derived or found more than once where keys
// must be unique.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%v: %q", ErrDuplicateKey, e.Key)
}

// Is reports whether target is [ErrDuplicateKey].
func (e *DuplicateKeyError) Is(target error) bool { return target == ErrDuplicateKey }

// InvalidKeyTypeError reports a derived key that cannot be used as an object
// key.
type InvalidKeyTypeError struct {
	Key any
}

func (e *InvalidKeyTypeError) Error() string {
	return fmt.Sprintf("%v: %v (%T)", ErrInvalidKeyType, e.Key, e.Key)
}

// Is reports whether target is [ErrInvalidKeyType].
func (e *InvalidKeyTypeError) Is(target error) bool { return target == ErrInvalidKeyType }

// IncomparableValueError reports two sort keys without a relative order.
type IncomparableValueError = sorting.IncomparableValueError
