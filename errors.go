package treepath

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedPath indicates a structural problem in a path string.
	ErrMalformedPath = errors.New("treepath: malformed path")

	// ErrInvalidSelector indicates bracket contents that are neither empty, an index nor a filter.
	ErrInvalidSelector = errors.New("treepath: invalid selector")

	// ErrInvalidFilter indicates a filter clause that is not of the form {key=value}.
	ErrInvalidFilter = errors.New("treepath: invalid filter")

	// ErrNotASequence indicates a list segment addressed a value that is not a sequence.
	ErrNotASequence = errors.New("treepath: not a sequence")

	// ErrNotAMap indicates a field access or descent on a value that is not a mapping.
	ErrNotAMap = errors.New("treepath: not a map")

	// ErrAmbiguousWrite indicates a write whose last segment is a filter.
	ErrAmbiguousWrite = errors.New("treepath: ambiguous terminal write")

	// ErrMissingArgument indicates a write without a path or without a root.
	ErrMissingArgument = errors.New("treepath: missing argument")
)

func pathError(err error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...))
}

// typeName describes a tree value in error messages.
func typeName(v any) string {
	switch v.(type) {
	case map[string]any:
		return "map"
	case []any:
		return "sequence"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}
