package arranging

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedKind is returned when a member kind cannot be categorized.
	ErrUnsupportedKind = errors.New("unsupported declaration kind")

	// ErrAmbiguousAccessor is returned when two getters claim the same property.
	ErrAmbiguousAccessor = errors.New("ambiguous accessor")
)

// ArrangeError reports a fault found while arranging a container. Nothing is
// rearranged when it is returned.
type ArrangeError struct {
	// Container is the dotted path of the type being arranged, like Outer.Inner.
	Container string
	// Member is the offending member.
	Member string
	Err    error
}

func (e *ArrangeError) Error() string {
	if e.Member == "" {
		return fmt.Sprintf("cannot arrange %s: %v", e.Container, e.Err)
	}
	return fmt.Sprintf("cannot arrange %s: %v: %s", e.Container, e.Err, e.Member)
}

// Unwrap returns the underlying sentinel error.
func (e *ArrangeError) Unwrap() error {
	return e.Err
}

// withContainer prefixes the container path of a nested fault with the name
// of the enclosing type.
func withContainer(err error, outer string) error {
	var ae *ArrangeError
	if outer == "" || !errors.As(err, &ae) {
		return err
	}
	return &ArrangeError{
		Container: outer + "." + ae.Container,
		Member:    ae.Member,
		Err:       ae.Err,
	}
}
