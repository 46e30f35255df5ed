package optix

// AssertPrism focuses an interface-typed source on one concrete type, the
// closest Go gets to a sum-type variant prism. Reads fail with
// ErrFocusUnavailable when the source holds a different dynamic type; writes
// replace the value only when the current variant already matches.
//
// A must satisfy S, otherwise writes are silently impossible; that is the
// caller's contract, the same one a hand-written variant prism would carry.
//
//	var shape Shape = Circle{R: 2}
//	circle := optix.AssertPrism[Shape, Circle]()
//	c, err := circle.Get(&shape) // Circle{R: 2}, nil
func AssertPrism[S, A any]() Prism[S, A] {
	return NewPrism(
		func(s *S) (A, error) {
			v, ok := any(*s).(A)
			if !ok {
				return v, FocusUnavailable("source holds %T, not the asserted variant", *s)
			}
			return v, nil
		},
		func(s *S, v A) {
			if _, ok := any(*s).(A); !ok {
				return
			}
			if next, ok := any(v).(S); ok {
				*s = next
			}
		},
	)
}
