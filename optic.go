package optix

// optic is the single concrete representation backing every public kind.
// Each field is a captured behavior, immutable after construction. A nil
// field means the kind does not carry that capability.
//
// The internal set reports failure so the composition engine can abort a
// chained write without touching the source; the public write surface
// discards that error, which is what makes Put a guaranteed no-op on
// failure rather than a fallible call.
type optic[S, A any] struct {
	get   func(*S) (A, error)
	set   func(*S, A) error
	build func(A) (S, error)
}

// totalGet adapts a caller-supplied total read into the internal fallible
// shape. The nil error is a structural guarantee, not a convention: total
// kinds never expose it.
func totalGet[S, A any](get func(*S) A) func(*S) (A, error) {
	return func(s *S) (A, error) {
		return get(s), nil
	}
}

// totalSet adapts a caller-supplied in-place write that cannot fail.
func totalSet[S, A any](set func(*S, A)) func(*S, A) error {
	return func(s *S, v A) error {
		set(s, v)
		return nil
	}
}

// totalBuild adapts a caller-supplied total construct.
func totalBuild[S, A any](build func(A) S) func(A) (S, error) {
	return func(v A) (S, error) {
		return build(v), nil
	}
}

// mustGet unwraps a read whose error is structurally nil.
func (o optic[S, A]) mustGet(s *S) A {
	v, _ := o.get(s)
	return v
}

// mustBuild unwraps a construct whose error is structurally nil.
func (o optic[S, A]) mustBuild(v A) S {
	s, _ := o.build(v)
	return s
}

// over applies f to the focus and writes the result back. When the focus
// cannot be read or the write-back is rejected, the source stays untouched.
func (o optic[S, A]) over(s *S, f func(A) A) {
	v, err := o.get(s)
	if err != nil {
		return
	}
	_ = o.set(s, f(v))
}
