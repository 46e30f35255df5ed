package optix

// FallibleIso is a bidirectional mapping where either direction can fail,
// such as the mapping between a string and the integer it may spell. Reads
// and builds are partial; the in-place write is derived from the build and
// leaves the source untouched when the build is rejected.
type FallibleIso[S, A any] struct {
	o optic[S, A]
}

// NewFallibleIso builds a FallibleIso from a partial read and a partial
// construct.
//
// The read should fail with ErrFocusUnavailable when the source cannot be
// converted; the build should fail with ErrConstructionRejected when the
// focus value cannot produce a valid source. Wraps of either sentinel, or
// domain errors, work the same way.
func NewFallibleIso[S, A any](get func(*S) (A, error), build func(A) (S, error)) FallibleIso[S, A] {
	return FallibleIso[S, A]{o: optic[S, A]{
		get:   get,
		build: build,
		set: func(s *S, v A) error {
			next, err := build(v)
			if err != nil {
				return err
			}
			*s = next
			return nil
		},
	}}
}

// IdentityFallibleIso maps the source to itself and never fails in either
// direction.
func IdentityFallibleIso[S any]() FallibleIso[S, S] {
	return NewFallibleIso(
		func(s *S) (S, error) { return *s, nil },
		func(v S) (S, error) { return v, nil },
	)
}

// Kind returns KindFallibleIso.
func (FallibleIso[S, A]) Kind() Kind { return KindFallibleIso }

// Get converts the source to the focus, or reports why it cannot.
func (f FallibleIso[S, A]) Get(s *S) (A, error) { return f.o.get(s) }

// Build converts a focus value back into a source, or rejects it.
func (f FallibleIso[S, A]) Build(v A) (S, error) { return f.o.build(v) }

// Put replaces the source with the rebuilt value. When the build is
// rejected the source is left unchanged.
func (f FallibleIso[S, A]) Put(s *S, v A) { _ = f.o.set(s, v) }

// Over applies fn to the focus and writes the result back. Any failing step
// leaves the source unchanged.
func (f FallibleIso[S, A]) Over(s *S, fn func(A) A) { f.o.over(s, fn) }

// AsPrism drops the construct capability.
func (f FallibleIso[S, A]) AsPrism() Prism[S, A] {
	return Prism[S, A]{o: optic[S, A]{get: f.o.get, set: f.o.set}}
}

// AsPartialGetter keeps only the partial read.
func (f FallibleIso[S, A]) AsPartialGetter() PartialGetter[S, A] {
	return PartialGetter[S, A]{o: optic[S, A]{get: f.o.get}}
}

// AsSetter is the write-only projection. The resulting Setter no longer
// composes.
func (f FallibleIso[S, A]) AsSetter() Setter[S, A] {
	return Setter[S, A]{o: optic[S, A]{set: f.o.set}}
}
