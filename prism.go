package optix

// Prism focuses on a value that may be absent from the source, such as one
// variant of a sum type. Reads are partial; writes happen in place and are
// expected to leave the source untouched when the focus is absent.
type Prism[S, A any] struct {
	o optic[S, A]
}

// NewPrism builds a Prism from a partial read and an in-place write.
//
// The read should fail with ErrFocusUnavailable (or a wrap of it) when the
// source does not hold the focus. The write must be a no-op in that case:
// a prism never changes the shape of its source, only the focused value.
func NewPrism[S, A any](get func(*S) (A, error), set func(*S, A)) Prism[S, A] {
	return Prism[S, A]{o: optic[S, A]{
		get: get,
		set: totalSet(set),
	}}
}

// IdentityPrism focuses on the whole source and never fails to read.
func IdentityPrism[S any]() Prism[S, S] {
	return NewPrism(
		func(s *S) (S, error) { return *s, nil },
		func(s *S, v S) { *s = v },
	)
}

// Kind returns KindPrism.
func (Prism[S, A]) Kind() Kind { return KindPrism }

// Get extracts the focus, or reports why it is unavailable.
func (p Prism[S, A]) Get(s *S) (A, error) { return p.o.get(s) }

// Put replaces the focus inside the source. When the focus is absent the
// source is left unchanged.
func (p Prism[S, A]) Put(s *S, v A) { _ = p.o.set(s, v) }

// Over applies f to the focus and writes the result back, or does nothing
// when the focus is absent.
func (p Prism[S, A]) Over(s *S, f func(A) A) { p.o.over(s, f) }

// AsPartialGetter drops the write capability.
func (p Prism[S, A]) AsPartialGetter() PartialGetter[S, A] {
	return PartialGetter[S, A]{o: optic[S, A]{get: p.o.get}}
}

// AsSetter is the write-only projection. The resulting Setter no longer
// composes.
func (p Prism[S, A]) AsSetter() Setter[S, A] {
	return Setter[S, A]{o: optic[S, A]{set: p.o.set}}
}
