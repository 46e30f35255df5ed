package optix

// Setter is a blind write-only optic. It cannot read its focus, so it never
// participates in composition: without a read there is no way to locate or
// verify the intermediate value a chained operation would delegate through.
// No Compose entry point accepts a Setter on either side.
type Setter[S, A any] struct {
	o optic[S, A]
}

// NewSetter builds a Setter from an in-place write.
func NewSetter[S, A any](set func(*S, A)) Setter[S, A] {
	return Setter[S, A]{o: optic[S, A]{set: totalSet(set)}}
}

// IdentitySetter replaces the whole source.
func IdentitySetter[S any]() Setter[S, S] {
	return NewSetter(func(s *S, v S) { *s = v })
}

// Kind returns KindSetter.
func (Setter[S, A]) Kind() Kind { return KindSetter }

// Put writes the value into the source.
func (st Setter[S, A]) Put(s *S, v A) { _ = st.o.set(s, v) }
