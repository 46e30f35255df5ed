package optix

// Iso is a lossless bidirectional mapping between a source and a focus.
// Reads and builds are total; the in-place write is derived from the build:
// putting v replaces the source with Build(v).
type Iso[S, A any] struct {
	o optic[S, A]
}

// NewIso builds an Iso from a total read and a total construct.
//
// The two functions are expected to be mutual inverses:
// build(get(s)) == s and get(build(v)) == v.
func NewIso[S, A any](get func(*S) A, build func(A) S) Iso[S, A] {
	return Iso[S, A]{o: optic[S, A]{
		get:   totalGet(get),
		build: totalBuild(build),
		set: func(s *S, v A) error {
			*s = build(v)
			return nil
		},
	}}
}

// IdentityIso maps the source to itself.
func IdentityIso[S any]() Iso[S, S] {
	return NewIso(
		func(s *S) S { return *s },
		func(v S) S { return v },
	)
}

// Kind returns KindIso.
func (Iso[S, A]) Kind() Kind { return KindIso }

// Get converts the source to the focus. It cannot fail.
func (i Iso[S, A]) Get(s *S) A { return i.o.mustGet(s) }

// Build converts a focus value back into a source. It cannot fail.
func (i Iso[S, A]) Build(v A) S { return i.o.mustBuild(v) }

// Put replaces the source with the rebuilt value.
func (i Iso[S, A]) Put(s *S, v A) { _ = i.o.set(s, v) }

// Over applies f to the focus and writes the result back.
func (i Iso[S, A]) Over(s *S, f func(A) A) { i.o.over(s, f) }

// AsLens drops the construct capability.
func (i Iso[S, A]) AsLens() Lens[S, A] {
	return Lens[S, A]{o: optic[S, A]{get: i.o.get, set: i.o.set}}
}

// AsPrism drops the construct capability and weakens the read to partial.
func (i Iso[S, A]) AsPrism() Prism[S, A] {
	return Prism[S, A]{o: optic[S, A]{get: i.o.get, set: i.o.set}}
}

// AsFallibleIso weakens both directions to partial. Neither ever fails.
func (i Iso[S, A]) AsFallibleIso() FallibleIso[S, A] {
	return FallibleIso[S, A]{o: i.o}
}

// AsGetter keeps only the total read.
func (i Iso[S, A]) AsGetter() Getter[S, A] {
	return Getter[S, A]{o: optic[S, A]{get: i.o.get}}
}

// AsPartialGetter keeps only the read, weakened to partial.
func (i Iso[S, A]) AsPartialGetter() PartialGetter[S, A] {
	return PartialGetter[S, A]{o: optic[S, A]{get: i.o.get}}
}

// AsSetter is the write-only projection. The resulting Setter no longer
// composes.
func (i Iso[S, A]) AsSetter() Setter[S, A] {
	return Setter[S, A]{o: optic[S, A]{set: i.o.set}}
}
