package optix

// Getter is a read-only optic whose read always succeeds.
type Getter[S, A any] struct {
	o optic[S, A]
}

// NewGetter builds a Getter from a total read.
func NewGetter[S, A any](get func(*S) A) Getter[S, A] {
	return Getter[S, A]{o: optic[S, A]{get: totalGet(get)}}
}

// IdentityGetter reads the whole source.
func IdentityGetter[S any]() Getter[S, S] {
	return NewGetter(func(s *S) S { return *s })
}

// Kind returns KindGetter.
func (Getter[S, A]) Kind() Kind { return KindGetter }

// Get extracts the focus. It cannot fail.
func (g Getter[S, A]) Get(s *S) A { return g.o.mustGet(s) }

// AsPartialGetter weakens the read to partial. The read still never fails.
func (g Getter[S, A]) AsPartialGetter() PartialGetter[S, A] {
	return PartialGetter[S, A]{o: g.o}
}
