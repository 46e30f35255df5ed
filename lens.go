package optix

// Lens focuses on a value that is always present inside a source, such as a
// struct field. Reads are total and writes happen in place.
type Lens[S, A any] struct {
	o optic[S, A]
}

// NewLens builds a Lens from a total read and an in-place write.
//
// Example:
//
//	type Point struct{ X, Y int }
//
//	x := optix.NewLens(
//	    func(p *Point) int { return p.X },
//	    func(p *Point, v int) { p.X = v },
//	)
//
//	p := Point{X: 10, Y: 20}
//	x.Put(&p, 42) // p.X == 42
func NewLens[S, A any](get func(*S) A, set func(*S, A)) Lens[S, A] {
	return Lens[S, A]{o: optic[S, A]{
		get: totalGet(get),
		set: totalSet(set),
	}}
}

// IdentityLens focuses on the whole source. Useful as a trivial link in a
// composition chain.
func IdentityLens[S any]() Lens[S, S] {
	return NewLens(
		func(s *S) S { return *s },
		func(s *S, v S) { *s = v },
	)
}

// Kind returns KindLens.
func (Lens[S, A]) Kind() Kind { return KindLens }

// Get extracts the focus. It cannot fail.
func (l Lens[S, A]) Get(s *S) A { return l.o.mustGet(s) }

// Put replaces the focus inside the source.
func (l Lens[S, A]) Put(s *S, v A) { _ = l.o.set(s, v) }

// Over applies f to the focus and writes the result back.
func (l Lens[S, A]) Over(s *S, f func(A) A) { l.o.over(s, f) }

// AsGetter drops the write capability.
func (l Lens[S, A]) AsGetter() Getter[S, A] {
	return Getter[S, A]{o: optic[S, A]{get: l.o.get}}
}

// AsPartialGetter drops the write capability and weakens the read to
// partial. The read still never fails.
func (l Lens[S, A]) AsPartialGetter() PartialGetter[S, A] {
	return PartialGetter[S, A]{o: optic[S, A]{get: l.o.get}}
}

// AsPrism weakens the read to partial while keeping the write. The read
// still never fails.
func (l Lens[S, A]) AsPrism() Prism[S, A] {
	return Prism[S, A]{o: l.o}
}

// AsSetter is the write-only projection: the read capability is dropped
// entirely. The resulting Setter no longer composes.
func (l Lens[S, A]) AsSetter() Setter[S, A] {
	return Setter[S, A]{o: optic[S, A]{set: l.o.set}}
}
