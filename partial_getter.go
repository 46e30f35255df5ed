package optix

// PartialGetter is a read-only optic whose read can fail.
type PartialGetter[S, A any] struct {
	o optic[S, A]
}

// NewPartialGetter builds a PartialGetter from a partial read.
func NewPartialGetter[S, A any](get func(*S) (A, error)) PartialGetter[S, A] {
	return PartialGetter[S, A]{o: optic[S, A]{get: get}}
}

// IdentityPartialGetter reads the whole source and never fails.
func IdentityPartialGetter[S any]() PartialGetter[S, S] {
	return NewPartialGetter(func(s *S) (S, error) { return *s, nil })
}

// Kind returns KindPartialGetter.
func (PartialGetter[S, A]) Kind() Kind { return KindPartialGetter }

// Get extracts the focus, or reports why it is unavailable.
func (p PartialGetter[S, A]) Get(s *S) (A, error) { return p.o.get(s) }
