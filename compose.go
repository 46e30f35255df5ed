package optix

// Composition engine.
//
// The three chains below are the whole of composed behavior; every Compose*
// entry point assembles its result from them. Composition consumes its
// operands' captured behavior and never mutates the operands: each call
// yields a fresh optic.
//
// Entry points exist only for pairings the kind table validates. Setter has
// none, on either side. The result type of each entry point is the join of
// the operand kinds (see Join).

// chainGet is the composed read: outer first, fail fast, errors adapted to
// the side that produced them.
func chainGet[S, I, A any](outer optic[S, I], inner optic[I, A], mapOuter, mapInner ErrorMapper) func(*S) (A, error) {
	return func(s *S) (A, error) {
		i, err := outer.get(s)
		if err != nil {
			var zero A
			return zero, mapOuter(err)
		}
		v, err := inner.get(&i)
		if err != nil {
			var zero A
			return zero, mapInner(err)
		}
		return v, nil
	}
}

// chainSet is the composed write: read the intermediate, apply the inner
// write against a local copy, write the copy back through the outer optic.
// Any failing stage aborts before the source is touched, which is what
// makes a composed Put atomic.
func chainSet[S, I, A any](outer optic[S, I], inner optic[I, A]) func(*S, A) error {
	return func(s *S, v A) error {
		i, err := outer.get(s)
		if err != nil {
			return err
		}
		if err := inner.set(&i, v); err != nil {
			return err
		}
		return outer.set(s, i)
	}
}

// chainBuild is the composed construct: inner first, then outer, fail fast.
func chainBuild[S, I, A any](outer optic[S, I], inner optic[I, A], mapOuter, mapInner ErrorMapper) func(A) (S, error) {
	return func(v A) (S, error) {
		i, err := inner.build(v)
		if err != nil {
			var zero S
			return zero, mapInner(err)
		}
		s, err := outer.build(i)
		if err != nil {
			var zero S
			return zero, mapOuter(err)
		}
		return s, nil
	}
}

// -----------------------------------------------------------------------------
// Getter compositions
// -----------------------------------------------------------------------------

// ComposeGetterGetter chains two total reads into a Getter.
func ComposeGetterGetter[S, I, A any](outer Getter[S, I], inner Getter[I, A]) Getter[S, A] {
	return Getter[S, A]{o: optic[S, A]{
		get: chainGet(outer.o, inner.o, identityMapper, identityMapper),
	}}
}

// ComposeGetterPartialGetter chains a total read with a partial read into a
// PartialGetter.
func ComposeGetterPartialGetter[S, I, A any](outer Getter[S, I], inner PartialGetter[I, A], opts ...ComposeOption) PartialGetter[S, A] {
	cfg := newComposeSettings(opts)
	return PartialGetter[S, A]{o: optic[S, A]{
		get: chainGet(outer.o, inner.o, cfg.mapOuterGet, cfg.mapInnerGet),
	}}
}

// ComposeGetterLens chains a total read with a lens. The lens's write has no
// counterpart on the getter side, so only the read survives.
func ComposeGetterLens[S, I, A any](outer Getter[S, I], inner Lens[I, A]) Getter[S, A] {
	return Getter[S, A]{o: optic[S, A]{
		get: chainGet(outer.o, inner.o, identityMapper, identityMapper),
	}}
}

// ComposeGetterPrism chains a total read with a prism into a PartialGetter.
func ComposeGetterPrism[S, I, A any](outer Getter[S, I], inner Prism[I, A], opts ...ComposeOption) PartialGetter[S, A] {
	cfg := newComposeSettings(opts)
	return PartialGetter[S, A]{o: optic[S, A]{
		get: chainGet(outer.o, inner.o, cfg.mapOuterGet, cfg.mapInnerGet),
	}}
}

// ComposeGetterIso chains a total read with an iso into a Getter.
func ComposeGetterIso[S, I, A any](outer Getter[S, I], inner Iso[I, A]) Getter[S, A] {
	return Getter[S, A]{o: optic[S, A]{
		get: chainGet(outer.o, inner.o, identityMapper, identityMapper),
	}}
}

// ComposeGetterFallibleIso chains a total read with a fallible iso into a
// PartialGetter.
func ComposeGetterFallibleIso[S, I, A any](outer Getter[S, I], inner FallibleIso[I, A], opts ...ComposeOption) PartialGetter[S, A] {
	cfg := newComposeSettings(opts)
	return PartialGetter[S, A]{o: optic[S, A]{
		get: chainGet(outer.o, inner.o, cfg.mapOuterGet, cfg.mapInnerGet),
	}}
}

// -----------------------------------------------------------------------------
// PartialGetter compositions
// -----------------------------------------------------------------------------
// A partial read poisons every chain it joins: all six results are
// PartialGetters.

// ComposePartialGetterGetter chains a partial read with a total read.
func ComposePartialGetterGetter[S, I, A any](outer PartialGetter[S, I], inner Getter[I, A], opts ...ComposeOption) PartialGetter[S, A] {
	cfg := newComposeSettings(opts)
	return PartialGetter[S, A]{o: optic[S, A]{
		get: chainGet(outer.o, inner.o, cfg.mapOuterGet, cfg.mapInnerGet),
	}}
}

// ComposePartialGetterPartialGetter chains two partial reads.
func ComposePartialGetterPartialGetter[S, I, A any](outer PartialGetter[S, I], inner PartialGetter[I, A], opts ...ComposeOption) PartialGetter[S, A] {
	cfg := newComposeSettings(opts)
	return PartialGetter[S, A]{o: optic[S, A]{
		get: chainGet(outer.o, inner.o, cfg.mapOuterGet, cfg.mapInnerGet),
	}}
}

// ComposePartialGetterLens chains a partial read with a lens.
func ComposePartialGetterLens[S, I, A any](outer PartialGetter[S, I], inner Lens[I, A], opts ...ComposeOption) PartialGetter[S, A] {
	cfg := newComposeSettings(opts)
	return PartialGetter[S, A]{o: optic[S, A]{
		get: chainGet(outer.o, inner.o, cfg.mapOuterGet, cfg.mapInnerGet),
	}}
}

// ComposePartialGetterPrism chains a partial read with a prism.
func ComposePartialGetterPrism[S, I, A any](outer PartialGetter[S, I], inner Prism[I, A], opts ...ComposeOption) PartialGetter[S, A] {
	cfg := newComposeSettings(opts)
	return PartialGetter[S, A]{o: optic[S, A]{
		get: chainGet(outer.o, inner.o, cfg.mapOuterGet, cfg.mapInnerGet),
	}}
}

// ComposePartialGetterIso chains a partial read with an iso.
func ComposePartialGetterIso[S, I, A any](outer PartialGetter[S, I], inner Iso[I, A], opts ...ComposeOption) PartialGetter[S, A] {
	cfg := newComposeSettings(opts)
	return PartialGetter[S, A]{o: optic[S, A]{
		get: chainGet(outer.o, inner.o, cfg.mapOuterGet, cfg.mapInnerGet),
	}}
}

// ComposePartialGetterFallibleIso chains a partial read with a fallible iso.
func ComposePartialGetterFallibleIso[S, I, A any](outer PartialGetter[S, I], inner FallibleIso[I, A], opts ...ComposeOption) PartialGetter[S, A] {
	cfg := newComposeSettings(opts)
	return PartialGetter[S, A]{o: optic[S, A]{
		get: chainGet(outer.o, inner.o, cfg.mapOuterGet, cfg.mapInnerGet),
	}}
}

// -----------------------------------------------------------------------------
// Lens compositions
// -----------------------------------------------------------------------------

// ComposeLensGetter chains a lens with a total read into a Getter.
func ComposeLensGetter[S, I, A any](outer Lens[S, I], inner Getter[I, A]) Getter[S, A] {
	return Getter[S, A]{o: optic[S, A]{
		get: chainGet(outer.o, inner.o, identityMapper, identityMapper),
	}}
}

// ComposeLensPartialGetter chains a lens with a partial read into a
// PartialGetter.
func ComposeLensPartialGetter[S, I, A any](outer Lens[S, I], inner PartialGetter[I, A], opts ...ComposeOption) PartialGetter[S, A] {
	cfg := newComposeSettings(opts)
	return PartialGetter[S, A]{o: optic[S, A]{
		get: chainGet(outer.o, inner.o, cfg.mapOuterGet, cfg.mapInnerGet),
	}}
}

// ComposeLensLens chains two lenses into a Lens.
//
// Example:
//
//	type Inner struct{ B uint16 }
//	type Outer struct{ A Inner }
//
//	ab := optix.ComposeLensLens(
//	    optix.NewLens(
//	        func(o *Outer) Inner { return o.A },
//	        func(o *Outer, v Inner) { o.A = v },
//	    ),
//	    optix.NewLens(
//	        func(i *Inner) uint16 { return i.B },
//	        func(i *Inner, v uint16) { i.B = v },
//	    ),
//	)
//
//	o := Outer{A: Inner{B: 5}}
//	ab.Get(&o) // 5
//	ab.Put(&o, 7) // o.A.B == 7
func ComposeLensLens[S, I, A any](outer Lens[S, I], inner Lens[I, A]) Lens[S, A] {
	return Lens[S, A]{o: optic[S, A]{
		get: chainGet(outer.o, inner.o, identityMapper, identityMapper),
		set: chainSet(outer.o, inner.o),
	}}
}

// ComposeLensPrism chains a lens with a prism into a Prism.
func ComposeLensPrism[S, I, A any](outer Lens[S, I], inner Prism[I, A], opts ...ComposeOption) Prism[S, A] {
	cfg := newComposeSettings(opts)
	return Prism[S, A]{o: optic[S, A]{
		get: chainGet(outer.o, inner.o, cfg.mapOuterGet, cfg.mapInnerGet),
		set: chainSet(outer.o, inner.o),
	}}
}

// ComposeLensIso chains a lens with an iso into a Lens. The iso's construct
// has no counterpart on the lens side, so it does not survive.
func ComposeLensIso[S, I, A any](outer Lens[S, I], inner Iso[I, A]) Lens[S, A] {
	return Lens[S, A]{o: optic[S, A]{
		get: chainGet(outer.o, inner.o, identityMapper, identityMapper),
		set: chainSet(outer.o, inner.o),
	}}
}

// ComposeLensFallibleIso chains a lens with a fallible iso into a Prism:
// partial read, in-place write, no construct.
func ComposeLensFallibleIso[S, I, A any](outer Lens[S, I], inner FallibleIso[I, A], opts ...ComposeOption) Prism[S, A] {
	cfg := newComposeSettings(opts)
	return Prism[S, A]{o: optic[S, A]{
		get: chainGet(outer.o, inner.o, cfg.mapOuterGet, cfg.mapInnerGet),
		set: chainSet(outer.o, inner.o),
	}}
}

// -----------------------------------------------------------------------------
// Prism compositions
// -----------------------------------------------------------------------------

// ComposePrismGetter chains a prism with a total read into a PartialGetter.
func ComposePrismGetter[S, I, A any](outer Prism[S, I], inner Getter[I, A], opts ...ComposeOption) PartialGetter[S, A] {
	cfg := newComposeSettings(opts)
	return PartialGetter[S, A]{o: optic[S, A]{
		get: chainGet(outer.o, inner.o, cfg.mapOuterGet, cfg.mapInnerGet),
	}}
}

// ComposePrismPartialGetter chains a prism with a partial read into a
// PartialGetter.
func ComposePrismPartialGetter[S, I, A any](outer Prism[S, I], inner PartialGetter[I, A], opts ...ComposeOption) PartialGetter[S, A] {
	cfg := newComposeSettings(opts)
	return PartialGetter[S, A]{o: optic[S, A]{
		get: chainGet(outer.o, inner.o, cfg.mapOuterGet, cfg.mapInnerGet),
	}}
}

// ComposePrismLens chains a prism with a lens into a Prism.
func ComposePrismLens[S, I, A any](outer Prism[S, I], inner Lens[I, A], opts ...ComposeOption) Prism[S, A] {
	cfg := newComposeSettings(opts)
	return Prism[S, A]{o: optic[S, A]{
		get: chainGet(outer.o, inner.o, cfg.mapOuterGet, cfg.mapInnerGet),
		set: chainSet(outer.o, inner.o),
	}}
}

// ComposePrismPrism chains two prisms into a Prism.
func ComposePrismPrism[S, I, A any](outer Prism[S, I], inner Prism[I, A], opts ...ComposeOption) Prism[S, A] {
	cfg := newComposeSettings(opts)
	return Prism[S, A]{o: optic[S, A]{
		get: chainGet(outer.o, inner.o, cfg.mapOuterGet, cfg.mapInnerGet),
		set: chainSet(outer.o, inner.o),
	}}
}

// ComposePrismIso chains a prism with an iso into a Prism.
func ComposePrismIso[S, I, A any](outer Prism[S, I], inner Iso[I, A], opts ...ComposeOption) Prism[S, A] {
	cfg := newComposeSettings(opts)
	return Prism[S, A]{o: optic[S, A]{
		get: chainGet(outer.o, inner.o, cfg.mapOuterGet, cfg.mapInnerGet),
		set: chainSet(outer.o, inner.o),
	}}
}

// ComposePrismFallibleIso chains a prism with a fallible iso into a Prism.
func ComposePrismFallibleIso[S, I, A any](outer Prism[S, I], inner FallibleIso[I, A], opts ...ComposeOption) Prism[S, A] {
	cfg := newComposeSettings(opts)
	return Prism[S, A]{o: optic[S, A]{
		get: chainGet(outer.o, inner.o, cfg.mapOuterGet, cfg.mapInnerGet),
		set: chainSet(outer.o, inner.o),
	}}
}

// -----------------------------------------------------------------------------
// Iso compositions
// -----------------------------------------------------------------------------

// ComposeIsoGetter chains an iso with a total read into a Getter.
func ComposeIsoGetter[S, I, A any](outer Iso[S, I], inner Getter[I, A]) Getter[S, A] {
	return Getter[S, A]{o: optic[S, A]{
		get: chainGet(outer.o, inner.o, identityMapper, identityMapper),
	}}
}

// ComposeIsoPartialGetter chains an iso with a partial read into a
// PartialGetter.
func ComposeIsoPartialGetter[S, I, A any](outer Iso[S, I], inner PartialGetter[I, A], opts ...ComposeOption) PartialGetter[S, A] {
	cfg := newComposeSettings(opts)
	return PartialGetter[S, A]{o: optic[S, A]{
		get: chainGet(outer.o, inner.o, cfg.mapOuterGet, cfg.mapInnerGet),
	}}
}

// ComposeIsoLens chains an iso with a lens into a Lens.
func ComposeIsoLens[S, I, A any](outer Iso[S, I], inner Lens[I, A]) Lens[S, A] {
	return Lens[S, A]{o: optic[S, A]{
		get: chainGet(outer.o, inner.o, identityMapper, identityMapper),
		set: chainSet(outer.o, inner.o),
	}}
}

// ComposeIsoPrism chains an iso with a prism into a Prism.
func ComposeIsoPrism[S, I, A any](outer Iso[S, I], inner Prism[I, A], opts ...ComposeOption) Prism[S, A] {
	cfg := newComposeSettings(opts)
	return Prism[S, A]{o: optic[S, A]{
		get: chainGet(outer.o, inner.o, cfg.mapOuterGet, cfg.mapInnerGet),
		set: chainSet(outer.o, inner.o),
	}}
}

// ComposeIsoIso chains two isos into an Iso.
func ComposeIsoIso[S, I, A any](outer Iso[S, I], inner Iso[I, A]) Iso[S, A] {
	return Iso[S, A]{o: optic[S, A]{
		get:   chainGet(outer.o, inner.o, identityMapper, identityMapper),
		set:   chainSet(outer.o, inner.o),
		build: chainBuild(outer.o, inner.o, identityMapper, identityMapper),
	}}
}

// ComposeIsoFallibleIso chains an iso with a fallible iso into a
// FallibleIso.
func ComposeIsoFallibleIso[S, I, A any](outer Iso[S, I], inner FallibleIso[I, A], opts ...ComposeOption) FallibleIso[S, A] {
	cfg := newComposeSettings(opts)
	return FallibleIso[S, A]{o: optic[S, A]{
		get:   chainGet(outer.o, inner.o, cfg.mapOuterGet, cfg.mapInnerGet),
		set:   chainSet(outer.o, inner.o),
		build: chainBuild(outer.o, inner.o, cfg.mapOuterBuild, cfg.mapInnerBuild),
	}}
}

// -----------------------------------------------------------------------------
// FallibleIso compositions
// -----------------------------------------------------------------------------

// ComposeFallibleIsoGetter chains a fallible iso with a total read into a
// PartialGetter.
func ComposeFallibleIsoGetter[S, I, A any](outer FallibleIso[S, I], inner Getter[I, A], opts ...ComposeOption) PartialGetter[S, A] {
	cfg := newComposeSettings(opts)
	return PartialGetter[S, A]{o: optic[S, A]{
		get: chainGet(outer.o, inner.o, cfg.mapOuterGet, cfg.mapInnerGet),
	}}
}

// ComposeFallibleIsoPartialGetter chains a fallible iso with a partial read
// into a PartialGetter.
func ComposeFallibleIsoPartialGetter[S, I, A any](outer FallibleIso[S, I], inner PartialGetter[I, A], opts ...ComposeOption) PartialGetter[S, A] {
	cfg := newComposeSettings(opts)
	return PartialGetter[S, A]{o: optic[S, A]{
		get: chainGet(outer.o, inner.o, cfg.mapOuterGet, cfg.mapInnerGet),
	}}
}

// ComposeFallibleIsoLens chains a fallible iso with a lens into a Prism.
func ComposeFallibleIsoLens[S, I, A any](outer FallibleIso[S, I], inner Lens[I, A], opts ...ComposeOption) Prism[S, A] {
	cfg := newComposeSettings(opts)
	return Prism[S, A]{o: optic[S, A]{
		get: chainGet(outer.o, inner.o, cfg.mapOuterGet, cfg.mapInnerGet),
		set: chainSet(outer.o, inner.o),
	}}
}

// ComposeFallibleIsoPrism chains a fallible iso with a prism into a Prism.
func ComposeFallibleIsoPrism[S, I, A any](outer FallibleIso[S, I], inner Prism[I, A], opts ...ComposeOption) Prism[S, A] {
	cfg := newComposeSettings(opts)
	return Prism[S, A]{o: optic[S, A]{
		get: chainGet(outer.o, inner.o, cfg.mapOuterGet, cfg.mapInnerGet),
		set: chainSet(outer.o, inner.o),
	}}
}

// ComposeFallibleIsoIso chains a fallible iso with an iso into a
// FallibleIso.
func ComposeFallibleIsoIso[S, I, A any](outer FallibleIso[S, I], inner Iso[I, A], opts ...ComposeOption) FallibleIso[S, A] {
	cfg := newComposeSettings(opts)
	return FallibleIso[S, A]{o: optic[S, A]{
		get:   chainGet(outer.o, inner.o, cfg.mapOuterGet, cfg.mapInnerGet),
		set:   chainSet(outer.o, inner.o),
		build: chainBuild(outer.o, inner.o, cfg.mapOuterBuild, cfg.mapInnerBuild),
	}}
}

// ComposeFallibleIsoFallibleIso chains two fallible isos into a FallibleIso.
func ComposeFallibleIsoFallibleIso[S, I, A any](outer FallibleIso[S, I], inner FallibleIso[I, A], opts ...ComposeOption) FallibleIso[S, A] {
	cfg := newComposeSettings(opts)
	return FallibleIso[S, A]{o: optic[S, A]{
		get:   chainGet(outer.o, inner.o, cfg.mapOuterGet, cfg.mapInnerGet),
		set:   chainSet(outer.o, inner.o),
		build: chainBuild(outer.o, inner.o, cfg.mapOuterBuild, cfg.mapInnerBuild),
	}}
}
