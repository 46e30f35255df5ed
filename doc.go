/*
Package optix provides composable data accessors (optics) that focus on,
read, and update a part of a value without the caller knowing how that part
is stored.

Every optic belongs to a Kind, a fixed combination of three capabilities:

  - read: none, partial (can fail), or total (cannot fail)
  - write: none, or in place
  - construct: none, partial, or total (rebuild a whole source from a focus)

The seven kinds are Getter (total read), PartialGetter (partial read),
Setter (blind write), Lens (total read + write), Prism (partial read +
write), Iso (total read + write + total construct), and FallibleIso
(partial read + write + partial construct).

# Construction

Each kind has one leaf constructor taking exactly the functions its
capabilities require:

	type Point struct{ X, Y int }

	x := optix.NewLens(
	    func(p *Point) int { return p.X },
	    func(p *Point, v int) { p.X = v },
	)

	p := Point{X: 10, Y: 20}
	_ = x.Get(&p) // 10
	x.Put(&p, 42) // p.X == 42

# Composition

Optics chain through free functions, one per valid pairing, named after the
operand kinds. The result kind is the capability-wise minimum of the
operands:

	ab := optix.ComposeLensLens(a, b)  // Lens[S, A]
	ap := optix.ComposeLensPrism(a, p) // Prism[S, A]

Setters never compose: a blind write supplies no way to locate the
intermediate value a chained operation needs, so no Compose entry point
accepts one.

A composed read fails fast and surfaces the first error along the chain. A
composed write is atomic: if any internal stage fails, the source is left
exactly as it was. A composed build runs the inner construct first, then
the outer.

# Error adaptation

When the two sides of a composition carry different error vocabularies, the
unification is fixed once at composition time. By default errors pass
through unchanged; WithGetErrorMappers and WithBuildErrorMappers install
explicit per-side rewrites instead:

	pg := optix.ComposeLensPrism(a, p,
	    optix.WithGetErrorMappers(nil, func(err error) error {
	        return fmt.Errorf("inner: %w", err)
	    }),
	)

# Observability

Writes never report failure; a rejected write is a silent no-op. The
Observe wrappers restore visibility by emitting capitan signals and
feeding a MetricsProvider when operations fail or writes are dropped:

	x = optix.ObserveLens("point.x", x, optix.WithMetrics(m))

# Pipelines

Focus and FocusPrism lift a pipz step over a focus into a step over the
whole source, so optics slot into existing pipelines:

	step := optix.Focus("normalize-x", x, normalize)
*/
package optix
