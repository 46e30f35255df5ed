package optix

import (
	"context"

	"github.com/zoobz-io/pipz"
)

// Focus lifts a step over the focus of a lens into a step over the whole
// source: the focus is read, processed, and written back. If the step
// fails, the source passes through unchanged and the error propagates to
// the pipeline.
//
// Example:
//
//	double := pipz.Transform("double", func(_ context.Context, v int) int {
//	    return v * 2
//	})
//	step := optix.Focus("double-x", xLens, double)
func Focus[S, A any](name string, l Lens[S, A], step pipz.Chainable[A]) pipz.Chainable[S] {
	return pipz.Apply(pipz.NewIdentity(name, ""), func(ctx context.Context, s S) (S, error) {
		v, err := step.Process(ctx, l.Get(&s))
		if err != nil {
			return s, err
		}
		l.Put(&s, v)
		return s, nil
	})
}

// FocusPrism lifts a step over the focus of a prism into a step over the
// whole source. When the focus is absent the source passes through
// untouched and the step never runs; a prism miss is not a pipeline error.
func FocusPrism[S, A any](name string, p Prism[S, A], step pipz.Chainable[A]) pipz.Chainable[S] {
	return pipz.Apply(pipz.NewIdentity(name, ""), func(ctx context.Context, s S) (S, error) {
		v, err := p.Get(&s)
		if err != nil {
			return s, nil
		}
		out, err := step.Process(ctx, v)
		if err != nil {
			return s, err
		}
		p.Put(&s, out)
		return s, nil
	})
}
