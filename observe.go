package optix

import (
	"context"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// observer holds the instrumentation attached to one optic.
type observer struct {
	name    string
	kind    Kind
	metrics MetricsProvider
	clock   clockz.Clock
}

// ObserveOption configures an Observe wrapper.
type ObserveOption func(*observer)

// WithMetrics attaches a MetricsProvider to the observed optic.
func WithMetrics(m MetricsProvider) ObserveOption {
	return func(o *observer) {
		o.metrics = m
	}
}

// WithClock replaces the time source used for duration measurement.
// Use this with clockz.FakeClock for deterministic tests.
func WithClock(c clockz.Clock) ObserveOption {
	return func(o *observer) {
		o.clock = c
	}
}

func newObserver(name string, kind Kind, opts []ObserveOption) observer {
	ob := observer{
		name:    name,
		kind:    kind,
		metrics: NoOpMetricsProvider{},
		clock:   clockz.RealClock,
	}
	for _, opt := range opts {
		opt(&ob)
	}
	return ob
}

// observeOptic wraps each captured behavior of an optic with timing,
// metrics, and failure signals. The wrapped optic behaves identically to
// the original.
func observeOptic[S, A any](ob observer, o optic[S, A]) optic[S, A] {
	wrapped := optic[S, A]{}
	if o.get != nil {
		wrapped.get = func(s *S) (A, error) {
			start := ob.clock.Now()
			v, err := o.get(s)
			d := ob.clock.Since(start)
			if err != nil {
				ob.metrics.OnGetFailure(d)
				capitan.Emit(context.Background(), OpticGetFailed,
					KeyOptic.Field(ob.name),
					KeyKind.Field(ob.kind.String()),
					KeyError.Field(err.Error()),
					KeyDuration.Field(d),
				)
				return v, err
			}
			ob.metrics.OnGetSuccess(d)
			return v, nil
		}
	}
	if o.set != nil {
		wrapped.set = func(s *S, v A) error {
			start := ob.clock.Now()
			err := o.set(s, v)
			d := ob.clock.Since(start)
			if err != nil {
				ob.metrics.OnPutDropped(d)
				capitan.Emit(context.Background(), OpticPutDropped,
					KeyOptic.Field(ob.name),
					KeyKind.Field(ob.kind.String()),
					KeyError.Field(err.Error()),
					KeyDuration.Field(d),
				)
				return err
			}
			ob.metrics.OnPutApplied(d)
			return nil
		}
	}
	if o.build != nil {
		wrapped.build = func(v A) (S, error) {
			start := ob.clock.Now()
			out, err := o.build(v)
			d := ob.clock.Since(start)
			if err != nil {
				ob.metrics.OnBuildFailure(d)
				capitan.Emit(context.Background(), OpticBuildFailed,
					KeyOptic.Field(ob.name),
					KeyKind.Field(ob.kind.String()),
					KeyError.Field(err.Error()),
					KeyDuration.Field(d),
				)
				return out, err
			}
			ob.metrics.OnBuildSuccess(d)
			return out, nil
		}
	}
	return wrapped
}

// ObserveLens instruments a lens. The returned lens behaves identically and
// additionally reports operation timings to the configured MetricsProvider.
func ObserveLens[S, A any](name string, l Lens[S, A], opts ...ObserveOption) Lens[S, A] {
	return Lens[S, A]{o: observeOptic(newObserver(name, KindLens, opts), l.o)}
}

// ObservePrism instruments a prism. Failed reads emit OpticGetFailed. A
// write against an absent focus is counted as applied: the no-op decision
// happens inside the caller's set function, invisible to the framework.
// Composed prisms whose chain fails before the final write-back do emit
// OpticPutDropped.
func ObservePrism[S, A any](name string, p Prism[S, A], opts ...ObserveOption) Prism[S, A] {
	return Prism[S, A]{o: observeOptic(newObserver(name, KindPrism, opts), p.o)}
}

// ObserveIso instruments an iso.
func ObserveIso[S, A any](name string, i Iso[S, A], opts ...ObserveOption) Iso[S, A] {
	return Iso[S, A]{o: observeOptic(newObserver(name, KindIso, opts), i.o)}
}

// ObserveFallibleIso instruments a fallible iso. Rejected builds emit
// OpticBuildFailed; writes aborted by a rejected build emit OpticPutDropped.
func ObserveFallibleIso[S, A any](name string, f FallibleIso[S, A], opts ...ObserveOption) FallibleIso[S, A] {
	return FallibleIso[S, A]{o: observeOptic(newObserver(name, KindFallibleIso, opts), f.o)}
}

// ObserveGetter instruments a getter.
func ObserveGetter[S, A any](name string, g Getter[S, A], opts ...ObserveOption) Getter[S, A] {
	return Getter[S, A]{o: observeOptic(newObserver(name, KindGetter, opts), g.o)}
}

// ObservePartialGetter instruments a partial getter.
func ObservePartialGetter[S, A any](name string, p PartialGetter[S, A], opts ...ObserveOption) PartialGetter[S, A] {
	return PartialGetter[S, A]{o: observeOptic(newObserver(name, KindPartialGetter, opts), p.o)}
}

// ObserveSetter instruments a setter.
func ObserveSetter[S, A any](name string, st Setter[S, A], opts ...ObserveOption) Setter[S, A] {
	return Setter[S, A]{o: observeOptic(newObserver(name, KindSetter, opts), st.o)}
}
