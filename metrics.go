package optix

import "time"

// MetricsProvider allows integration with metrics systems like Prometheus,
// StatsD, etc. Implement this interface to receive callbacks from observed
// optics.
type MetricsProvider interface {
	// OnGetSuccess is called when an observed read succeeds.
	OnGetSuccess(duration time.Duration)

	// OnGetFailure is called when an observed read fails to locate the focus.
	OnGetFailure(duration time.Duration)

	// OnPutApplied is called when an observed write is applied.
	OnPutApplied(duration time.Duration)

	// OnPutDropped is called when an observed write aborts as a no-op.
	OnPutDropped(duration time.Duration)

	// OnBuildSuccess is called when an observed construct succeeds.
	OnBuildSuccess(duration time.Duration)

	// OnBuildFailure is called when an observed construct rejects its input.
	OnBuildFailure(duration time.Duration)
}

// NoOpMetricsProvider is a no-op implementation of MetricsProvider.
// Use this as an embedded type to implement only the methods you need.
type NoOpMetricsProvider struct{}

func (NoOpMetricsProvider) OnGetSuccess(_ time.Duration)   {}
func (NoOpMetricsProvider) OnGetFailure(_ time.Duration)   {}
func (NoOpMetricsProvider) OnPutApplied(_ time.Duration)   {}
func (NoOpMetricsProvider) OnPutDropped(_ time.Duration)   {}
func (NoOpMetricsProvider) OnBuildSuccess(_ time.Duration) {}
func (NoOpMetricsProvider) OnBuildFailure(_ time.Duration) {}
