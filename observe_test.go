package optix

import (
	"errors"
	"testing"
	"time"

	"github.com/zoobzio/clockz"
)

// recordingMetrics counts every callback for assertions.
type recordingMetrics struct {
	NoOpMetricsProvider
	getSuccess   int
	getFailure   int
	putApplied   int
	putDropped   int
	buildSuccess int
	buildFailure int
}

func (m *recordingMetrics) OnGetSuccess(time.Duration)   { m.getSuccess++ }
func (m *recordingMetrics) OnGetFailure(time.Duration)   { m.getFailure++ }
func (m *recordingMetrics) OnPutApplied(time.Duration)   { m.putApplied++ }
func (m *recordingMetrics) OnPutDropped(time.Duration)   { m.putDropped++ }
func (m *recordingMetrics) OnBuildSuccess(time.Duration) { m.buildSuccess++ }
func (m *recordingMetrics) OnBuildFailure(time.Duration) { m.buildFailure++ }

func TestObserveLens_PreservesBehavior(t *testing.T) {
	metrics := &recordingMetrics{}
	observed := ObserveLens("point-x", pointX(), WithMetrics(metrics))

	p := Point{X: 3, Y: 4}
	if got := observed.Get(&p); got != 3 {
		t.Errorf("Get = %d, want 3", got)
	}
	observed.Put(&p, 9)
	if p.X != 9 {
		t.Errorf("after Put, X = %d, want 9", p.X)
	}

	if metrics.getSuccess != 1 {
		t.Errorf("getSuccess = %d, want 1", metrics.getSuccess)
	}
	if metrics.putApplied != 1 {
		t.Errorf("putApplied = %d, want 1", metrics.putApplied)
	}
	if metrics.getFailure != 0 || metrics.putDropped != 0 {
		t.Errorf("unexpected failure counts: %+v", metrics)
	}
}

func TestObservePrism_CountsGetFailures(t *testing.T) {
	metrics := &recordingMetrics{}
	observed := ObservePrism("seconds", seconds(), WithMetrics(metrics))

	ts := Timespan{Unit: "m", Value: 5}
	if _, err := observed.Get(&ts); !errors.Is(err, ErrFocusUnavailable) {
		t.Fatalf("error = %v, want ErrFocusUnavailable", err)
	}
	if metrics.getFailure != 1 {
		t.Errorf("getFailure = %d, want 1", metrics.getFailure)
	}
	if metrics.getSuccess != 0 {
		t.Errorf("getSuccess = %d, want 0", metrics.getSuccess)
	}
}

func TestObserveFallibleIso_CountsDroppedPuts(t *testing.T) {
	metrics := &recordingMetrics{}
	observed := ObserveFallibleIso("bounded", boundedDecimal(), WithMetrics(metrics))

	s := "250"
	observed.Put(&s, 1500)
	if s != "250" {
		t.Errorf("Put with rejected build changed the source: %q", s)
	}
	if metrics.putDropped != 1 {
		t.Errorf("putDropped = %d, want 1", metrics.putDropped)
	}

	observed.Put(&s, 300)
	if s != "300" {
		t.Errorf("Put with accepted build: s = %q, want 300", s)
	}
	if metrics.putApplied != 1 {
		t.Errorf("putApplied = %d, want 1", metrics.putApplied)
	}
}

func TestObserveFallibleIso_CountsBuildOutcomes(t *testing.T) {
	metrics := &recordingMetrics{}
	observed := ObserveFallibleIso("bounded", boundedDecimal(), WithMetrics(metrics))

	if _, err := observed.Build(500); err != nil {
		t.Fatalf("Build(500) failed: %v", err)
	}
	if _, err := observed.Build(1500); !errors.Is(err, ErrConstructionRejected) {
		t.Fatalf("Build(1500) error = %v, want ErrConstructionRejected", err)
	}

	if metrics.buildSuccess != 1 {
		t.Errorf("buildSuccess = %d, want 1", metrics.buildSuccess)
	}
	if metrics.buildFailure != 1 {
		t.Errorf("buildFailure = %d, want 1", metrics.buildFailure)
	}
}

func TestObserveLens_WithFakeClock(t *testing.T) {
	clock := clockz.NewFakeClock()
	metrics := &recordingMetrics{}
	observed := ObserveLens("point-x", pointX(), WithMetrics(metrics), WithClock(clock))

	p := Point{X: 1, Y: 2}
	observed.Get(&p)
	observed.Put(&p, 5)

	if metrics.getSuccess != 1 || metrics.putApplied != 1 {
		t.Errorf("counts with fake clock: %+v", metrics)
	}
	if p.X != 5 {
		t.Errorf("after Put, X = %d, want 5", p.X)
	}
}

func TestObserveComposed_DropSurfacesInWrapper(t *testing.T) {
	metrics := &recordingMetrics{}
	chain := ComposeLensFallibleIso(docVal(), boundedDecimal())
	observed := ObservePrism("doc-bounded", chain, WithMetrics(metrics))

	d := Doc{Val: "100", Count: 1}
	observed.Put(&d, 5000)
	if d.Val != "100" {
		t.Errorf("rejected Put changed the document: %+v", d)
	}
	if metrics.putDropped != 1 {
		t.Errorf("putDropped = %d, want 1", metrics.putDropped)
	}
}
