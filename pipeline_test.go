package optix

import (
	"context"
	"errors"
	"testing"

	"github.com/zoobz-io/pipz"
)

func TestFocus_ProcessesTheFocusedField(t *testing.T) {
	double := pipz.Transform(pipz.NewIdentity("double", ""), func(_ context.Context, v int) int {
		return v * 2
	})
	step := Focus("double-x", pointX(), double)

	out, err := step.Process(context.Background(), Point{X: 3, Y: 4})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if out.X != 6 {
		t.Errorf("X = %d, want 6", out.X)
	}
	if out.Y != 4 {
		t.Errorf("Y = %d, want 4 (untouched)", out.Y)
	}
}

func TestFocus_StepErrorLeavesSourceUnchanged(t *testing.T) {
	errStep := errors.New("step failed")
	failing := pipz.Apply(pipz.NewIdentity("fail", ""), func(_ context.Context, v int) (int, error) {
		return 0, errStep
	})
	step := Focus("fail-x", pointX(), failing)

	out, err := step.Process(context.Background(), Point{X: 3, Y: 4})
	if !errors.Is(err, errStep) {
		t.Fatalf("error = %v, want step error", err)
	}
	if out.X != 3 || out.Y != 4 {
		t.Errorf("failed step changed the source: %+v", out)
	}
}

func TestFocusPrism_RunsOnlyOnMatch(t *testing.T) {
	var calls int
	double := pipz.Transform(pipz.NewIdentity("double", ""), func(_ context.Context, v int) int {
		calls++
		return v * 2
	})
	step := FocusPrism("double-seconds", seconds(), double)

	// Non-matching variant passes through, the step never runs.
	out, err := step.Process(context.Background(), Timespan{Unit: "m", Value: 5})
	if err != nil {
		t.Fatalf("Process on a miss failed: %v", err)
	}
	if out != (Timespan{Unit: "m", Value: 5}) {
		t.Errorf("miss changed the source: %+v", out)
	}
	if calls != 0 {
		t.Errorf("step ran %d times on a miss, want 0", calls)
	}

	out, err = step.Process(context.Background(), Timespan{Unit: "s", Value: 5})
	if err != nil {
		t.Fatalf("Process on a match failed: %v", err)
	}
	if out.Value != 10 {
		t.Errorf("Value = %d, want 10", out.Value)
	}
}

func TestFocusPrism_PropagatesStepErrors(t *testing.T) {
	errStep := errors.New("step failed")
	failing := pipz.Apply(pipz.NewIdentity("fail", ""), func(_ context.Context, v int) (int, error) {
		return 0, errStep
	})
	step := FocusPrism("fail-seconds", seconds(), failing)

	out, err := step.Process(context.Background(), Timespan{Unit: "s", Value: 5})
	if !errors.Is(err, errStep) {
		t.Fatalf("error = %v, want step error", err)
	}
	if out.Value != 5 {
		t.Errorf("failed step changed the source: %+v", out)
	}
}

func TestFocus_ComposesIntoSequence(t *testing.T) {
	increment := pipz.Transform(pipz.NewIdentity("increment", ""), func(_ context.Context, v int) int {
		return v + 1
	})
	seq := pipz.NewSequence(pipz.NewIdentity("point-steps", ""),
		Focus("inc-x", pointX(), increment),
		Focus[Point]("inc-y", NewLens(
			func(p *Point) int { return p.Y },
			func(p *Point, v int) { p.Y = v },
		), increment),
	)

	out, err := seq.Process(context.Background(), Point{X: 1, Y: 2})
	if err != nil {
		t.Fatalf("sequence failed: %v", err)
	}
	if out.X != 2 || out.Y != 3 {
		t.Errorf("out = %+v, want {2 3}", out)
	}
}
