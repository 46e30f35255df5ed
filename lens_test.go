package optix

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Point is a test source for single-field lenses.
type Point struct {
	X, Y int
}

func pointX() Lens[Point, int] {
	return NewLens(
		func(p *Point) int { return p.X },
		func(p *Point, v int) { p.X = v },
	)
}

func TestLens_GetPut(t *testing.T) {
	x := pointX()
	p := Point{X: 10, Y: 20}

	if got := x.Get(&p); got != 10 {
		t.Errorf("Get = %d, want 10", got)
	}

	x.Put(&p, 42)
	if p.X != 42 {
		t.Errorf("after Put, X = %d, want 42", p.X)
	}
	if p.Y != 20 {
		t.Errorf("Put touched Y: %d, want 20", p.Y)
	}
}

func TestLens_Over(t *testing.T) {
	x := pointX()
	p := Point{X: 10, Y: 20}

	x.Over(&p, func(v int) int { return v + 5 })
	if p.X != 15 {
		t.Errorf("after Over, X = %d, want 15", p.X)
	}
}

func TestLens_Kind(t *testing.T) {
	if k := pointX().Kind(); k != KindLens {
		t.Errorf("Kind = %s, want lens", k)
	}
}

func TestLens_Laws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	x := pointX()

	properties.Property("get-put: Put(s, Get(s)) leaves s unchanged", prop.ForAll(
		func(px, py int) bool {
			p := Point{X: px, Y: py}
			before := p
			x.Put(&p, x.Get(&p))
			return p == before
		},
		gen.Int(), gen.Int(),
	))

	properties.Property("put-get: Get after Put returns the written value", prop.ForAll(
		func(px, py, v int) bool {
			p := Point{X: px, Y: py}
			x.Put(&p, v)
			return x.Get(&p) == v
		},
		gen.Int(), gen.Int(), gen.Int(),
	))

	properties.Property("put-put: the last write wins", prop.ForAll(
		func(px, py, v1, v2 int) bool {
			p1 := Point{X: px, Y: py}
			x.Put(&p1, v1)
			x.Put(&p1, v2)
			p2 := Point{X: px, Y: py}
			x.Put(&p2, v2)
			return p1 == p2
		},
		gen.Int(), gen.Int(), gen.Int(), gen.Int(),
	))

	properties.TestingRun(t)
}

func TestIdentityLens_FocusesWholeSource(t *testing.T) {
	id := IdentityLens[int]()
	v := 42

	if got := id.Get(&v); got != 42 {
		t.Errorf("Get = %d, want 42", got)
	}
	id.Put(&v, 43)
	if v != 43 {
		t.Errorf("after Put, v = %d, want 43", v)
	}
}

func TestLens_Downcasts_PreserveBehavior(t *testing.T) {
	x := pointX()
	p := Point{X: 7, Y: 9}

	if got := x.AsGetter().Get(&p); got != x.Get(&p) {
		t.Errorf("AsGetter.Get = %d, want %d", got, x.Get(&p))
	}

	got, err := x.AsPartialGetter().Get(&p)
	if err != nil {
		t.Fatalf("AsPartialGetter.Get failed: %v", err)
	}
	if got != x.Get(&p) {
		t.Errorf("AsPartialGetter.Get = %d, want %d", got, x.Get(&p))
	}

	pr := x.AsPrism()
	got, err = pr.Get(&p)
	if err != nil {
		t.Fatalf("AsPrism.Get failed: %v", err)
	}
	if got != 7 {
		t.Errorf("AsPrism.Get = %d, want 7", got)
	}
	pr.Put(&p, 8)
	if p.X != 8 {
		t.Errorf("AsPrism.Put: X = %d, want 8", p.X)
	}

	x.AsSetter().Put(&p, 11)
	if p.X != 11 {
		t.Errorf("AsSetter.Put: X = %d, want 11", p.X)
	}
}

func TestLens_DowncastKinds(t *testing.T) {
	x := pointX()
	if k := x.AsGetter().Kind(); k != KindGetter {
		t.Errorf("AsGetter kind = %s", k)
	}
	if k := x.AsPartialGetter().Kind(); k != KindPartialGetter {
		t.Errorf("AsPartialGetter kind = %s", k)
	}
	if k := x.AsPrism().Kind(); k != KindPrism {
		t.Errorf("AsPrism kind = %s", k)
	}
	if k := x.AsSetter().Kind(); k != KindSetter {
		t.Errorf("AsSetter kind = %s", k)
	}
}
