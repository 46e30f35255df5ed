package optix

// ReadLevel describes how an optic can extract its focus from a source.
type ReadLevel int32

const (
	// ReadNone means the optic cannot read its focus at all.
	ReadNone ReadLevel = iota

	// ReadPartial means reads can fail when the focus is absent.
	ReadPartial

	// ReadTotal means reads always succeed.
	ReadTotal
)

// String returns the string representation of the read level.
func (r ReadLevel) String() string {
	switch r {
	case ReadNone:
		return "none"
	case ReadPartial:
		return "partial"
	case ReadTotal:
		return "total"
	default:
		return "unknown"
	}
}

// WriteLevel describes whether an optic can replace its focus in place.
type WriteLevel int32

const (
	// WriteNone means the optic cannot write its focus.
	WriteNone WriteLevel = iota

	// WriteInPlace means the optic replaces the focus inside an existing
	// source. Writes never report failure; a write that cannot be applied
	// leaves the source untouched.
	WriteInPlace
)

// String returns the string representation of the write level.
func (w WriteLevel) String() string {
	switch w {
	case WriteNone:
		return "none"
	case WriteInPlace:
		return "in-place"
	default:
		return "unknown"
	}
}

// ConstructLevel describes how an optic can rebuild a whole source from a
// focus value alone.
type ConstructLevel int32

const (
	// ConstructNone means the optic cannot build a source from a focus.
	ConstructNone ConstructLevel = iota

	// ConstructPartial means builds can be rejected.
	ConstructPartial

	// ConstructTotal means builds always succeed.
	ConstructTotal
)

// String returns the string representation of the construct level.
func (c ConstructLevel) String() string {
	switch c {
	case ConstructNone:
		return "none"
	case ConstructPartial:
		return "partial"
	case ConstructTotal:
		return "total"
	default:
		return "unknown"
	}
}

// Capabilities is a point in the capability lattice: one level per axis.
type Capabilities struct {
	Read      ReadLevel
	Write     WriteLevel
	Construct ConstructLevel
}

// Includes reports whether c offers at least every capability of other.
// Capability projection (downcasting) is valid exactly along this order.
func (c Capabilities) Includes(other Capabilities) bool {
	return c.Read >= other.Read && c.Write >= other.Write && c.Construct >= other.Construct
}

// Kind names an exact combination of capability levels. Every optic value
// belongs to exactly one Kind, the strongest one its implementation
// satisfies.
type Kind int32

const (
	// KindGetter reads totally and nothing else.
	KindGetter Kind = iota

	// KindPartialGetter reads partially and nothing else.
	KindPartialGetter

	// KindSetter writes blindly: no read, no construct. Setters never
	// participate in composition on either side, since a blind optic
	// supplies no way to locate the intermediate value a chained
	// operation needs.
	KindSetter

	// KindLens reads totally and writes in place.
	KindLens

	// KindPrism reads partially and writes in place.
	KindPrism

	// KindIso reads totally, writes in place, and constructs totally.
	KindIso

	// KindFallibleIso reads partially, writes in place, and constructs
	// partially.
	KindFallibleIso
)

// kindTable maps each Kind to its capability row. The table is closed: a
// capability combination outside it is not a Kind.
var kindTable = map[Kind]Capabilities{
	KindGetter:        {Read: ReadTotal, Write: WriteNone, Construct: ConstructNone},
	KindPartialGetter: {Read: ReadPartial, Write: WriteNone, Construct: ConstructNone},
	KindSetter:        {Read: ReadNone, Write: WriteInPlace, Construct: ConstructNone},
	KindLens:          {Read: ReadTotal, Write: WriteInPlace, Construct: ConstructNone},
	KindPrism:         {Read: ReadPartial, Write: WriteInPlace, Construct: ConstructNone},
	KindIso:           {Read: ReadTotal, Write: WriteInPlace, Construct: ConstructTotal},
	KindFallibleIso:   {Read: ReadPartial, Write: WriteInPlace, Construct: ConstructPartial},
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindGetter:
		return "getter"
	case KindPartialGetter:
		return "partial-getter"
	case KindSetter:
		return "setter"
	case KindLens:
		return "lens"
	case KindPrism:
		return "prism"
	case KindIso:
		return "iso"
	case KindFallibleIso:
		return "fallible-iso"
	default:
		return "unknown"
	}
}

// Capabilities returns the capability row for the kind.
func (k Kind) Capabilities() Capabilities {
	return kindTable[k]
}

// KindFor looks up the Kind that matches a capability combination exactly.
// It returns false when the combination is not a row of the kind table.
func KindFor(c Capabilities) (Kind, bool) {
	for k, row := range kindTable {
		if row == c {
			return k, true
		}
	}
	return 0, false
}

// ConvertibleTo reports whether an optic of kind k can be downcast to kind
// target by dropping capability. A downcast never strengthens any axis and
// never changes retained behavior.
func (k Kind) ConvertibleTo(target Kind) bool {
	if k == target {
		return false
	}
	return k.Capabilities().Includes(target.Capabilities())
}

// Join computes the kind resulting from chaining an optic of kind outer with
// an optic of kind inner. Per axis: read and construct take the minimum of
// the operands, write survives only when both operands write.
//
// It returns false when the pairing does not compose: either operand is a
// Setter, or the joined capabilities are not a row of the kind table. The
// package exposes no composition entry point for such pairings, so Join
// returning false for them is a mirror of the static surface, not a runtime
// escape hatch.
func Join(outer, inner Kind) (Kind, bool) {
	if outer == KindSetter || inner == KindSetter {
		return 0, false
	}
	a, b := outer.Capabilities(), inner.Capabilities()
	joined := Capabilities{
		Read:      min(a.Read, b.Read),
		Construct: min(a.Construct, b.Construct),
	}
	if a.Write == WriteInPlace && b.Write == WriteInPlace {
		joined.Write = WriteInPlace
	}
	return KindFor(joined)
}
