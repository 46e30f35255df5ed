package optix

import "github.com/zoobzio/capitan"

// Field keys for optic events.
var (
	// KeyOptic is the name given to the observed optic.
	KeyOptic = capitan.NewStringKey("optic")

	// KeyKind is the kind of the observed optic.
	KeyKind = capitan.NewStringKey("kind")

	// KeyError is the error message when an operation fails.
	KeyError = capitan.NewStringKey("error")

	// KeyDuration is how long the failing operation took.
	KeyDuration = capitan.NewDurationKey("duration")
)
