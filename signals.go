package optix

import "github.com/zoobzio/capitan"

// Signals emitted by observed optics.
var (
	// OpticGetFailed is emitted when an observed read cannot locate its focus.
	OpticGetFailed = capitan.NewSignal(
		"optix.optic.get.failed",
		"Focus read failed",
	)

	// OpticBuildFailed is emitted when an observed construct rejects its input.
	OpticBuildFailed = capitan.NewSignal(
		"optix.optic.build.failed",
		"Source construction rejected",
	)

	// OpticPutDropped is emitted when an observed write aborts as a no-op.
	// Put never reports failure to its caller; this signal is the only
	// record that a write was requested and not applied.
	OpticPutDropped = capitan.NewSignal(
		"optix.optic.put.dropped",
		"Write aborted as a no-op",
	)
)
