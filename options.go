package optix

// composeSettings carries the error adaptation chosen for one composition.
// It is resolved exactly once, when the Compose* entry point runs, and baked
// into the resulting optic.
type composeSettings struct {
	mapOuterGet   ErrorMapper
	mapInnerGet   ErrorMapper
	mapOuterBuild ErrorMapper
	mapInnerBuild ErrorMapper
}

// ComposeOption configures error adaptation for a single composition.
//
// Without options the adaptation is automatic: both sides' errors pass
// through the error interface unchanged. Options install explicit per-side
// mappings instead.
type ComposeOption func(*composeSettings)

// WithGetErrorMappers installs explicit mappings for read failures: outer
// rewrites errors from the first optic in the chain, inner from the second.
// A nil mapper keeps the automatic pass-through for that side.
func WithGetErrorMappers(outer, inner ErrorMapper) ComposeOption {
	return func(s *composeSettings) {
		s.mapOuterGet = orIdentity(outer)
		s.mapInnerGet = orIdentity(inner)
	}
}

// WithBuildErrorMappers installs explicit mappings for construct failures.
// A nil mapper keeps the automatic pass-through for that side.
func WithBuildErrorMappers(outer, inner ErrorMapper) ComposeOption {
	return func(s *composeSettings) {
		s.mapOuterBuild = orIdentity(outer)
		s.mapInnerBuild = orIdentity(inner)
	}
}

func newComposeSettings(opts []ComposeOption) composeSettings {
	s := composeSettings{
		mapOuterGet:   identityMapper,
		mapInnerGet:   identityMapper,
		mapOuterBuild: identityMapper,
		mapInnerBuild: identityMapper,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
