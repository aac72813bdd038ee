package stage

// Effect contributes additional rendering parameters to every layer in
// a pass. Effects are applied in list order; a later effect's keys
// overwrite an earlier effect's. What an effect computes internally
// (lighting, masking, ...) is outside this library's scope.
type Effect interface {
	// ModuleParameters returns the effect's per-layer parameter
	// contribution. A nil map contributes nothing.
	ModuleParameters(layer Layer) map[string]any
}
