package shader

// PreProcessorBuilderOption is a functional option for configuring a PreProcessor.
type PreProcessorBuilderOption func(*preProcessor)

// WithChunk registers WGSL source under a name for //@oxy:include. Registering a name twice
// replaces the earlier source.
//
// Parameters:
//   - name: the include name
//   - source: the WGSL source, which may contain further annotations
//
// Returns:
//   - PreProcessorBuilderOption: option function to apply
func WithChunk(name, source string) PreProcessorBuilderOption {
	return func(p *preProcessor) {
		p.chunks[name] = source
	}
}
